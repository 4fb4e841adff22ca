package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weightless/internal/service"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the weekly report",
	Long: `Summarize the trailing seven days: start and end weight, change,
average, activity count and trend direction.

Example:
  weightless report`,
	RunE: func(cmd *cobra.Command, args []string) error {
		querySvc := service.NewQueryService(db)

		data, err := querySvc.GetReportData(time.Now())
		if err != nil {
			return fmt.Errorf("building report: %w", err)
		}
		if !data.Ok {
			fmt.Println("Insufficient data for a report. Log at least two weigh-ins inside the last seven days.")
			return nil
		}

		r := data.Report

		color.New(color.Bold).Println("Weekly Report - last 7 days")
		fmt.Printf("  Start:      %.1f kg\n", r.StartKg)
		fmt.Printf("  End:        %.1f kg\n", r.EndKg)
		fmt.Printf("  Change:     %+.1f kg\n", r.ChangeKg)
		fmt.Printf("  Average:    %.1f kg\n", r.AverageKg)
		fmt.Printf("  Activities: %d\n", r.Activities)
		if r.BMI > 0 {
			fmt.Printf("  BMI:        %.1f\n", r.BMI)
		}

		if r.Trend == "decreasing" {
			color.Green("  Your weight is decreasing this week.")
		} else {
			color.Yellow("  Your weight is increasing this week.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
