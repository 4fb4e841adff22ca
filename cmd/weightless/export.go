package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weightless/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	Long: `Export every weight entry, the profile and the activity history as a
JSON snapshot, suitable for backup or transfer to another machine.

Examples:
  weightless export
  weightless export --output backup.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := db.ExportBackup()
		if err != nil {
			return fmt.Errorf("building snapshot: %w", err)
		}

		data, err := store.MarshalBackup(backup)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Print(string(data))
			return nil
		}

		if err := os.WriteFile(output, data, 0600); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}

		color.Green("Export complete")
		fmt.Printf("  %d entries, %d sessions written to %s\n", len(backup.Entries), len(backup.Sessions), output)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}
