package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weightless/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON snapshot",
	Long: `Import weight entries, profile and activity history from a snapshot
created with 'weightless export'.

Imported data is added to what is already in the database; sessions that
were imported before are skipped.

Examples:
  weightless import backup.json
  weightless import backup.json --confirm`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading snapshot: %w", err)
		}

		backup, err := store.UnmarshalBackup(data)
		if err != nil {
			return err
		}

		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm {
			fmt.Printf("Import %d entries and %d sessions from '%s'? [y/N] ", len(backup.Entries), len(backup.Sessions), filename)
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Println("Canceled.")
				return nil
			}
		}

		entries, sessions, err := db.ImportBackup(backup)
		if err != nil {
			return fmt.Errorf("importing snapshot: %w", err)
		}

		color.Green("Import complete")
		fmt.Printf("  %d entries, %d sessions added\n", entries, sessions)
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("confirm", false, "skip confirmation prompt")

	rootCmd.AddCommand(importCmd)
}
