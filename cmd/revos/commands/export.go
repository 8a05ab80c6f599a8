package commands

import (
	"fmt"
	"os"

	"revos/internal/analytics"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Export the active dataset as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := store.Rows()
		if len(rows) == 0 {
			fmt.Println("No data to export.")
			return nil
		}

		csv := analytics.EncodeCSV(rows)
		if err := os.WriteFile(args[0], []byte(csv+"\n"), 0644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}

		fmt.Printf("Exported %d rows to %s.\n", len(rows), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
