package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Manage the active dataset",
}

var dataResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the bundled default sample dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		store.Reset()
		if err := persistDataset(); err != nil {
			return err
		}
		fmt.Printf("Reset to default sample data (%d rows).\n", store.Count())
		return nil
	},
}

var dataClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all rows from the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		store.Clear()
		if err := persistDataset(); err != nil {
			return err
		}
		fmt.Println("All data cleared.")
		return nil
	},
}

func init() {
	dataCmd.AddCommand(dataResetCmd)
	dataCmd.AddCommand(dataClearCmd)
	rootCmd.AddCommand(dataCmd)
}
