package commands

import (
	"errors"
	"fmt"
	"os"

	"revos/internal/analytics"
	"revos/internal/storage"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a channel performance CSV into the dataset",
	Long: `Decodes a CSV export (Channel, Rate Plan, Commission, Revenue, Cancel Rate,
optionally Lead Time/Property/Date), stages it as a preview, and commits it as
the active dataset. A rejected file leaves the current dataset untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		rows, err := analytics.DecodeCSV(string(raw))
		if err != nil {
			var fe *analytics.FormatError
			if errors.As(err, &fe) {
				return fmt.Errorf("import rejected, dataset unchanged: %s", fe.Message)
			}
			return err
		}

		token := store.StagePreview(rows)
		printPreview(rows)

		if importDryRun {
			store.DiscardPreview(token)
			fmt.Println("Dry run: preview discarded, dataset unchanged.")
			return nil
		}

		if err := store.CommitPreview(token); err != nil {
			return err
		}
		if err := persistDataset(); err != nil {
			return err
		}
		if err := archiveImport(rows); err != nil {
			// The archive is best-effort; the committed dataset stands.
			log.Warn().Err(err).Msg("Failed to archive import")
		}

		fmt.Printf("Imported %d rows.\n", len(rows))
		return nil
	},
}

func printPreview(rows []analytics.TopProblem) {
	channels := make(map[string]bool)
	for _, r := range rows {
		channels[r.Channel] = true
	}
	fmt.Printf("Preview: %d rows across %d channels.\n", len(rows), len(channels))

	worstChannel, worstPlan, worstRate := "", "", -1.0
	for _, row := range analytics.CancelRateMatrix(rows) {
		for plan, rate := range row.Rates {
			if rate > worstRate {
				worstChannel, worstPlan, worstRate = row.Channel, plan, rate
			}
		}
	}
	if worstRate >= 0 {
		fmt.Printf("Highest cancellation: %s / %s at %.1f%%.\n", worstChannel, worstPlan, worstRate)
	}
}

func archiveImport(rows []analytics.TopProblem) error {
	var archiver storage.Archiver = storage.NopArchiver{}
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresArchiver(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		archiver = pg
	}
	defer archiver.Close()
	return archiver.Archive(rows)
}

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "decode and preview only, do not commit")
	rootCmd.AddCommand(importCmd)
}
