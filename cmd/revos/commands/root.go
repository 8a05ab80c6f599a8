package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"revos/internal/analytics"
	"revos/internal/config"
	"revos/internal/dataset"
	"revos/internal/httpapi"
	"revos/internal/logging"
	"revos/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose     bool
	openBrowser bool

	cfg   *config.AppConfig
	repo  *repository.JSONRepository
	store *dataset.Store
)

var rootCmd = &cobra.Command{
	Use:   "revos",
	Short: "RevOS is a hotel revenue reporting dashboard API",
	Long: `A reporting service for distribution-channel performance: it ingests CSV
exports of channel/rate-plan data, keeps the session dataset in memory, and
serves the analytics document (KPIs, trend, top problems) over HTTP.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		repo, err = repository.NewJSON(cfg.DataFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize analytics repository")
		}

		// The session store always starts from the bundled sample; a
		// previously persisted dataset replaces it wholesale.
		store = dataset.NewStore(analytics.SampleTopProblems())
		if doc, err := repo.Load(); err != nil {
			log.Warn().Err(err).Msg("No usable analytics database, starting from the bundled sample")
		} else {
			store.ReplaceAll(doc.TopProblems)
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("RevOS starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if openBrowser {
			cfg.OpenBrowser = true
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := httpapi.New(cfg, repo, store)
		return server.Run(ctx)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVar(&openBrowser, "open", false, "open the dashboard URL once the server is listening")
}

// persistDataset writes the session store back into the analytics database,
// regenerating the derived scatter section from the current rows. The rest of
// the document is preserved as loaded (or seeded from the sample when the
// database does not exist yet).
func persistDataset() error {
	doc, err := repo.Load()
	if err != nil {
		doc = analytics.SampleDocument()
	}

	rows := store.Rows()
	doc.TopProblems = rows
	if len(rows) > 0 {
		doc.Scatter = analytics.ChannelScatter(rows)
	}

	return repo.Save(doc)
}
