package commands

import (
	"context"
	"fmt"
	"strings"

	"laneboard/internal/api"
	"laneboard/internal/config"
	"laneboard/internal/logging"
	"laneboard/internal/poller"
	"laneboard/internal/tracker"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	open    bool
	cfg     *config.AppConfig

	trackerClient tracker.Client
)

var rootCmd = &cobra.Command{
	Use:   "laneboard",
	Short: "Laneboard projects per-person ticket schedules for a production/QC workflow",
	Long: `Laneboard polls an external ticket/roster service and projects each team
member's workday timeline (job order, lunch handling, live countdowns),
serving the result to dashboard UIs over HTTP and SSE.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		// Initialize tracker client
		trackerClient = tracker.NewClient(cfg.Tracker)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("Laneboard starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cfg.Tracker.BaseURL == "" {
			log.Fatal().Msg("TRACKER_URL is not configured")
		}

		p := poller.New(trackerClient, cfg.PollInterval, nil)
		go p.Run(context.Background())

		if open {
			url := dashboardURL(cfg.ListenAddr)
			if err := browser.OpenURL(url); err != nil {
				log.Warn().Err(err).Str("url", url).Msg("Failed to open dashboard in browser")
			}
		}

		server := api.NewServer(p, nil)
		if err := server.Serve(cfg.ListenAddr); err != nil {
			log.Fatal().Err(err).Msg("HTTP server stopped")
		}
	},
}

// dashboardURL turns a listen address like ":8089" into something a
// browser can open.
func dashboardURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return fmt.Sprintf("http://%s/api/schedule", addr)
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVar(&open, "open", false, "open the dashboard in a browser after startup")
}
