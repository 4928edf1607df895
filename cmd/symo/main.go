package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/symo-dev/symo/internal/app"
	"github.com/symo-dev/symo/internal/config"
	"github.com/symo-dev/symo/internal/i18n"
	"github.com/symo-dev/symo/internal/logger"
)

var (
	// Version info (set by ldflags)
	version = "dev"

	// Flags
	configPath string
	debug      bool
)

var (
	successFormat = color.New(color.FgGreen).SprintFunc()
	errorFormat   = color.New(color.FgHiRed).SprintFunc()
	mutedFormat   = color.New(color.FgHiBlack).SprintFunc()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorFormat("Error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "symo",
		Short: "Terminal system monitor with a live history chart",
		Long: `symo samples CPU temperature and usage, memory, swap, disk and network
throughput once per interval and shows them in a menu panel next to a live
chart of the recent history. Hover the chart with the mouse to read a sample.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			defer logger.Close()

			return app.Run(cfg, app.WithJournal(openJournal(cfg)))
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/symo/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newRenderCmd(), newVersionCmd())
	return rootCmd
}

// openJournal opens the sample journal. A journal that cannot be opened is
// logged and replaced by the no-op nil journal.
func openJournal(cfg *config.Config) *logger.Journal {
	journal, err := logger.NewJournal(cfg.Logging.JournalPath, cfg.Logging.MaxSizeMB, cfg.Logging.Enabled)
	if err != nil {
		logger.Warn("sample journal disabled", "error", err)
		return nil
	}
	return journal
}

// setup loads configuration, starts logging and selects the language.
func setup() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := logger.LevelInfo
	if debug || cfg.Debug {
		level = logger.LevelDebug
	}
	logger.InitLogger(level, "")

	lang := cfg.UI.Language
	if lang == "" {
		lang = i18n.DetectLanguage()
	}
	if err := i18n.SetLanguage(lang); err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded", "language", lang, "capacity", cfg.Chart.Capacity,
		"sampling_interval", cfg.Sampling.Interval)
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "symo %s\n", version)
		},
	}
}
