package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/upwords-go/internal/config"
	"github.com/mcoot/upwords-go/internal/factory"
)

var (
	cfg      *Config
	settings config.Config
	app      *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "upwords",
		Short: "Validate and score Upwords plays",
		Long: `upwords checks and scores plays on a 10x10 stacking word board.

Boards can be kept in UBF files and played directly, or tracked as
multi-player games with racks, a tile bag and undo.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A failed command skips PersistentPostRunE
			if app != nil {
				_ = app.Close()
				app = nil
			}

			var err error
			settings, err = cfg.Settings()
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), settings.Log.Level)
			if err != nil {
				return err
			}

			app, err = factory.New(factory.ConfigFromSettings(settings, logger))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			err := app.Close()
			app = nil
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Config file path (env: UPWORDS_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: UPWORDS_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", "", "Storage backend: memory, redis, sqlite (env: UPWORDS_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.DBPath, "db", "", "SQLite database path (env: UPWORDS_DB)")
	rootCmd.PersistentFlags().StringVar(&cfg.Dictionary, "dictionary", "", "Dictionary word list (env: UPWORDS_DICTIONARY)")

	// Add subcommands
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
