// Package cli provides the lume command-line entry points.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/lume/internal/config"
)

var (
	cfgPath  string
	logLevel string

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lume",
	Short: "Themed terminal UI component kit",
	Long:  "lume is a themed terminal UI component kit: buttons, inputs, modal overlays and wallet profile panels with accessible focus handling.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Log.Level
		if logLevel != "" {
			level = logLevel
		}
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(parsed).
			With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/lume/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
}

// GetConfig returns the loaded configuration, or nil before preflight.
func GetConfig() *config.Config {
	return cfg
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
