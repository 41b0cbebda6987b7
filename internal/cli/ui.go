package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/lume/internal/theme"
	"github.com/opencode-ai/lume/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the lume component demo",
	Long:  "Launch the interactive demo showing the themed controls, the wallet profile panel, and the modal focus trap.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI()
	},
}

func runUI() error {
	if !hasTTY() {
		return &PreflightError{
			Message:  "the demo requires an interactive terminal",
			Hint:     "run from a TTY",
			NextStep: "lume --help",
		}
	}

	initial, err := GetConfig().InitialTheme()
	if err != nil {
		return err
	}

	logger.Debug().Str("theme", string(initial)).Msg("starting demo")

	return tui.RunWithConfig(tui.Config{
		Theme: initial,
		OnThemeChange: func(t theme.Theme) {
			logger.Debug().Str("theme", string(t)).Msg("theme changed")
		},
	})
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
