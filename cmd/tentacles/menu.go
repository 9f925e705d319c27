package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tentacles/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Start with a mode picker. When a session ends with Q you return to
the picker to choose again.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select mode
  Q/Esc        - Quit

Examples:
  tentacles menu
  tentacles menu --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := applyConfig(logger); err != nil {
		return err
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		logger.Debug("mode selected", "game", result.GameID)
		if err := play(result.GameID, cfg, logger); err != nil {
			return err
		}
	}
}
