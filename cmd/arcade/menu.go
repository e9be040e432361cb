package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/handheld-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the console with the game selector",
	Long: `Start the console in selector mode.

Selector:
  Left/Right - Cycle games
  Down       - Play the shown game
  Up         - Play the last game again
  Tab        - Scoreboard
  Q          - Quit

When a round ends the console returns to the selector on that game.

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, closeStore := openScores()
	defer closeStore()

	return tui.RunConsole(store, logger, terminalConfig())
}
