package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/handheld-arcade/internal/config"
	"github.com/vovakirdan/handheld-arcade/internal/core"
	"github.com/vovakirdan/handheld-arcade/internal/games/flappy"
	"github.com/vovakirdan/handheld-arcade/internal/games/snake"
	"github.com/vovakirdan/handheld-arcade/internal/games/tetris"
	"github.com/vovakirdan/handheld-arcade/internal/platform/tui"
	"github.com/vovakirdan/handheld-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Buttons:
  Left   - Left/A/H
  Right  - Right/D/L
  Up     - Up/W/K/Space
  Down   - Down/S/J

Other keys:
  P      - Pause
  Ctrl+S - Save a screenshot of the display
  Q/Esc  - Quit

After a round ends, Left plays again and any other button exits.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play snake
  arcade play tetris --difficulty hard
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the flags and terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags hands --config and --difficulty to the chosen game.
func applyGameFlags(gameID string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	switch gameID {
	case "snake":
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(preset)
	case "tetris":
		tetris.SetConfigPath(flagConfig)
		tetris.SetDifficultyPreset(preset)
	case "flappy":
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(preset)
	}
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := applyGameFlags(gameID); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, closeStore := openScores()
	defer closeStore()

	var keeper tui.ScoreKeeper
	if store != nil {
		keeper = store
	}
	if err := tui.Run(game, keeper, logger, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
