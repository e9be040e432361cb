// arcade runs the handheld arcade: Snake, Tetris and Flappy on a 128x64
// monochrome display driven by four buttons, rendered in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start the console with the game selector
//	arcade serve             - Serve the console over SSH and scores over HTTP
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: in-memory)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/handheld-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/handheld-arcade/internal/games/snake"
	_ "github.com/vovakirdan/handheld-arcade/internal/games/tetris"
	"github.com/vovakirdan/handheld-arcade/internal/platform/tui"
	"github.com/vovakirdan/handheld-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Handheld Arcade - Snake, Tetris and Flappy on a tiny monochrome screen",
	Long: `Handheld Arcade emulates a pocket console with a 128x64 monochrome
display and four buttons, and runs three games on it.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Console with the game selector
  serve    - Serve the console over SSH and the leaderboard over HTTP
  scores   - View high scores

Examples:
  arcade list
  arcade play tetris
  arcade menu --db ~/.arcade/scores.db
  arcade serve --ssh :2222 --http :8080
  arcade scores flappy`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.Memory, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openScores opens the score store. Playing works without one, so a failure
// only logs and yields a nil store.
func openScores() (tui.Scores, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil, func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Error("close scores database", "error", err)
		}
	}
}
