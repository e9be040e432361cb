package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/handheld-arcade/internal/registry"
	"github.com/vovakirdan/handheld-arcade/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Scores only persist across runs when --db points at a file.

Examples:
  arcade scores tetris --db ~/.arcade/scores.db
  arcade scores flappy --limit 20
  arcade scores snake --clear --db ~/.arcade/scores.db`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "")
	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "")
	for i, entry := range scores {
		mark := ""
		if entry.NewHigh {
			mark = "new best"
		}
		fmt.Printf("  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"), mark)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Rounds: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
