package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/handheld-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games installed on the console, in selector order.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-4s  %-*s  %s\n", "Slot", maxIDLen, "ID", "Title")
	fmt.Printf("  %-4s  %-*s  %s\n", "----", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-4d  %-*s  %s\n", g.Slot, maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
