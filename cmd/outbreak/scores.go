package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/undeadbits/outbreak/internal/registry"
	"github.com/undeadbits/outbreak/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores and recent runs for the mode.

Examples:
  outbreak scores outbreak
  outbreak scores outbreak_endless`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Modes: outbreak, outbreak_endless")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'outbreak play' to set the first high score!\n")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()

	bestWave, err := store.BestWave(gameID)
	if err == nil && bestWave > 0 {
		fmt.Printf("Deepest wave: %d\n", bestWave)
	}

	runs, err := store.RecentRuns(gameID, 5)
	if err == nil && len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent runs:")
		fmt.Printf("  %-6s  %-6s  %-8s  %-8s  %s\n", "Wave", "Kills", "Earned", "Spent", "Result")
		for _, r := range runs {
			result := "overrun"
			if r.Survived {
				result = "survived"
			}
			fmt.Printf("  %-6d  %-6d  %-8d  %-8d  %s\n", r.Wave, r.Kills, r.PointsEarned, r.PointsSpent, result)
		}
	}
}
