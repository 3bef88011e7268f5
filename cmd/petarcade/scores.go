package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pet-arcade/internal/registry"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a minigame",
	Long: `Display the best sessions recorded for the specified minigame.

Examples:
  petarcade scores catch
  petarcade scores snake --limit 3
  petarcade scores click --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded result of the minigame")
}

func runScores(_ *cobra.Command, args []string) error {
	mode, err := parseMode(args[0])
	if err != nil {
		return err
	}
	info, _ := registry.Lookup(mode)

	store, err := openStore(true)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(mode.String()); err != nil {
			return fmt.Errorf("clear scores: %w", err)
		}
		fmt.Printf("Cleared all scores of %s.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(mode.String(), flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'petarcade play %s' to set the first high score!\n", mode)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "Rank", "Player", info.ScoreLabel, "Reward", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %s\n", "----", "------", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  $%-7d  %s\n", i+1, entry.Owner, entry.Score, entry.Reward, dateStr)
	}

	if best, err := store.HighScore(mode.String()); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
