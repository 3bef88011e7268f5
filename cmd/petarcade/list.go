package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pet-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available minigames",
	Long:  `Shows every registered minigame with its countdown and reward multiplier.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No minigames available.")
		return nil
	}

	fmt.Println("Available minigames:")
	fmt.Println()

	// Calculate column widths
	maxModeLen, maxTitleLen := len("Mode"), len("Title")
	for _, g := range games {
		maxModeLen = max(maxModeLen, len(g.Mode.String()))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxModeLen, "Mode", maxTitleLen, "Title", "Time", "Reward")
	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxModeLen, "----", maxTitleLen, "-----", "----", "------")

	for _, g := range games {
		duration := "-"
		if secs := cfg.Duration(g.Mode); secs > 0 {
			duration = fmt.Sprintf("%ds", secs)
		}
		fmt.Printf("  %-*s  %-*s  %-8s  %s x%g\n",
			maxModeLen, g.Mode, maxTitleLen, g.Title, duration, g.ScoreLabel, cfg.Multiplier(g.Mode))
	}

	fmt.Println()
	fmt.Println("Run 'petarcade play <mode>' to play a minigame.")
	return nil
}
