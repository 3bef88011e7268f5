package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/platform/tui"
	"github.com/vovakirdan/pet-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a minigame",
	Long: `Start playing the specified minigame.

Controls:
  Enter/Space    - Start (and tap in Click Rush)
  Mouse          - Tap the target / the button
  Left/Right/A/D - Move the basket in Coin Catch
  Space/Up/Click - Flap in Flappy
  Arrows/WASD    - Turn in Snake Sprint
  Esc/Q          - Quit (a running session pays nothing)

Examples:
  petarcade play click
  petarcade play target --seed 7
  petarcade play snake --config ./my-minigames.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode, err := parseMode(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Continue without storage - the minigame still works
	store, err := openStore(false)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	width, height := termSize()
	wallet := tui.OpenWallet(host.Owner, store, logger)
	return tui.Run(tui.GameOptions{
		Mode:   mode,
		Config: cfg,
		Wallet: wallet,
		Seed:   host.Seed,
		FPS:    host.FPS,
		Width:  width,
		Height: height,
		Logger: logger,
	})
}

// parseMode resolves a registered minigame from its identifier.
func parseMode(s string) (core.Mode, error) {
	mode, ok := core.ParseMode(s)
	if !ok || !registry.Exists(mode) {
		return core.ModeNone, fmt.Errorf("unknown minigame %q, run 'petarcade list' to see available minigames", s)
	}
	return mode, nil
}
