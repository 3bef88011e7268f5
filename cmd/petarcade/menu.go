package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pet-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a minigame picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a minigame.
After a session ends, Esc returns to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select minigame
  Tab          - High scores
  L            - Wallet ledger
  Q            - Quit

Examples:
  petarcade menu
  petarcade menu --owner rex
  petarcade menu --fps 30 --db ./petarcade.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store, err := openStore(false)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	width, height := termSize()
	return tui.RunApp(tui.AppOptions{
		Config: cfg,
		Store:  store,
		Wallet: tui.OpenWallet(host.Owner, store, logger),
		Seed:   host.Seed,
		FPS:    host.FPS,
		Width:  width,
		Height: height,
		Logger: logger,
	})
}
