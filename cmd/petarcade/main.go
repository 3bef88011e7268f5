// petarcade is a pet-care arcade: five short minigames that pay money into
// the pet's wallet, playable locally in the terminal or over SSH.
//
// Usage:
//
//	petarcade list              - List available minigames
//	petarcade play <mode>       - Play one minigame
//	petarcade menu              - Start menu to pick minigames interactively
//	petarcade serve             - Start SSH (and optionally HTTP) servers
//	petarcade scores <mode>     - Show high scores for a minigame
//	petarcade wallet            - Show the wallet balance and ledger
//	petarcade simulate <mode>   - Play a session headlessly with a bot
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.petarcade/petarcade.db)
//	--config <path>     - Minigame tuning YAML
//	--owner <name>      - Wallet owner for local play
//	--log-level <lvl>   - debug, info, warn or error
//
// Every global flag can also be set through its PETARCADE_* environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/storage"

	// Import minigames to register them
	_ "github.com/vovakirdan/pet-arcade/internal/games/catch"
	_ "github.com/vovakirdan/pet-arcade/internal/games/click"
	_ "github.com/vovakirdan/pet-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/pet-arcade/internal/games/snake"
	_ "github.com/vovakirdan/pet-arcade/internal/games/target"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagOwner    string
	flagLogLevel string

	host   config.HostConfig
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "petarcade",
	Short: "Pet Arcade - earn money for your pet with terminal minigames",
	Long: `Pet Arcade is a set of five short minigames. Each session runs on a
countdown (or until you crash) and pays its score, times the mode's
multiplier, into your pet's wallet.

Available commands:
  list      - Show all minigames
  play      - Play a specific minigame directly
  menu      - Interactive minigame picker
  serve     - Start the SSH server (and the HTTP API with --http)
  scores    - View high scores
  wallet    - View the wallet balance and ledger
  simulate  - Let a bot play a session

Examples:
  petarcade list
  petarcade play catch
  petarcade menu --owner rex
  petarcade serve --ssh :2222 --http :8080
  petarcade simulate flappy --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.petarcade/petarcade.db", "Path to the arcade database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minigame config YAML")
	rootCmd.PersistentFlags().StringVar(&flagOwner, "owner", "local", "Wallet owner for local play")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup resolves host settings: environment first, explicit flags win.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	host, err = config.ParseEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		host.FPS = flagFPS
	}
	if flags.Changed("seed") {
		host.Seed = flagSeed
	}
	if flags.Changed("db") {
		host.DBPath = config.ExpandHome(flagDBPath)
	}
	if flags.Changed("config") {
		host.ConfigPath = flagConfig
	}
	if flags.Changed("owner") {
		host.Owner = flagOwner
	}
	if flags.Changed("log-level") {
		host.LogLevel = flagLogLevel
	}
	if host.FPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", host.FPS)
	}

	level, err := log.ParseLevel(host.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", host.LogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "petarcade",
		Level:           level,
	})
	return nil
}

// loadGameConfig loads the minigame tuning and logs any corrected values.
func loadGameConfig() (config.Config, error) {
	cfg, warnings, err := config.LoadWithWarnings(host.ConfigPath)
	if err != nil {
		return cfg, err
	}
	for _, w := range warnings {
		logger.Warn("invalid config value replaced by default", "field", w)
	}
	return cfg, nil
}

// openStore opens the database. Play commands keep going without one.
func openStore(required bool) (*storage.Store, error) {
	store, err := storage.Open(host.DBPath)
	if err != nil {
		if required {
			return nil, fmt.Errorf("open database: %w", err)
		}
		logger.Warn("could not open database, progress will not be saved", "path", host.DBPath, "err", err)
		return nil, nil
	}
	return store, nil
}

// termSize returns the terminal size, 80x24 when it cannot be read.
func termSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
