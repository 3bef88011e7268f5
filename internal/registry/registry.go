// Package registry provides a global registry for minigame simulator factories.
// Games register themselves in init() functions, allowing the session layer
// and the hosts to discover simulators without hardcoded dependencies.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
)

// Simulator is the contract every minigame implements.
// Simulators are pure: they own no state between calls and never read the
// wall clock. The session controller holds the live GameState.
type Simulator interface {
	// Mode returns the mode this simulator plays.
	Mode() core.Mode

	// Title returns a human-readable name for display (e.g., "Snake Sprint").
	Title() string

	// ScoreLabel returns the HUD label of the score (e.g., "Coins").
	ScoreLabel() string

	// Reset returns a fresh initial state.
	Reset(rng core.RNG) core.GameState

	// Apply folds one command into the state. Commands the mode does not
	// understand, or states of another mode, are returned unchanged.
	Apply(state core.GameState, cmd core.Command) core.GameState

	// Step advances the simulation by deltaMs milliseconds.
	// The input state is never mutated.
	Step(state core.GameState, deltaMs float64, rng core.RNG) core.StepResult

	// Render draws the state onto the surface.
	Render(state core.GameState, dst core.Surface)
}

// GameInfo contains metadata about a registered minigame.
type GameInfo struct {
	Mode       core.Mode
	Title      string
	ScoreLabel string
	Info       string // One line shown in the menu
}

// Factory creates a simulator tuned by the given configuration.
type Factory func(cfg config.Config) Simulator

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[core.Mode]entry)
	mu      sync.RWMutex
)

// Register adds a simulator factory to the registry.
// Typically called from a game's init() function.
// Panics if the mode is already registered.
func Register(mode core.Mode, info string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[mode]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", mode))
	}

	// Get title by creating a temporary instance
	s := f(config.DefaultConfig())
	entries[mode] = entry{
		factory: f,
		info: GameInfo{
			Mode:       mode,
			Title:      s.Title(),
			ScoreLabel: s.ScoreLabel(),
			Info:       info,
		},
	}
}

// List returns information about all registered minigames in menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	slices.SortFunc(result, func(a, b GameInfo) int {
		return order(a.Mode) - order(b.Mode)
	})

	return result
}

// order returns the menu position of a mode; unknown modes sort last.
func order(m core.Mode) int {
	if i := slices.Index(core.Modes, m); i >= 0 {
		return i
	}
	return len(core.Modes)
}

// Lookup returns the information of a registered mode.
func Lookup(mode core.Mode) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[mode]
	return e.info, ok
}

// Create instantiates the simulator of a mode.
// Returns an error if the mode is not registered.
func Create(mode core.Mode, cfg config.Config) (Simulator, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[mode]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", mode)
	}

	return e.factory(cfg), nil
}

// Exists checks if a simulator for the given mode is registered.
func Exists(mode core.Mode) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[mode]
	return ok
}

// Build creates one simulator per registered mode.
func Build(cfg config.Config) map[core.Mode]Simulator {
	mu.RLock()
	defer mu.RUnlock()

	sims := make(map[core.Mode]Simulator, len(entries))
	for mode, e := range entries {
		sims[mode] = e.factory(cfg)
	}
	return sims
}
