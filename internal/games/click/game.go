// Package click implements Click Challenge: tap as often as possible before time runs out.
package click

import (
	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/registry"
)

// State is the Click Challenge game state.
type State struct {
	Clicks int
}

// Mode implements core.GameState.
func (s State) Mode() core.Mode { return core.ModeClick }

// Score implements core.GameState.
func (s State) Score() int { return s.Clicks }

// Game is the Click Challenge simulator. It has no physics.
type Game struct{}

// New creates a Click Challenge simulator.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(core.ModeClick, "Click as fast as you can. Earn $1 per click.",
		func(config.Config) registry.Simulator {
			return New()
		})
}

// Mode returns the mode identifier.
func (g *Game) Mode() core.Mode { return core.ModeClick }

// Title returns the display name.
func (g *Game) Title() string { return "Click Challenge" }

// ScoreLabel returns the HUD score label.
func (g *Game) ScoreLabel() string { return "Clicks" }

// Reset returns zero clicks.
func (g *Game) Reset(core.RNG) core.GameState { return State{} }

// Apply counts every tap, positioned or not.
func (g *Game) Apply(state core.GameState, cmd core.Command) core.GameState {
	st, ok := state.(State)
	if !ok {
		return state
	}
	if cmd.Kind == core.CmdTap || cmd.Kind == core.CmdGenericTap {
		st.Clicks++
	}
	return st
}

// Step returns the state unchanged.
func (g *Game) Step(state core.GameState, _ float64, _ core.RNG) core.StepResult {
	return core.StepResult{State: state}
}

// Render draws the click button in the middle of the surface.
func (g *Game) Render(_ core.GameState, dst core.Surface) {
	w, h := dst.Size()
	dst.Clear()
	dst.FillRect(w*0.3, h*0.3, w*0.4, h*0.4, core.ColorTarget)
}
