// Package target implements Target Practice: tap the target before it moves.
package target

import (
	"math"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/registry"
)

// State is the Target Practice game state.
type State struct {
	Hits   int
	Target core.Circle
	// Respawn marks a hit target; the next step moves it and ignores taps until then.
	Respawn bool
}

// Mode implements core.GameState.
func (s State) Mode() core.Mode { return core.ModeTarget }

// Score implements core.GameState.
func (s State) Score() int { return s.Hits }

// Game is the Target Practice simulator.
type Game struct {
	surface config.SurfaceConfig
	cfg     config.TargetConfig
}

// New creates a simulator for the given surface and target size.
func New(surface config.SurfaceConfig, cfg config.TargetConfig) *Game {
	return &Game{surface: surface, cfg: cfg}
}

func init() {
	registry.Register(core.ModeTarget, "Click the target on the canvas. Earn $2 per hit.",
		func(cfg config.Config) registry.Simulator {
			return New(cfg.Surface, cfg.Target)
		})
}

// Mode returns the mode identifier.
func (g *Game) Mode() core.Mode { return core.ModeTarget }

// Title returns the display name.
func (g *Game) Title() string { return "Target Practice" }

// ScoreLabel returns the HUD score label.
func (g *Game) ScoreLabel() string { return "Hits" }

// Reset places the first target.
func (g *Game) Reset(rng core.RNG) core.GameState {
	return State{Target: g.spawn(rng)}
}

// spawn picks a target centre that keeps the whole disc plus margin on the surface.
func (g *Game) spawn(rng core.RNG) core.Circle {
	r, m := g.cfg.Radius, g.cfg.Margin
	return core.Circle{
		X:      core.RandRange(rng, r+m, g.surface.Width-r-m),
		Y:      core.RandRange(rng, r+m, g.surface.Height-r-m),
		Radius: r,
	}
}

// Apply scores a tap that lands on the target, edge included.
func (g *Game) Apply(state core.GameState, cmd core.Command) core.GameState {
	st, ok := state.(State)
	if !ok || cmd.Kind != core.CmdTap || st.Respawn {
		return state
	}
	if !core.Finite(cmd.X) || !core.Finite(cmd.Y) || !st.Target.Contains(cmd.X, cmd.Y) {
		return state
	}
	st.Hits++
	st.Respawn = true
	return st
}

// Step moves a hit target to a new random position.
func (g *Game) Step(state core.GameState, _ float64, rng core.RNG) core.StepResult {
	st, ok := state.(State)
	if !ok || !st.Respawn {
		return core.StepResult{State: state}
	}
	st.Target = g.spawn(rng)
	st.Respawn = false
	return core.StepResult{State: st}
}

// Render draws the target rings.
func (g *Game) Render(state core.GameState, dst core.Surface) {
	st, ok := state.(State)
	if !ok {
		return
	}
	w, h := dst.Size()
	sx, sy := w/g.surface.Width, h/g.surface.Height

	dst.Clear()
	if st.Respawn {
		return
	}
	t := st.Target
	dst.FillCircle(t.X*sx, t.Y*sy, t.Radius*sx, core.ColorTarget)
	dst.FillCircle(t.X*sx, t.Y*sy, math.Max(2, t.Radius-8)*sx, core.ColorTargetCore)
}
