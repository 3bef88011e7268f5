// Package flappy implements Flappy Flight: keep a falling bird airborne and
// fly it through the gaps of scrolling pipes.
package flappy

import (
	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/registry"
)

// Pipe cap drawing, in surface units.
const (
	capHeight = 16
	capInset  = 4
)

// State is the Flappy Flight game state.
type State struct {
	Gates        int // Pipes passed
	BirdY        float64
	BirdVelocity float64 // Units per second, negative = up
	Pipes        []Pipe
	SpawnAccMs   float64
}

// Mode implements core.GameState.
func (s State) Mode() core.Mode { return core.ModeFlappy }

// Score implements core.GameState.
func (s State) Score() int { return s.Gates }

// Game is the Flappy Flight simulator.
type Game struct {
	cfg    config.FlappyConfig
	layout Layout
}

// New creates a simulator for the given surface and physics.
func New(surface config.SurfaceConfig, cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg, layout: NewLayout(surface, cfg)}
}

func init() {
	registry.Register(core.ModeFlappy, "Tap or press Space to fly. Dodge the pipes and earn $2 per gate.",
		func(cfg config.Config) registry.Simulator {
			return New(cfg.Surface, cfg.Flappy)
		})
}

// Mode returns the mode identifier.
func (g *Game) Mode() core.Mode { return core.ModeFlappy }

// Title returns the display name.
func (g *Game) Title() string { return "Flappy Flight" }

// ScoreLabel returns the HUD score label.
func (g *Game) ScoreLabel() string { return "Score" }

// Layout returns the playfield sizes.
func (g *Game) Layout() Layout { return g.layout }

// Reset places the bird at its start height with no pipes.
func (g *Game) Reset(core.RNG) core.GameState {
	return State{BirdY: g.layout.Height * g.cfg.StartYFactor}
}

// Apply handles the flap command.
func (g *Game) Apply(state core.GameState, cmd core.Command) core.GameState {
	st, ok := state.(State)
	if !ok || cmd.Kind != core.CmdFlap {
		return state
	}
	st.BirdVelocity = g.cfg.FlapVelocity
	return st
}

// Step integrates the bird, scrolls and spawns pipes, scores passed pipes
// and checks collisions.
func (g *Game) Step(state core.GameState, deltaMs float64, rng core.RNG) core.StepResult {
	st, ok := state.(State)
	if !ok {
		return core.StepResult{State: state}
	}
	dtMs := core.SanitizeDelta(deltaMs, g.cfg.MaxFrameMs)
	dt := dtMs / 1000
	l := g.layout

	// Apply physics
	st.BirdVelocity = min(st.BirdVelocity+g.cfg.Gravity*dt, g.cfg.MaxFallSpeed)
	st.BirdY += st.BirdVelocity * dt

	pipes := make([]Pipe, 0, len(st.Pipes)+1)
	pipes = append(pipes, st.Pipes...)

	st.SpawnAccMs += dtMs
	if st.SpawnAccMs > g.cfg.SpawnIntervalMs {
		st.SpawnAccMs = 0
		pipes = append(pipes, l.spawnPipe(g.cfg.GapMargin, rng))
	}

	// Move pipes left and drop the ones fully past the left edge
	kept := pipes[:0]
	for _, p := range pipes {
		p.X -= g.cfg.PipeSpeed * dt
		if p.X+l.PipeWidth > 0 {
			kept = append(kept, p)
		}
	}
	st.Pipes = kept

	var delta int
	terminal := false
	for i := range st.Pipes {
		p := &st.Pipes[i]
		if !p.Passed && p.X+l.PipeWidth <= l.BirdX {
			p.Passed = true
			delta++
		}
		if l.Hits(*p, st.BirdY) {
			terminal = true
		}
	}
	st.Gates += delta

	if l.OutOfBounds(st.BirdY) {
		terminal = true
	}

	return core.StepResult{State: st, ScoreDelta: delta, Terminal: terminal}
}

// Render draws pipes with caps and the bird.
func (g *Game) Render(state core.GameState, dst core.Surface) {
	st, ok := state.(State)
	if !ok {
		return
	}
	l := g.layout
	w, h := dst.Size()
	sx, sy := w/l.Width, h/l.Height

	dst.Clear()
	for _, p := range st.Pipes {
		x, pw := p.X*sx, l.PipeWidth*sx
		gapTop, gapBottom := p.GapY*sy, (p.GapY+l.Gap)*sy
		dst.FillRect(x, 0, pw, gapTop, core.ColorPipe)
		dst.FillRect(x, gapBottom, pw, h-gapBottom, core.ColorPipe)

		cw := pw + capInset*2*sx
		dst.FillRect(x-capInset*sx, gapBottom, cw, capHeight*sy, core.ColorPipeCap)
		dst.FillRect(x-capInset*sx, gapTop-capHeight*sy, cw, capHeight*sy, core.ColorPipeCap)
	}

	bx, by, r := l.BirdX*sx, st.BirdY*sy, l.BirdRadius*sx
	dst.FillCircle(bx, by, r, core.ColorBird)
	dst.DrawImage("bird", bx-r, by-r, 2*r, 2*r)
}
