// Package catch implements Coin Catch: slide a basket along the bottom edge
// and catch the coins that fall from the top.
package catch

import (
	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/registry"
)

// Coin is a falling coin.
type Coin struct {
	X, Y   float64
	VY     float64 // Units per second
	Radius float64
}

// State is the Coin Catch game state.
type State struct {
	Caught      int
	PlayerX     float64 // Basket centre
	MovingLeft  bool
	MovingRight bool
	Coins       []Coin
	SpawnAccMs  float64
}

// Mode implements core.GameState.
func (s State) Mode() core.Mode { return core.ModeCatch }

// Score implements core.GameState.
func (s State) Score() int { return s.Caught }

// Game is the Coin Catch simulator.
type Game struct {
	surface config.SurfaceConfig
	cfg     config.CatchConfig
}

// New creates a simulator for the given surface and tuning.
func New(surface config.SurfaceConfig, cfg config.CatchConfig) *Game {
	return &Game{surface: surface, cfg: cfg}
}

func init() {
	registry.Register(core.ModeCatch, "Move with arrows or A/D. Catch falling coins for $2 each.",
		func(cfg config.Config) registry.Simulator {
			return New(cfg.Surface, cfg.Catch)
		})
}

// Mode returns the mode identifier.
func (g *Game) Mode() core.Mode { return core.ModeCatch }

// Title returns the display name.
func (g *Game) Title() string { return "Coin Catch" }

// ScoreLabel returns the HUD score label.
func (g *Game) ScoreLabel() string { return "Coins" }

// Reset centres the basket with no coins in flight.
func (g *Game) Reset(core.RNG) core.GameState {
	return State{PlayerX: g.surface.Width / 2}
}

// Apply updates the held direction flags.
func (g *Game) Apply(state core.GameState, cmd core.Command) core.GameState {
	st, ok := state.(State)
	if !ok {
		return state
	}
	switch cmd.Kind {
	case core.CmdMoveLeftStart:
		st.MovingLeft = true
	case core.CmdMoveLeftStop:
		st.MovingLeft = false
	case core.CmdMoveRightStart:
		st.MovingRight = true
	case core.CmdMoveRightStop:
		st.MovingRight = false
	default:
		return state
	}
	return st
}

// Basket returns the catch box of a basket centred at playerX.
func (g *Game) Basket(playerX float64) core.Rect {
	top := g.surface.Height - g.cfg.PaddleOffset
	return core.NewRect(playerX-g.cfg.PaddleWidth/2, top, g.cfg.PaddleWidth, g.cfg.PaddleHeight)
}

// Caught reports whether a coin touches the basket band.
func (g *Game) Caught(c Coin, basket core.Rect) bool {
	return c.Y+c.Radius >= basket.Y &&
		c.Y-c.Radius <= basket.Bottom() &&
		c.X >= basket.X &&
		c.X <= basket.Right()
}

// Step moves the basket, spawns coins, lets them fall and resolves catches.
func (g *Game) Step(state core.GameState, deltaMs float64, rng core.RNG) core.StepResult {
	st, ok := state.(State)
	if !ok {
		return core.StepResult{State: state}
	}
	dt := core.SanitizeDelta(deltaMs, g.cfg.MaxFrameMs)
	w, h := g.surface.Width, g.surface.Height

	speed := g.cfg.PaddleSpeed * dt
	if st.MovingLeft {
		st.PlayerX -= speed
	}
	if st.MovingRight {
		st.PlayerX += speed
	}
	half := g.cfg.PaddleWidth / 2
	st.PlayerX = core.ClampF(st.PlayerX, half, w-half)

	coins := make([]Coin, 0, len(st.Coins)+1)
	coins = append(coins, st.Coins...)

	st.SpawnAccMs += dt
	if st.SpawnAccMs > g.cfg.SpawnIntervalMs {
		st.SpawnAccMs = 0
		coins = append(coins, Coin{
			X:      core.RandRange(rng, g.cfg.CoinMargin, w-g.cfg.CoinMargin),
			Y:      0,
			VY:     core.RandRange(rng, g.cfg.MinFallFactor, g.cfg.MaxFallFactor) * h,
			Radius: g.cfg.CoinRadius,
		})
	}

	basket := g.Basket(st.PlayerX)
	var delta int
	kept := coins[:0]
	for _, c := range coins {
		c.Y += c.VY * dt / 1000
		if g.Caught(c, basket) {
			delta++
			continue
		}
		if c.Y-c.Radius > h+g.cfg.DiscardMargin {
			continue
		}
		kept = append(kept, c)
	}
	st.Coins = kept
	st.Caught += delta

	return core.StepResult{State: st, ScoreDelta: delta}
}

// Render draws the basket and the coins.
func (g *Game) Render(state core.GameState, dst core.Surface) {
	st, ok := state.(State)
	if !ok {
		return
	}
	w, h := dst.Size()
	sx, sy := w/g.surface.Width, h/g.surface.Height

	dst.Clear()
	b := g.Basket(st.PlayerX)
	dst.FillRect(b.X*sx, b.Y*sy, b.W*sx, b.H*sy, core.ColorPaddle)

	for _, c := range st.Coins {
		r := c.Radius * sx
		dst.FillCircle(c.X*sx, c.Y*sy, r, core.ColorTarget)
		dst.DrawImage("coin", c.X*sx-r, c.Y*sy-r, 2*r, 2*r)
	}
}
