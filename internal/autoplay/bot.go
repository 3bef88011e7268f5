// Package autoplay drives sessions headlessly with simple scripted players.
// It backs the simulate command and end-to-end tests of the engine.
package autoplay

import (
	"math"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/games/catch"
	"github.com/vovakirdan/pet-arcade/internal/games/flappy"
	"github.com/vovakirdan/pet-arcade/internal/games/snake"
	"github.com/vovakirdan/pet-arcade/internal/games/target"
)

// Bot decides the commands to send before a frame.
type Bot interface {
	Decide(state core.GameState) []core.Command
}

// NewBot returns the scripted player of a mode.
// reactionFrames is how many frames the bot waits between taps.
func NewBot(mode core.Mode, cfg config.Config, reactionFrames int) (Bot, bool) {
	reactionFrames = max(reactionFrames, 1)
	switch mode {
	case core.ModeClick:
		return &clickBot{every: reactionFrames}, true
	case core.ModeTarget:
		return &targetBot{every: reactionFrames}, true
	case core.ModeCatch:
		return &catchBot{game: catch.New(cfg.Surface, cfg.Catch)}, true
	case core.ModeFlappy:
		return &flappyBot{layout: flappy.NewLayout(cfg.Surface, cfg.Flappy)}, true
	case core.ModeSnake:
		return &snakeBot{cols: cfg.Snake.Cols, rows: cfg.Snake.Rows}, true
	}
	return nil, false
}

// clickBot taps every few frames.
type clickBot struct {
	every, frame int
}

func (b *clickBot) Decide(core.GameState) []core.Command {
	b.frame++
	if b.frame%b.every != 0 {
		return nil
	}
	return []core.Command{core.GenericTap()}
}

// targetBot taps the target centre once it has had time to react.
type targetBot struct {
	every, wait int
}

func (b *targetBot) Decide(state core.GameState) []core.Command {
	st, ok := state.(target.State)
	if !ok || st.Respawn {
		b.wait = 0
		return nil
	}
	b.wait++
	if b.wait < b.every {
		return nil
	}
	b.wait = 0
	return []core.Command{core.Tap(st.Target.X, st.Target.Y)}
}

// catchBot steers the basket below the lowest coin it can still reach.
type catchBot struct {
	game *catch.Game
}

func (b *catchBot) Decide(state core.GameState) []core.Command {
	st, ok := state.(catch.State)
	if !ok {
		return nil
	}
	basket := b.game.Basket(st.PlayerX)

	goal, found := st.PlayerX, false
	lowest := math.Inf(-1)
	for _, c := range st.Coins {
		if c.Y-c.Radius > basket.Bottom() {
			continue // Already missed
		}
		if c.Y > lowest {
			lowest, goal, found = c.Y, c.X, true
		}
	}

	// Dead zone of a quarter basket avoids jitter
	wantLeft := found && goal < st.PlayerX-basket.W/4
	wantRight := found && goal > st.PlayerX+basket.W/4

	var cmds []core.Command
	if st.MovingLeft && !wantLeft {
		cmds = append(cmds, core.Move(-1, false))
	}
	if st.MovingRight && !wantRight {
		cmds = append(cmds, core.Move(1, false))
	}
	if wantLeft && !st.MovingLeft {
		cmds = append(cmds, core.Move(-1, true))
	}
	if wantRight && !st.MovingRight {
		cmds = append(cmds, core.Move(1, true))
	}
	return cmds
}

// flappyBot flaps when the bird sinks below the middle of the next gap.
type flappyBot struct {
	layout flappy.Layout
}

func (b *flappyBot) Decide(state core.GameState) []core.Command {
	st, ok := state.(flappy.State)
	if !ok {
		return nil
	}
	l := b.layout

	aim := l.Height * 0.5
	for _, p := range st.Pipes {
		if p.X+l.PipeWidth >= l.BirdX-l.BirdRadius {
			aim = p.GapY + l.Gap*0.6
			break
		}
	}

	if st.BirdY > aim && st.BirdVelocity >= 0 {
		return []core.Command{core.Flap()}
	}
	return nil
}

// snakeBot walks greedily towards the food, avoiding walls and its body.
type snakeBot struct {
	cols, rows int
}

func (b *snakeBot) Decide(state core.GameState) []core.Command {
	st, ok := state.(snake.State)
	if !ok || len(st.Segments) == 0 || st.Queued != st.Direction {
		return nil // A turn is already pending
	}

	head := st.Head()
	best, bestDist := st.Direction, math.MaxInt
	for _, d := range []snake.Point{snake.Up, snake.Down, snake.Left, snake.Right} {
		if d.Opposite(st.Direction) {
			continue
		}
		next := head.Add(d)
		if next.X < 0 || next.X >= b.cols || next.Y < 0 || next.Y >= b.rows || st.Occupies(next) {
			continue
		}
		dist := abs(next.X-st.Food.X) + abs(next.Y-st.Food.Y)
		if dist < bestDist {
			best, bestDist = d, dist
		}
	}

	if best == st.Direction {
		return nil
	}
	return []core.Command{core.Turn(best.X, best.Y)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
