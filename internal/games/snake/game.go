// Package snake implements Snake Sprint: steer a growing snake around a grid
// and eat as much food as possible before the countdown ends.
package snake

import (
	"math"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
	"github.com/vovakirdan/pet-arcade/internal/registry"
)

// Point represents a grid cell, or a unit direction.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Opposite reports whether p and other point in reverse directions.
func (p Point) Opposite(other Point) bool {
	return p.X == -other.X && p.Y == -other.Y
}

// Directions.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// State is the Snake Sprint game state.
type State struct {
	Eaten     int
	Segments  []Point // Head at index 0
	Direction Point
	Queued    Point // Applied on the next move
	Food      Point
	MoveAccMs float64
}

// Mode implements core.GameState.
func (s State) Mode() core.Mode { return core.ModeSnake }

// Score implements core.GameState.
func (s State) Score() int { return s.Eaten }

// Head returns the head cell.
func (s State) Head() Point { return s.Segments[0] }

// Occupies reports whether any segment covers p.
func (s State) Occupies(p Point) bool {
	for _, seg := range s.Segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Game is the Snake Sprint simulator.
type Game struct {
	cfg config.SnakeConfig
}

// New creates a simulator for the given grid and timing.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(core.ModeSnake, "Steer with arrows or WASD. Eat food, avoid walls and your tail.",
		func(cfg config.Config) registry.Simulator {
			return New(cfg.Snake)
		})
}

// Mode returns the mode identifier.
func (g *Game) Mode() core.Mode { return core.ModeSnake }

// Title returns the display name.
func (g *Game) Title() string { return "Snake Sprint" }

// ScoreLabel returns the HUD score label.
func (g *Game) ScoreLabel() string { return "Score" }

// Reset places a snake at the grid centre heading right and spawns food.
func (g *Game) Reset(rng core.RNG) core.GameState {
	start := Point{X: g.cfg.Cols / 2, Y: g.cfg.Rows / 2}
	length := max(1, min(g.cfg.StartLength, start.X+1))

	st := State{
		Segments:  make([]Point, 0, length),
		Direction: Right,
		Queued:    Right,
	}
	for i := range length {
		st.Segments = append(st.Segments, Point{X: start.X - i, Y: start.Y})
	}
	st.Food, _ = g.spawnFood(st.Segments, rng)
	return st
}

// Apply queues a turn. Reversals of the current or the queued direction
// and non-unit vectors are ignored.
func (g *Game) Apply(state core.GameState, cmd core.Command) core.GameState {
	st, ok := state.(State)
	if !ok || cmd.Kind != core.CmdTurn {
		return state
	}
	dir := Point{X: cmd.DX, Y: cmd.DY}
	if abs(dir.X)+abs(dir.Y) != 1 {
		return state
	}
	if dir.Opposite(st.Direction) || dir.Opposite(st.Queued) {
		return state
	}
	st.Queued = dir
	return st
}

// Step advances the move accumulator and performs every move that became due.
func (g *Game) Step(state core.GameState, deltaMs float64, rng core.RNG) core.StepResult {
	st, ok := state.(State)
	if !ok || len(st.Segments) == 0 {
		return core.StepResult{State: state}
	}
	st.Segments = append([]Point(nil), st.Segments...)

	var delta int
	st.MoveAccMs += core.SanitizeDelta(deltaMs, g.cfg.MaxFrameMs)
	for st.MoveAccMs >= g.cfg.MoveIntervalMs {
		st.MoveAccMs -= g.cfg.MoveIntervalMs
		ate, dead := g.move(&st, rng)
		if ate {
			delta++
		}
		if dead {
			return core.StepResult{State: st, ScoreDelta: delta, Terminal: true}
		}
	}
	return core.StepResult{State: st, ScoreDelta: delta}
}

// move advances the snake one cell. dead reports a wall or body hit, or a
// board left without a free cell for food.
func (g *Game) move(st *State, rng core.RNG) (ate, dead bool) {
	st.Direction = st.Queued
	next := st.Head().Add(st.Direction)

	if next.X < 0 || next.X >= g.cfg.Cols || next.Y < 0 || next.Y >= g.cfg.Rows {
		return false, true
	}
	// The tail still occupies its cell during the move
	if st.Occupies(next) {
		return false, true
	}

	st.Segments = append([]Point{next}, st.Segments...)
	if next != st.Food {
		st.Segments = st.Segments[:len(st.Segments)-1]
		return false, false
	}

	st.Eaten++
	food, ok := g.spawnFood(st.Segments, rng)
	if !ok {
		return true, true
	}
	st.Food = food
	return true, false
}

// spawnFood picks a uniformly random cell not covered by the snake.
// Returns false when the board is full.
func (g *Game) spawnFood(segments []Point, rng core.RNG) (Point, bool) {
	occupied := make(map[Point]bool, len(segments))
	for _, seg := range segments {
		occupied[seg] = true
	}

	var emptyCells []Point
	for y := range g.cfg.Rows {
		for x := range g.cfg.Cols {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		return Point{X: -1, Y: -1}, false
	}
	return emptyCells[rng.Intn(len(emptyCells))], true
}

// grid returns the cell size and the offset that centres the grid on the surface.
func (g *Game) grid(dst core.Surface) (cell, offX, offY float64) {
	w, h := dst.Size()
	cell = math.Max(1, math.Floor(math.Min(w/float64(g.cfg.Cols), h/float64(g.cfg.Rows))))
	offX = math.Floor((w - cell*float64(g.cfg.Cols)) / 2)
	offY = math.Floor((h - cell*float64(g.cfg.Rows)) / 2)
	return cell, offX, offY
}

// Render draws the board, the food and the snake.
func (g *Game) Render(state core.GameState, dst core.Surface) {
	st, ok := state.(State)
	if !ok {
		return
	}
	dst.Clear()
	cell, offX, offY := g.grid(dst)
	dst.FillRect(offX, offY, cell*float64(g.cfg.Cols), cell*float64(g.cfg.Rows), core.ColorBackdrop)

	if st.Food.X >= 0 {
		fx := offX + float64(st.Food.X)*cell
		fy := offY + float64(st.Food.Y)*cell
		dst.FillCircle(fx+cell/2, fy+cell/2, cell*0.35, core.ColorFood)
	}

	inset := math.Min(2, cell/4)
	for i, seg := range st.Segments {
		col := core.ColorSnakeBody
		if i == 0 {
			col = core.ColorSnakeHead
		}
		x := offX + float64(seg.X)*cell
		y := offY + float64(seg.Y)*cell
		dst.FillRect(x+inset, y+inset, cell-2*inset, cell-2*inset, col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
