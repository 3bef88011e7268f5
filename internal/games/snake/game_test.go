package snake

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
)

func newGame() *Game {
	return New(config.DefaultConfig().Snake)
}

func TestReset(t *testing.T) {
	g := newGame()
	st := g.Reset(core.NewRNG(42)).(State)

	want := []Point{{12, 7}, {11, 7}, {10, 7}}
	if !reflect.DeepEqual(st.Segments, want) {
		t.Errorf("Segments = %v, want %v", st.Segments, want)
	}
	if st.Direction != Right || st.Queued != Right {
		t.Errorf("Direction = %v, Queued = %v, want right", st.Direction, st.Queued)
	}
	if st.Occupies(st.Food) {
		t.Errorf("food %v spawned on the snake", st.Food)
	}
	if st.Food.X < 0 || st.Food.X >= 24 || st.Food.Y < 0 || st.Food.Y >= 14 {
		t.Errorf("food %v outside grid", st.Food)
	}
}

func TestTurnRules(t *testing.T) {
	g := newGame()
	tests := []struct {
		name  string
		turns [][2]int
		want  Point
	}{
		{"reverse current ignored", [][2]int{{-1, 0}}, Right},
		{"up accepted", [][2]int{{0, -1}}, Up},
		{"up then down keeps up", [][2]int{{0, -1}, {0, 1}}, Up},
		{"last valid turn wins", [][2]int{{0, -1}, {0, 1}, {0, 1}}, Up},
		{"up after queued down ignored", [][2]int{{0, 1}, {0, -1}}, Down},
		{"diagonal ignored", [][2]int{{1, 1}}, Right},
		{"zero ignored", [][2]int{{0, 0}}, Right},
		{"long vector ignored", [][2]int{{0, 2}}, Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var state core.GameState = g.Reset(core.NewRNG(1))
			for _, turn := range tt.turns {
				state = g.Apply(state, core.Turn(turn[0], turn[1]))
			}
			if got := state.(State).Queued; got != tt.want {
				t.Errorf("Queued = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpThenDownMovesUp(t *testing.T) {
	g := newGame()
	rng := core.NewRNG(7)
	st := g.Reset(rng).(State)
	st.Food = Point{X: 0, Y: 0}

	var state core.GameState = st
	state = g.Apply(state, core.Turn(0, -1))
	state = g.Apply(state, core.Turn(0, 1))

	// 150 ms in three clamped frames
	for range 3 {
		state = g.Step(state, 50, rng).State
	}
	got := state.(State)
	if got.Head() != (Point{X: 12, Y: 6}) {
		t.Errorf("head = %v, want (12,6)", got.Head())
	}
	if got.Direction != Up {
		t.Errorf("Direction = %v, want up", got.Direction)
	}
}

func TestMoveInterval(t *testing.T) {
	g := newGame()
	rng := core.NewRNG(3)
	st := g.Reset(rng).(State)
	st.Food = Point{X: 0, Y: 0}

	res := g.Step(st, 59, rng)
	res = g.Step(res.State, 59, rng)
	if h := res.State.(State).Head(); h != (Point{X: 12, Y: 7}) {
		t.Fatalf("moved early: head = %v", h)
	}
	res = g.Step(res.State, 32, rng) // 150 ms total
	got := res.State.(State)
	if got.Head() != (Point{X: 13, Y: 7}) {
		t.Errorf("head = %v, want (13,7)", got.Head())
	}
	if got.MoveAccMs != 0 {
		t.Errorf("MoveAccMs = %v, want 0", got.MoveAccMs)
	}
	if len(got.Segments) != 3 {
		t.Errorf("len = %d, want 3", len(got.Segments))
	}
}

func TestFrameDeltaClamped(t *testing.T) {
	g := newGame()
	rng := core.NewRNG(3)
	st := g.Reset(rng).(State)

	got := g.Step(st, 10000, rng).State.(State)
	if got.MoveAccMs != 60 {
		t.Errorf("MoveAccMs = %v, want 60", got.MoveAccMs)
	}
	got = g.Step(got, -5, rng).State.(State)
	if got.MoveAccMs != 60 {
		t.Errorf("negative delta advanced: %v", got.MoveAccMs)
	}
}

func TestEatFood(t *testing.T) {
	g := newGame()
	rng := core.NewRNG(5)
	st := g.Reset(rng).(State)
	st.Food = Point{X: 13, Y: 7}
	st.MoveAccMs = 149

	res := g.Step(st, 1, rng)
	got := res.State.(State)
	if res.ScoreDelta != 1 || got.Eaten != 1 || got.Score() != 1 {
		t.Errorf("ScoreDelta = %d, Eaten = %d", res.ScoreDelta, got.Eaten)
	}
	if len(got.Segments) != 4 {
		t.Errorf("len = %d, want 4", len(got.Segments))
	}
	if got.Occupies(got.Food) {
		t.Errorf("food respawned on snake at %v", got.Food)
	}
	if res.Terminal {
		t.Error("eating should not be terminal")
	}
	assertUnique(t, got.Segments)
}

func TestWallCollision(t *testing.T) {
	g := newGame()
	rng := core.NewRNG(5)
	st := State{
		Segments:  []Point{{23, 3}, {22, 3}, {21, 3}},
		Direction: Right,
		Queued:    Right,
		Food:      Point{X: 0, Y: 0},
		MoveAccMs: 149,
	}
	if res := g.Step(st, 1, rng); !res.Terminal {
		t.Error("expected wall collision")
	}

	st.Segments = []Point{{5, 0}, {5, 1}, {5, 2}}
	st.Direction, st.Queued = Up, Up
	if res := g.Step(st, 1, rng); !res.Terminal {
		t.Error("expected top wall collision")
	}
}

func TestSelfCollisionIncludesTail(t *testing.T) {
	g := newGame()
	rng := core.NewRNG(5)
	// A 2x2 loop: moving left from (6,5) enters the tail cell (5,5)
	st := State{
		Segments:  []Point{{6, 5}, {6, 6}, {5, 6}, {5, 5}},
		Direction: Up,
		Queued:    Left,
		Food:      Point{X: 0, Y: 0},
		MoveAccMs: 149,
	}
	if res := g.Step(st, 1, rng); !res.Terminal {
		t.Error("expected collision with the tail cell")
	}
}

func TestFullBoardIsTerminal(t *testing.T) {
	cfg := config.DefaultConfig().Snake
	cfg.Cols, cfg.Rows = 3, 1
	g := New(cfg)
	rng := core.NewRNG(5)
	st := State{
		Segments:  []Point{{1, 0}, {0, 0}},
		Direction: Right,
		Queued:    Right,
		Food:      Point{X: 2, Y: 0},
		MoveAccMs: 149,
	}
	res := g.Step(st, 1, rng)
	if !res.Terminal || res.ScoreDelta != 1 {
		t.Errorf("Terminal = %v, ScoreDelta = %d, want true, 1", res.Terminal, res.ScoreDelta)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := newGame()
	rng := core.NewRNG(9)
	st := g.Reset(rng).(State)
	before := append([]Point(nil), st.Segments...)

	g.Step(st, 60, rng)
	g.Step(st, 60, rng)
	g.Step(st, 60, rng)
	if !reflect.DeepEqual(st.Segments, before) {
		t.Errorf("input segments mutated: %v -> %v", before, st.Segments)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() State {
		g := newGame()
		rng := core.NewRNG(12345)
		var state core.GameState = g.Reset(rng)
		for i := range 400 {
			switch i {
			case 20:
				state = g.Apply(state, core.Turn(0, 1))
			case 40:
				state = g.Apply(state, core.Turn(-1, 0))
			case 90:
				state = g.Apply(state, core.Turn(0, -1))
			}
			res := g.Step(state, 16, rng)
			state = res.State
			assertUnique(t, state.(State).Segments)
			if res.Terminal {
				break
			}
		}
		return state.(State)
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newGame()
	st := g.Reset(core.NewRNG(1)).(State)
	canvas := core.NewCanvas(640, 360, 64, 36)

	g.Render(st, canvas)
	// Grid cell 25 units, offset (20, 5): head (12,7) covers 322..343 x 182..203
	if c := canvas.GetCell(32, 18); c.Color != core.ColorSnakeHead {
		t.Errorf("head cell = %+v, want snake head colour", c)
	}
	if c := canvas.GetCell(30, 18); c.Color != core.ColorSnakeBody {
		t.Errorf("body cell = %+v, want snake body colour", c)
	}
}

func TestForeignStateUnchanged(t *testing.T) {
	g := newGame()
	var other core.GameState = fakeState{}
	if got := g.Apply(other, core.Turn(0, 1)); got != other {
		t.Error("Apply changed a foreign state")
	}
	if res := g.Step(other, 16, core.NewRNG(1)); res.State != other || res.Terminal {
		t.Error("Step changed a foreign state")
	}
}

type fakeState struct{}

func (fakeState) Mode() core.Mode { return core.ModeClick }
func (fakeState) Score() int      { return 0 }

func assertUnique(t *testing.T, segments []Point) {
	t.Helper()
	seen := make(map[Point]bool, len(segments))
	for _, s := range segments {
		if seen[s] {
			t.Fatalf("duplicate segment %v in %v", s, segments)
		}
		seen[s] = true
	}
}
