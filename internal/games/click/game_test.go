package click

import (
	"testing"

	"github.com/vovakirdan/pet-arcade/internal/core"
)

func TestTwelveTaps(t *testing.T) {
	g := New()
	rng := core.NewRNG(1)
	state := g.Reset(rng)
	for i := range 12 {
		if i%2 == 0 {
			state = g.Apply(state, core.GenericTap())
		} else {
			state = g.Apply(state, core.Tap(10, 10))
		}
		state = g.Step(state, 16, rng).State
	}
	if state.Score() != 12 {
		t.Errorf("Score = %d, want 12", state.Score())
	}
}

func TestIgnoresOtherCommands(t *testing.T) {
	g := New()
	state := g.Reset(core.NewRNG(1))
	for _, cmd := range []core.Command{core.Flap(), core.Turn(0, 1), core.Move(1, true), {}} {
		state = g.Apply(state, cmd)
	}
	if state.Score() != 0 {
		t.Errorf("Score = %d, want 0", state.Score())
	}
}
