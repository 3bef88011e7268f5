package input

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
)

type fakeTarget struct {
	mode    core.Mode
	running bool
	cmds    []core.Command
}

func (f *fakeTarget) Mode() core.Mode        { return f.mode }
func (f *fakeTarget) Running() bool          { return f.running }
func (f *fakeTarget) Apply(cmd core.Command) { f.cmds = append(f.cmds, cmd) }

func newRouter(mode core.Mode) (*Router, *fakeTarget) {
	target := &fakeTarget{mode: mode, running: true}
	return NewRouter(target, config.DefaultConfig().Surface), target
}

func TestPointerByMode(t *testing.T) {
	tests := []struct {
		mode core.Mode
		want []core.Command
	}{
		{core.ModeClick, []core.Command{core.GenericTap()}},
		{core.ModeTarget, []core.Command{core.Tap(320, 90)}},
		{core.ModeFlappy, []core.Command{core.Flap()}},
		{core.ModeCatch, nil},
		{core.ModeSnake, nil},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r, target := newRouter(tt.mode)
			// Half-size view: (160, 45) maps to (320, 90)
			r.PointerDown(PointerDown{X: 160, Y: 45, ViewW: 320, ViewH: 180})
			if !reflect.DeepEqual(target.cmds, tt.want) {
				t.Errorf("cmds = %+v, want %+v", target.cmds, tt.want)
			}
		})
	}
}

func TestPointerOutsideViewIgnored(t *testing.T) {
	r, target := newRouter(core.ModeTarget)
	r.PointerDown(PointerDown{X: -1, Y: 10, ViewW: 640, ViewH: 360})
	r.PointerDown(PointerDown{X: 10, Y: 400, ViewW: 640, ViewH: 360})
	r.PointerDown(PointerDown{X: math.NaN(), Y: 10, ViewW: 640, ViewH: 360})
	if len(target.cmds) != 0 {
		t.Errorf("cmds = %+v, want none", target.cmds)
	}
}

func TestNotRunningIgnored(t *testing.T) {
	r, target := newRouter(core.ModeFlappy)
	target.running = false
	r.PointerDown(PointerDown{X: 1, Y: 1, ViewW: 640, ViewH: 360})
	r.KeyDown(KeyDown{Key: " "})
	r.KeyUp(KeyUp{Key: " "})
	if len(target.cmds) != 0 {
		t.Errorf("cmds = %+v, want none", target.cmds)
	}
}

func TestKeysInertForPointerModes(t *testing.T) {
	for _, mode := range []core.Mode{core.ModeClick, core.ModeTarget} {
		r, target := newRouter(mode)
		for _, key := range []string{"left", "right", "up", "down", " ", "a"} {
			r.KeyDown(KeyDown{Key: key})
			r.KeyUp(KeyUp{Key: key})
		}
		if len(target.cmds) != 0 {
			t.Errorf("%s: cmds = %+v, want none", mode, target.cmds)
		}
	}
}

func TestFlapEdgeTriggered(t *testing.T) {
	r, target := newRouter(core.ModeFlappy)
	r.KeyDown(KeyDown{Key: " "})
	r.KeyDown(KeyDown{Key: " ", Repeat: true})
	r.KeyDown(KeyDown{Key: " "}) // still held, no KeyUp yet
	r.KeyUp(KeyUp{Key: " "})
	r.KeyDown(KeyDown{Key: "up"})
	r.KeyDown(KeyDown{Key: "W", Repeat: true})

	want := []core.Command{core.Flap(), core.Flap()}
	if !reflect.DeepEqual(target.cmds, want) {
		t.Errorf("cmds = %+v, want two flaps", target.cmds)
	}
}

func TestCatchHoldAndRelease(t *testing.T) {
	r, target := newRouter(core.ModeCatch)
	r.KeyDown(KeyDown{Key: "left"})
	r.KeyDown(KeyDown{Key: "left", Repeat: true})
	r.KeyUp(KeyUp{Key: "left"})
	r.KeyDown(KeyDown{Key: "d"})
	r.KeyUp(KeyUp{Key: "d"})
	r.KeyDown(KeyDown{Key: "up"})

	want := []core.Command{
		core.Move(-1, true),
		core.Move(-1, false),
		core.Move(1, true),
		core.Move(1, false),
	}
	if !reflect.DeepEqual(target.cmds, want) {
		t.Errorf("cmds = %+v, want %+v", target.cmds, want)
	}
}

func TestSnakeTurns(t *testing.T) {
	r, target := newRouter(core.ModeSnake)
	for _, key := range []string{"up", "s", "ArrowLeft", "d", " "} {
		r.KeyDown(KeyDown{Key: key})
	}
	want := []core.Command{core.Turn(0, -1), core.Turn(0, 1), core.Turn(-1, 0), core.Turn(1, 0)}
	if !reflect.DeepEqual(target.cmds, want) {
		t.Errorf("cmds = %+v, want %+v", target.cmds, want)
	}
}

func TestReset(t *testing.T) {
	r, target := newRouter(core.ModeFlappy)
	r.KeyDown(KeyDown{Key: " "})
	r.Reset()
	r.KeyDown(KeyDown{Key: " "})
	if len(target.cmds) != 2 {
		t.Errorf("cmds = %d, want 2 after Reset", len(target.cmds))
	}
}
