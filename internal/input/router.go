// Package input turns raw pointer and keyboard events into game commands
// for the running session.
package input

import (
	"strings"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
)

// Target receives commands. It is satisfied by *session.Controller.
type Target interface {
	Mode() core.Mode
	Running() bool
	Apply(cmd core.Command)
}

// PointerDown is a press at (X, Y) in a view of ViewW×ViewH.
type PointerDown struct {
	X, Y         float64
	ViewW, ViewH float64
}

// KeyDown is a key press. Repeat marks auto-repeat events.
type KeyDown struct {
	Key    string
	Repeat bool
}

// KeyUp is a key release.
type KeyUp struct {
	Key string
}

type keyClass int

const (
	keyNone keyClass = iota
	keyLeft
	keyRight
	keyUp
	keyDown
	keyFlap
)

// classify maps a key name to its class. Accepts Bubble Tea key strings
// as well as DOM-style names.
func classify(key string) keyClass {
	switch strings.ToLower(key) {
	case "left", "arrowleft", "a":
		return keyLeft
	case "right", "arrowright", "d":
		return keyRight
	case "up", "arrowup", "w":
		return keyUp
	case "down", "arrowdown", "s":
		return keyDown
	case " ", "space":
		return keyFlap
	default:
		return keyNone
	}
}

// Router forwards events to the target as commands of its active mode.
type Router struct {
	target   Target
	surfaceW float64
	surfaceH float64
	held     map[keyClass]bool
}

// NewRouter creates a router that scales pointer positions onto the surface.
func NewRouter(target Target, surface config.SurfaceConfig) *Router {
	return &Router{
		target:   target,
		surfaceW: surface.Width,
		surfaceH: surface.Height,
		held:     make(map[keyClass]bool),
	}
}

// Reset forgets held keys, e.g. when a new session starts.
func (r *Router) Reset() {
	clear(r.held)
}

func (r *Router) active() (core.Mode, bool) {
	if !r.target.Running() {
		return core.ModeNone, false
	}
	return r.target.Mode(), true
}

// PointerDown routes a press.
func (r *Router) PointerDown(ev PointerDown) {
	mode, ok := r.active()
	if !ok {
		return
	}
	switch mode {
	case core.ModeClick:
		r.target.Apply(core.GenericTap())
	case core.ModeTarget:
		x, y, ok := r.normalize(ev)
		if !ok {
			return
		}
		r.target.Apply(core.Tap(x, y))
	case core.ModeFlappy:
		r.target.Apply(core.Flap())
	}
}

// normalize converts view coordinates into surface units.
// Presses outside the view are rejected.
func (r *Router) normalize(ev PointerDown) (float64, float64, bool) {
	if !core.Finite(ev.X) || !core.Finite(ev.Y) {
		return 0, 0, false
	}
	x, y := ev.X, ev.Y
	if core.Finite(ev.ViewW) && ev.ViewW > 0 {
		x = ev.X / ev.ViewW * r.surfaceW
	}
	if core.Finite(ev.ViewH) && ev.ViewH > 0 {
		y = ev.Y / ev.ViewH * r.surfaceH
	}
	if x < 0 || x > r.surfaceW || y < 0 || y > r.surfaceH {
		return 0, 0, false
	}
	return x, y, true
}

// KeyDown routes a key press.
func (r *Router) KeyDown(ev KeyDown) {
	class := classify(ev.Key)
	if class == keyNone {
		return
	}
	wasHeld := r.held[class]
	r.held[class] = true

	mode, ok := r.active()
	if !ok {
		return
	}
	switch mode {
	case core.ModeCatch:
		if ev.Repeat || wasHeld {
			return
		}
		switch class {
		case keyLeft:
			r.target.Apply(core.Move(-1, true))
		case keyRight:
			r.target.Apply(core.Move(1, true))
		}
	case core.ModeFlappy:
		// Edge-triggered: only the first press of a held key flaps
		if ev.Repeat || wasHeld {
			return
		}
		if class == keyFlap || class == keyUp {
			r.target.Apply(core.Flap())
		}
	case core.ModeSnake:
		switch class {
		case keyUp:
			r.target.Apply(core.Turn(0, -1))
		case keyDown:
			r.target.Apply(core.Turn(0, 1))
		case keyLeft:
			r.target.Apply(core.Turn(-1, 0))
		case keyRight:
			r.target.Apply(core.Turn(1, 0))
		}
	}
}

// KeyUp routes a key release.
func (r *Router) KeyUp(ev KeyUp) {
	class := classify(ev.Key)
	if class == keyNone {
		return
	}
	delete(r.held, class)

	mode, ok := r.active()
	if !ok || mode != core.ModeCatch {
		return
	}
	switch class {
	case keyLeft:
		r.target.Apply(core.Move(-1, false))
	case keyRight:
		r.target.Apply(core.Move(1, false))
	}
}
