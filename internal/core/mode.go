// Package core provides fundamental types and utilities for the minigame engine.
// It has no dependency on the terminal host so game logic stays pure and testable.
package core

// Mode identifies one of the minigames.
type Mode string

// Minigame modes. ModeNone means no minigame is open.
const (
	ModeNone   Mode = ""
	ModeClick  Mode = "click"
	ModeTarget Mode = "target"
	ModeCatch  Mode = "catch"
	ModeFlappy Mode = "flappy"
	ModeSnake  Mode = "snake"
)

// Modes lists every playable mode in menu order.
var Modes = []Mode{ModeClick, ModeTarget, ModeCatch, ModeFlappy, ModeSnake}

// ParseMode converts a string to a Mode.
// Returns ModeNone and false for unknown identifiers.
func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes {
		if string(m) == s {
			return m, true
		}
	}
	return ModeNone, false
}

// String returns the mode identifier, or "none".
func (m Mode) String() string {
	if m == ModeNone {
		return "none"
	}
	return string(m)
}

// Reason describes why a session ended.
type Reason string

const (
	ReasonTimeExpired Reason = "time-expired"
	ReasonCollision   Reason = "collision"
)
