package tui

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to host actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// GameAction is a host-level action inside a game screen.
// Keys that map to GameActionNone are game input.
type GameAction int

const (
	GameActionNone GameAction = iota
	GameActionQuit
	GameActionBack
	GameActionConfirm
)

// MapGameKey translates a key pressed on the game screen.
// running reports whether a session is live: space and enter are then game input.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg, running bool) GameAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return GameActionQuit
	case "esc":
		return GameActionBack
	case "enter", " ":
		if !running {
			return GameActionConfirm
		}
	}
	return GameActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionLedger
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "l":
		return MenuActionLedger
	}

	return MenuActionNone
}

// holdTimeout is how long a key counts as held after its last press event.
// Terminals report auto-repeat presses but no releases.
const holdTimeout = 550 * time.Millisecond

// holdTracker emulates key releases for hosts that only see presses.
// A terminal repeats one key at a time, so pressing a key releases the others.
type holdTracker struct {
	timeout time.Duration
	until   map[string]time.Time
}

func newHoldTracker(timeout time.Duration) *holdTracker {
	return &holdTracker{timeout: timeout, until: make(map[string]time.Time)}
}

// Press records a press of key at now. repeat is true when the key was
// already held; released lists the keys the press implicitly released.
func (h *holdTracker) Press(key string, now time.Time) (repeat bool, released []string) {
	if deadline, ok := h.until[key]; ok && now.Before(deadline) {
		repeat = true
	}
	for k := range h.until {
		if k != key {
			released = append(released, k)
		}
	}
	slices.Sort(released)
	clear(h.until)
	h.until[key] = now.Add(h.timeout)
	return repeat, released
}

// Expire returns and forgets the keys whose hold ran out by now.
func (h *holdTracker) Expire(now time.Time) []string {
	var expired []string
	for k, deadline := range h.until {
		if !now.Before(deadline) {
			expired = append(expired, k)
		}
	}
	for _, k := range expired {
		delete(h.until, k)
	}
	slices.Sort(expired)
	return expired
}

// Reset forgets all held keys.
func (h *holdTracker) Reset() {
	clear(h.until)
}
