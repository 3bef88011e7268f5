package tui

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapGameKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		running bool
		want    GameAction
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, true, GameActionQuit},
		{"q quits", runeKey("q"), false, GameActionQuit},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, GameActionBack},
		{"enter starts when idle", tea.KeyMsg{Type: tea.KeyEnter}, false, GameActionConfirm},
		{"space starts when idle", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false, GameActionConfirm},
		{"space is game input when running", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, true, GameActionNone},
		{"arrows are game input", tea.KeyMsg{Type: tea.KeyLeft}, true, GameActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapGameKey(tt.msg, tt.running); got != tt.want {
				t.Errorf("MapGameKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("l"), MenuActionLedger},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	h := newHoldTracker(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	repeat, released := h.Press("left", t0)
	if repeat || len(released) != 0 {
		t.Errorf("first press: repeat=%v released=%v", repeat, released)
	}

	// Auto-repeat within the timeout extends the hold
	repeat, _ = h.Press("left", t0.Add(300*time.Millisecond))
	if !repeat {
		t.Error("second press should be a repeat")
	}
	if got := h.Expire(t0.Add(700 * time.Millisecond)); len(got) != 0 {
		t.Errorf("Expire() = %v, hold should have been extended", got)
	}
	if got := h.Expire(t0.Add(800 * time.Millisecond)); !slices.Equal(got, []string{"left"}) {
		t.Errorf("Expire() = %v, want [left]", got)
	}

	// Pressing another key releases the held one
	h.Press("a", t0)
	_, released = h.Press("d", t0.Add(10*time.Millisecond))
	if !slices.Equal(released, []string{"a"}) {
		t.Errorf("released = %v, want [a]", released)
	}

	h.Reset()
	if got := h.Expire(t0.Add(time.Hour)); len(got) != 0 {
		t.Errorf("Expire() after Reset = %v", got)
	}
}
