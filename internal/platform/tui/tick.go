// Package tui provides the Bubble Tea host for the minigames.
// It owns the terminal loop, maps keys and mouse presses to input events,
// and drives the session scheduler from tick messages.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the scheduler of one game model.
type TickMsg struct {
	ID   uint64 // Owner of the tick chain
	Time time.Time
}

var tickChains atomic.Uint64

// nextChainID returns a fresh tick chain identifier.
func nextChainID() uint64 {
	return tickChains.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(id uint64, fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
