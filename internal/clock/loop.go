// Package clock provides the frame and countdown scheduling used by game sessions.
package clock

import (
	"math"
	"time"
)

// Handle cancels a scheduled callback. Cancel is synchronous: once it returns
// the callback is never invoked again.
type Handle interface {
	Cancel()
}

// Scheduler delivers per-frame and fixed-interval callbacks.
type Scheduler interface {
	// RequestFrame schedules fn once for the next frame with the elapsed milliseconds.
	RequestFrame(fn func(deltaMs float64)) Handle
	// Every schedules fn repeatedly until cancelled.
	Every(interval time.Duration, fn func()) Handle
}

type timer struct {
	id         uint64
	intervalMs float64
	deadline   float64
	fn         func()
	cancelled  bool
}

type frame struct {
	requestedAt float64
	fn          func(deltaMs float64)
	cancelled   bool
}

type timerHandle struct {
	loop *Loop
	t    *timer
}

func (h timerHandle) Cancel() {
	h.t.cancelled = true
	h.loop.removeTimer(h.t)
}

type frameHandle struct {
	f *frame
}

func (h frameHandle) Cancel() { h.f.cancelled = true }

// Loop is a cooperative Scheduler driven by its host through Advance.
// Interval callbacks fire first, then pending frame requests.
// A Loop is not safe for concurrent use; the host calls it from one goroutine.
type Loop struct {
	now     float64 // Milliseconds of visible time
	visible bool
	nextID  uint64
	timers  []*timer
	frames  []*frame
}

// NewLoop creates a visible loop at time zero.
func NewLoop() *Loop {
	return &Loop{visible: true}
}

// NowMs returns the amount of visible time delivered so far.
func (l *Loop) NowMs() float64 { return l.now }

// Visible reports whether the loop delivers callbacks.
func (l *Loop) Visible() bool { return l.visible }

// SetVisible suspends or resumes delivery. Time does not pass while hidden.
func (l *Loop) SetVisible(visible bool) { l.visible = visible }

// Pending reports the number of live timers and frame requests.
func (l *Loop) Pending() (timers, frames int) {
	for _, f := range l.frames {
		if !f.cancelled {
			frames++
		}
	}
	return len(l.timers), frames
}

// RequestFrame implements Scheduler.
func (l *Loop) RequestFrame(fn func(deltaMs float64)) Handle {
	f := &frame{requestedAt: l.now, fn: fn}
	l.frames = append(l.frames, f)
	return frameHandle{f: f}
}

// Every implements Scheduler. Intervals under a millisecond are raised to one.
func (l *Loop) Every(interval time.Duration, fn func()) Handle {
	ms := float64(interval) / float64(time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	l.nextID++
	t := &timer{id: l.nextID, intervalMs: ms, deadline: l.now + ms, fn: fn}
	l.timers = append(l.timers, t)
	return timerHandle{loop: l, t: t}
}

// Advance moves visible time forward and delivers the callbacks that became due.
// Hidden loops and non-finite or negative deltas deliver nothing.
func (l *Loop) Advance(deltaMs float64) {
	if !l.visible || math.IsNaN(deltaMs) || math.IsInf(deltaMs, 0) || deltaMs < 0 {
		return
	}
	l.now += deltaMs

	for {
		t := l.nextDue()
		if t == nil {
			break
		}
		t.deadline += t.intervalMs
		t.fn()
	}

	pending := l.frames
	l.frames = nil
	for _, f := range pending {
		if f.cancelled {
			continue
		}
		f.fn(l.now - f.requestedAt)
	}
}

// nextDue returns the live timer with the earliest reached deadline.
func (l *Loop) nextDue() *timer {
	var due *timer
	for _, t := range l.timers {
		if t.cancelled || t.deadline > l.now {
			continue
		}
		if due == nil || t.deadline < due.deadline || (t.deadline == due.deadline && t.id < due.id) {
			due = t
		}
	}
	return due
}

func (l *Loop) removeTimer(t *timer) {
	for i, cur := range l.timers {
		if cur == t {
			l.timers = append(l.timers[:i], l.timers[i+1:]...)
			return
		}
	}
}
