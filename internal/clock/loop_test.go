package clock

import (
	"math"
	"testing"
	"time"
)

func TestEveryFiresPerInterval(t *testing.T) {
	l := NewLoop()
	ticks := 0
	l.Every(time.Second, func() { ticks++ })

	l.Advance(999)
	if ticks != 0 {
		t.Fatalf("ticks = %d before deadline", ticks)
	}
	l.Advance(1)
	if ticks != 1 {
		t.Fatalf("ticks = %d, want 1", ticks)
	}
	// A long advance delivers every missed tick
	l.Advance(3000)
	if ticks != 4 {
		t.Fatalf("ticks = %d, want 4", ticks)
	}
}

func TestRequestFrameIsOneShot(t *testing.T) {
	l := NewLoop()
	var deltas []float64
	var next func(float64)
	next = func(d float64) {
		deltas = append(deltas, d)
		if len(deltas) < 3 {
			l.RequestFrame(next)
		}
	}
	l.RequestFrame(next)

	for i := 0; i < 5; i++ {
		l.Advance(16)
	}
	if len(deltas) != 3 {
		t.Fatalf("frames = %d, want 3", len(deltas))
	}
	for i, d := range deltas {
		if d != 16 {
			t.Errorf("delta[%d] = %v, want 16", i, d)
		}
	}
}

func TestTimersBeforeFrames(t *testing.T) {
	l := NewLoop()
	var order []string
	l.Every(10*time.Millisecond, func() { order = append(order, "tick") })
	l.RequestFrame(func(float64) { order = append(order, "frame") })

	l.Advance(10)
	if len(order) != 2 || order[0] != "tick" || order[1] != "frame" {
		t.Errorf("order = %v, want [tick frame]", order)
	}
}

func TestCancel(t *testing.T) {
	l := NewLoop()
	ticks, frames := 0, 0
	h := l.Every(10*time.Millisecond, func() { ticks++ })
	f := l.RequestFrame(func(float64) { frames++ })

	h.Cancel()
	f.Cancel()
	l.Advance(100)
	if ticks != 0 || frames != 0 {
		t.Errorf("cancelled callbacks ran: ticks=%d frames=%d", ticks, frames)
	}
	if timers, pending := l.Pending(); timers != 0 || pending != 0 {
		t.Errorf("Pending = %d, %d", timers, pending)
	}
}

func TestCancelInsideCallback(t *testing.T) {
	l := NewLoop()
	ticks := 0
	var other Handle
	l.Every(10*time.Millisecond, func() {
		ticks++
		other.Cancel()
	})
	other = l.Every(10*time.Millisecond, func() { ticks += 100 })

	l.Advance(50)
	if ticks != 5 {
		t.Errorf("ticks = %d, want 5", ticks)
	}
}

func TestHiddenLoopDeliversNothing(t *testing.T) {
	l := NewLoop()
	ticks, frames := 0, 0
	l.Every(100*time.Millisecond, func() { ticks++ })
	l.RequestFrame(func(float64) { frames++ })

	l.SetVisible(false)
	l.Advance(1000)
	if ticks != 0 || frames != 0 || l.NowMs() != 0 {
		t.Fatalf("hidden loop delivered: ticks=%d frames=%d now=%v", ticks, frames, l.NowMs())
	}

	l.SetVisible(true)
	l.Advance(100)
	if ticks != 1 || frames != 1 {
		t.Errorf("after resume: ticks=%d frames=%d, want 1, 1", ticks, frames)
	}
}

func TestAdvanceIgnoresBadDeltas(t *testing.T) {
	l := NewLoop()
	for _, d := range []float64{math.NaN(), math.Inf(1), -5} {
		l.Advance(d)
	}
	if l.NowMs() != 0 {
		t.Errorf("NowMs = %v, want 0", l.NowMs())
	}
}
