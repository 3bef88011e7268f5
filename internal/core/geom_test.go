package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	bird := NewRect(80, 200, 34, 24)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"pipe overlapping the bird", NewRect(100, 0, 60, 210), true},
		{"pipe ahead of the bird", NewRect(130, 0, 60, 210), false},
		{"pipe cap above the bird", NewRect(80, 0, 60, 150), false},
		{"shared edge", NewRect(114, 200, 60, 10), true},
		{"bird inside a wide pipe", NewRect(0, 0, 400, 600), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := bird.Intersects(tc.other); got != tc.want {
				t.Errorf("bird.Intersects(%+v) = %v, want %v", tc.other, got, tc.want)
			}
			if got := tc.other.Intersects(bird); got != tc.want {
				t.Errorf("Intersects is not symmetric for %+v", tc.other)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	basket := NewRect(160, 540, 80, 20)

	tests := []struct {
		x, y float64
		want bool
	}{
		{200, 550, true},
		{160, 540, true},
		{240, 560, true},
		{159.5, 550, false},
		{240.5, 550, false},
		{200, 539, false},
		{200, 561, false},
	}

	for _, tc := range tests {
		if got := basket.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCircleContains(t *testing.T) {
	c := Circle{X: 100, Y: 100, Radius: 18}

	if !c.Contains(100, 100) {
		t.Error("center should be inside")
	}
	if !c.Contains(118, 100) {
		t.Error("point on the boundary should be inside")
	}
	if c.Contains(118.01, 100) {
		t.Error("point just outside the boundary should be outside")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestSanitizeDelta(t *testing.T) {
	tests := []struct {
		name       string
		delta, max float64
		expected   float64
	}{
		{"normal", 16, 50, 16},
		{"clamped", 120, 50, 50},
		{"no upper clamp", 120, 0, 120},
		{"negative", -5, 50, 0},
		{"nan", math.NaN(), 50, 0},
		{"inf", math.Inf(1), 50, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeDelta(tc.delta, tc.max); got != tc.expected {
				t.Errorf("SanitizeDelta(%v, %v) = %v, expected %v", tc.delta, tc.max, got, tc.expected)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, ok := ParseMode(string(m))
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, ok)
		}
	}
	if _, ok := ParseMode("breakout"); ok {
		t.Error("ParseMode should reject unknown modes")
	}
	if ModeNone.String() != "none" {
		t.Errorf("ModeNone.String() = %q", ModeNone.String())
	}
}
