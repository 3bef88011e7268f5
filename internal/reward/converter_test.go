package reward

import (
	"math"
	"testing"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
)

func TestConvert(t *testing.T) {
	c := NewConverter(config.DefaultConfig())
	tests := []struct {
		mode  core.Mode
		score int
		want  int
	}{
		{core.ModeClick, 12, 12},
		{core.ModeTarget, 5, 10},
		{core.ModeCatch, 7, 14},
		{core.ModeFlappy, 3, 6},
		{core.ModeSnake, 9, 18},
		{core.ModeSnake, 0, 0},
		{core.ModeClick, -4, 0},
		{core.ModeNone, 10, 0},
	}
	for _, tt := range tests {
		if got := c.Convert(tt.mode, tt.score); got != tt.want {
			t.Errorf("Convert(%s, %d) = %d, want %d", tt.mode, tt.score, got, tt.want)
		}
	}
}

func TestFractionalMultiplierFloors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Catch.Session.RewardMultiplier = 1.5
	c := NewConverter(cfg)
	if got := c.Convert(core.ModeCatch, 5); got != 7 {
		t.Errorf("Convert = %d, want 7", got)
	}
}

func TestBadMultiplierFallsBack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Flappy.Session.RewardMultiplier = math.NaN()
	cfg.Snake.Session.RewardMultiplier = -3
	c := NewConverter(cfg)
	if c.Multiplier(core.ModeFlappy) != 2 || c.Multiplier(core.ModeSnake) != 2 {
		t.Errorf("multipliers = %v, %v", c.Multiplier(core.ModeFlappy), c.Multiplier(core.ModeSnake))
	}
}
