// Package config provides YAML-based minigame configuration loading and
// environment-driven host settings for the arcade.
package config

import "github.com/vovakirdan/pet-arcade/internal/core"

// Config contains the tuning of every minigame.
type Config struct {
	Surface SurfaceConfig `yaml:"surface"`
	Click   ClickConfig   `yaml:"click"`
	Target  TargetConfig  `yaml:"target"`
	Catch   CatchConfig   `yaml:"catch"`
	Flappy  FlappyConfig  `yaml:"flappy"`
	Snake   SnakeConfig   `yaml:"snake"`
}

// SurfaceConfig defines the logical play surface shared by all minigames.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SessionConfig defines the countdown and reward conversion of one minigame.
type SessionConfig struct {
	DurationSeconds  float64 `yaml:"duration_seconds"`
	RewardMultiplier float64 `yaml:"reward_multiplier"`
}

// ClickConfig contains configuration for Click Challenge.
type ClickConfig struct {
	Session SessionConfig `yaml:"session"`
}

// TargetConfig contains configuration for Target Practice.
type TargetConfig struct {
	Session SessionConfig `yaml:"session"`
	Radius  float64       `yaml:"radius"`
	Margin  float64       `yaml:"margin"`
}

// CatchConfig contains configuration for Coin Catch.
type CatchConfig struct {
	Session         SessionConfig `yaml:"session"`
	PaddleWidth     float64       `yaml:"paddle_width"`
	PaddleHeight    float64       `yaml:"paddle_height"`
	PaddleOffset    float64       `yaml:"paddle_offset"` // Distance from the bottom edge to the paddle top
	PaddleSpeed     float64       `yaml:"paddle_speed"`  // Units per millisecond
	SpawnIntervalMs float64       `yaml:"spawn_interval_ms"`
	CoinRadius      float64       `yaml:"coin_radius"`
	CoinMargin      float64       `yaml:"coin_margin"`
	MinFallFactor   float64       `yaml:"min_fall_factor"` // Fall speed per second as a fraction of surface height
	MaxFallFactor   float64       `yaml:"max_fall_factor"`
	DiscardMargin   float64       `yaml:"discard_margin"`
	MaxFrameMs      float64       `yaml:"max_frame_ms"`
}

// FlappyConfig contains configuration for Flappy Flight.
type FlappyConfig struct {
	Session          SessionConfig `yaml:"session"`
	BirdXFactor      float64       `yaml:"bird_x_factor"`
	StartYFactor     float64       `yaml:"start_y_factor"`
	BirdMinRadius    float64       `yaml:"bird_min_radius"`
	BirdRadiusFactor float64       `yaml:"bird_radius_factor"`
	PipeMinWidth     float64       `yaml:"pipe_min_width"`
	PipeWidthFactor  float64       `yaml:"pipe_width_factor"`
	GapMin           float64       `yaml:"gap_min"`
	GapFactor        float64       `yaml:"gap_factor"`
	GapMargin        float64       `yaml:"gap_margin"`
	Gravity          float64       `yaml:"gravity"`        // Units per second squared
	FlapVelocity     float64       `yaml:"flap_velocity"`  // Negative = up
	MaxFallSpeed     float64       `yaml:"max_fall_speed"` // Terminal velocity
	PipeSpeed        float64       `yaml:"pipe_speed"`
	SpawnIntervalMs  float64       `yaml:"spawn_interval_ms"`
	MaxFrameMs       float64       `yaml:"max_frame_ms"`
}

// SnakeConfig contains configuration for Snake Sprint.
type SnakeConfig struct {
	Session        SessionConfig `yaml:"session"`
	Cols           int           `yaml:"cols"`
	Rows           int           `yaml:"rows"`
	StartLength    int           `yaml:"start_length"`
	MoveIntervalMs float64       `yaml:"move_interval_ms"`
	MaxFrameMs     float64       `yaml:"max_frame_ms"`
}

// SessionFor returns the session settings of a mode.
// Returns false for ModeNone and unknown modes.
func (c Config) SessionFor(mode core.Mode) (SessionConfig, bool) {
	switch mode {
	case core.ModeClick:
		return c.Click.Session, true
	case core.ModeTarget:
		return c.Target.Session, true
	case core.ModeCatch:
		return c.Catch.Session, true
	case core.ModeFlappy:
		return c.Flappy.Session, true
	case core.ModeSnake:
		return c.Snake.Session, true
	default:
		return SessionConfig{}, false
	}
}

// Duration returns the countdown length of a mode in whole seconds.
func (c Config) Duration(mode core.Mode) int {
	s, ok := c.SessionFor(mode)
	if !ok {
		return 0
	}
	return int(s.DurationSeconds)
}

// Multiplier returns the reward multiplier of a mode.
func (c Config) Multiplier(mode core.Mode) float64 {
	s, _ := c.SessionFor(mode)
	return s.RewardMultiplier
}
