package config

import (
	_ "embed"
)

//go:embed defaults/minigames.yaml
var defaultMinigamesYAML []byte

// DefaultConfig returns the built-in minigame configuration.
func DefaultConfig() Config {
	return Config{
		Surface: SurfaceConfig{
			Width:  640,
			Height: 360,
		},
		Click: ClickConfig{
			Session: SessionConfig{DurationSeconds: 15, RewardMultiplier: 1},
		},
		Target: TargetConfig{
			Session: SessionConfig{DurationSeconds: 20, RewardMultiplier: 2},
			Radius:  18,
			Margin:  8,
		},
		Catch: CatchConfig{
			Session:         SessionConfig{DurationSeconds: 20, RewardMultiplier: 2},
			PaddleWidth:     56,
			PaddleHeight:    14,
			PaddleOffset:    24,
			PaddleSpeed:     0.28,
			SpawnIntervalMs: 520,
			CoinRadius:      8,
			CoinMargin:      12,
			MinFallFactor:   0.07,
			MaxFallFactor:   0.12,
			DiscardMargin:   10,
			MaxFrameMs:      50,
		},
		Flappy: FlappyConfig{
			Session:          SessionConfig{DurationSeconds: 60, RewardMultiplier: 2},
			BirdXFactor:      0.25,
			StartYFactor:     0.45,
			BirdMinRadius:    12,
			BirdRadiusFactor: 0.02,
			PipeMinWidth:     48,
			PipeWidthFactor:  0.07,
			GapMin:           160,
			GapFactor:        0.3,
			GapMargin:        70,
			Gravity:          1500,
			FlapVelocity:     -550,
			MaxFallSpeed:     620,
			PipeSpeed:        210,
			SpawnIntervalMs:  1300,
			MaxFrameMs:       50,
		},
		Snake: SnakeConfig{
			Session:        SessionConfig{DurationSeconds: 60, RewardMultiplier: 2},
			Cols:           24,
			Rows:           14,
			StartLength:    3,
			MoveIntervalMs: 150,
			MaxFrameMs:     60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMinigamesYAML
}
