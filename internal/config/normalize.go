package config

import "github.com/vovakirdan/pet-arcade/internal/core"

// Normalize replaces missing, non-finite or out-of-range values with their defaults.
// It returns the corrected config and the yaml paths of every replaced field.
// A partial config file therefore only needs the values it changes.
func Normalize(cfg Config) (Config, []string) {
	def := DefaultConfig()
	n := normalizer{}

	n.positive("surface.width", &cfg.Surface.Width, def.Surface.Width)
	n.positive("surface.height", &cfg.Surface.Height, def.Surface.Height)

	n.session("click", &cfg.Click.Session, def.Click.Session)

	n.session("target", &cfg.Target.Session, def.Target.Session)
	n.positive("target.radius", &cfg.Target.Radius, def.Target.Radius)
	n.nonNegative("target.margin", &cfg.Target.Margin, def.Target.Margin)

	c, dc := &cfg.Catch, def.Catch
	n.session("catch", &c.Session, dc.Session)
	n.positive("catch.paddle_width", &c.PaddleWidth, dc.PaddleWidth)
	n.positive("catch.paddle_height", &c.PaddleHeight, dc.PaddleHeight)
	n.positive("catch.paddle_offset", &c.PaddleOffset, dc.PaddleOffset)
	n.positive("catch.paddle_speed", &c.PaddleSpeed, dc.PaddleSpeed)
	n.positive("catch.spawn_interval_ms", &c.SpawnIntervalMs, dc.SpawnIntervalMs)
	n.positive("catch.coin_radius", &c.CoinRadius, dc.CoinRadius)
	n.nonNegative("catch.coin_margin", &c.CoinMargin, dc.CoinMargin)
	n.positive("catch.min_fall_factor", &c.MinFallFactor, dc.MinFallFactor)
	n.positive("catch.max_fall_factor", &c.MaxFallFactor, dc.MaxFallFactor)
	if c.MaxFallFactor < c.MinFallFactor {
		c.MinFallFactor, c.MaxFallFactor = dc.MinFallFactor, dc.MaxFallFactor
		n.fixed = append(n.fixed, "catch.max_fall_factor")
	}
	n.nonNegative("catch.discard_margin", &c.DiscardMargin, dc.DiscardMargin)
	n.positive("catch.max_frame_ms", &c.MaxFrameMs, dc.MaxFrameMs)

	f, df := &cfg.Flappy, def.Flappy
	n.session("flappy", &f.Session, df.Session)
	n.positive("flappy.bird_x_factor", &f.BirdXFactor, df.BirdXFactor)
	n.positive("flappy.start_y_factor", &f.StartYFactor, df.StartYFactor)
	n.positive("flappy.bird_min_radius", &f.BirdMinRadius, df.BirdMinRadius)
	n.nonNegative("flappy.bird_radius_factor", &f.BirdRadiusFactor, df.BirdRadiusFactor)
	n.positive("flappy.pipe_min_width", &f.PipeMinWidth, df.PipeMinWidth)
	n.nonNegative("flappy.pipe_width_factor", &f.PipeWidthFactor, df.PipeWidthFactor)
	n.positive("flappy.gap_min", &f.GapMin, df.GapMin)
	n.nonNegative("flappy.gap_factor", &f.GapFactor, df.GapFactor)
	n.nonNegative("flappy.gap_margin", &f.GapMargin, df.GapMargin)
	n.positive("flappy.gravity", &f.Gravity, df.Gravity)
	if !core.Finite(f.FlapVelocity) || f.FlapVelocity >= 0 {
		f.FlapVelocity = df.FlapVelocity
		n.fixed = append(n.fixed, "flappy.flap_velocity")
	}
	n.positive("flappy.max_fall_speed", &f.MaxFallSpeed, df.MaxFallSpeed)
	n.positive("flappy.pipe_speed", &f.PipeSpeed, df.PipeSpeed)
	n.positive("flappy.spawn_interval_ms", &f.SpawnIntervalMs, df.SpawnIntervalMs)
	n.positive("flappy.max_frame_ms", &f.MaxFrameMs, df.MaxFrameMs)

	s, ds := &cfg.Snake, def.Snake
	n.session("snake", &s.Session, ds.Session)
	n.positiveInt("snake.cols", &s.Cols, ds.Cols)
	n.positiveInt("snake.rows", &s.Rows, ds.Rows)
	n.positiveInt("snake.start_length", &s.StartLength, ds.StartLength)
	if s.StartLength > s.Cols/2 {
		s.StartLength = max(1, s.Cols/2)
		n.fixed = append(n.fixed, "snake.start_length")
	}
	n.positive("snake.move_interval_ms", &s.MoveIntervalMs, ds.MoveIntervalMs)
	n.positive("snake.max_frame_ms", &s.MaxFrameMs, ds.MaxFrameMs)

	return cfg, n.fixed
}

// normalizer collects the names of corrected fields.
type normalizer struct {
	fixed []string
}

func (n *normalizer) session(prefix string, s *SessionConfig, def SessionConfig) {
	// Whole seconds only; a countdown shorter than a second is meaningless
	if !core.Finite(s.DurationSeconds) || s.DurationSeconds < 1 {
		s.DurationSeconds = def.DurationSeconds
		n.fixed = append(n.fixed, prefix+".session.duration_seconds")
	}
	n.positive(prefix+".session.reward_multiplier", &s.RewardMultiplier, def.RewardMultiplier)
}

func (n *normalizer) positive(name string, v *float64, def float64) {
	if !core.Finite(*v) || *v <= 0 {
		*v = def
		n.fixed = append(n.fixed, name)
	}
}

func (n *normalizer) nonNegative(name string, v *float64, def float64) {
	if !core.Finite(*v) || *v < 0 {
		*v = def
		n.fixed = append(n.fixed, name)
	}
}

func (n *normalizer) positiveInt(name string, v *int, def int) {
	if *v <= 0 {
		*v = def
		n.fixed = append(n.fixed, name)
	}
}
