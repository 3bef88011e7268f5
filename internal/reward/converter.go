// Package reward converts minigame scores into currency.
package reward

import (
	"math"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
)

// Converter maps a final score to a reward using per-mode multipliers.
type Converter struct {
	multipliers map[core.Mode]float64
}

// NewConverter reads multipliers from the configuration.
// Non-finite or negative multipliers fall back to the built-in default of the mode.
func NewConverter(cfg config.Config) *Converter {
	def := config.DefaultConfig()
	c := &Converter{multipliers: make(map[core.Mode]float64, len(core.Modes))}
	for _, m := range core.Modes {
		mult := cfg.Multiplier(m)
		if !core.Finite(mult) || mult < 0 {
			mult = def.Multiplier(m)
		}
		c.multipliers[m] = mult
	}
	return c
}

// Multiplier returns the multiplier of a mode, 0 for unknown modes.
func (c *Converter) Multiplier(mode core.Mode) float64 {
	return c.multipliers[mode]
}

// Convert returns floor(max(0, score) × multiplier). Never negative.
func (c *Converter) Convert(mode core.Mode, score int) int {
	if score <= 0 {
		return 0
	}
	return int(math.Floor(float64(score) * c.multipliers[mode]))
}
