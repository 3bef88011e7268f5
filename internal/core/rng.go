package core

import "math/rand"

// RNG is a source of uniform randoms.
// Simulators draw every random value through it so runs can be replayed from a seed.
type RNG interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64

	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
}

// NewRNG returns a seeded RNG backed by math/rand.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// RandRange returns a uniform value in [min, max).
// Returns min if the range is empty or inverted.
func RandRange(rng RNG, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}
