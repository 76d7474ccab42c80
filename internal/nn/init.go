package nn

import (
	"math/rand"
)

// NewRand returns a deterministic random source for weight initialization.
func NewRand(seed int64) *rand.Rand {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(seed))
}

// Uniform draws a value from U(-bound, bound).
func Uniform(rng *rand.Rand, bound float64) float64 {
	return (rng.Float64()*2.0 - 1.0) * bound
}
