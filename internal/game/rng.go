package game

import (
	"math/rand/v2"
	"time"
)

// RNG wraps math/rand/v2 so a game can be replayed from its seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a PCG-backed RNG. A zero seed is replaced by the current time.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a value in [0, n). n must be positive.
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Float64 returns a value in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}
