package strategy

import (
	"math/rand/v2"
	"time"

	"github.com/amitger07/yodle-juggle-fest/types"
)

// Random draws fallback circuits uniformly at random, with replacement.
type Random struct {
	rng *rand.Rand
}

var _ types.FallbackStrategy = (*Random)(nil)

// NewRandom creates a random strategy from a seed.
//
// Parameters:
//   - seed: Source seed; 0 seeds from the wall clock
//
// Returns:
//   - *Random: Strategy whose draws are reproducible for a non-zero seed
//
// Example:
//
//	m, _ := jugglefest.NewMatcher(circuits, jugglers, jugglefest.WithFallback(strategy.NewRandom(42)))
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return NewRandomFrom(rand.New(rand.NewPCG(uint64(seed), uint64(seed)))) //nolint:gosec // not security sensitive
}

// NewRandomFrom creates a random strategy drawing from rng.
func NewRandomFrom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Next returns a uniformly random index in [0, circuits).
func (r *Random) Next(circuits int) int {
	return r.rng.IntN(circuits)
}
