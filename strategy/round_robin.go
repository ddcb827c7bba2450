package strategy

import "github.com/amitger07/yodle-juggle-fest/types"

// RoundRobin offers circuits in index order, wrapping around.
//
// The position carries over between jugglers, so consecutive fallbacks
// start where the previous one stopped.
type RoundRobin struct {
	next int
}

var _ types.FallbackStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy starting at circuit 0.
//
// The strategy needs no seed and produces identical assignments on every
// run over the same input.
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
//
// Example:
//
//	m, _ := jugglefest.NewMatcher(circuits, jugglers, jugglefest.WithFallback(strategy.NewRoundRobin()))
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Next returns the next circuit index in cyclic order.
func (rr *RoundRobin) Next(circuits int) int {
	idx := rr.next % circuits
	rr.next = idx + 1

	return idx
}
