package types

// FallbackStrategy picks circuits for a juggler whose preference list is exhausted.
//
// Strategies implement different probing orders:
//   - Random: uniform draws with replacement from a seedable source
//   - RoundRobin: deterministic cyclic probing
//   - Custom: user-defined pickers
//
// The matcher calls Next repeatedly until the returned circuit either has
// spare capacity or a minimum score below the juggler's score there. The
// matcher guarantees that at least one such circuit exists before it starts
// asking, so a strategy that eventually visits every index terminates.
type FallbackStrategy interface {
	// Next returns the index of the next circuit to try.
	//
	// Parameters:
	//   - circuits: Number of circuits (always > 0)
	//
	// Returns:
	//   - int: Index in [0, circuits)
	Next(circuits int) int
}
