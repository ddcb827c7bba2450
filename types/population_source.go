package types

import "context"

// PopulationSource provides the circuits and jugglers to match.
//
// Implementations:
//   - File: parses the jugglefest text format from disk
//   - Static: fixed in-memory population for testing
//
// Every call returns freshly constructed entities when the backend allows it,
// since matching mutates circuits and jugglers in place.
type PopulationSource interface {
	// LoadPopulation returns the circuits and jugglers to match.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//
	// Returns:
	//   - *Population: Loaded population
	//   - error: Read or validation error (nil on success)
	LoadPopulation(ctx context.Context) (*Population, error)
}
