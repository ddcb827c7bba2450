package source

import (
	"context"
	"sync"

	"github.com/amitger07/yodle-juggle-fest/types"
)

// Static implements a population source with a fixed population.
type Static struct {
	mu       sync.RWMutex
	circuits []*types.Circuit
	jugglers []*types.Juggler
}

var _ types.PopulationSource = (*Static)(nil)

// NewStatic creates a new static population source.
//
// The source returns the same circuits and jugglers on every call. The
// entities themselves are shared, so a population should be matched only once.
// Useful for testing and for populations built in code.
//
// Parameters:
//   - circuits: Circuits indexed by ID
//   - jugglers: Jugglers in queue order
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	c0 := types.NewCircuit(0, types.Traits{HandEye: 7, Endurance: 7, Pizzazz: 10})
//	j0 := types.NewJuggler(0, types.Traits{HandEye: 3, Endurance: 9, Pizzazz: 2}, []*types.Circuit{c0})
//	src := source.NewStatic([]*types.Circuit{c0}, []*types.Juggler{j0})
//	m, err := jugglefest.Run(ctx, src)
//	if err != nil { /* handle */ }
func NewStatic(circuits []*types.Circuit, jugglers []*types.Juggler) *Static {
	return &Static{
		circuits: circuits,
		jugglers: jugglers,
	}
}

// LoadPopulation returns the static population.
//
// Returns:
//   - *types.Population: Population with freshly copied slices
//   - error: Always nil (never fails)
func (s *Static) LoadPopulation(_ context.Context) (*types.Population, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &types.Population{
		Circuits: append([]*types.Circuit(nil), s.circuits...),
		Jugglers: append([]*types.Juggler(nil), s.jugglers...),
	}, nil
}

// Update replaces the population.
//
// Parameters:
//   - pop: New population
//
// Example:
//
//	src := source.NewStatic(nil, nil)
//	// Later: provide the real population
//	src.Update(pop)
func (s *Static) Update(pop *types.Population) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.circuits = append([]*types.Circuit(nil), pop.Circuits...)
	s.jugglers = append([]*types.Juggler(nil), pop.Jugglers...)
}
