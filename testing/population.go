package testing

import (
	"fmt"

	"github.com/amitger07/yodle-juggle-fest/source"
	"github.com/amitger07/yodle-juggle-fest/types"
)

// GeneratePopulation builds a random but reproducible population.
//
// Circuits get IDs 0..circuits-1 and jugglers 0..circuits*perCircuit-1, so
// every circuit ends up with capacity perCircuit. Traits are drawn from
// [0, source.DefaultMaxTrait]. Each juggler prefers min(prefsPerJuggler, circuits)
// distinct circuits in random order.
//
// Parameters:
//   - seed: RNG seed; equal seeds give equal populations
//   - circuits: Number of circuits (must be > 0)
//   - perCircuit: Jugglers per circuit
//   - prefsPerJuggler: Preference list length (clamped to [1, circuits])
//
// Returns:
//   - *types.Population: Fresh, unmatched population
//
// Example:
//
//	pop := jftest.GeneratePopulation(7, 3, 4, 2) // 3 circuits, 12 jugglers
func GeneratePopulation(seed uint64, circuits, perCircuit, prefsPerJuggler int) *types.Population {
	gen, err := source.NewGenerator(source.GeneratorConfig{
		Seed:        seed,
		Circuits:    circuits,
		PerCircuit:  perCircuit,
		Preferences: prefsPerJuggler,
	})
	if err != nil {
		panic(fmt.Sprintf("GeneratePopulation: %v", err))
	}

	return gen.Generate()
}
