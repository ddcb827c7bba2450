package source

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/amitger07/yodle-juggle-fest/types"
)

// ErrInvalidGenerator is returned for a GeneratorConfig that cannot produce a population.
var ErrInvalidGenerator = errors.New("invalid generator configuration")

// DefaultMaxTrait is the trait upper bound used when GeneratorConfig.MaxTrait is 0.
const DefaultMaxTrait = 10

// GeneratorConfig describes a random population.
type GeneratorConfig struct {
	// Seed makes generation reproducible.
	Seed uint64 `yaml:"seed"`

	// Circuits is the number of circuits. Must be > 0.
	Circuits int `yaml:"circuits"`

	// PerCircuit is the number of jugglers per circuit. The population has
	// Circuits*PerCircuit jugglers, so every circuit gets capacity PerCircuit.
	PerCircuit int `yaml:"perCircuit"`

	// Preferences is the preference list length, clamped to [1, Circuits].
	Preferences int `yaml:"preferences"`

	// MaxTrait bounds the trait values drawn from [0, MaxTrait].
	// Default: DefaultMaxTrait
	MaxTrait int64 `yaml:"maxTrait"`
}

// Generator implements a population source producing seeded random populations.
//
// Every load returns a fresh population, identical for identical configs.
type Generator struct {
	cfg GeneratorConfig
}

var _ types.PopulationSource = (*Generator)(nil)

// NewGenerator creates a random population source.
//
// Parameters:
//   - cfg: Population shape and seed
//
// Returns:
//   - *Generator: Initialized generator
//   - error: ErrInvalidGenerator for a non-positive circuit count or negative sizes
//
// Example:
//
//	gen, err := source.NewGenerator(source.GeneratorConfig{Seed: 1, Circuits: 2000, PerCircuit: 6, Preferences: 10})
//	if err != nil { /* handle */ }
//	m, err := jugglefest.Run(ctx, gen, jugglefest.WithSeed(1))
func NewGenerator(cfg GeneratorConfig) (*Generator, error) {
	switch {
	case cfg.Circuits <= 0:
		return nil, fmt.Errorf("%w: circuits must be > 0, got %d", ErrInvalidGenerator, cfg.Circuits)
	case cfg.PerCircuit < 0:
		return nil, fmt.Errorf("%w: perCircuit must be >= 0, got %d", ErrInvalidGenerator, cfg.PerCircuit)
	case cfg.MaxTrait < 0:
		return nil, fmt.Errorf("%w: maxTrait must be >= 0, got %d", ErrInvalidGenerator, cfg.MaxTrait)
	}

	if cfg.MaxTrait == 0 {
		cfg.MaxTrait = DefaultMaxTrait
	}
	cfg.Preferences = min(max(cfg.Preferences, 1), cfg.Circuits)

	return &Generator{cfg: cfg}, nil
}

// LoadPopulation generates a population.
//
// Returns:
//   - *types.Population: Fresh, unmatched population
//   - error: Context error only
func (g *Generator) LoadPopulation(ctx context.Context) (*types.Population, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return g.Generate(), nil
}

// Generate builds a population without a context.
func (g *Generator) Generate() *types.Population {
	cfg := g.cfg
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	pop := &types.Population{
		Circuits: make([]*types.Circuit, cfg.Circuits),
		Jugglers: make([]*types.Juggler, cfg.Circuits*cfg.PerCircuit),
	}

	for i := range pop.Circuits {
		pop.Circuits[i] = types.NewCircuit(i, g.randomTraits(rng))
	}

	for i := range pop.Jugglers {
		order := rng.Perm(cfg.Circuits)[:cfg.Preferences]
		prefs := make([]*types.Circuit, len(order))
		for k, idx := range order {
			prefs[k] = pop.Circuits[idx]
		}
		pop.Jugglers[i] = types.NewJuggler(i, g.randomTraits(rng), prefs)
	}

	return pop
}

func (g *Generator) randomTraits(rng *rand.Rand) types.Traits {
	n := g.cfg.MaxTrait + 1

	return types.Traits{
		HandEye:   rng.Int64N(n),
		Endurance: rng.Int64N(n),
		Pizzazz:   rng.Int64N(n),
	}
}
