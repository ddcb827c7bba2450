package jugglefest

import "github.com/amitger07/yodle-juggle-fest/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which lets `source`, `strategy` and `format` depend on
// `types` without depending on the root package.
type (
	Traits     = types.Traits
	Circuit    = types.Circuit
	Juggler    = types.Juggler
	Population = types.Population
)

// Re-export interfaces from the internal types package for convenience.
type (
	FallbackStrategy = types.FallbackStrategy
	PopulationSource = types.PopulationSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export sentinel values from the internal types package.
const (
	MaxScore  = types.MaxScore
	NoCircuit = types.NoCircuit
	NoScore   = types.NoScore
	NoCursor  = types.NoCursor
)
