// Package source provides built-in population source implementations.
//
// Population sources supply the circuits and jugglers a matcher runs over.
// The package includes:
//
//   - File: Reads the population text format from disk
//   - Static: Fixed in-memory population
//   - Generator: Seeded random population, for load tests and fixtures
//
// Custom sources can be implemented by satisfying the types.PopulationSource interface.
package source
