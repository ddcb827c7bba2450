// Package strategy provides built-in fallback strategy implementations.
//
// A fallback strategy picks circuits for a juggler whose preference list is
// exhausted. The package includes two built-in strategies:
//
//   - Random: Uniform draws with replacement from a seedable source (default)
//   - RoundRobin: Deterministic cyclic probing, independent of any seed
//
// # Strategy Selection Guide
//
// Random:
//   - Matches the classic behaviour: leftover jugglers land on arbitrary circuits
//   - Reproducible when constructed with a fixed seed
//
// RoundRobin:
//   - Use when runs must be reproducible without managing seeds
//   - Spreads consecutive fallbacks over neighbouring circuits
//
// Custom strategies can be implemented by satisfying the types.FallbackStrategy interface.
package strategy
