// Package types provides core type definitions and interfaces for the jugglefest library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root jugglefest package and its internal implementations.
//
// Key types:
//   - Traits: The three skill ratings shared by circuits and jugglers
//   - Circuit: Capacity-bounded destination with score-sorted members
//   - Juggler: Agent with ranked circuit preferences and assignment state
//   - Population: Parsed circuits and jugglers handed to the matcher
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
//   - FallbackStrategy: Circuit picker used once preferences are exhausted
package types
