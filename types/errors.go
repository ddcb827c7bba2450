package types

import "errors"

// Sentinel errors for the jugglefest library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Input, Matcher, Config)
//   - Use consistent messages across similar error types

// Input errors - Returned while reading or validating a population.
var (
	// ErrMalformedInput is returned for a missing token, a token with the
	// wrong prefix or a non-numeric field.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownCircuit is returned when a preference names a circuit that
	// has not been declared.
	ErrUnknownCircuit = errors.New("unknown circuit")

	// ErrCircuitIDMismatch is returned when a circuit ID differs from its
	// position in the input.
	ErrCircuitIDMismatch = errors.New("circuit ID does not match its position")

	// ErrNoPreferences is returned for a juggler with an empty preference list.
	ErrNoPreferences = errors.New("juggler has no preferences")

	// ErrDuplicatePreference is returned when a juggler lists a circuit twice.
	ErrDuplicatePreference = errors.New("duplicate circuit preference")
)

// Matcher errors - Returned by matcher construction, matching and queries.
var (
	// ErrNoCircuits is returned when there are no circuits to match into.
	ErrNoCircuits = errors.New("no circuits to match")

	// ErrZeroCapacity is returned when there are fewer jugglers than circuits,
	// which makes the per-circuit capacity zero.
	ErrZeroCapacity = errors.New("circuit capacity is zero")

	// ErrUnplaceable is returned when a juggler with an exhausted preference
	// list cannot enter any circuit: all are full and none has a minimum
	// score below the juggler's score there.
	ErrUnplaceable = errors.New("juggler cannot be placed in any circuit")

	// ErrCircuitOutOfRange is returned when a circuit ID is not a valid index.
	ErrCircuitOutOfRange = errors.New("circuit index out of range")
)

// Config errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)
