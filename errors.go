package jugglefest

import "github.com/amitger07/yodle-juggle-fest/types"

// Sentinel errors returned by the matcher and its collaborators.
//
// They are the same values as in the types package, so errors.Is works with
// either import.
var (
	// ErrMalformedInput is returned for an unreadable input token.
	ErrMalformedInput = types.ErrMalformedInput

	// ErrUnknownCircuit is returned when a preference names an undeclared circuit.
	ErrUnknownCircuit = types.ErrUnknownCircuit

	// ErrCircuitIDMismatch is returned when a circuit ID differs from its position.
	ErrCircuitIDMismatch = types.ErrCircuitIDMismatch

	// ErrNoPreferences is returned for a juggler without preferences.
	ErrNoPreferences = types.ErrNoPreferences

	// ErrDuplicatePreference is returned when a juggler lists a circuit twice.
	ErrDuplicatePreference = types.ErrDuplicatePreference

	// ErrNoCircuits is returned by NewMatcher when there are no circuits.
	ErrNoCircuits = types.ErrNoCircuits

	// ErrZeroCapacity is returned by NewMatcher when jugglers are fewer than circuits.
	ErrZeroCapacity = types.ErrZeroCapacity

	// ErrUnplaceable is returned by Match when a juggler fits nowhere.
	ErrUnplaceable = types.ErrUnplaceable

	// ErrCircuitOutOfRange is returned by circuit queries with an invalid index.
	ErrCircuitOutOfRange = types.ErrCircuitOutOfRange

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig
)
