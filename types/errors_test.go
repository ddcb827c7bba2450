package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works correctly", func(t *testing.T) {
		require.True(t, errors.Is(ErrUnknownCircuit, ErrUnknownCircuit))
		require.False(t, errors.Is(ErrUnknownCircuit, ErrCircuitOutOfRange))

		// Wrapped errors maintain identity
		wrapped := fmt.Errorf("line 3: %w", ErrMalformedInput)
		require.True(t, errors.Is(wrapped, ErrMalformedInput))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			// Input errors
			ErrMalformedInput,
			ErrUnknownCircuit,
			ErrCircuitIDMismatch,
			ErrNoPreferences,
			ErrDuplicatePreference,
			// Matcher errors
			ErrNoCircuits,
			ErrZeroCapacity,
			ErrUnplaceable,
			ErrCircuitOutOfRange,
			// Config errors
			ErrInvalidConfig,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					continue
				}
				require.False(t, errors.Is(err1, err2), "%v should not match %v", err1, err2)
			}
		}
	})
}
