package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundRobin_Next(t *testing.T) {
	t.Run("cycles through every index", func(t *testing.T) {
		rr := NewRoundRobin()

		var got []int
		for range 7 {
			got = append(got, rr.Next(3))
		}

		require.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, got)
	})

	t.Run("wraps when circuit count shrinks", func(t *testing.T) {
		rr := NewRoundRobin()
		for range 4 {
			rr.Next(10)
		}

		require.Equal(t, 0, rr.Next(2))
		require.Equal(t, 1, rr.Next(2))
	})
}

func TestByName(t *testing.T) {
	t.Run("random", func(t *testing.T) {
		s, err := ByName(NameRandom, 1)
		require.NoError(t, err)
		require.IsType(t, &Random{}, s)
	})

	t.Run("round robin", func(t *testing.T) {
		s, err := ByName(NameRoundRobin, 1)
		require.NoError(t, err)
		require.IsType(t, &RoundRobin{}, s)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ByName("consistent-hash", 0)
		require.ErrorIs(t, err, ErrUnknownStrategy)
		require.Contains(t, err.Error(), "consistent-hash")
	})
}
