package strategy

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandom_Next(t *testing.T) {
	t.Run("stays in range", func(t *testing.T) {
		r := NewRandom(7)
		for range 1000 {
			idx := r.Next(5)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 5)
		}
	})

	t.Run("same seed gives same sequence", func(t *testing.T) {
		a := NewRandom(42)
		b := NewRandom(42)
		for range 100 {
			require.Equal(t, a.Next(17), b.Next(17))
		}
	})

	t.Run("visits every index", func(t *testing.T) {
		r := NewRandom(3)
		seen := make(map[int]bool)
		for range 500 {
			seen[r.Next(6)] = true
		}
		require.Len(t, seen, 6)
	})

	t.Run("zero seed uses wall clock", func(t *testing.T) {
		r := NewRandom(0)
		require.NotNil(t, r.rng)
		require.Less(t, r.Next(3), 3)
	})
}

func TestNewRandomFrom(t *testing.T) {
	src := rand.New(rand.NewPCG(1, 2))
	ref := rand.New(rand.NewPCG(1, 2))

	r := NewRandomFrom(src)
	for range 20 {
		require.Equal(t, ref.IntN(9), r.Next(9))
	}
}
