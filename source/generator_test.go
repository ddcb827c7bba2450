package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	t.Run("rejects bad shapes", func(t *testing.T) {
		bad := []GeneratorConfig{
			{Circuits: 0, PerCircuit: 1},
			{Circuits: 2, PerCircuit: -1},
			{Circuits: 2, PerCircuit: 1, MaxTrait: -1},
		}
		for _, cfg := range bad {
			_, err := NewGenerator(cfg)
			require.ErrorIs(t, err, ErrInvalidGenerator)
		}
	})

	t.Run("clamps preferences", func(t *testing.T) {
		gen, err := NewGenerator(GeneratorConfig{Circuits: 3, PerCircuit: 1, Preferences: 10})
		require.NoError(t, err)

		for _, j := range gen.Generate().Jugglers {
			require.Equal(t, 3, j.PreferenceCount())
		}

		gen, err = NewGenerator(GeneratorConfig{Circuits: 3, PerCircuit: 1})
		require.NoError(t, err)

		for _, j := range gen.Generate().Jugglers {
			require.Equal(t, 1, j.PreferenceCount())
		}
	})
}

func TestGenerator_LoadPopulation(t *testing.T) {
	cfg := GeneratorConfig{Seed: 9, Circuits: 5, PerCircuit: 4, Preferences: 3, MaxTrait: 4}
	gen, err := NewGenerator(cfg)
	require.NoError(t, err)

	pop, err := gen.LoadPopulation(context.Background())
	require.NoError(t, err)

	t.Run("shape", func(t *testing.T) {
		require.Len(t, pop.Circuits, 5)
		require.Len(t, pop.Jugglers, 20)

		for i, c := range pop.Circuits {
			require.Equal(t, i, c.ID)
			require.LessOrEqual(t, c.Traits.HandEye, int64(4))
		}

		for i, j := range pop.Jugglers {
			require.Equal(t, i, j.ID)
			require.Equal(t, 3, j.PreferenceCount())

			seen := map[int]bool{}
			for _, c := range j.Preferences() {
				require.Same(t, pop.Circuits[c.ID], c)
				require.False(t, seen[c.ID], "duplicate preference")
				seen[c.ID] = true
			}
		}
	})

	t.Run("reproducible", func(t *testing.T) {
		again, err := gen.LoadPopulation(context.Background())
		require.NoError(t, err)

		for i := range pop.Jugglers {
			require.Equal(t, pop.Jugglers[i].String(), again.Jugglers[i].String())
			require.NotSame(t, pop.Jugglers[i], again.Jugglers[i])
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := gen.LoadPopulation(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
