package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    Traits
		b    Traits
		want int64
	}{
		{"unit traits", Traits{1, 1, 1}, Traits{1, 1, 1}, 3},
		{"scaled traits", Traits{3, 3, 3}, Traits{2, 2, 2}, 18},
		{"sample input", Traits{3, 9, 2}, Traits{7, 7, 10}, 104},
		{"zero traits", Traits{}, Traits{5, 6, 7}, 0},
		{"negative traits", Traits{-1, 2, 0}, Traits{4, 4, 4}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Score(tt.a, tt.b))
			require.Equal(t, tt.want, Score(tt.b, tt.a), "score must be symmetric")
		})
	}
}

func TestScore_Deterministic(t *testing.T) {
	a := Traits{HandEye: 11, Endurance: 2, Pizzazz: 8}
	b := Traits{HandEye: 4, Endurance: 9, Pizzazz: 1}

	first := Score(a, b)
	for range 100 {
		require.Equal(t, first, Score(a, b))
	}
}

func TestScore_LargeTraits(t *testing.T) {
	// 32-bit products would overflow here.
	big := Traits{HandEye: math.MaxInt32, Endurance: math.MaxInt32, Pizzazz: math.MaxInt32}
	want := 3 * int64(math.MaxInt32) * int64(math.MaxInt32)

	require.Equal(t, want, Score(big, big))
}

func TestScoreFor(t *testing.T) {
	c := NewCircuit(0, Traits{7, 7, 10})
	j := NewJuggler(0, Traits{3, 9, 2}, []*Circuit{c})

	require.Equal(t, int64(104), ScoreFor(j, c))
	require.Equal(t, ScoreFor(j, c), j.ScoreAt(0))
}
