package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scored returns a juggler whose current score is fixed to score.
func scored(id int, score int64, c *Circuit) *Juggler {
	j := NewJuggler(id, Traits{}, []*Circuit{c})
	j.SetCurrentCircuit(c.ID)
	j.SetCurrentScore(score)

	return j
}

func ids(js []*Juggler) []int {
	out := make([]int, len(js))
	for i, j := range js {
		out[i] = j.ID
	}

	return out
}

func TestNewCircuit(t *testing.T) {
	c := NewCircuit(3, Traits{1, 2, 3})

	require.Equal(t, 3, c.ID)
	require.Equal(t, 0, c.Len())
	require.Equal(t, MaxScore, c.MinScore())
	require.Empty(t, c.Members())
	require.Equal(t, "C3", c.String())
}

func TestCircuit_Add(t *testing.T) {
	t.Run("keeps members sorted by descending score", func(t *testing.T) {
		c := NewCircuit(0, Traits{})
		c.Add(scored(1, 10, c))
		c.Add(scored(2, 30, c))
		c.Add(scored(3, 20, c))

		require.Equal(t, []int{2, 3, 1}, ids(c.Members()))
		require.Equal(t, int64(10), c.MinScore())
	})

	t.Run("ties keep insertion order", func(t *testing.T) {
		c := NewCircuit(0, Traits{})
		c.Add(scored(1, 10, c))
		c.Add(scored(2, 10, c))
		c.Add(scored(3, 15, c))
		c.Add(scored(4, 10, c))

		require.Equal(t, []int{3, 1, 2, 4}, ids(c.Members()))
		require.Equal(t, int64(10), c.MinScore())
	})

	t.Run("does not enforce capacity", func(t *testing.T) {
		c := NewCircuit(0, Traits{})
		for i := range 10 {
			c.Add(scored(i, int64(i), c))
		}

		require.Equal(t, 10, c.Len())
		require.Equal(t, int64(0), c.MinScore())
	})
}

func TestCircuit_ReplaceWorst(t *testing.T) {
	t.Run("evicts the last member and flips matched flags", func(t *testing.T) {
		c := NewCircuit(0, Traits{})
		a := scored(1, 10, c)
		b := scored(2, 20, c)
		a.SetMatched(true)
		b.SetMatched(true)
		c.Add(a)
		c.Add(b)

		n := scored(3, 15, c)
		out := c.ReplaceWorst(n)

		require.Same(t, a, out)
		require.False(t, out.Matched())
		require.True(t, n.Matched())
		require.Equal(t, []int{2, 3}, ids(c.Members()))
		require.Equal(t, int64(15), c.MinScore())
	})

	t.Run("evicts the most recently added of tied worst members", func(t *testing.T) {
		c := NewCircuit(0, Traits{})
		c.Add(scored(1, 10, c))
		c.Add(scored(2, 10, c))

		out := c.ReplaceWorst(scored(3, 11, c))

		require.Equal(t, 2, out.ID)
		require.Equal(t, []int{3, 1}, ids(c.Members()))
	})

	t.Run("single member circuit", func(t *testing.T) {
		c := NewCircuit(0, Traits{})
		c.Add(scored(1, 5, c))

		out := c.ReplaceWorst(scored(2, 7, c))

		require.Equal(t, 1, out.ID)
		require.Equal(t, 1, c.Len())
		require.Equal(t, int64(7), c.MinScore())
	})
}

func TestCircuit_SumOfJugglerIDs(t *testing.T) {
	c := NewCircuit(0, Traits{})
	require.Equal(t, int64(0), c.SumOfJugglerIDs())

	c.Add(scored(5, 1, c))
	c.Add(scored(7, 2, c))

	require.Equal(t, int64(12), c.SumOfJugglerIDs())
}

func TestCircuit_String(t *testing.T) {
	c0 := NewCircuit(0, Traits{7, 7, 10})
	c1 := NewCircuit(1, Traits{2, 1, 1})

	j0 := NewJuggler(0, Traits{3, 9, 2}, []*Circuit{c0, c1})
	j1 := NewJuggler(1, Traits{4, 3, 7}, []*Circuit{c0})
	j0.SetCurrentScore(j0.ScoreAt(0))
	j1.SetCurrentScore(j1.ScoreAt(0))
	c0.Add(j0)
	c0.Add(j1)

	require.Equal(t, "C0 J1 C0:119,J0 C0:104 C1:17", c0.String())
}
