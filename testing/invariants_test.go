package testing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	jugglefest "github.com/amitger07/yodle-juggle-fest"
	jftest "github.com/amitger07/yodle-juggle-fest/testing"
	"github.com/amitger07/yodle-juggle-fest/types"
)

// recordingTB captures failures instead of failing the enclosing test.
type recordingTB struct {
	testing.TB
	errors int
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(string, ...any) {
	r.errors++
}

func (r *recordingTB) FailNow() {}

func TestCheckInvariants(t *testing.T) {
	t.Run("passes after matching", func(t *testing.T) {
		pop := jftest.GeneratePopulation(3, 12, 4, 3)

		m, err := jugglefest.NewMatcher(pop.Circuits, pop.Jugglers,
			jugglefest.WithSeed(3), jugglefest.WithLogger(jftest.NewTestLogger(t)))
		require.NoError(t, err)
		require.NoError(t, m.Match())

		jftest.CheckInvariants(t, m.Circuits(), m.Jugglers(), m.Capacity())
	})

	t.Run("reports unplaced jugglers", func(t *testing.T) {
		pop := jftest.GeneratePopulation(3, 2, 2, 1)
		rec := &recordingTB{TB: t}

		jftest.CheckInvariants(rec, pop.Circuits, pop.Jugglers, 2)

		require.Positive(t, rec.errors)
	})

	t.Run("reports over capacity", func(t *testing.T) {
		c := types.NewCircuit(0, types.Traits{HandEye: 1})
		jugglers := make([]*types.Juggler, 3)
		for i := range jugglers {
			j := types.NewJuggler(i, types.Traits{HandEye: int64(i)}, []*types.Circuit{c})
			j.SetCursor(0)
			j.SetCurrentCircuit(0)
			j.SetCurrentScore(j.ScoreAt(0))
			j.SetMatched(true)
			c.Add(j)
			jugglers[i] = j
		}
		rec := &recordingTB{TB: t}

		jftest.CheckInvariants(rec, []*types.Circuit{c}, jugglers, 2)

		require.Equal(t, 1, rec.errors)
	})
}

func TestGeneratePopulation(t *testing.T) {
	a := jftest.GeneratePopulation(5, 4, 3, 2)
	b := jftest.GeneratePopulation(5, 4, 3, 2)

	require.Len(t, a.Circuits, 4)
	require.Len(t, a.Jugglers, 12)
	for i := range a.Jugglers {
		require.Equal(t, a.Jugglers[i].String(), b.Jugglers[i].String())
	}

	require.Panics(t, func() { jftest.GeneratePopulation(1, 0, 1, 1) })
}
