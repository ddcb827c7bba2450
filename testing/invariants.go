package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitger07/yodle-juggle-fest/types"
)

// CheckInvariants verifies the state left behind by a successful Match.
//
// Checked properties:
//   - No circuit holds more than capacity members
//   - Every juggler is matched and belongs to exactly one circuit
//   - A member's current circuit is the circuit holding it
//   - Members are sorted by descending current score
//   - MinScore is the last member's score, or MaxScore for an empty circuit
//   - A member's current score is its score against its circuit
//   - A juggler placed through its preferences carries the precomputed score
//
// Parameters:
//   - t: Test handle; failures are reported through it
//   - circuits: Circuits indexed by ID
//   - jugglers: All jugglers of the population
//   - capacity: Members allowed per circuit
func CheckInvariants(t testing.TB, circuits []*types.Circuit, jugglers []*types.Juggler, capacity int) {
	t.Helper()

	owner := make(map[*types.Juggler]int, len(jugglers))
	total := 0

	for _, c := range circuits {
		members := c.Members()
		total += len(members)

		assert.LessOrEqual(t, len(members), capacity, "C%d over capacity", c.ID)

		if len(members) == 0 {
			assert.Equal(t, types.MaxScore, c.MinScore(), "C%d empty but has a min score", c.ID)
			continue
		}

		assert.Equal(t, members[len(members)-1].CurrentScore(), c.MinScore(), "C%d min score", c.ID)

		for i, j := range members {
			prev, dup := owner[j]
			require.False(t, dup, "J%d in both C%d and C%d", j.ID, prev, c.ID)
			owner[j] = c.ID

			assert.True(t, j.Matched(), "J%d in C%d but not matched", j.ID, c.ID)
			assert.Equal(t, c.ID, j.CurrentCircuit(), "J%d current circuit", j.ID)
			assert.Equal(t, types.ScoreFor(j, c), j.CurrentScore(), "J%d score at C%d", j.ID, c.ID)

			if i > 0 {
				assert.GreaterOrEqual(t, members[i-1].CurrentScore(), j.CurrentScore(),
					"C%d members out of order at %d", c.ID, i)
			}

			if cur := j.Cursor(); cur >= 0 && cur < j.PreferenceCount() && j.Preference(cur) == c {
				assert.Equal(t, j.ScoreAt(cur), j.CurrentScore(), "J%d preference score", j.ID)
			}
		}
	}

	assert.Equal(t, len(jugglers), total, "placed jugglers")

	for _, j := range jugglers {
		_, placed := owner[j]
		assert.True(t, placed, "J%d not in any circuit", j.ID)
	}
}
