package types

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Circuit is a capacity-bounded destination for jugglers.
//
// Members are kept sorted by descending current score after every mutation.
// The sort is stable, so members with equal scores keep their insertion
// order and the most recently added of them is evicted first.
//
// Circuit performs no capacity check. The matcher decides whether Add or
// ReplaceWorst is allowed.
type Circuit struct {
	// ID is the circuit number from the input (C<id>). It equals the
	// circuit's position in the population.
	ID int

	// Traits are the circuit's skill requirements.
	Traits Traits

	members  []*Juggler
	minScore int64
}

// NewCircuit creates an empty circuit.
//
// Parameters:
//   - id: Circuit ID
//   - traits: Circuit ratings
//
// Returns:
//   - *Circuit: Circuit with no members and MinScore() == MaxScore
func NewCircuit(id int, traits Traits) *Circuit {
	return &Circuit{
		ID:       id,
		Traits:   traits,
		minScore: MaxScore,
	}
}

// Add appends a juggler, re-sorts the members and refreshes the minimum score.
//
// Parameters:
//   - j: Juggler to add; its CurrentScore must already reflect this circuit
func (c *Circuit) Add(j *Juggler) {
	c.members = append(c.members, j)
	slices.SortStableFunc(c.members, byScoreDesc)
	c.minScore = c.members[len(c.members)-1].CurrentScore()
}

// ReplaceWorst evicts the lowest-scoring member in favour of j.
//
// The evicted juggler is marked unmatched and j is marked matched before
// being added. The circuit must not be empty.
//
// Parameters:
//   - j: Juggler taking the freed slot
//
// Returns:
//   - *Juggler: The displaced juggler, to be requeued by the caller
func (c *Circuit) ReplaceWorst(j *Juggler) *Juggler {
	last := len(c.members) - 1
	worst := c.members[last]
	c.members[last] = nil
	c.members = c.members[:last]

	worst.SetMatched(false)
	j.SetMatched(true)
	c.Add(j)

	return worst
}

// MinScore returns the current score of the lowest-ranked member, or MaxScore when empty.
func (c *Circuit) MinScore() int64 {
	return c.minScore
}

// Len returns the number of members.
func (c *Circuit) Len() int {
	return len(c.members)
}

// Members returns the members in rank order.
func (c *Circuit) Members() []*Juggler {
	return append([]*Juggler(nil), c.members...)
}

// SumOfJugglerIDs returns the sum of the member IDs.
func (c *Circuit) SumOfJugglerIDs() int64 {
	var sum int64
	for _, j := range c.members {
		sum += int64(j.ID)
	}

	return sum
}

// String renders the circuit as "C<id> <member>,<member>,...".
//
// Members are rendered with Juggler.String in rank order. An empty circuit
// renders as "C<id>".
func (c *Circuit) String() string {
	var sb strings.Builder
	sb.WriteByte('C')
	sb.WriteString(strconv.Itoa(c.ID))

	for i, j := range c.members {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteByte(',')
		}
		sb.WriteString(j.String())
	}

	return sb.String()
}

func byScoreDesc(a, b *Juggler) int {
	return cmp.Compare(b.CurrentScore(), a.CurrentScore())
}
