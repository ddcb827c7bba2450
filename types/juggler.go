package types

import (
	"strconv"
	"strings"
)

const (
	// NoCircuit marks a juggler that has not been tried against any circuit.
	NoCircuit = -1

	// NoScore marks a juggler without a current score.
	NoScore int64 = -1

	// NoCursor marks a juggler whose preference list has not been tried yet.
	NoCursor = -1
)

// Juggler is an agent to be placed into exactly one circuit.
//
// Traits, preferences and the precomputed scores never change after
// construction. The assignment fields (matched flag, current circuit, current
// score and preference cursor) are owned by the matcher while it runs.
type Juggler struct {
	// ID is the juggler number from the input (J<id>).
	ID int

	// Traits are the juggler's skill ratings.
	Traits Traits

	preferences []*Circuit
	scores      []int64

	matched        bool
	currentCircuit int
	currentScore   int64
	cursor         int
}

// NewJuggler creates a juggler and precomputes its score against every preferred circuit.
//
// Parameters:
//   - id: Juggler ID
//   - traits: Juggler ratings
//   - preferences: Ranked circuits, most preferred first
//
// Returns:
//   - *Juggler: Unmatched juggler with Scores()[i] == Score(traits, preferences[i].Traits)
//
// Example:
//
//	c0 := types.NewCircuit(0, types.Traits{HandEye: 7, Endurance: 7, Pizzazz: 10})
//	j := types.NewJuggler(0, types.Traits{HandEye: 3, Endurance: 9, Pizzazz: 2}, []*types.Circuit{c0})
//	fmt.Println(j) // J0 C0:104
func NewJuggler(id int, traits Traits, preferences []*Circuit) *Juggler {
	prefs := make([]*Circuit, len(preferences))
	copy(prefs, preferences)

	scores := make([]int64, len(prefs))
	for i, c := range prefs {
		scores[i] = Score(traits, c.Traits)
	}

	return &Juggler{
		ID:             id,
		Traits:         traits,
		preferences:    prefs,
		scores:         scores,
		currentCircuit: NoCircuit,
		currentScore:   NoScore,
		cursor:         NoCursor,
	}
}

// Preferences returns the ranked circuit preferences.
func (j *Juggler) Preferences() []*Circuit {
	return append([]*Circuit(nil), j.preferences...)
}

// Preference returns the i-th preferred circuit.
func (j *Juggler) Preference(i int) *Circuit {
	return j.preferences[i]
}

// PreferenceCount returns the length of the preference list.
func (j *Juggler) PreferenceCount() int {
	return len(j.preferences)
}

// Scores returns the precomputed scores, parallel to Preferences.
func (j *Juggler) Scores() []int64 {
	return append([]int64(nil), j.scores...)
}

// ScoreAt returns the precomputed score of the i-th preference.
func (j *Juggler) ScoreAt(i int) int64 {
	return j.scores[i]
}

// Matched reports whether the juggler currently belongs to a circuit.
func (j *Juggler) Matched() bool {
	return j.matched
}

// SetMatched updates the matched flag.
func (j *Juggler) SetMatched(matched bool) {
	j.matched = matched
}

// CurrentCircuit returns the ID of the circuit last tried or joined, or NoCircuit.
func (j *Juggler) CurrentCircuit() int {
	return j.currentCircuit
}

// SetCurrentCircuit records the circuit being tried.
func (j *Juggler) SetCurrentCircuit(circuitID int) {
	j.currentCircuit = circuitID
}

// CurrentScore returns the score at the current circuit, or NoScore.
//
// Members of a circuit are ordered by this value.
func (j *Juggler) CurrentScore() int64 {
	return j.currentScore
}

// SetCurrentScore records the score at the circuit being tried.
func (j *Juggler) SetCurrentScore(score int64) {
	j.currentScore = score
}

// Cursor returns the index of the last preference attempted, or NoCursor.
func (j *Juggler) Cursor() int {
	return j.cursor
}

// SetCursor moves the preference cursor.
func (j *Juggler) SetCursor(index int) {
	j.cursor = index
}

// String renders the juggler as "J<id> C<pref>:<score> C<pref>:<score> ...".
//
// The full preference list is rendered, not only the current circuit.
func (j *Juggler) String() string {
	var sb strings.Builder
	sb.WriteByte('J')
	sb.WriteString(strconv.Itoa(j.ID))

	for i, c := range j.preferences {
		sb.WriteString(" C")
		sb.WriteString(strconv.Itoa(c.ID))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatInt(j.scores[i], 10))
	}

	return sb.String()
}
