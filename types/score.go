package types

import "math"

// MaxScore is the minimum score reported by an empty circuit.
//
// An empty circuit always has spare capacity, which admits a juggler before
// any score comparison takes place.
const MaxScore int64 = math.MaxInt64

// Traits holds the three ratings used for scoring.
type Traits struct {
	// HandEye is the hand-eye coordination rating (H).
	HandEye int64 `json:"handEye" yaml:"handEye"`

	// Endurance is the endurance rating (E).
	Endurance int64 `json:"endurance" yaml:"endurance"`

	// Pizzazz is the pizzazz rating (P).
	Pizzazz int64 `json:"pizzazz" yaml:"pizzazz"`
}

// Score returns the compatibility score of two trait sets.
//
// The score is the dot product of the ratings. It is pure and symmetric, so
// Score(juggler, circuit) == Score(circuit, juggler).
//
// Parameters:
//   - a: First trait set (typically the juggler)
//   - b: Second trait set (typically the circuit)
//
// Returns:
//   - int64: a.HandEye*b.HandEye + a.Endurance*b.Endurance + a.Pizzazz*b.Pizzazz
func Score(a, b Traits) int64 {
	return a.HandEye*b.HandEye + a.Endurance*b.Endurance + a.Pizzazz*b.Pizzazz
}

// ScoreFor returns the score of juggler j at circuit c.
func ScoreFor(j *Juggler, c *Circuit) int64 {
	return Score(j.Traits, c.Traits)
}
