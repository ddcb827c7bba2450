package types

// Population is the parsed input handed to the matcher.
//
// Circuits are indexed by ID: Circuits[i].ID == i. Jugglers keep input order,
// which is also the initial order of the work list.
type Population struct {
	Circuits []*Circuit
	Jugglers []*Juggler
}
