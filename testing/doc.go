// Package testing provides test utilities for the jugglefest library.
//
// This package offers helpers for building populations and checking the
// state the matcher leaves behind. It follows Go's convention of providing
// testing utilities in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - GeneratePopulation: Seeded random circuits and jugglers
//   - CheckInvariants: Capacity, totality, ordering and score checks after Match
//   - NewTestLogger: Logger that writes through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    jftest "github.com/amitger07/yodle-juggle-fest/testing"
//	)
//
//	func TestMyPopulation(t *testing.T) {
//	    pop := jftest.GeneratePopulation(1, 20, 5, 4)
//	    m, err := jugglefest.NewMatcher(pop.Circuits, pop.Jugglers, jugglefest.WithSeed(1))
//	    require.NoError(t, err)
//	    require.NoError(t, m.Match())
//	    jftest.CheckInvariants(t, m.Circuits(), m.Jugglers(), m.Capacity())
//	}
package testing
