package jugglefest

import (
	"testing"

	jftest "github.com/amitger07/yodle-juggle-fest/testing"
)

func BenchmarkMatcher_Match(b *testing.B) {
	sizes := []struct {
		name       string
		circuits   int
		perCircuit int
		prefs      int
	}{
		{name: "small", circuits: 10, perCircuit: 6, prefs: 3},
		{name: "full-size", circuits: 2000, perCircuit: 6, prefs: 10},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				pop := jftest.GeneratePopulation(1, size.circuits, size.perCircuit, size.prefs)
				m, err := NewMatcher(pop.Circuits, pop.Jugglers, WithSeed(1))
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				if err := m.Match(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
