// Package jugglefest assigns jugglers to capacity-limited circuits with a
// greedy, preference-driven displacement process.
//
// Every juggler ranks a few circuits. A juggler's score at a circuit is the
// dot product of their hand-eye, endurance and pizzazz ratings. Each circuit
// accepts floor(jugglers / circuits) members and keeps them ranked by score.
//
// # Quick Start
//
//	src := source.NewFile("jugglefest.txt")
//	m, err := jugglefest.Run(ctx, src, jugglefest.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sum, _ := m.SumOfJugglerIDs(1970)
//	fmt.Print(m.String())
//
// # Algorithm
//
// All jugglers start in a work list, in input order. Each pass walks the list
// by index and removes every juggler it places without stepping back, so the
// juggler after a placed one waits for the next pass. A visited juggler walks
// its preference list from where it last stopped:
//
//   - A circuit with a spare slot accepts the juggler.
//   - A full circuit accepts the juggler if its score there beats the circuit's
//     lowest member, who is evicted and appended to the list.
//   - Otherwise the next preference is tried.
//
// A juggler with no preferences left is placed by a FallbackStrategy
// (uniform random by default) under the same two acceptance rules. Matching
// ends when the list is empty.
//
// This is not Gale–Shapley: circuits have no preference lists, only the
// score ordering, and the result is a terminating greedy equilibrium rather
// than an optimum.
//
// # Output
//
// String renders one line per circuit in descending ID order:
//
//	C2 J6 C2:128 C1:31 C0:188,J3 C2:120 C0:171 C1:31
//
// Each member is followed by its whole preference list with scores.
//
// See cmd/jugglefest for the command-line tool.
package jugglefest
