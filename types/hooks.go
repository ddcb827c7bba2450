package types

// Hooks defines callbacks for matching events.
//
// All hooks are optional and run synchronously on the matching goroutine, so
// they observe the population exactly as the matcher left it after the event.
// Hooks must not mutate circuits or jugglers.
//
// Example:
//
//	hooks := &jugglefest.Hooks{
//	    OnDisplaced: func(winner, loser *jugglefest.Juggler, c *jugglefest.Circuit) {
//	        log.Printf("J%d displaced J%d from C%d", winner.ID, loser.ID, c.ID)
//	    },
//	}
type Hooks struct {
	// OnPlaced is called when a juggler takes a spare slot in a circuit.
	OnPlaced func(j *Juggler, c *Circuit)

	// OnDisplaced is called when winner evicts loser from circuit c.
	// loser still carries the score it held at c.
	OnDisplaced func(winner, loser *Juggler, c *Circuit)

	// OnFallback is called when a juggler with an exhausted preference list
	// is placed in circuit c by the fallback strategy.
	OnFallback func(j *Juggler, c *Circuit)
}
