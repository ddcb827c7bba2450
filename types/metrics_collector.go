package types

// MetricsCollector defines methods for recording matching metrics.
//
// Implementations should be cheap: the matcher calls them from its hot loop.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	PopulationMetrics
	MatchMetrics
}

// PopulationMetrics describes the input of a run.
type PopulationMetrics interface {
	// RecordPopulation sets the population gauges.
	//
	// Parameters:
	//   - circuits: Number of circuits
	//   - jugglers: Number of jugglers
	//   - capacity: Jugglers per circuit
	RecordPopulation(circuits, jugglers, capacity int)
}

// MatchMetrics defines metrics for the matching loop.
type MatchMetrics interface {
	// RecordProposal records one juggler being tried against one circuit.
	//
	// Parameters:
	//   - fallback: true if the circuit came from the fallback strategy
	RecordProposal(fallback bool)

	// RecordPlacement records a juggler taking a spare slot.
	RecordPlacement(fallback bool)

	// RecordDisplacement records a juggler evicting the worst member of a full circuit.
	RecordDisplacement(fallback bool)

	// RecordPass records the start of a pass over the work list.
	//
	// Parameters:
	//   - queued: Jugglers waiting at the start of the pass
	RecordPass(queued int)

	// RecordMatchDuration records the wall time of a complete Match call.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - success: false if matching stopped with an error
	RecordMatchDuration(duration float64, success bool)
}
