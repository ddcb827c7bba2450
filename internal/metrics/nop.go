package metrics

import "github.com/amitger07/yodle-juggle-fest/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the matcher's default collector.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	m, err := jugglefest.NewMatcher(circuits, jugglers, jugglefest.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PopulationMetrics implementation

// RecordPopulation discards the population gauges.
func (n *NopMetrics) RecordPopulation(_ /* circuits */, _ /* jugglers */, _ /* capacity */ int) {
	// No-op
}

// MatchMetrics implementation

// RecordProposal discards the proposal metric.
func (n *NopMetrics) RecordProposal(_ /* fallback */ bool) {
	// No-op
}

// RecordPlacement discards the placement metric.
func (n *NopMetrics) RecordPlacement(_ /* fallback */ bool) {
	// No-op
}

// RecordDisplacement discards the displacement metric.
func (n *NopMetrics) RecordDisplacement(_ /* fallback */ bool) {
	// No-op
}

// RecordPass discards the pass metric.
func (n *NopMetrics) RecordPass(_ /* queued */ int) {
	// No-op
}

// RecordMatchDuration discards the duration metric.
func (n *NopMetrics) RecordMatchDuration(_ /* duration */ float64, _ /* success */ bool) {
	// No-op
}
