package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/amitger07/yodle-juggle-fest/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are registered lazily on first use, so constructing a collector
// that is never used leaves the registerer untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	circuitsGauge   prometheus.Gauge
	jugglersGauge   prometheus.Gauge
	capacityGauge   prometheus.Gauge
	proposals       *prometheus.CounterVec
	placements      *prometheus.CounterVec
	displacements   *prometheus.CounterVec
	passes          prometheus.Counter
	queueLength     prometheus.Histogram
	matchDuration   *prometheus.HistogramVec
	matchRunsResult *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "jugglefest" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	m, _ := jugglefest.NewMatcher(circuits, jugglers, jugglefest.WithMetrics(metrics.NewPrometheus(reg, "")))
//	_ = m.Match()
//	_ = prometheus.WriteToTextfile("metrics.prom", reg)
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "jugglefest"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.circuitsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "population",
			Name:      "circuits",
			Help:      "Number of circuits in the matched population.",
		})
		p.jugglersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "population",
			Name:      "jugglers",
			Help:      "Number of jugglers in the matched population.",
		})
		p.capacityGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "population",
			Name:      "circuit_capacity",
			Help:      "Jugglers accepted per circuit.",
		})

		p.proposals = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "proposals_total",
			Help:      "Juggler-to-circuit proposals by source (preference, fallback).",
		}, []string{"source"})
		p.placements = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "placements_total",
			Help:      "Jugglers placed into a spare slot by source (preference, fallback).",
		}, []string{"source"})
		p.displacements = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "displacements_total",
			Help:      "Lowest-scoring members evicted by a better juggler, by source (preference, fallback).",
		}, []string{"source"})
		p.passes = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "passes_total",
			Help:      "Passes over the work list.",
		})
		p.queueLength = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "pass_queue_length",
			Help:      "Jugglers waiting at the start of each pass.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 .. ~262k
		})
		p.matchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "match_duration_seconds",
			Help:      "Wall time of complete Match calls in seconds, by result.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8), // 1ms .. ~16s
		}, []string{"result"})
		p.matchRunsResult = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "matcher",
			Name:      "runs_total",
			Help:      "Completed Match calls by result (success, failure).",
		}, []string{"result"})

		p.reg.MustRegister(p.circuitsGauge)
		p.reg.MustRegister(p.jugglersGauge)
		p.reg.MustRegister(p.capacityGauge)
		p.reg.MustRegister(p.proposals)
		p.reg.MustRegister(p.placements)
		p.reg.MustRegister(p.displacements)
		p.reg.MustRegister(p.passes)
		p.reg.MustRegister(p.queueLength)
		p.reg.MustRegister(p.matchDuration)
		p.reg.MustRegister(p.matchRunsResult)
	})
}

// RecordPopulation sets the population gauges.
func (p *PrometheusCollector) RecordPopulation(circuits, jugglers, capacity int) {
	p.ensureRegistered()
	p.circuitsGauge.Set(float64(circuits))
	p.jugglersGauge.Set(float64(jugglers))
	p.capacityGauge.Set(float64(capacity))
}

// RecordProposal increments the proposal counter.
func (p *PrometheusCollector) RecordProposal(fallback bool) {
	p.ensureRegistered()
	p.proposals.WithLabelValues(sourceLabel(fallback)).Inc()
}

// RecordPlacement increments the placement counter.
func (p *PrometheusCollector) RecordPlacement(fallback bool) {
	p.ensureRegistered()
	p.placements.WithLabelValues(sourceLabel(fallback)).Inc()
}

// RecordDisplacement increments the displacement counter.
func (p *PrometheusCollector) RecordDisplacement(fallback bool) {
	p.ensureRegistered()
	p.displacements.WithLabelValues(sourceLabel(fallback)).Inc()
}

// RecordPass increments the pass counter and observes the queue length.
func (p *PrometheusCollector) RecordPass(queued int) {
	p.ensureRegistered()
	p.passes.Inc()
	p.queueLength.Observe(float64(queued))
}

// RecordMatchDuration observes the duration of a Match call.
func (p *PrometheusCollector) RecordMatchDuration(duration float64, success bool) {
	p.ensureRegistered()
	result := "success"
	if !success {
		result = "failure"
	}
	p.matchDuration.WithLabelValues(result).Observe(duration)
	p.matchRunsResult.WithLabelValues(result).Inc()
}

func sourceLabel(fallback bool) string {
	if fallback {
		return "fallback"
	}

	return "preference"
}
