package jugglefest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amitger07/yodle-juggle-fest/format"
	"github.com/amitger07/yodle-juggle-fest/internal/hash"
	"github.com/amitger07/yodle-juggle-fest/internal/hooks"
	"github.com/amitger07/yodle-juggle-fest/internal/logger"
	"github.com/amitger07/yodle-juggle-fest/internal/metrics"
	"github.com/amitger07/yodle-juggle-fest/internal/queue"
	"github.com/amitger07/yodle-juggle-fest/strategy"
	"github.com/amitger07/yodle-juggle-fest/types"
)

// Stats counts what happened during matching.
type Stats struct {
	// Passes is the number of passes over the work list. The index of a pass
	// advances after each removal, so some pending jugglers wait for the next
	// one.
	Passes int

	// Proposals counts juggler-circuit pairs tried, from preferences and fallback.
	Proposals int

	// Placements counts jugglers taking a spare slot.
	Placements int

	// Displacements counts evictions of a circuit's lowest member.
	Displacements int

	// Fallbacks counts jugglers placed by the fallback strategy.
	Fallbacks int
}

// Matcher assigns jugglers to circuits.
//
// A Matcher owns the circuits and jugglers it was built with: Match mutates
// their assignment state in place. Each juggler belongs either to the work
// list or to exactly one circuit's member list, and moves between them
// only inside Match.
//
// Matcher is not safe for concurrent use.
type Matcher struct {
	circuits []*Circuit
	jugglers []*Juggler
	capacity int

	queue    *queue.WorkList[*Juggler]
	fallback FallbackStrategy
	hooks    Hooks
	metrics  MetricsCollector
	logger   Logger

	stats Stats
	err   error
}

var (
	_ io.WriterTo  = (*Matcher)(nil)
	_ fmt.Stringer = (*Matcher)(nil)
)

// NewMatcher validates a population and prepares it for matching.
//
// Circuit capacity is floor(len(jugglers) / len(circuits)), the same for
// every circuit. Every juggler starts in the work list, in slice order.
//
// Parameters:
//   - circuits: Circuits indexed by ID (circuits[i].ID == i)
//   - jugglers: Jugglers whose preferences reference entries of circuits
//   - opts: Optional configuration (config, seed, fallback, hooks, metrics, logger)
//
// Returns:
//   - *Matcher: Matcher ready for Match
//   - error: ErrNoCircuits, ErrZeroCapacity, ErrCircuitIDMismatch,
//     ErrUnknownCircuit, ErrNoPreferences, ErrDuplicatePreference or ErrInvalidConfig
//
// Example:
//
//	pop, _ := source.NewFile("jugglefest.txt").LoadPopulation(ctx)
//	m, err := jugglefest.NewMatcher(pop.Circuits, pop.Jugglers, jugglefest.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	if err := m.Match(); err != nil {
//	    return err
//	}
func NewMatcher(circuits []*Circuit, jugglers []*Juggler, opts ...Option) (*Matcher, error) {
	options := &matcherOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	cfg := DefaultConfig()
	if options.config != nil {
		cfg = *options.config
		SetDefaults(&cfg)
	}
	if options.seed != nil {
		cfg.Seed = *options.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	fallback := options.fallback
	if fallback == nil {
		cfg.ValidateWithWarnings(loggerInstance)

		var err error
		fallback, err = strategy.ByName(cfg.Fallback, cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	capacity, err := validatePopulation(circuits, jugglers)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		circuits: append([]*Circuit(nil), circuits...),
		jugglers: append([]*Juggler(nil), jugglers...),
		capacity: capacity,
		queue:    queue.New(jugglers...),
		fallback: fallback,
		hooks:    hooks.Fill(options.hooks),
		metrics:  metricsCollector,
		logger:   loggerInstance,
	}

	m.metrics.RecordPopulation(len(circuits), len(jugglers), capacity)
	m.logger.Debug("matcher created",
		"circuits", len(circuits),
		"jugglers", len(jugglers),
		"capacity", capacity,
		"fallback", fmt.Sprintf("%T", fallback),
	)

	return m, nil
}

// Run loads a population from src, builds a Matcher and runs Match.
//
// Parameters:
//   - ctx: Context for loading the population
//   - src: Population source
//   - opts: Matcher options
//
// Returns:
//   - *Matcher: Matcher after a successful Match
//   - error: Load, validation or matching error
func Run(ctx context.Context, src PopulationSource, opts ...Option) (*Matcher, error) {
	pop, err := src.LoadPopulation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load population: %w", err)
	}

	m, err := NewMatcher(pop.Circuits, pop.Jugglers, opts...)
	if err != nil {
		return nil, err
	}

	if err := m.Match(); err != nil {
		return nil, err
	}

	return m, nil
}

// validatePopulation checks referential integrity and returns the circuit capacity.
func validatePopulation(circuits []*Circuit, jugglers []*Juggler) (int, error) {
	if len(circuits) == 0 {
		return 0, ErrNoCircuits
	}

	for i, c := range circuits {
		if c == nil || c.ID != i {
			return 0, fmt.Errorf("%w: circuit at position %d", ErrCircuitIDMismatch, i)
		}
	}

	capacity := len(jugglers) / len(circuits)
	if len(jugglers) > 0 && capacity == 0 {
		return 0, fmt.Errorf("%w: %d jugglers for %d circuits", ErrZeroCapacity, len(jugglers), len(circuits))
	}

	for i, j := range jugglers {
		if j == nil {
			return 0, fmt.Errorf("%w: nil juggler at position %d", ErrMalformedInput, i)
		}
		if j.PreferenceCount() == 0 {
			return 0, fmt.Errorf("%w: J%d", ErrNoPreferences, j.ID)
		}

		seen := make(map[int]struct{}, j.PreferenceCount())
		for i := range j.PreferenceCount() {
			pref := j.Preference(i)
			if pref == nil || pref.ID < 0 || pref.ID >= len(circuits) || circuits[pref.ID] != pref {
				return 0, fmt.Errorf("%w: J%d preference %d", ErrUnknownCircuit, j.ID, i)
			}
			if _, dup := seen[pref.ID]; dup {
				return 0, fmt.Errorf("%w: J%d lists C%d twice", ErrDuplicatePreference, j.ID, pref.ID)
			}
			seen[pref.ID] = struct{}{}
		}
	}

	return capacity, nil
}

// Match runs the assignment to completion.
//
// The algorithm:
//  1. Visit the work list by index; the index advances after every removal
//  2. Try its preferences after its cursor, in order: join a circuit with a
//     spare slot, or evict the circuit's lowest member if the juggler's
//     score is strictly higher; evicted jugglers are appended to the list
//  3. With preferences exhausted, try circuits from the fallback strategy
//     under the same rules until one accepts
//  4. Start a new pass until the list is empty
//
// Match is idempotent: once it has succeeded, further calls return nil
// without doing anything.
//
// Returns:
//   - error: nil when every juggler is placed; ErrUnplaceable when a juggler
//     with no preferences left fits in no circuit. The offending juggler is
//     left in the work list.
func (m *Matcher) Match() error {
	if m.queue.Len() == 0 {
		return nil
	}

	start := time.Now()
	err := m.run()
	duration := time.Since(start)
	m.err = err
	m.metrics.RecordMatchDuration(duration.Seconds(), err == nil)

	if err != nil {
		m.logger.Error("matching failed",
			"error", err,
			"queued", m.queue.Len(),
			"passes", m.stats.Passes,
		)

		return err
	}

	m.logger.Info("matching complete",
		"circuits", len(m.circuits),
		"jugglers", len(m.jugglers),
		"capacity", m.capacity,
		"passes", m.stats.Passes,
		"proposals", m.stats.Proposals,
		"displacements", m.stats.Displacements,
		"fallbacks", m.stats.Fallbacks,
		"duration", duration,
	)

	return nil
}

// run drains the work list pass by pass.
//
// A pass walks the list with an index that advances after every removal, so
// the juggler following a placed one is skipped until the next pass.
// Displaced jugglers are appended and may be reached in the same pass.
func (m *Matcher) run() error {
	for m.queue.Len() > 0 {
		pending := m.queue.Len()
		m.stats.Passes++
		m.metrics.RecordPass(pending)
		m.logger.Debug("matching pass started", "pass", m.stats.Passes, "queued", pending)

		for i := 0; i < m.queue.Len(); i++ {
			j := m.queue.At(i)

			if !m.proposePreferences(j) {
				if err := m.placeByFallback(j); err != nil {
					return err
				}
			}

			m.queue.RemoveAt(i)
		}
	}

	return nil
}

// proposePreferences walks j's preferences after its cursor and reports whether one accepted it.
func (m *Matcher) proposePreferences(j *Juggler) bool {
	for i := j.Cursor() + 1; i < j.PreferenceCount(); i++ {
		c := j.Preference(i)
		j.SetCurrentCircuit(c.ID)
		j.SetCurrentScore(j.ScoreAt(i))
		j.SetCursor(i)

		m.stats.Proposals++
		m.metrics.RecordProposal(false)

		if m.tryEnter(j, c, false) {
			return true
		}
	}

	return false
}

// placeByFallback draws circuits from the fallback strategy until one accepts j.
//
// Draws change no state, so if no circuit can accept j now none ever will
// during this call; that case is reported instead of looping forever.
func (m *Matcher) placeByFallback(j *Juggler) error {
	if !m.canPlaceAnywhere(j) {
		return fmt.Errorf("%w: J%d", ErrUnplaceable, j.ID)
	}

	m.stats.Fallbacks++
	m.logger.Debug("preferences exhausted, using fallback", "juggler", j.ID, "cursor", j.Cursor())

	for {
		c := m.circuits[m.fallback.Next(len(m.circuits))]
		j.SetCurrentCircuit(c.ID)
		j.SetCurrentScore(types.ScoreFor(j, c))

		m.stats.Proposals++
		m.metrics.RecordProposal(true)

		if m.tryEnter(j, c, true) {
			m.hooks.OnFallback(j, c)
			return nil
		}
	}
}

// canPlaceAnywhere reports whether some circuit has a spare slot or a lower minimum than j's score there.
func (m *Matcher) canPlaceAnywhere(j *Juggler) bool {
	for _, c := range m.circuits {
		if c.Len() < m.capacity || types.ScoreFor(j, c) > c.MinScore() {
			return true
		}
	}

	return false
}

// tryEnter applies the acceptance rules of circuit c to j, whose current
// circuit and score are already set to c.
func (m *Matcher) tryEnter(j *Juggler, c *Circuit, fallback bool) bool {
	if c.Len() < m.capacity {
		j.SetMatched(true)
		c.Add(j)

		m.stats.Placements++
		m.metrics.RecordPlacement(fallback)
		m.hooks.OnPlaced(j, c)

		return true
	}

	if j.CurrentScore() > c.MinScore() {
		loser := c.ReplaceWorst(j)
		m.queue.Append(loser)

		m.stats.Displacements++
		m.metrics.RecordDisplacement(fallback)
		m.hooks.OnDisplaced(j, loser, c)

		return true
	}

	return false
}

// Capacity returns the number of jugglers each circuit accepts.
func (m *Matcher) Capacity() int {
	return m.capacity
}

// Stats returns the matching counters so far.
func (m *Matcher) Stats() Stats {
	return m.stats
}

// Err returns the error of the last Match call, if any.
func (m *Matcher) Err() error {
	return m.err
}

// Queued returns the number of jugglers not yet placed.
func (m *Matcher) Queued() int {
	return m.queue.Len()
}

// Circuits returns the circuits indexed by ID.
func (m *Matcher) Circuits() []*Circuit {
	return append([]*Circuit(nil), m.circuits...)
}

// Jugglers returns the jugglers in input order.
func (m *Matcher) Jugglers() []*Juggler {
	return append([]*Juggler(nil), m.jugglers...)
}

// Circuit returns the circuit with the given ID.
//
// Returns:
//   - *Circuit: The circuit
//   - error: ErrCircuitOutOfRange if circuitID is not a valid index
func (m *Matcher) Circuit(circuitID int) (*Circuit, error) {
	if circuitID < 0 || circuitID >= len(m.circuits) {
		return nil, fmt.Errorf("%w: C%d (have %d circuits)", ErrCircuitOutOfRange, circuitID, len(m.circuits))
	}

	return m.circuits[circuitID], nil
}

// SumOfJugglerIDs returns the sum of the IDs of the jugglers in a circuit.
//
// Parameters:
//   - circuitID: Circuit index
//
// Returns:
//   - int64: Sum of member IDs
//   - error: ErrCircuitOutOfRange if circuitID is not a valid index
//
// Example:
//
//	sum, err := m.SumOfJugglerIDs(1970)
func (m *Matcher) SumOfJugglerIDs(circuitID int) (int64, error) {
	c, err := m.Circuit(circuitID)
	if err != nil {
		return 0, err
	}

	return c.SumOfJugglerIDs(), nil
}

// WriteTo writes the canonical text form of the assignment to w.
//
// One line per circuit, descending circuit ID, each terminated by "\n".
// See format.WriteAssignment.
//
// Returns:
//   - int64: Bytes written
//   - error: First write error
func (m *Matcher) WriteTo(w io.Writer) (int64, error) {
	return format.WriteAssignment(w, m.circuits)
}

// String returns the canonical text form of the assignment.
func (m *Matcher) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb)

	return sb.String()
}

// Fingerprint returns an xxh3 hash of the canonical text form.
//
// Two runs over the same input produce the same fingerprint exactly when
// they produce the same assignment.
func (m *Matcher) Fingerprint() uint64 {
	w := hash.NewWriter()
	_, _ = m.WriteTo(w)

	return w.Sum64()
}

// IsUnplaceable reports whether err means a juggler could not be placed.
func IsUnplaceable(err error) bool {
	return errors.Is(err, ErrUnplaceable)
}
