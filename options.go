package jugglefest

// Option configures a Matcher with optional dependencies.
type Option func(*matcherOptions)

// matcherOptions holds optional Matcher configuration.
type matcherOptions struct {
	config   *Config
	seed     *int64
	fallback FallbackStrategy
	hooks    *Hooks
	metrics  MetricsCollector
	logger   Logger
}

// WithConfig sets the matcher configuration.
//
// Missing values are filled with SetDefaults; an invalid config makes
// NewMatcher fail with ErrInvalidConfig.
//
// Parameters:
//   - cfg: Matcher configuration
//
// Returns:
//   - Option: Functional option for NewMatcher
func WithConfig(cfg Config) Option {
	return func(o *matcherOptions) {
		o.config = &cfg
	}
}

// WithSeed seeds the random fallback strategy, overriding Config.Seed.
//
// Parameters:
//   - seed: Seed value; 0 seeds from the wall clock
//
// Returns:
//   - Option: Functional option for NewMatcher
//
// Example:
//
//	m, err := jugglefest.NewMatcher(circuits, jugglers, jugglefest.WithSeed(42))
func WithSeed(seed int64) Option {
	return func(o *matcherOptions) {
		o.seed = &seed
	}
}

// WithFallback sets a custom fallback strategy, overriding Config.Fallback and any seed.
//
// Parameters:
//   - fallback: FallbackStrategy implementation
//
// Returns:
//   - Option: Functional option for NewMatcher
//
// Example:
//
//	m, err := jugglefest.NewMatcher(circuits, jugglers, jugglefest.WithFallback(strategy.NewRoundRobin()))
func WithFallback(fallback FallbackStrategy) Option {
	return func(o *matcherOptions) {
		o.fallback = fallback
	}
}

// WithHooks sets matching event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions (nil fields are allowed)
//
// Returns:
//   - Option: Functional option for NewMatcher
//
// Example:
//
//	hooks := &jugglefest.Hooks{
//	    OnDisplaced: func(winner, loser *jugglefest.Juggler, c *jugglefest.Circuit) {
//	        fmt.Printf("J%d displaced J%d from C%d\n", winner.ID, loser.ID, c.ID)
//	    },
//	}
//	m, err := jugglefest.NewMatcher(circuits, jugglers, jugglefest.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *matcherOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewMatcher
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *matcherOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (see internal/logging for a zap adapter)
//
// Returns:
//   - Option: Functional option for NewMatcher
func WithLogger(logger Logger) Option {
	return func(o *matcherOptions) {
		o.logger = logger
	}
}
