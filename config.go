package jugglefest

import (
	"fmt"

	"github.com/amitger07/yodle-juggle-fest/strategy"
)

// Config is the configuration for the Matcher.
//
// It is usually embedded in a larger YAML document, as the CLI does under
// its "matcher" key.
type Config struct {
	// Seed seeds the random fallback strategy.
	// 0 seeds from the wall clock, making fallback placement differ between runs.
	// Ignored by the round-robin strategy.
	Seed int64 `yaml:"seed"`

	// Fallback names the strategy used once a juggler's preferences are exhausted.
	// One of "random" (default) or "round-robin".
	Fallback string `yaml:"fallback"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Random fallback seeded from the wall clock
func DefaultConfig() Config {
	return Config{
		Seed:     0,
		Fallback: strategy.NameRandom,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Fallback == "" {
		cfg.Fallback = defaults.Fallback
	}
	// Note: Seed of 0 is valid (wall clock), so we don't apply a default
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Validation Rules:
//   - Fallback is a known strategy name
//   - Seed is not negative
//
// Returns:
//   - error: ErrInvalidConfig wrapped with an explanation, nil if valid
func (cfg *Config) Validate() error {
	switch cfg.Fallback {
	case strategy.NameRandom, strategy.NameRoundRobin:
	default:
		return fmt.Errorf("%w: fallback must be %q or %q, got %q",
			ErrInvalidConfig, strategy.NameRandom, strategy.NameRoundRobin, cfg.Fallback)
	}

	if cfg.Seed < 0 {
		return fmt.Errorf("%w: seed must be >= 0, got %d", ErrInvalidConfig, cfg.Seed)
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but surprising settings.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.Fallback == strategy.NameRandom && cfg.Seed == 0 {
		logger.Warn(
			"random fallback seeded from wall clock, fallback placements are not reproducible",
			"fallback", cfg.Fallback,
			"recommended", "set a seed or use round-robin",
		)
	}
}

// TestConfig returns a configuration for reproducible test runs.
//
// Returns:
//   - Config: Random fallback with a fixed seed
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 1

	return cfg
}
