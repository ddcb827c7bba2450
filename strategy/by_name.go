package strategy

import (
	"fmt"

	"github.com/amitger07/yodle-juggle-fest/types"
)

// Strategy names accepted by ByName.
const (
	NameRandom     = "random"
	NameRoundRobin = "round-robin"
)

// ByName builds a strategy from its configuration name.
//
// Parameters:
//   - name: NameRandom or NameRoundRobin
//   - seed: Seed for NameRandom (0 = wall clock); ignored otherwise
//
// Returns:
//   - types.FallbackStrategy: The strategy
//   - error: ErrUnknownStrategy for any other name
func ByName(name string, seed int64) (types.FallbackStrategy, error) {
	switch name {
	case NameRandom:
		return NewRandom(seed), nil
	case NameRoundRobin:
		return NewRoundRobin(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
