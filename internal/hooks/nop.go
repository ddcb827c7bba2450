// Package hooks provides default matching hooks.
package hooks

import "github.com/amitger07/yodle-juggle-fest/types"

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks in the matching loop.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(*types.Juggler, *types.Circuit)                 = (*NopHooks)(nil).OnPlaced
	_ func(*types.Juggler, *types.Juggler, *types.Circuit) = (*NopHooks)(nil).OnDisplaced
	_ func(*types.Juggler, *types.Circuit)                 = (*NopHooks)(nil).OnFallback
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnPlaced:    h.OnPlaced,
		OnDisplaced: h.OnDisplaced,
		OnFallback:  h.OnFallback,
	}
}

// Fill returns a copy of h with every nil callback replaced by a no-op.
//
// Parameters:
//   - h: User hooks (may be nil)
//
// Returns:
//   - types.Hooks: Hooks safe to call without nil checks
func Fill(h *types.Hooks) types.Hooks {
	filled := NewNop()
	if h == nil {
		return filled
	}
	if h.OnPlaced != nil {
		filled.OnPlaced = h.OnPlaced
	}
	if h.OnDisplaced != nil {
		filled.OnDisplaced = h.OnDisplaced
	}
	if h.OnFallback != nil {
		filled.OnFallback = h.OnFallback
	}

	return filled
}

// OnPlaced is a no-op implementation.
func (h *NopHooks) OnPlaced(_ *types.Juggler, _ *types.Circuit) {}

// OnDisplaced is a no-op implementation.
func (h *NopHooks) OnDisplaced(_, _ *types.Juggler, _ *types.Circuit) {}

// OnFallback is a no-op implementation.
func (h *NopHooks) OnFallback(_ *types.Juggler, _ *types.Circuit) {}
