package testing

import (
	"testing"

	"github.com/amitger07/yodle-juggle-fest/internal/logger"
	"github.com/amitger07/yodle-juggle-fest/types"
)

// NewTestLogger returns a logger that writes matcher events to t's log.
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}
