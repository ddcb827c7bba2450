// Package logger provides the library's built-in types.Logger implementations.
package logger

import "github.com/amitger07/yodle-juggle-fest/types"

// NopLogger is a no-op logger that discards all log messages.
//
// It is the matcher's default logger.
//
// Example:
//
//	m, err := jugglefest.NewMatcher(circuits, jugglers, jugglefest.WithLogger(logger.NewNop()))
type NopLogger struct{}

// Compile-time assertion that NopLogger implements Logger.
var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a new no-op logger that discards all messages.
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (n *NopLogger) Debug(string, ...any) {}

// Info discards the message.
func (n *NopLogger) Info(string, ...any) {}

// Warn discards the message.
func (n *NopLogger) Warn(string, ...any) {}

// Error discards the message.
func (n *NopLogger) Error(string, ...any) {}

// Fatal discards the message and does not exit.
func (n *NopLogger) Fatal(string, ...any) {}
