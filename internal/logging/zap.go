// Package logging adapts third-party loggers to types.Logger.
package logging

import (
	"go.uber.org/zap"

	"github.com/amitger07/yodle-juggle-fest/types"
)

// ZapLogger implements types.Logger on top of zap's SugaredLogger.
//
// SugaredLogger's Debugw/Infow/... family already takes a message followed
// by loosely typed key-value pairs, so the adapter is a thin forwarder.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// Compile-time assertion that ZapLogger implements Logger.
var _ types.Logger = (*ZapLogger)(nil)

// NewZap creates a logger that forwards to the given zap logger.
//
// Parameters:
//   - logger: The underlying zap.Logger instance to use
//
// Returns:
//   - *ZapLogger: A new logger instance wrapping logger.Sugar()
//
// Example:
//
//	zl, _ := zap.NewProduction()
//	defer zl.Sync()
//	m, _ := jugglefest.NewMatcher(circuits, jugglers, jugglefest.WithLogger(logging.NewZap(zl)))
func NewZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger.Sugar()}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Infow(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message with optional key-value pairs and exits.
//
// zap calls os.Exit(1) after writing the entry.
func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Fatalw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
