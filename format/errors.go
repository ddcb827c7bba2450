package format

import "fmt"

// ParseError describes an input line that could not be parsed.
//
// Err is one of the types sentinel errors (ErrMalformedInput,
// ErrUnknownCircuit, ErrCircuitIDMismatch, ErrNoPreferences,
// ErrDuplicatePreference), so callers can match with errors.Is and read the
// position with errors.As.
type ParseError struct {
	// Line is the 1-based line number.
	Line int

	// Text is the offending line.
	Text string

	// Err is the underlying error.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
