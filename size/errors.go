package size

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by the size package.
//
// They are usually wrapped with more context, so compare them with
// errors.Is or errors.Cause rather than ==.
var (
	// ErrNoNumber is returned when a size has no numeric part
	ErrNoNumber = errors.New("no number found")
	// ErrUnknownUnit is returned when the unit suffix isn't recognised
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrInvalidFormat is returned for malformed sizes, e.g. "", "GB" or "1.2.3MB"
	ErrInvalidFormat = errors.New("invalid format")
	// ErrOverflow is returned when a size doesn't fit in 64 bits
	ErrOverflow = errors.New("size overflows 64 bits")
	// ErrInvalidValue is returned for negative, NaN or infinite magnitudes
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnderflow is returned when a subtraction would go below zero
	ErrUnderflow = errors.New("size underflow")
)

// ParseError is returned by Parse and everything which delegates to
// it.
type ParseError struct {
	Input string // the text which failed to parse
	Err   error  // one of the sentinel errors, possibly wrapped
}

// Error satisfies the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing size %q: %v", e.Input, e.Err)
}

// Cause returns the underlying error for errors.Cause
func (e *ParseError) Cause() error {
	return e.Err
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *ParseError) Unwrap() error {
	return e.Err
}
