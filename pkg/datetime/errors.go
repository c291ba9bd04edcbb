package datetime

import (
	"errors"
	"fmt"
)

// Format names reported by ParseError.
const (
	FormatRFC2822 = "RFC 2822"
	FormatISO8601 = "ISO 8601"
)

// ErrInvalidDate is matched by every ParseError via errors.Is.
var ErrInvalidDate = errors.New("invalid date")

// errEmptyValue is the cause recorded for blank input.
var errEmptyValue = errors.New("value is empty")

// ParseError reports a string that could not be parsed as a date-time.
// No partial result accompanies a ParseError.
type ParseError struct {
	// Format is the grammar the value was checked against.
	Format string
	// Value is the rejected input, unmodified.
	Value string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s date %q: %v", e.Format, e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidDate.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidDate
}

func newParseError(format, value string, err error) *ParseError {
	return &ParseError{Format: format, Value: value, Err: err}
}
