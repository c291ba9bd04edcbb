// Package tui provides terminal output components for timekit: styled text
// for terminals, structured JSON for scripts, and simple aligned tables.
package tui

import "io"

// Output format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output provides methods for structured output to a terminal or pipe.
type Output interface {
	// Success prints a success message.
	Success(msg string)
	// Error prints an error, including its suggestion when it is an ActionableError.
	Error(err error)
	// Warning prints a warning message.
	Warning(msg string)
	// Info prints an informational message.
	Info(msg string)
	// Field prints a labeled value.
	Field(label, value string)
	// Table prints rows under headers.
	Table(headers []string, rows [][]string)
	// JSON outputs a value as formatted JSON.
	JSON(v any) error
}

// NewOutput creates the appropriate output for format.
func NewOutput(w io.Writer, format string) Output {
	if format == FormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
