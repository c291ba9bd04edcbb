package tui

// ActionableError wraps an error with an actionable suggestion.
//
// Example usage:
//
//	err := NewActionableError("unparseable date", "Use ISO 8601, e.g. 2016-01-26T13:48:02Z")
//	output.Error(err)
//	// Outputs: ✗ unparseable date
//	//          ▸ Try: Use ISO 8601, e.g. 2016-01-26T13:48:02Z
type ActionableError struct {
	// Message is the primary error message.
	Message string

	// Suggestion provides actionable guidance for resolving the error.
	Suggestion string

	// Context provides optional additional information about the error.
	// When present, it is appended to the message in parentheses.
	Context string

	// Err is the underlying error, if any.
	Err error
}

// NewActionableError creates a new ActionableError with message and suggestion.
func NewActionableError(msg, suggestion string) *ActionableError {
	return &ActionableError{
		Message:    msg,
		Suggestion: suggestion,
	}
}

// Error implements the error interface.
// Returns the message with context if provided, e.g., "unparseable date (job \"b\")".
func (e *ActionableError) Error() string {
	if e.Context != "" {
		return e.Message + " (" + e.Context + ")"
	}
	return e.Message
}

// Unwrap returns the underlying error so errors.Is keeps working.
func (e *ActionableError) Unwrap() error {
	return e.Err
}

// WithContext adds optional context to the error.
// Returns the same error for method chaining.
func (e *ActionableError) WithContext(ctx string) *ActionableError {
	e.Context = ctx
	return e
}
