package tui

import (
	"errors"

	tkerrors "github.com/mrz1836/timekit/internal/errors"
)

// ErrorSuggestion maps a sentinel error to its suggested fix.
type ErrorSuggestion struct {
	Error      error
	Suggestion string
}

// errorSuggestions maps common errors to helpful suggestions.
// Each suggestion should be actionable and start with a verb.
//
//nolint:gochecknoglobals // Intentional package-level constant for error suggestions
var errorSuggestions = []ErrorSuggestion{
	{tkerrors.ErrUnparseableDate, "Use: timekit parse rfc2822 \"Tue, 26 Jan 2016 13:48:02 GMT\" or timekit parse iso8601 2016-01-26T13:48:02Z"},
	{tkerrors.ErrInvalidArgument, "Run the command with --help"},
	{tkerrors.ErrUnknownOperation, "Use one of: rfc2822, iso8601, leap, span, angle"},
	{tkerrors.ErrInvalidOutputFormat, "Use: --output text or --output json"},

	{tkerrors.ErrConfigInvalidParse, "Set parse.assume_zone to utc or local"},
	{tkerrors.ErrConfigInvalidSpan, "Set span.min_hour_digits between 1 and 6"},
	{tkerrors.ErrConfigInvalidBatch, "Set batch.workers between 1 and 64"},
	{tkerrors.ErrConfigInvalidLog, "Run: timekit config show"},

	{tkerrors.ErrBatchFileInvalid, "Check that the file is YAML with a top-level jobs list"},
	{tkerrors.ErrBatchEmpty, "Add at least one entry under jobs"},
	{tkerrors.ErrBatchTooLarge, "Split the batch into smaller files"},
}

// SuggestionForError returns a suggestion for the given error, falling back
// to the action text from the errors package. Returns empty string if no
// suggestion is available.
func SuggestionForError(err error) string {
	if err == nil {
		return ""
	}

	for _, es := range errorSuggestions {
		if errors.Is(err, es.Error) {
			return es.Suggestion
		}
	}

	_, action := tkerrors.Actionable(err)
	return action
}

// WrapWithSuggestion converts err into an ActionableError when a suggestion
// is known for it. Other errors, and errors that are already actionable, are
// returned unchanged.
func WrapWithSuggestion(err error) error {
	if err == nil {
		return nil
	}

	var ae *ActionableError
	if errors.As(err, &ae) {
		return err
	}

	suggestion := SuggestionForError(err)
	if suggestion == "" {
		return err
	}

	return &ActionableError{
		Message:    err.Error(),
		Suggestion: suggestion,
		Err:        err,
	}
}
