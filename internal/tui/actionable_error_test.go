package tui_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tkerrors "github.com/mrz1836/timekit/internal/errors"
	"github.com/mrz1836/timekit/internal/tui"
)

func TestActionableError(t *testing.T) {
	t.Parallel()

	err := tui.NewActionableError("unparseable date", "Use ISO 8601")
	assert.Equal(t, "unparseable date", err.Error())
	require.NoError(t, err.Unwrap())

	err.WithContext("job a")
	assert.Equal(t, "unparseable date (job a)", err.Error())
}

func TestSuggestionForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"nil", nil, ""},
		{"unknown", errors.New("boom"), ""},
		{"direct", tkerrors.ErrBatchEmpty, "jobs"},
		{"wrapped", fmt.Errorf("load: %w", tkerrors.ErrConfigInvalidSpan), "min_hour_digits"},
		{"falls back to errors package action", tkerrors.ErrWrongArgCount, "span takes two dates"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tui.SuggestionForError(tc.err)
			if tc.contains == "" {
				assert.Empty(t, got)
				return
			}
			assert.Contains(t, got, tc.contains)
		})
	}
}

func TestWrapWithSuggestion(t *testing.T) {
	t.Parallel()

	require.NoError(t, tui.WrapWithSuggestion(nil))

	plain := errors.New("boom")
	assert.Same(t, plain, tui.WrapWithSuggestion(plain))

	already := tui.NewActionableError("x", "y")
	assert.Same(t, already, tui.WrapWithSuggestion(already))

	wrapped := tui.WrapWithSuggestion(tkerrors.ErrUnknownOperation)
	var ae *tui.ActionableError
	require.ErrorAs(t, wrapped, &ae)
	assert.Equal(t, "unknown operation", ae.Message)
	assert.Contains(t, ae.Suggestion, "rfc2822")
	require.ErrorIs(t, wrapped, tkerrors.ErrUnknownOperation)
}
