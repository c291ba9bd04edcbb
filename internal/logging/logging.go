// Package logging provides zerolog helpers for timekit: a rotating file sink,
// a hook that stamps every entry with the run ID, and truncation of
// user-supplied input before it is logged.
package logging

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrz1836/timekit/internal/constants"
)

// RunIDField is the log field carrying the per-invocation ID.
const RunIDField = "run_id"

// RunIDHook adds the same run ID to every log entry of one CLI invocation.
type RunIDHook struct {
	id string
}

// NewRunIDHook creates a hook with a fresh random run ID.
func NewRunIDHook() *RunIDHook {
	return &RunIDHook{id: uuid.NewString()}
}

// ID returns the run ID stamped on entries.
func (h *RunIDHook) ID() string {
	return h.id
}

// Run implements zerolog.Hook.
func (h *RunIDHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(RunIDField, h.id)
}

// TruncateInput bounds a user-supplied value before it is logged, so a pasted
// blob cannot flood the log file. The cut never splits a rune.
func TruncateInput(value string) string {
	return truncate(value, constants.MaxLoggedInputLen)
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return fmt.Sprintf("%s…(+%d bytes)", value[:cut], len(value)-cut)
}
