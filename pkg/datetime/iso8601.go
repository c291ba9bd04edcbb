package datetime

import (
	"strings"
	"time"
)

// zonedLayouts carry an explicit designator: Z, ±hh:mm, ±hhmm or ±hh.
// Fractional seconds are accepted after the seconds field by time.Parse.
//
//nolint:gochecknoglobals // Read-only layout list
var zonedLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04Z07",
}

// localLayouts have no designator and are resolved against a caller-chosen location.
//
//nolint:gochecknoglobals // Read-only layout list
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISO8601 parses an ISO 8601 date-time. Values with no offset and no
// "Z" designator are interpreted as UTC.
func ParseISO8601(value string) (time.Time, error) {
	return ParseISO8601InLocation(value, time.UTC)
}

// ParseISO8601InLocation parses an ISO 8601 date-time, resolving values that
// carry no offset in loc. A nil loc means UTC. Values with an offset or "Z"
// denote the same instant regardless of loc.
func ParseISO8601InLocation(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, newParseError(FormatISO8601, value, errEmptyValue)
	}

	var cause error
	for _, layout := range zonedLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
		cause = preferRangeError(cause, err)
	}

	for _, layout := range localLayouts {
		t, err := time.ParseInLocation(layout, trimmed, loc)
		if err == nil {
			return t, nil
		}
		cause = preferRangeError(cause, err)
	}

	return time.Time{}, newParseError(FormatISO8601, value, cause)
}

// preferRangeError keeps the first error unless next is the first range
// error seen. A range error means the value matched the layout's shape.
func preferRangeError(current, next error) error {
	if current == nil || (!isRangeError(current) && isRangeError(next)) {
		return next
	}
	return current
}

func isRangeError(err error) bool {
	return strings.HasSuffix(err.Error(), "out of range")
}
