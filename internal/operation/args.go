package operation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mrz1836/timekit/internal/errors"
	"github.com/mrz1836/timekit/pkg/datetime"
)

// wallClockLayout accepts "9:30" and "09:30".
const wallClockLayout = "15:04"

// unparseable tags a datetime parse failure with the CLI sentinel while
// keeping the *datetime.ParseError in the chain.
func unparseable(err error) error {
	return fmt.Errorf("%w: %w", errors.ErrUnparseableDate, err)
}

// yearArg resolves a leap argument to a year number.
func (r *Resolver) yearArg(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return r.now().Year(), nil
	}
	if isYear(arg) {
		year, err := strconv.Atoi(arg)
		if err != nil {
			return 0, errors.Wrapf(errors.ErrInvalidArgument, "year %q", arg)
		}
		return year, nil
	}
	t, err := datetime.ParseISO8601InLocation(arg, r.Location)
	if err != nil {
		return 0, unparseable(err)
	}
	return t.Year(), nil
}

// isYear reports whether s is an optionally signed run of digits short
// enough to never be an ISO 8601 date.
func isYear(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || len(digits) > 6 {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// clockArg resolves an angle argument to an instant.
func (r *Resolver) clockArg(arg string) (time.Time, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return r.now(), nil
	}
	if !strings.Contains(arg, "T") && strings.Count(arg, ":") == 1 {
		t, err := time.Parse(wallClockLayout, arg)
		if err != nil {
			return time.Time{}, errors.Wrapf(errors.ErrInvalidArgument, "wall time %q, want HH:MM", arg)
		}
		return t, nil
	}
	t, err := datetime.ParseISO8601InLocation(arg, r.Location)
	if err != nil {
		return time.Time{}, unparseable(err)
	}
	return t, nil
}
