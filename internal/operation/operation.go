// Package operation evaluates the timekit operations (rfc2822, iso8601, leap,
// span and angle) from string arguments. The CLI commands and batch files
// share it so both accept the same inputs and produce the same values.
package operation

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/timekit/internal/clock"
	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/errors"
	"github.com/mrz1836/timekit/internal/logging"
	"github.com/mrz1836/timekit/pkg/datetime"
)

// Outcome is the result of one operation. Only the fields relevant to Op are
// set; Value always holds the primary result as text.
type Outcome struct {
	Op        string         `json:"op"`
	Value     string         `json:"value"`
	Instant   *time.Time     `json:"instant,omitempty"`
	UnixMilli *int64         `json:"unix_ms,omitempty"`
	Year      *int           `json:"year,omitempty"`
	Leap      *bool          `json:"leap,omitempty"`
	Span      *datetime.Span `json:"span,omitempty"`
	Radians   *float64       `json:"radians,omitempty"`
	Degrees   *float64       `json:"degrees,omitempty"`
}

// Resolver evaluates operations with a fixed set of options.
type Resolver struct {
	// Location resolves ISO 8601 values that carry no offset. Nil means UTC.
	Location *time.Location
	// MinHourDigits is the minimum width of the span hours field.
	MinHourDigits int
	// Clock supplies "now" for leap and angle when no argument is given.
	Clock clock.Clock
}

// NewResolver returns a Resolver with UTC, two-digit hours and the system clock.
func NewResolver() *Resolver {
	return &Resolver{
		Location:      time.UTC,
		MinHourDigits: constants.DefaultMinHourDigits,
		Clock:         clock.RealClock{},
	}
}

func (r *Resolver) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock.Now()
}

// Evaluate dispatches op with args.
func (r *Resolver) Evaluate(ctx context.Context, op string, args []string) (*Outcome, error) {
	zerolog.Ctx(ctx).Debug().
		Str("op", op).
		Strs("args", truncateAll(args)).
		Msg("evaluating operation")

	switch op {
	case constants.OpRFC2822:
		if len(args) != 1 {
			return nil, errors.Wrapf(errors.ErrWrongArgCount, "%s takes 1 argument, got %d", op, len(args))
		}
		return r.RFC2822(args[0])
	case constants.OpISO8601:
		if len(args) != 1 {
			return nil, errors.Wrapf(errors.ErrWrongArgCount, "%s takes 1 argument, got %d", op, len(args))
		}
		return r.ISO8601(args[0])
	case constants.OpLeap:
		if len(args) > 1 {
			return nil, errors.Wrapf(errors.ErrWrongArgCount, "%s takes at most 1 argument, got %d", op, len(args))
		}
		return r.Leap(optional(args))
	case constants.OpSpan:
		if len(args) != 2 {
			return nil, errors.Wrapf(errors.ErrWrongArgCount, "%s takes 2 arguments, got %d", op, len(args))
		}
		return r.Span(args[0], args[1])
	case constants.OpAngle:
		if len(args) > 1 {
			return nil, errors.Wrapf(errors.ErrWrongArgCount, "%s takes at most 1 argument, got %d", op, len(args))
		}
		return r.Angle(optional(args))
	default:
		return nil, errors.Wrapf(errors.ErrUnknownOperation, "%q", op)
	}
}

// RFC2822 parses value and reports its Unix millisecond timestamp.
func (r *Resolver) RFC2822(value string) (*Outcome, error) {
	t, err := datetime.ParseRFC2822(value)
	if err != nil {
		return nil, unparseable(err)
	}
	ms := t.UnixMilli()
	return &Outcome{
		Op:        constants.OpRFC2822,
		Value:     strconv.FormatInt(ms, 10),
		Instant:   &t,
		UnixMilli: &ms,
	}, nil
}

// ISO8601 parses value, resolving offset-less values in r.Location.
func (r *Resolver) ISO8601(value string) (*Outcome, error) {
	t, err := datetime.ParseISO8601InLocation(value, r.Location)
	if err != nil {
		return nil, unparseable(err)
	}
	ms := t.UnixMilli()
	return &Outcome{
		Op:        constants.OpISO8601,
		Value:     t.Format(time.RFC3339Nano),
		Instant:   &t,
		UnixMilli: &ms,
	}, nil
}

// Leap reports whether the year named by arg is a leap year. arg is a bare
// year, an ISO 8601 date or empty for the current year.
func (r *Resolver) Leap(arg string) (*Outcome, error) {
	year, err := r.yearArg(arg)
	if err != nil {
		return nil, err
	}
	leap := datetime.IsLeapYearNumber(year)
	return &Outcome{
		Op:    constants.OpLeap,
		Value: strconv.FormatBool(leap),
		Year:  &year,
		Leap:  &leap,
	}, nil
}

// Span formats the distance between two ISO 8601 instants.
func (r *Resolver) Span(startArg, endArg string) (*Outcome, error) {
	start, err := datetime.ParseISO8601InLocation(startArg, r.Location)
	if err != nil {
		return nil, unparseable(err)
	}
	end, err := datetime.ParseISO8601InLocation(endArg, r.Location)
	if err != nil {
		return nil, unparseable(err)
	}
	span := datetime.SpanBetween(start, end)
	ms := span.TotalMillis()
	return &Outcome{
		Op:        constants.OpSpan,
		Value:     span.Format(r.MinHourDigits),
		UnixMilli: &ms,
		Span:      &span,
	}, nil
}

// Angle reports the angle between the clock hands at the time named by arg:
// an ISO 8601 instant, a UTC "HH:MM" wall time or empty for now.
func (r *Resolver) Angle(arg string) (*Outcome, error) {
	t, err := r.clockArg(arg)
	if err != nil {
		return nil, err
	}
	rad := datetime.ClockHandAngle(t)
	deg := datetime.ClockHandAngleDegrees(t)
	return &Outcome{
		Op:      constants.OpAngle,
		Value:   strconv.FormatFloat(rad, 'f', -1, 64),
		Instant: &t,
		Radians: &rad,
		Degrees: &deg,
	}, nil
}

func optional(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func truncateAll(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = logging.TruncateInput(a)
	}
	return out
}
