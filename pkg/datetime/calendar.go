package datetime

import (
	"fmt"
	"math"
	"time"
)

// IsLeapYear reports whether the calendar year of t is a Gregorian leap year.
// Only the year component is consulted.
func IsLeapYear(t time.Time) bool {
	return IsLeapYearNumber(t.Year())
}

// IsLeapYearNumber applies the proleptic Gregorian leap rule to year.
func IsLeapYearNumber(year int) bool {
	if year%400 == 0 {
		return true
	}
	return year%100 != 0 && year%4 == 0
}

// Span is a non-negative duration broken into clock components.
// Hours are not wrapped at 24.
type Span struct {
	Hours        int64 `json:"hours"`
	Minutes      int64 `json:"minutes"`
	Seconds      int64 `json:"seconds"`
	Milliseconds int64 `json:"milliseconds"`
}

// SpanFromMillis decomposes |ms| using integer division only.
func SpanFromMillis(ms int64) Span {
	if ms < 0 {
		ms = -ms
	}
	totalSeconds := ms / 1000
	totalMinutes := totalSeconds / 60
	return Span{
		Hours:        totalMinutes / 60,
		Minutes:      totalMinutes % 60,
		Seconds:      totalSeconds % 60,
		Milliseconds: ms % 1000,
	}
}

// SpanBetween returns the absolute distance between start and end at
// millisecond precision. Argument order does not matter.
func SpanBetween(start, end time.Time) Span {
	return SpanFromMillis(end.UnixMilli() - start.UnixMilli())
}

// TotalMillis returns the span as a millisecond count.
func (s Span) TotalMillis() int64 {
	return ((s.Hours*60+s.Minutes)*60+s.Seconds)*1000 + s.Milliseconds
}

// String renders the span as HH:mm:ss.sss.
func (s Span) String() string {
	return s.Format(2)
}

// Format renders the span with hours padded to at least minHourDigits
// digits. Values below 1 are treated as 1.
func (s Span) Format(minHourDigits int) string {
	if minHourDigits < 1 {
		minHourDigits = 1
	}
	return fmt.Sprintf("%0*d:%02d:%02d.%03d", minHourDigits, s.Hours, s.Minutes, s.Seconds, s.Milliseconds)
}

// FormatTimeSpan returns |end - start| formatted as HH:mm:ss.sss.
func FormatTimeSpan(start, end time.Time) string {
	return SpanBetween(start, end).String()
}

// handSeparation returns |60*h12 - 11*m| for the UTC wall clock of t, which
// is twice the angle between the hands in degrees.
func handSeparation(t time.Time) int {
	u := t.UTC()
	h12 := u.Hour() % 12
	diff := 60*h12 - 11*u.Minute()
	if diff < 0 {
		return -diff
	}
	return diff
}

// ClockHandAngle returns the smaller angle in radians, in [0, π], between the
// hour and minute hands of an analog clock showing t in UTC.
func ClockHandAngle(t time.Time) float64 {
	angle := math.Pi / 360 * float64(handSeparation(t))
	if angle > math.Pi {
		angle = 2*math.Pi - angle
	}
	return angle
}

// ClockHandAngleDegrees is ClockHandAngle expressed in degrees, in [0, 180].
func ClockHandAngleDegrees(t time.Time) float64 {
	deg := float64(handSeparation(t)) / 2
	if deg > 180 {
		deg = 360 - deg
	}
	return deg
}
