package datetime

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// obsoleteZones maps the RFC 2822 section 4.3 zone names to numeric offsets.
//
//nolint:gochecknoglobals // Read-only lookup table
var obsoleteZones = map[string]string{
	"UT":  "+0000",
	"UTC": "+0000",
	"GMT": "+0000",
	"Z":   "+0000",
	"EST": "-0500",
	"EDT": "-0400",
	"CST": "-0600",
	"CDT": "-0500",
	"MST": "-0700",
	"MDT": "-0600",
	"PST": "-0800",
	"PDT": "-0700",
}

// weekdayNames maps lowercased weekday names, full and abbreviated, to weekdays.
//
//nolint:gochecknoglobals // Read-only lookup table
var weekdayNames = buildWeekdayNames()

func buildWeekdayNames() map[string]time.Weekday {
	names := make(map[string]time.Weekday, 14)
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		names[full] = d
		names[full[:3]] = d
	}
	return names
}

// calendarNames holds lowercased month and weekday names, full and abbreviated.
//
//nolint:gochecknoglobals // Read-only lookup table
var calendarNames = buildCalendarNames()

func buildCalendarNames() map[string]struct{} {
	names := make(map[string]struct{}, 38)
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		names[full] = struct{}{}
		names[full[:3]] = struct{}{}
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		names[full] = struct{}{}
		names[full[:3]] = struct{}{}
	}
	return names
}

// freeFormLayouts are tried after net/mail rejects a value. Values without a
// zone are read in UTC.
//
//nolint:gochecknoglobals // Read-only layout list
var freeFormLayouts = []string{
	"January 2, 2006 15:04:05 -0700",
	"January 2, 2006 15:04:05",
	"January 2, 2006 15:04",
	"January 2, 2006",
	"Jan 2, 2006 15:04:05 -0700",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"Monday, January 2, 2006 15:04:05",
	"Mon, Jan 2, 2006 15:04:05",
	"Mon Jan 2 2006 15:04:05 -0700",
	"Mon Jan 2 2006 15:04:05",
	"Mon, 2 Jan 2006 15:04:05",
	"Mon, 2 Jan 2006 15:04",
	"2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04",
	"Monday, 2 January 2006 15:04:05 -0700",
	"Monday, 2 January 2006 15:04:05",
	"2 January 2006 15:04:05 -0700",
	"2 January 2006 15:04:05",
	"2 January 2006 15:04",
	"2 January 2006",
}

// errWeekdayMismatch is the cause recorded when a leading day of week
// disagrees with the date.
var errWeekdayMismatch = errors.New("day of week does not match date")

// ParseRFC2822 parses an RFC 2822 date-time and returns the instant in UTC.
//
// Besides the strict grammar ("Tue, 26 Jan 2016 13:48:02 GMT") it accepts the
// obsolete zone names and free-form variants such as
// "December 17, 1995 03:24:00" or "26 January 2016 13:48:02". Values without a
// zone are read in UTC. Month and weekday names are matched case-insensitively,
// and a leading day of week must agree with the date.
func ParseRFC2822(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, newParseError(FormatRFC2822, value, errEmptyValue)
	}

	normalized := normalizeRFC2822(trimmed)

	t, err := mail.ParseDate(normalized)
	if err != nil {
		var ok bool
		if t, ok = parseFreeForm(normalized); !ok {
			return time.Time{}, newParseError(FormatRFC2822, value, err)
		}
	}

	if err := checkWeekday(normalized, t); err != nil {
		return time.Time{}, newParseError(FormatRFC2822, value, err)
	}
	return t.UTC(), nil
}

func parseFreeForm(s string) (time.Time, bool) {
	for _, layout := range freeFormLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// checkWeekday rejects a leading day of week that is not the weekday of t in
// the value's own zone.
func checkWeekday(s string, t time.Time) error {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	name := strings.ToLower(strings.TrimRight(fields[0], ","))
	want, ok := weekdayNames[name]
	if !ok || want == t.Weekday() {
		return nil
	}
	return fmt.Errorf("%w: %s is a %s", errWeekdayMismatch, t.Format("2 Jan 2006"), t.Weekday())
}

// ParseRFC2822ToUnixMilli parses an RFC 2822 date-time and returns the number
// of milliseconds since the Unix epoch in UTC.
func ParseRFC2822ToUnixMilli(value string) (int64, error) {
	t, err := ParseRFC2822(value)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// normalizeRFC2822 title-cases calendar names and rewrites a trailing
// obsolete zone name as a numeric offset.
func normalizeRFC2822(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}

	last := len(fields) - 1
	if offset, ok := obsoleteZones[strings.ToUpper(fields[last])]; ok && last > 0 {
		fields[last] = offset
	}

	// Casers are stateful, so one per call.
	caser := cases.Title(language.English)
	for i, f := range fields {
		word := strings.ToLower(strings.TrimRight(f, ",."))
		if _, ok := calendarNames[word]; ok {
			fields[i] = caser.String(f)
		}
	}

	return strings.Join(fields, " ")
}
