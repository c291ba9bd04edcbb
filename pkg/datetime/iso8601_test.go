package datetime_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/timekit/pkg/datetime"
)

func TestParseISO8601(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "explicit zero offset",
			input:    "2016-01-19T16:07:37+00:00",
			expected: time.Date(2016, 1, 19, 16, 7, 37, 0, time.UTC),
		},
		{
			name:     "Z designator",
			input:    "2016-01-19T16:07:37Z",
			expected: time.Date(2016, 1, 19, 16, 7, 37, 0, time.UTC),
		},
		{
			name:     "positive offset",
			input:    "2016-01-19T18:07:37+02:00",
			expected: time.Date(2016, 1, 19, 16, 7, 37, 0, time.UTC),
		},
		{
			name:     "basic offset without colon",
			input:    "2016-01-19T11:07:37-0500",
			expected: time.Date(2016, 1, 19, 16, 7, 37, 0, time.UTC),
		},
		{
			name:     "hour-only offset",
			input:    "2016-01-19T21:07:37+05",
			expected: time.Date(2016, 1, 19, 16, 7, 37, 0, time.UTC),
		},
		{
			name:     "hour-only offset minutes precision",
			input:    "2016-01-19T21:07+05",
			expected: time.Date(2016, 1, 19, 16, 7, 0, 0, time.UTC),
		},
		{
			name:     "fractional seconds",
			input:    "2016-01-19T16:07:37.250Z",
			expected: time.Date(2016, 1, 19, 16, 7, 37, 250_000_000, time.UTC),
		},
		{
			name:     "minutes precision with offset",
			input:    "2016-01-19T16:07Z",
			expected: time.Date(2016, 1, 19, 16, 7, 0, 0, time.UTC),
		},
		{
			name:     "no offset is UTC",
			input:    "2016-01-19T16:07:37",
			expected: time.Date(2016, 1, 19, 16, 7, 37, 0, time.UTC),
		},
		{
			name:     "no offset minutes precision",
			input:    "2016-01-19T16:07",
			expected: time.Date(2016, 1, 19, 16, 7, 0, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2016-01-19",
			expected: time.Date(2016, 1, 19, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := datetime.ParseISO8601(tc.input)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestParseISO8601_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"2016-01-19T16:07:37+00:00",
		"2016-01-19T18:07:37+02:00",
		"1999-12-31T23:59:59.999-08:00",
		"2000-02-29T00:00:00Z",
		"2016-01-19T16:07:37",
		"2016-01-19",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			parsed, err := datetime.ParseISO8601(input)
			require.NoError(t, err)

			formatted := parsed.Format(time.RFC3339Nano)
			reparsed, err := datetime.ParseISO8601(formatted)
			require.NoError(t, err)
			assert.True(t, parsed.Equal(reparsed), "%s re-parsed as %s", formatted, reparsed)
		})
	}
}

func TestParseISO8601InLocation(t *testing.T) {
	t.Parallel()

	plusThree := time.FixedZone("UTC+3", 3*60*60)

	t.Run("offset-less value uses location", func(t *testing.T) {
		t.Parallel()

		got, err := datetime.ParseISO8601InLocation("2016-01-19T16:07:37", plusThree)
		require.NoError(t, err)
		assert.True(t, time.Date(2016, 1, 19, 13, 7, 37, 0, time.UTC).Equal(got))
	})

	t.Run("explicit offset ignores location", func(t *testing.T) {
		t.Parallel()

		got, err := datetime.ParseISO8601InLocation("2016-01-19T16:07:37Z", plusThree)
		require.NoError(t, err)
		assert.True(t, time.Date(2016, 1, 19, 16, 7, 37, 0, time.UTC).Equal(got))
	})

	t.Run("nil location means UTC", func(t *testing.T) {
		t.Parallel()

		got, err := datetime.ParseISO8601InLocation("2016-01-19T16:07:37", nil)
		require.NoError(t, err)
		assert.True(t, time.Date(2016, 1, 19, 16, 7, 37, 0, time.UTC).Equal(got))
	})
}

func TestParseISO8601_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"  ",
		"random text",
		"2016-13-19T16:07:37Z",
		"2016-01-32",
		"2016-01-19T25:07:37Z",
		"2016/01/19",
		"Tue, 26 Jan 2016 13:48:02 GMT",
		"2016-01-19T16:07:37+00:00 trailing",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			got, err := datetime.ParseISO8601(input)
			require.Error(t, err)
			assert.True(t, got.IsZero())
			require.ErrorIs(t, err, datetime.ErrInvalidDate)

			var parseErr *datetime.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, datetime.FormatISO8601, parseErr.Format)
			assert.Contains(t, parseErr.Error(), "ISO 8601")
		})
	}
}

func TestParseISO8601_ReportsRangeCause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		cause string
	}{
		{"2016-02-30", "day out of range"},
		{"2015-02-29T10:00", "day out of range"},
		{"2016-01-19T25:07:37Z", "hour out of range"},
		{"2016-13-19", "month out of range"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			_, err := datetime.ParseISO8601(tc.input)

			var parseErr *datetime.ParseError
			require.True(t, errors.As(err, &parseErr))
			require.Error(t, parseErr.Err)
			assert.Contains(t, parseErr.Err.Error(), tc.cause)
		})
	}
}
