// Package testutil provides fixtures and helpers shared by timekit tests.
// It should only be imported by test files (*_test.go).
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Sample instants used across packages.
const (
	// SampleRFC2822 is an email-style date for SampleUnixMilli.
	SampleRFC2822 = "Tue, 26 Jan 2016 13:48:02 GMT"

	// SampleISO8601 is the same instant in ISO 8601.
	SampleISO8601 = "2016-01-26T13:48:02Z"

	// SampleUnixMilli is the Unix millisecond timestamp of the samples.
	SampleUnixMilli int64 = 1453816082000
)

// SampleTime returns the sample instant in UTC.
func SampleTime() time.Time {
	return time.UnixMilli(SampleUnixMilli).UTC()
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
