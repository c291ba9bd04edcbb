package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/mrz1836/timekit/internal/clock"
	"github.com/mrz1836/timekit/internal/testutil"
)

// testNow is one hour after testutil.SampleTime.
var testNow = testutil.SampleTime().Add(time.Hour) //nolint:gochecknoglobals // test fixture

// runCLI executes the root command with args against an isolated config and
// a fixed clock, returning everything written to stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	return runCLIWithConfig(t,
		filepath.Join(dir, "missing-project.yaml"),
		filepath.Join(dir, "missing-global.yaml"),
		args...)
}

func runCLIWithConfig(t *testing.T, projectPath, globalPath string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"},
		withClock(clock.Fixed{At: testNow}),
		withLogWriter(io.Discard),
		withConfigPaths(projectPath, globalPath),
	)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}
