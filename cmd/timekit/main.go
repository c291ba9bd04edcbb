// Package main provides the entry point for the timekit CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/timekit/internal/cli"
	"github.com/mrz1836/timekit/internal/signal"
)

// Set via ldflags at build time.
var (
	version = "dev"     //nolint:gochecknoglobals // ldflags target
	commit  = "none"    //nolint:gochecknoglobals // ldflags target
	date    = "unknown" //nolint:gochecknoglobals // ldflags target
)

// interruptWatcher is the part of signal.Watcher that run depends on.
type interruptWatcher interface {
	Context() context.Context
	Received() (os.Signal, bool)
	Stop()
}

// executeFunc runs the CLI; cli.Execute in production.
type executeFunc func(ctx context.Context, info cli.BuildInfo) error

func main() {
	os.Exit(run(signal.Watch(context.Background()), cli.Execute))
}

// run executes the CLI under w and returns the process exit code. A received
// signal wins over whatever error the interrupted command returned.
func run(w interruptWatcher, execute executeFunc) int {
	defer w.Stop()

	err := execute(w.Context(), cli.BuildInfo{Version: version, Commit: commit, Date: date})
	if _, interrupted := w.Received(); interrupted {
		return cli.ExitInterrupted
	}
	return cli.ExitCodeForError(err)
}
