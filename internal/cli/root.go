// Package cli provides the command-line interface for timekit.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/timekit/internal/clock"
	"github.com/mrz1836/timekit/internal/errors"
	"github.com/mrz1836/timekit/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// This is set during PersistentPreRunE and should be accessed via GetLogger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// It MUST only be called after the root command's PersistentPreRunE has
// executed. Before that it returns a zero-value logger that discards output.
// This function is safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// rootOption customizes the root command; used by tests.
type rootOption func(*commandEnv)

// withClock replaces the system clock.
func withClock(c clock.Clock) rootOption {
	return func(e *commandEnv) {
		e.clock = c
	}
}

// withLogWriter sends log output to w instead of stderr and the log file.
func withLogWriter(w io.Writer) rootOption {
	return func(e *commandEnv) {
		e.logWriter = w
	}
}

// withConfigPaths replaces the project and global config file locations.
func withConfigPaths(project, global string) rootOption {
	return func(e *commandEnv) {
		e.projectConfigPath = project
		e.globalConfigPath = global
		e.configPathsSet = true
	}
}

// newRootCmd creates and returns the root command for the timekit CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo, opts ...rootOption) *cobra.Command {
	v := viper.New()
	env := &commandEnv{
		flags: flags,
		clock: clock.RealClock{},
	}
	for _, opt := range opts {
		opt(env)
	}

	cmd := &cobra.Command{
		Use:   "timekit",
		Short: "timekit - parse dates, check leap years, measure spans and clock angles",
		Long: `timekit is a small toolbox of date and time calculations.

Features:
  • Parse RFC 2822 and ISO 8601 dates into instants and Unix milliseconds
  • Check Gregorian leap years
  • Format the distance between two instants as HH:mm:ss.sss
  • Measure the angle between the hands of an analog clock
  • Evaluate many of the above concurrently from a YAML batch file`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			flags.Output = v.GetString("output")
			flags.Verbose = v.GetBool("verbose")
			flags.Quiet = v.GetBool("quiet")

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			cfg, err := env.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			env.cfg = cfg

			var logger zerolog.Logger
			if env.logWriter != nil {
				logger = InitLoggerWithWriter(flags.Verbose, flags.Quiet, env.logWriter)
			} else {
				logger = InitLogger(flags.Verbose, flags.Quiet, cfg)
			}
			globalLoggerMu.Lock()
			globalLogger = logger
			globalLoggerMu.Unlock()

			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddParseCommand(cmd, env)
	AddLeapCommand(cmd, env)
	AddSpanCommand(cmd, env)
	AddAngleCommand(cmd, env)
	AddBatchCommand(cmd, env)
	AddConfigCommand(cmd, env)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors not already reported as JSON are printed to stderr with a suggestion
// when one is known.
func Execute(ctx context.Context, info BuildInfo) error {
	defer CloseLogFile()

	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	err := cmd.ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, errors.ErrJSONErrorOutput) {
		tui.NewTTYOutput(os.Stderr).Error(tui.WrapWithSuggestion(err))
	}
	return err
}
