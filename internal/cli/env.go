package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/mrz1836/timekit/internal/clock"
	"github.com/mrz1836/timekit/internal/config"
	"github.com/mrz1836/timekit/internal/errors"
	"github.com/mrz1836/timekit/internal/operation"
	"github.com/mrz1836/timekit/internal/tui"
)

// commandEnv carries what subcommands share: the global flags, the effective
// configuration loaded in PersistentPreRunE and the clock.
type commandEnv struct {
	flags *GlobalFlags
	cfg   *config.Config
	clock clock.Clock

	logWriter io.Writer

	projectConfigPath string
	globalConfigPath  string
	configPathsSet    bool
}

// loadConfig loads the layered configuration from the default locations or
// the ones set with withConfigPaths.
func (e *commandEnv) loadConfig(ctx context.Context) (*config.Config, error) {
	if !e.configPathsSet {
		return config.Load(ctx)
	}
	return config.LoadFromPaths(ctx, e.projectConfigPath, e.globalConfigPath)
}

// effectiveConfig returns the loaded configuration, or the defaults when a command
// runs without the root PersistentPreRunE.
func (e *commandEnv) effectiveConfig() *config.Config {
	if e.cfg == nil {
		return config.DefaultConfig()
	}
	return e.cfg
}

// resolver builds an operation.Resolver from the configuration. A non-empty
// zone overrides parse.assume_zone.
func (e *commandEnv) resolver(zone string) (*operation.Resolver, error) {
	cfg := e.effectiveConfig()

	assume := cfg.Parse.AssumeZone
	if zone != "" {
		z, ok := config.ParseZoneAssumption(zone)
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidArgument, "--assume-zone %q must be utc or local", zone)
		}
		assume = z
	}

	return &operation.Resolver{
		Location:      assume.Location(),
		MinHourDigits: cfg.Span.MinHourDigits,
		Clock:         e.clock,
	}, nil
}

// output returns the tui.Output for the selected format.
func (e *commandEnv) output(w io.Writer) tui.Output {
	return tui.NewOutput(w, e.flags.Output)
}

// isJSON reports whether JSON output was requested.
func (e *commandEnv) isJSON() bool {
	return e.flags.Output == OutputJSON
}

// handleCommandError reports err as JSON on w when JSON output is selected
// and returns an error wrapping both ErrJSONErrorOutput and err, so the exit
// code still reflects err. In text mode err is returned unchanged and printed
// by Execute.
func (e *commandEnv) handleCommandError(w io.Writer, err error) error {
	if err == nil || !e.isJSON() {
		return err
	}
	tui.NewJSONOutput(w).Error(tui.WrapWithSuggestion(err))
	return fmt.Errorf("%w: %w", errors.ErrJSONErrorOutput, err)
}
