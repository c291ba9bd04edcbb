package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/timekit/internal/errors"
)

// ConfigShowFlags holds flags specific to the config show command.
type ConfigShowFlags struct {
	// Format is the document format (yaml or json).
	Format string
}

// AddConfigCommand adds the config command and its show subcommand to root.
func AddConfigCommand(root *cobra.Command, env *commandEnv) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect timekit configuration",
	}

	cmd.AddCommand(newConfigShowCmd(env, &ConfigShowFlags{}))
	root.AddCommand(cmd)
}

func newConfigShowCmd(env *commandEnv, flags *ConfigShowFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective timekit configuration after merging, in order of
precedence:
  - TIMEKIT_* environment variables (e.g. TIMEKIT_BATCH_WORKERS)
  - project config: .timekit/config.yaml
  - global config: ~/.timekit/config.yaml (or $TIMEKIT_HOME/config.yaml)
  - built-in defaults

Examples:
  timekit config show
  timekit config show --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.OutOrStdout(), env, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Format, "format", "yaml", "document format (yaml|json)")

	return cmd
}

func runConfigShow(w io.Writer, env *commandEnv, flags *ConfigShowFlags) error {
	settings := env.effectiveConfig().Settings()

	format := flags.Format
	if env.isJSON() {
		format = "json"
	}

	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(settings); err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		return nil
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(settings); err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return err
		}
		if path, err := LogFilePath(env.effectiveConfig()); err == nil {
			_, _ = fmt.Fprintf(w, "# log file: %s\n", path)
		}
		return nil
	default:
		return env.handleCommandError(w, errors.Wrapf(errors.ErrInvalidOutputFormat, "--format %q must be yaml or json", format))
	}
}
