package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/operation"
)

// AddSpanCommand adds the span command to root.
func AddSpanCommand(root *cobra.Command, env *commandEnv) {
	root.AddCommand(newSpanCmd(env))
}

func newSpanCmd(env *commandEnv) *cobra.Command {
	var zone string

	cmd := &cobra.Command{
		Use:   "span <start> <end>",
		Short: "Format the distance between two instants as HH:mm:ss.sss",
		Long: `Print the absolute distance between two ISO 8601 instants as
HH:mm:ss.sss. Argument order does not matter and hours are not wrapped at 24.

Examples:
  timekit span 2016-01-26T00:00:00Z 2016-01-27T02:00:00Z   # 26:00:00.000
  timekit span 2016-01-26T10:00:00+02:00 2016-01-26T08:00:00Z`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, env, zone, constants.OpSpan, args, func(o *operation.Outcome) []field {
				return []field{
					{"Span", o.Value},
					{"Milliseconds", strconv.FormatInt(*o.UnixMilli, 10)},
				}
			})
		},
	}

	addAssumeZoneFlag(cmd, &zone)
	return cmd
}
