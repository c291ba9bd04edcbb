package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/operation"
)

// AddAngleCommand adds the angle command to root.
func AddAngleCommand(root *cobra.Command, env *commandEnv) {
	root.AddCommand(newAngleCmd(env))
}

func newAngleCmd(env *commandEnv) *cobra.Command {
	var zone string

	cmd := &cobra.Command{
		Use:   "angle [time]",
		Short: "Measure the angle between the hands of an analog clock",
		Long: `Print the smaller angle between the hour and minute hands of an analog
clock showing the given time in UTC. The hour hand jumps on the hour.

The argument is an ISO 8601 instant or a UTC wall time HH:MM; the current
time is used when it is omitted.

Examples:
  timekit angle 03:00                    # π/2
  timekit angle 2016-01-26T09:30:00Z`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, env, zone, constants.OpAngle, args, func(o *operation.Outcome) []field {
				return []field{
					{"Clock (UTC)", o.Instant.UTC().Format("15:04")},
					{"Radians", o.Value},
					{"Degrees", strconv.FormatFloat(*o.Degrees, 'f', -1, 64)},
				}
			})
		},
	}

	addAssumeZoneFlag(cmd, &zone)
	return cmd
}
