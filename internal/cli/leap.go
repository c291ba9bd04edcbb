package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/operation"
)

// AddLeapCommand adds the leap command to root.
func AddLeapCommand(root *cobra.Command, env *commandEnv) {
	root.AddCommand(newLeapCmd(env))
}

func newLeapCmd(env *commandEnv) *cobra.Command {
	var zone string

	cmd := &cobra.Command{
		Use:   "leap [year|date]",
		Short: "Report whether a year is a Gregorian leap year",
		Long: `Report whether a year is a leap year in the proleptic Gregorian calendar.

The argument is a bare year (e.g. 1900, -400) or an ISO 8601 date; the
current year is used when it is omitted.

Examples:
  timekit leap 2000
  timekit leap 2016-02-29
  timekit leap`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, env, zone, constants.OpLeap, args, func(o *operation.Outcome) []field {
				verdict := "not a leap year"
				if *o.Leap {
					verdict = "leap year"
				}
				return []field{
					{"Year", fmt.Sprint(*o.Year)},
					{"Result", verdict},
				}
			})
		},
	}

	addAssumeZoneFlag(cmd, &zone)
	return cmd
}
