package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/operation"
)

// AddParseCommand adds the parse command and its rfc2822 and iso8601
// subcommands to root.
func AddParseCommand(root *cobra.Command, env *commandEnv) {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a date string into an instant",
	}

	cmd.AddCommand(newParseRFC2822Cmd(env))
	cmd.AddCommand(newParseISO8601Cmd(env))
	root.AddCommand(cmd)
}

func newParseRFC2822Cmd(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "rfc2822 <date>",
		Short: "Parse an RFC 2822 date into Unix milliseconds",
		Long: `Parse an RFC 2822 date, such as an email Date header, and print its
Unix timestamp in milliseconds.

Obsolete zone names (GMT, EST, PDT, ...) are honored, and looser forms such
as "January 26, 2016 13:48:02" are read as UTC.

Examples:
  timekit parse rfc2822 "Tue, 26 Jan 2016 13:48:02 GMT"
  timekit parse rfc2822 "26 Jan 2016 08:48:02 -0500" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, env, "", constants.OpRFC2822, args, func(o *operation.Outcome) []field {
				return instantFields(env, *o.Instant)
			})
		},
	}
}

func newParseISO8601Cmd(env *commandEnv) *cobra.Command {
	var zone string

	cmd := &cobra.Command{
		Use:   "iso8601 <date>",
		Short: "Parse an ISO 8601 date-time",
		Long: `Parse an ISO 8601 date or date-time and print the instant it denotes.

Values without an offset are read in the zone set by parse.assume_zone
(default utc) or --assume-zone.

Examples:
  timekit parse iso8601 2016-01-26T13:48:02Z
  timekit parse iso8601 2016-01-26T13:48:02 --assume-zone local`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, env, zone, constants.OpISO8601, args, func(o *operation.Outcome) []field {
				fields := []field{{"Instant", o.Instant.Format(time.RFC3339Nano)}}
				return append(fields, instantFields(env, *o.Instant)...)
			})
		},
	}

	addAssumeZoneFlag(cmd, &zone)
	return cmd
}
