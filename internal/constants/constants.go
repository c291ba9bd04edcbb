// Package constants provides centralized constant values used throughout timekit.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// AppName is the binary and environment-variable prefix base.
const AppName = "timekit"

// EnvPrefix is the prefix for configuration environment variables (TIMEKIT_*).
const EnvPrefix = "TIMEKIT"

// HomeEnvVar overrides the timekit home directory when set.
const HomeEnvVar = "TIMEKIT_HOME"

// Directory and file names used by timekit.
const (
	// TimekitHome is the hidden directory name where timekit stores its data.
	// It is created in the user's home directory, and a project may carry its own.
	TimekitHome = ".timekit"

	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "timekit.log"
)

// Log rotation defaults.
const (
	// LogMaxSizeMB is the size at which the log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days rotated files are kept.
	LogMaxAgeDays = 14

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true

	// MaxLoggedInputLen bounds the length of "input" fields in log entries.
	MaxLoggedInputLen = 256
)

// Zone assumptions for ISO 8601 values that carry no offset.
const (
	// ZoneUTC reads offset-less values as UTC.
	ZoneUTC = "utc"

	// ZoneLocal reads offset-less values in the host's local zone.
	ZoneLocal = "local"

	// DefaultZoneAssumption keeps results independent of the host.
	DefaultZoneAssumption = ZoneUTC
)

// Time span rendering.
const (
	// DefaultMinHourDigits is the minimum width of the hours field.
	DefaultMinHourDigits = 2

	// MaxMinHourDigits bounds the configurable hours width.
	MaxMinHourDigits = 6
)

// Batch evaluation defaults and limits.
const (
	// DefaultBatchWorkers is the number of jobs evaluated concurrently.
	DefaultBatchWorkers = 4

	// MaxBatchWorkers bounds the configurable worker count.
	MaxBatchWorkers = 64

	// DefaultBatchTimeout bounds a whole batch run.
	DefaultBatchTimeout = 30 * time.Second

	// MaxBatchJobs bounds the number of jobs in one batch file.
	MaxBatchJobs = 10000
)

// Operation names shared by the CLI and batch files.
const (
	OpRFC2822 = "rfc2822"
	OpISO8601 = "iso8601"
	OpLeap    = "leap"
	OpSpan    = "span"
	OpAngle   = "angle"
)

// Operations returns every supported operation name.
func Operations() []string {
	return []string{OpRFC2822, OpISO8601, OpLeap, OpSpan, OpAngle}
}
