// Package config provides configuration management for timekit with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by the command that owns them)
//  2. Environment variables (TIMEKIT_* prefix, "." replaced by "_")
//  3. Project config (.timekit/config.yaml)
//  4. Global config (~/.timekit/config.yaml, or $TIMEKIT_HOME/config.yaml)
//  5. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import (
	"strings"
	"time"

	"github.com/mrz1836/timekit/internal/constants"
)

// Config is the root configuration structure for timekit.
type Config struct {
	// Parse controls how date strings are interpreted.
	Parse ParseConfig `yaml:"parse" mapstructure:"parse"`

	// Span controls time span rendering.
	Span SpanConfig `yaml:"span" mapstructure:"span"`

	// Batch controls batch file evaluation.
	Batch BatchConfig `yaml:"batch" mapstructure:"batch"`

	// Log controls the rotating log file.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// ParseConfig contains settings for the date parsers.
type ParseConfig struct {
	// AssumeZone is the zone applied to ISO 8601 values with no offset.
	// Default: "utc"
	AssumeZone ZoneAssumption `yaml:"assume_zone" mapstructure:"assume_zone"`
}

// SpanConfig contains settings for HH:mm:ss.sss rendering.
type SpanConfig struct {
	// MinHourDigits is the minimum width of the hours field.
	// Default: 2, Valid range: 1-6
	MinHourDigits int `yaml:"min_hour_digits" mapstructure:"min_hour_digits"`
}

// BatchConfig contains settings for batch evaluation.
type BatchConfig struct {
	// Workers is the number of jobs evaluated concurrently.
	// Default: 4, Valid range: 1-64
	Workers int `yaml:"workers" mapstructure:"workers"`

	// Timeout bounds a whole batch run.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// LogConfig contains settings for the rotating log file.
type LogConfig struct {
	// Dir overrides the log directory. Empty means <timekit home>/logs.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// MaxSizeMB is the size in megabytes at which the file rotates.
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is the number of rotated files kept.
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays is the number of days rotated files are kept.
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`

	// Compress gzips rotated files.
	Compress bool `yaml:"compress" mapstructure:"compress"`
}

// ZoneAssumption names the zone used for offset-less ISO 8601 values.
type ZoneAssumption string

// Supported zone assumptions.
const (
	ZoneUTC   ZoneAssumption = constants.ZoneUTC
	ZoneLocal ZoneAssumption = constants.ZoneLocal
)

// ParseZoneAssumption normalizes s and reports whether it names a supported assumption.
func ParseZoneAssumption(s string) (ZoneAssumption, bool) {
	z := ZoneAssumption(strings.ToLower(strings.TrimSpace(s)))
	return z, z.Valid()
}

// Valid reports whether z is a supported assumption.
func (z ZoneAssumption) Valid() bool {
	return z == ZoneUTC || z == ZoneLocal
}

// Location returns the *time.Location for z. Anything but "local" is UTC.
func (z ZoneAssumption) Location() *time.Location {
	if z == ZoneLocal {
		return time.Local
	}
	return time.UTC
}

// Settings returns the configuration as nested maps of display values,
// suitable for YAML or JSON rendering.
func (c *Config) Settings() map[string]map[string]any {
	return map[string]map[string]any{
		"parse": {
			"assume_zone": string(c.Parse.AssumeZone),
		},
		"span": {
			"min_hour_digits": c.Span.MinHourDigits,
		},
		"batch": {
			"workers": c.Batch.Workers,
			"timeout": c.Batch.Timeout.String(),
		},
		"log": {
			"dir":          c.Log.Dir,
			"max_size_mb":  c.Log.MaxSizeMB,
			"max_backups":  c.Log.MaxBackups,
			"max_age_days": c.Log.MaxAgeDays,
			"compress":     c.Log.Compress,
		},
	}
}
