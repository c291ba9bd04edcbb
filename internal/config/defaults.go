package config

import "github.com/mrz1836/timekit/internal/constants"

// DefaultConfig returns a new Config with the built-in defaults.
// These match the defaults registered on every Viper instance.
func DefaultConfig() *Config {
	return &Config{
		Parse: ParseConfig{
			// UTC keeps results identical across hosts.
			AssumeZone: ZoneAssumption(constants.DefaultZoneAssumption),
		},
		Span: SpanConfig{
			MinHourDigits: constants.DefaultMinHourDigits,
		},
		Batch: BatchConfig{
			Workers: constants.DefaultBatchWorkers,
			Timeout: constants.DefaultBatchTimeout,
		},
		Log: LogConfig{
			Dir:        "",
			MaxSizeMB:  constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
			MaxAgeDays: constants.LogMaxAgeDays,
			Compress:   constants.LogCompress,
		},
	}
}
