package config

import (
	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - parse.assume_zone must be "utc" or "local"
//   - span.min_hour_digits must be between 1 and 6
//   - batch.workers must be between 1 and 64
//   - batch.timeout must be positive
//   - log size, backups and age must not be negative
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if !cfg.Parse.AssumeZone.Valid() {
		return errors.Wrapf(errors.ErrConfigInvalidParse,
			"parse.assume_zone must be %q or %q, got %q", ZoneUTC, ZoneLocal, cfg.Parse.AssumeZone)
	}

	if cfg.Span.MinHourDigits < 1 || cfg.Span.MinHourDigits > constants.MaxMinHourDigits {
		return errors.Wrapf(errors.ErrConfigInvalidSpan,
			"span.min_hour_digits must be between 1 and %d, got %d", constants.MaxMinHourDigits, cfg.Span.MinHourDigits)
	}

	if err := validateBatchConfig(&cfg.Batch); err != nil {
		return err
	}

	return validateLogConfig(&cfg.Log)
}

func validateBatchConfig(cfg *BatchConfig) error {
	if cfg.Workers < 1 || cfg.Workers > constants.MaxBatchWorkers {
		return errors.Wrapf(errors.ErrConfigInvalidBatch,
			"batch.workers must be between 1 and %d, got %d", constants.MaxBatchWorkers, cfg.Workers)
	}

	if cfg.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidBatch,
			"batch.timeout must be positive, got %s", cfg.Timeout)
	}

	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg.MaxSizeMB < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log.max_size_mb must not be negative, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log.max_backups must not be negative, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log.max_age_days must not be negative, got %d", cfg.MaxAgeDays)
	}
	return nil
}
