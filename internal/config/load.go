package config

import (
	"context"
	stderrors "errors"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/errors"
)

// newViperInstance creates a Viper instance with the TIMEKIT_ environment
// prefix, the "." to "_" key replacer, and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// isMissingFile reports errors that mean "no config at this level".
func isMissingFile(err error) bool {
	return isConfigNotFoundError(err) || os.IsNotExist(err)
}

// unmarshalAndValidate unmarshals viper config into Config and validates it.
func unmarshalAndValidate(ctx context.Context, v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("parse.assume_zone", string(cfg.Parse.AssumeZone)).
		Int("batch.workers", cfg.Batch.Workers).
		Dur("batch.timeout", cfg.Batch.Timeout).
		Msg("configuration loaded and unmarshaled")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence:
// environment, project config, global config, then built-in defaults.
//
// Missing config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	globalPath, err := GlobalConfigPath()
	if err != nil {
		// Home directory unavailable, skip the global layer.
		globalPath = ""
	}
	return LoadFromPaths(ctx, ProjectConfigPath(), globalPath)
}

// LoadFromPaths loads configuration from specific file paths.
// projectConfigPath has higher priority than globalConfigPath.
// Either path can be empty to skip that level.
func LoadFromPaths(ctx context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isMissingFile(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isMissingFile(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(ctx, v)
}

// setDefaults registers the built-in defaults. Keys must match the
// mapstructure tags so environment variables resolve.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("parse.assume_zone", string(defaults.Parse.AssumeZone))

	v.SetDefault("span.min_hour_digits", defaults.Span.MinHourDigits)

	v.SetDefault("batch.workers", defaults.Batch.Workers)
	v.SetDefault("batch.timeout", defaults.Batch.Timeout.String())

	v.SetDefault("log.dir", defaults.Log.Dir)
	v.SetDefault("log.max_size_mb", defaults.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", defaults.Log.MaxBackups)
	v.SetDefault("log.max_age_days", defaults.Log.MaxAgeDays)
	v.SetDefault("log.compress", defaults.Log.Compress)
}

// viperDecoderOption converts duration strings and zone names while decoding.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			stringToZoneAssumptionHookFunc(),
		),
	)
}

// stringToZoneAssumptionHookFunc lower-cases and trims zone names so
// "UTC" and " Local " are accepted.
func stringToZoneAssumptionHookFunc() mapstructure.DecodeHookFuncType {
	zoneType := reflect.TypeOf(ZoneAssumption(""))
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != zoneType {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		z, _ := ParseZoneAssumption(s)
		return z, nil
	}
}
