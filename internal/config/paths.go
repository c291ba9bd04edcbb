package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/errors"
)

// HomeDir returns the timekit home directory: $TIMEKIT_HOME when set,
// otherwise ~/.timekit.
func HomeDir() (string, error) {
	if home := os.Getenv(constants.HomeEnvVar); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(userHome, constants.TimekitHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file.
func GlobalConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns the path of the project configuration file,
// relative to the working directory.
func ProjectConfigPath() string {
	return filepath.Join(constants.TimekitHome, constants.ConfigFileName)
}

// LogDir returns the configured log directory, defaulting to <home>/logs.
func LogDir(cfg *Config) (string, error) {
	if cfg != nil && cfg.Log.Dir != "" {
		return cfg.Log.Dir, nil
	}
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.LogsDir), nil
}
