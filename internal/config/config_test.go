package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/errors"
)

func writeConfig(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, constants.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, ZoneUTC, cfg.Parse.AssumeZone)
	assert.Equal(t, 2, cfg.Span.MinHourDigits)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, 30*time.Second, cfg.Batch.Timeout)
}

func TestLoadFromPaths_NoFilesUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFromPaths(context.Background(),
		filepath.Join(dir, "missing-project.yaml"),
		filepath.Join(dir, "missing-global.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPaths_EmptyPathsUseDefaults(t *testing.T) {
	cfg, err := LoadFromPaths(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPaths_ProjectOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	projectDir := t.TempDir()

	globalPath := writeConfig(t, globalDir, `
parse:
  assume_zone: local
batch:
  workers: 8
  timeout: 1m
`)
	projectPath := writeConfig(t, projectDir, `
batch:
  workers: 2
span:
  min_hour_digits: 3
`)

	cfg, err := LoadFromPaths(context.Background(), projectPath, globalPath)
	require.NoError(t, err)

	assert.Equal(t, ZoneLocal, cfg.Parse.AssumeZone, "global value survives when project is silent")
	assert.Equal(t, 2, cfg.Batch.Workers, "project wins over global")
	assert.Equal(t, time.Minute, cfg.Batch.Timeout)
	assert.Equal(t, 3, cfg.Span.MinHourDigits)
}

func TestLoadFromPaths_ZoneIsNormalized(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "parse:\n  assume_zone: \" Local \"\n")

	cfg, err := LoadFromPaths(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, ZoneLocal, cfg.Parse.AssumeZone)
}

func TestLoadFromPaths_EnvOverridesFiles(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "batch:\n  workers: 2\n")

	t.Setenv("TIMEKIT_BATCH_WORKERS", "16")
	t.Setenv("TIMEKIT_PARSE_ASSUME_ZONE", "LOCAL")
	t.Setenv("TIMEKIT_BATCH_TIMEOUT", "5s")

	cfg, err := LoadFromPaths(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Batch.Workers)
	assert.Equal(t, ZoneLocal, cfg.Parse.AssumeZone)
	assert.Equal(t, 5*time.Second, cfg.Batch.Timeout)
}

func TestLoadFromPaths_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected error
	}{
		{"unknown zone", "parse:\n  assume_zone: mars\n", errors.ErrConfigInvalidParse},
		{"zero hour digits", "span:\n  min_hour_digits: 0\n", errors.ErrConfigInvalidSpan},
		{"too many workers", "batch:\n  workers: 1000\n", errors.ErrConfigInvalidBatch},
		{"negative timeout", "batch:\n  timeout: -1s\n", errors.ErrConfigInvalidBatch},
		{"negative backups", "log:\n  max_backups: -1\n", errors.ErrConfigInvalidLog},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.content)

			cfg, err := LoadFromPaths(context.Background(), path, "")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestLoadFromPaths_MalformedYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "batch: [unclosed\n")

	_, err := LoadFromPaths(context.Background(), path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read project config")
}

func TestLoad_UsesTimekitHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(constants.HomeEnvVar, home)
	writeConfig(t, home, "span:\n  min_hour_digits: 4\n")

	// Run from an empty directory so no project config is picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Span.MinHourDigits)
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Validate(nil), errors.ErrConfigNil)
}

func TestZoneAssumption(t *testing.T) {
	t.Parallel()

	z, ok := ParseZoneAssumption("UTC")
	assert.True(t, ok)
	assert.Equal(t, ZoneUTC, z)
	assert.Equal(t, time.UTC, z.Location())

	z, ok = ParseZoneAssumption("local")
	assert.True(t, ok)
	assert.Equal(t, time.Local, z.Location())

	z, ok = ParseZoneAssumption("Europe/Paris")
	assert.False(t, ok)
	assert.Equal(t, time.UTC, z.Location(), "unknown assumptions fall back to UTC")
}

func TestPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv(constants.HomeEnvVar, home)

	got, err := HomeDir()
	require.NoError(t, err)
	assert.Equal(t, home, got)

	global, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), global)

	assert.Equal(t, filepath.Join(".timekit", "config.yaml"), ProjectConfigPath())

	logDir, err := LogDir(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs"), logDir)

	custom := DefaultConfig()
	custom.Log.Dir = "/var/log/timekit"
	logDir, err = LogDir(custom)
	require.NoError(t, err)
	assert.Equal(t, "/var/log/timekit", logDir)
}

func TestSettings_RendersAsYAML(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(DefaultConfig().Settings())
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "utc", decoded["parse"]["assume_zone"])
	assert.Equal(t, "30s", decoded["batch"]["timeout"])
	assert.Equal(t, 4, decoded["batch"]["workers"])
}
