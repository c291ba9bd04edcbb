package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/errors"
)

// Rotation holds lumberjack rotation settings.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultRotation returns the built-in rotation settings.
func DefaultRotation() Rotation {
	return Rotation{
		MaxSizeMB:  constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAgeDays: constants.LogMaxAgeDays,
		Compress:   constants.LogCompress,
	}
}

// NewRotatingWriter creates dir if needed and returns a rotating writer for
// dir/timekit.log along with the file path.
func NewRotatingWriter(dir string, r Rotation) (io.WriteCloser, string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, "", errors.Wrap(err, "failed to create log directory")
	}

	path := filepath.Join(dir, constants.CLILogFileName)
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    r.MaxSizeMB,
		MaxBackups: r.MaxBackups,
		MaxAge:     r.MaxAgeDays,
		Compress:   r.Compress,
	}, path, nil
}
