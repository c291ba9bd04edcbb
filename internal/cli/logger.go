package cli

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/mrz1836/timekit/internal/config"
	"github.com/mrz1836/timekit/internal/constants"
	"github.com/mrz1836/timekit/internal/logging"
)

var (
	// logFileWriter holds the rotating log file for cleanup on exit.
	logFileWriter   io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup
	logFileWriterMu sync.Mutex     //nolint:gochecknoglobals // Protects logFileWriter

	// zerologConfigOnce ensures zerolog global settings are configured exactly once.
	zerologConfigOnce sync.Once //nolint:gochecknoglobals // One-time configuration

	// zerologGlobalMu protects writes to the zerolog global logger.
	// This is separate from globalLoggerMu to avoid deadlocks.
	zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // Protects zerolog global
)

// configureZerologGlobals sets zerolog field names for timekit log entries.
func configureZerologGlobals() {
	zerologConfigOnce.Do(func() {
		zerolog.TimestampFieldName = "ts"
		zerolog.MessageFieldName = "event"
	})
}

// buildLogger creates a logger whose entries all carry the same run ID.
func buildLogger(level zerolog.Level, w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(level).Hook(logging.NewRunIDHook()).With().Timestamp().Logger()
}

// InitLogger creates and configures a zerolog.Logger based on verbosity flags.
//
// Log levels are set as follows:
//   - verbose=true: Debug level (most detailed)
//   - quiet=true: Warn level (errors and warnings only)
//   - default: Info level (normal operation)
//
// Console output is a ConsoleWriter on a color TTY and JSON on stderr
// otherwise. Entries are also written to the rotating log file in the
// directory from config.LogDir. If the file cannot be opened the logger
// continues with console-only output.
func InitLogger(verbose, quiet bool, cfg *config.Config) zerolog.Logger {
	configureZerologGlobals()

	level := selectLevel(verbose, quiet)
	console := selectOutput()

	writer := console
	fileWriter, err := createLogFileWriter(cfg)
	if err == nil {
		setLogFileWriter(fileWriter)
		writer = zerolog.MultiLevelWriter(console, fileWriter)
	}

	logger := buildLogger(level, writer)
	if err != nil {
		logger.Debug().Err(err).Msg("log file unavailable, logging to console only")
	}
	setGlobalLogger(logger)
	return logger
}

// InitLoggerWithWriter creates and configures a zerolog.Logger with a custom writer.
// This is primarily intended for testing purposes.
func InitLoggerWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	configureZerologGlobals()

	logger := buildLogger(selectLevel(verbose, quiet), w)
	setGlobalLogger(logger)
	return logger
}

// setGlobalLogger points the zerolog/log package logger at the CLI logger.
// This function is safe for concurrent use.
func setGlobalLogger(cliLogger zerolog.Logger) {
	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = cliLogger
}

func setLogFileWriter(w io.WriteCloser) {
	logFileWriterMu.Lock()
	defer logFileWriterMu.Unlock()
	if logFileWriter != nil {
		_ = logFileWriter.Close()
	}
	logFileWriter = w
}

// CloseLogFile closes the log file writer if it was opened.
func CloseLogFile() {
	setLogFileWriter(nil)
}

// selectLevel determines the appropriate log level based on flags.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectOutput determines the appropriate console writer based on
// terminal capabilities and environment settings.
func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" { //nolint:gosec // Fd fits in int on supported platforms
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}

	return os.Stderr
}

// createLogFileWriter opens the rotating CLI log file.
func createLogFileWriter(cfg *config.Config) (io.WriteCloser, error) {
	dir, err := config.LogDir(cfg)
	if err != nil {
		return nil, err
	}

	rotation := logging.DefaultRotation()
	if cfg != nil {
		rotation = logging.Rotation{
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		}
	}

	w, _, err := logging.NewRotatingWriter(dir, rotation)
	return w, err
}

// LogFilePath returns the path of the CLI log file for cfg.
func LogFilePath(cfg *config.Config) (string, error) {
	dir, err := config.LogDir(cfg)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.CLILogFileName), nil
}
