// Package errors provides centralized error handling for timekit.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the CLI. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidArgument indicates that a command argument could not be used.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnparseableDate indicates a date argument matched no accepted grammar.
	ErrUnparseableDate = errors.New("unparseable date")

	// ErrUnknownOperation indicates an operation name outside the supported set.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrWrongArgCount indicates an operation received the wrong number of arguments.
	ErrWrongArgCount = errors.New("wrong number of arguments")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidParse indicates an invalid parse configuration value.
	ErrConfigInvalidParse = errors.New("invalid parse configuration")

	// ErrConfigInvalidSpan indicates an invalid span configuration value.
	ErrConfigInvalidSpan = errors.New("invalid span configuration")

	// ErrConfigInvalidBatch indicates an invalid batch configuration value.
	ErrConfigInvalidBatch = errors.New("invalid batch configuration")

	// ErrConfigInvalidLog indicates an invalid log configuration value.
	ErrConfigInvalidLog = errors.New("invalid log configuration")

	// ErrBatchFileInvalid indicates a batch file could not be read or decoded.
	ErrBatchFileInvalid = errors.New("invalid batch file")

	// ErrBatchEmpty indicates a batch file contained no jobs.
	ErrBatchEmpty = errors.New("batch has no jobs")

	// ErrBatchTooLarge indicates a batch file exceeded the job limit.
	ErrBatchTooLarge = errors.New("batch has too many jobs")

	// ErrBatchJobsFailed indicates that one or more batch jobs failed.
	ErrBatchJobsFailed = errors.New("batch jobs failed")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// Commands should silence cobra's error printing when this is returned.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
