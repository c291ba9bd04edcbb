package errors

import "fmt"

// Wrap adds context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage.
//
// The wrapped error preserves the original chain, so sentinel checks
// keep working:
//
//	if err := config.Validate(cfg); err != nil {
//	    return errors.Wrap(err, "invalid configuration")
//	}
//
//	if errors.Is(err, errors.ErrConfigInvalidBatch) {
//	    // Handle batch-specific error
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to errors at package boundaries.
// It returns nil if err is nil.
//
//	return errors.Wrapf(err, "job %q", job.Name)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}
