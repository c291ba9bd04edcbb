package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinels to user-facing text.
// A slice rather than a map because wrapped errors need errors.Is traversal.
//
//nolint:gochecknoglobals // Pre-built mapping
var errorInfoEntries = []errorEntry{
	{
		err: ErrUnparseableDate,
		info: ErrorInfo{
			Message: "The date could not be parsed.",
			Action:  "Use RFC 2822 (\"Tue, 26 Jan 2016 13:48:02 GMT\") or ISO 8601 (\"2016-01-26T13:48:02Z\").",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "An argument could not be used.",
			Action:  "Run the command with --help to see accepted values.",
		},
	},
	{
		err: ErrUnknownOperation,
		info: ErrorInfo{
			Message: "Unknown operation.",
			Action:  "Use one of: rfc2822, iso8601, leap, span, angle.",
		},
	},
	{
		err: ErrWrongArgCount,
		info: ErrorInfo{
			Message: "Wrong number of arguments for the operation.",
			Action:  "span takes two dates; rfc2822 and iso8601 take one; leap and angle take zero or one.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is missing.",
		},
	},
	{
		err: ErrConfigInvalidParse,
		info: ErrorInfo{
			Message: "Invalid parse configuration.",
			Action:  "Set parse.assume_zone to \"utc\" or \"local\".",
		},
	},
	{
		err: ErrConfigInvalidSpan,
		info: ErrorInfo{
			Message: "Invalid span configuration.",
			Action:  "Set span.min_hour_digits between 1 and 6.",
		},
	},
	{
		err: ErrConfigInvalidBatch,
		info: ErrorInfo{
			Message: "Invalid batch configuration.",
			Action:  "Set batch.workers between 1 and 64 and batch.timeout to a positive duration.",
		},
	},
	{
		err: ErrConfigInvalidLog,
		info: ErrorInfo{
			Message: "Invalid log configuration.",
			Action:  "Log size, backups and age must not be negative.",
		},
	},
	{
		err: ErrBatchFileInvalid,
		info: ErrorInfo{
			Message: "The batch file could not be read.",
			Action:  "Check the path and that the file is YAML with a top-level \"jobs\" list.",
		},
	},
	{
		err: ErrBatchEmpty,
		info: ErrorInfo{
			Message: "The batch file has no jobs.",
			Action:  "Add at least one entry under \"jobs\".",
		},
	},
	{
		err: ErrBatchTooLarge,
		info: ErrorInfo{
			Message: "The batch file has too many jobs.",
			Action:  "Split the file into smaller batches.",
		},
	},
	{
		err: ErrBatchJobsFailed,
		info: ErrorInfo{
			Message: "Some batch jobs failed. See the results above.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel matches.
//
//nolint:gochecknoglobals // Pre-built mapping
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// Direct sentinels hit the map; wrapped errors fall back to errors.Is.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action. The action is empty when there is nothing the user can do.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
