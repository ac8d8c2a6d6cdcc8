package cli

import (
	"errors"
	"log/slog"

	"github.com/thenoetrevino/maskfield/internal/config"
	"github.com/thenoetrevino/maskfield/internal/mask"
	entryservice "github.com/thenoetrevino/maskfield/internal/services/entry"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Entry not found, preset not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable or unparsable edit scripts.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Malformed masks, out-of-range edit positions,
	// incomplete values, bad placeholders.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode attaches an exit code to err
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode returns the exit code a process should end with after err.
// Errors without an attached code are classified by their sentinel.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *ExitCodeError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return Classify(err)
}

// Classify maps domain errors onto exit codes
func Classify(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, entryservice.ErrEntryNotFound),
		errors.Is(err, entryservice.ErrUnknownPreset),
		errors.Is(err, config.ErrUnknownPreset):
		return ExitNotFound
	case errors.Is(err, mask.ErrMalformedMask),
		errors.Is(err, mask.ErrIndexRange),
		errors.Is(err, entryservice.ErrIncompleteValue),
		errors.Is(err, config.ErrInvalidPlaceholder),
		errors.Is(err, config.ErrInvalidPreset):
		return ExitValidation
	case errors.Is(err, entryservice.ErrEmptyPreset),
		errors.Is(err, entryservice.ErrInvalidEntryID):
		return ExitUsage
	default:
		return ExitError
	}
}

// Fail reports err through the formatter under code and returns it with its exit code attached
func Fail(formatter *OutputFormatter, code string, err error) error {
	if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return WithExitCode(Classify(err), err)
}

// UsageError reports a usage problem and returns it with ExitUsage attached
func UsageError(formatter *OutputFormatter, message string) error {
	if fmtErr := formatter.Error("USAGE_ERROR", message); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return WithExitCode(ExitUsage, errors.New(message))
}
