package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates that runs of the same domain disagreed on the count.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorWorker   = 5   // Indicates that a worker failed or a merge is missing.
	ExitErrorCanceled = 130 // Indicates the process was interrupted (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// a worker count that resolves below one. It is reported before any work is
// spawned.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WorkerError reports a worker task that returned an error or terminated
// abnormally. A single failed worker fails the whole run.
type WorkerError struct {
	// WorkerID is the index of the failed worker.
	WorkerID int
	// Cause is the underlying error (a recovered panic included).
	Cause error
}

// Error returns a message naming the failed worker and its cause.
func (e WorkerError) Error() string {
	return fmt.Sprintf("worker %d failed: %v", e.WorkerID, e.Cause)
}

// Unwrap returns the original cause, allowing for error chain inspection.
func (e WorkerError) Unwrap() error { return e.Cause }

// IncompleteRunError reports that fewer workers merged their results than
// were spawned. Reading the shared result in that state would undercount.
type IncompleteRunError struct {
	// Expected is the number of workers spawned.
	Expected int
	// Merged is the number of merges the aggregator recorded.
	Merged int
}

// Error returns a formatted message describing the missing merges.
func (e IncompleteRunError) Error() string {
	return fmt.Sprintf("incomplete run: %d of %d workers merged their results", e.Merged, e.Expected)
}

// MismatchError reports runs over the same domain that disagree on the
// number of matches.
type MismatchError struct {
	// Want is the count of the first successful run.
	Want int
	// Got is the first count that differed.
	Got int
	// Label identifies the diverging run (policy and iteration).
	Label string
}

// Error returns a formatted message describing the inconsistency.
func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch: %s found %d matches, expected %d", e.Label, e.Got, e.Want)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	var (
		configErr     ConfigError
		workerErr     WorkerError
		incompleteErr IncompleteRunError
		mismatchErr   MismatchError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &workerErr), errors.As(err, &incompleteErr):
		return ExitErrorWorker
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}

// ColorProvider supplies ANSI sequences for error output. A nil provider
// disables colors.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleRunError writes a user-facing description of err and returns the
// matching exit code. A nil error writes nothing.
func HandleRunError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}

	code := ExitCodeFor(err)
	switch code {
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sConfiguration error:%s %v\n", yellow, reset, err)
	case ExitErrorWorker:
		fmt.Fprintf(out, "%sRun failed:%s %v\n", red, reset, err)
		fmt.Fprintf(out, "No partial result is reported.\n")
	case ExitErrorMismatch:
		fmt.Fprintf(out, "%sCRITICAL:%s %v\n", red, reset, err)
	default:
		fmt.Fprintf(out, "%sError:%s %v\n", red, reset, err)
	}
	return code
}
