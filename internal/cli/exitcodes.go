package cli

import (
	"errors"

	"github.com/yaklabco/prose/internal/configloader"
	"github.com/yaklabco/prose/pkg/fsutil"
)

// Exit codes for prose.
const (
	// ExitSuccess indicates every input parsed and was processed.
	ExitSuccess = 0

	// ExitFailure indicates parse failures, or non-canonical files under fmt --check.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrParseFailures is returned after parse failures have been reported.
	ErrParseFailures = errors.New("parse failures found")

	// ErrNotCanonical is returned by fmt --check after listing files that
	// would change.
	ErrNotCanonical = errors.New("files not canonically formatted")
)

// ExitError attaches an exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var validationErr *configloader.ValidationError
	switch {
	case errors.Is(err, ErrParseFailures), errors.Is(err, ErrNotCanonical):
		return ExitFailure
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrModified):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsReported reports whether err has already been shown to the user, so
// callers only need to exit with its code.
func IsReported(err error) bool {
	return errors.Is(err, ErrParseFailures) || errors.Is(err, ErrNotCanonical)
}
