package cli

import (
	"errors"
	"fmt"

	clierrors "github.com/ariel-frischer/prchangelog/internal/errors"
)

// Exit codes for the prchangelog CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution, including the
	// no-op case where the PR body has no changelog entries
	ExitSuccess = 0

	// ExitFailure indicates the run failed (missing Unreleased section,
	// normalization check mismatch, I/O error)
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingInput indicates an input file does not exist
	ExitMissingInput = 4
)

// ExitError carries an exit code for failures that have already been
// reported to the user.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError returns an error that makes the process exit with code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		if cliErr.ExitCode != 0 {
			return cliErr.ExitCode
		}
		if cliErr.Category == clierrors.Argument {
			return ExitInvalidArguments
		}
	}

	return ExitFailure
}
