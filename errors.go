package main

import (
	"fmt"

	"github.com/samber/lo"
)

// ExitCodeError carries the process exit code of a run that has already reported its problems.
type ExitCodeError struct {
	exitCode int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code: %d", e.exitCode)
}

// NewExitCodeError returns nil for exitCodeSuccess.
func NewExitCodeError(exitCode int) error {
	if exitCode == exitCodeSuccess {
		return nil
	}

	return &ExitCodeError{
		exitCode: exitCode,
	}
}

// GetExitCode maps the error of RunBatch or RunInteractive to a process exit code.
// nil is success, an ExitCodeError carries its own code and any other error is exitCodeError.
func GetExitCode(err error) int {
	if err == nil {
		return exitCodeSuccess
	}

	if exitCodeErr, ok := lo.ErrorsAs[*ExitCodeError](err); ok {
		return exitCodeErr.exitCode
	}

	return exitCodeError
}
