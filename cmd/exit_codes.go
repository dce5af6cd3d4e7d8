package cmd

import "fmt"

const (
	ExitCodeLoadFailure      = 2
	ExitCodeInvalidArguments = 8
)

// ExitCodeError is an error that carries the process exit status to use.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("%v (exit code %d)", e.Err, e.Code)
}

func (e *ExitCodeError) Unwrap() error { return e.Err }

func (e *ExitCodeError) ExitCode() int { return e.Code }
