package main

import "errors"

// Exit codes: 0 on success, 2 for command-line misuse, 1 for anything else.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrInvalidFlag marks an invalid flag value detected after parsing.
var ErrInvalidFlag = errors.New("invalid flag value")

// exitCodeFor returns the exit code for an error returned by run.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidFlag):
		return ExitUsage
	default:
		return ExitFailure
	}
}
