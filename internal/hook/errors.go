package hook

import (
	"errors"
	"fmt"
)

// Exit codes, one per failure class
const (
	ExitOK               = 0
	ExitBranchResolution = 1
	ExitMessage          = 2
	ExitDelegation       = 3
)

// BranchResolutionError means the current branch could not be determined
type BranchResolutionError struct {
	Err error
}

func (e *BranchResolutionError) Error() string {
	return "failed to find current branch: " + e.Err.Error()
}

func (e *BranchResolutionError) Unwrap() error {
	return e.Err
}

// MissingArgumentError means git did not pass the commit message file
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return "missing required argument: " + e.Name
}

// MessageRewriteError means the commit message file could not be read or written
type MessageRewriteError struct {
	Path string
	Err  error
}

func (e *MessageRewriteError) Error() string {
	return "failed to add work item to " + e.Path + ": " + e.Err.Error()
}

func (e *MessageRewriteError) Unwrap() error {
	return e.Err
}

// DelegationError means the local hook failed or could not be started.
// Code is the exit status to forward.
type DelegationError struct {
	Path string
	Code int
	Err  error
}

func (e *DelegationError) Error() string {
	name := "local git hook"
	if e.Path != "" {
		name += " " + e.Path
	}
	if e.Err != nil {
		return "failed to run " + name + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s exited with status %d", name, e.Code)
}

func (e *DelegationError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Run to the process exit status.
// Unknown errors are treated as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var branchErr *BranchResolutionError
	var argErr *MissingArgumentError
	var msgErr *MessageRewriteError
	var delegateErr *DelegationError

	switch {
	case errors.As(err, &delegateErr):
		if delegateErr.Code != 0 {
			return delegateErr.Code
		}
		return ExitDelegation
	case errors.As(err, &branchErr):
		return ExitBranchResolution
	case errors.As(err, &argErr), errors.As(err, &msgErr):
		return ExitMessage
	default:
		return ExitMessage
	}
}
