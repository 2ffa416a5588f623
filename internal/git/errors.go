package git

import (
	"errors"
	"strings"
)

// ErrNoHead indicates HEAD could not be read at all (corrupt or empty repository)
var ErrNoHead = errors.New("HEAD not found")

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
	Err     error
}

func (e *GitError) Error() string {
	if e.Output != "" {
		return "git " + e.Command + ": " + e.Output
	}
	if e.Err != nil {
		return "git " + e.Command + ": " + e.Err.Error()
	}
	return "git " + e.Command + ": failed"
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// UnknownBackendError is returned for a git backend name that is neither "library" nor "cli"
type UnknownBackendError struct {
	Backend string
}

func (e *UnknownBackendError) Error() string {
	return "unknown git backend " + `"` + e.Backend + `"` + " (want " + strings.Join(Backends(), " or ") + ")"
}
