package models

// InvocationContext holds everything one hook run decides on
type InvocationContext struct {
	// MessageFile is the path git passed as the first argument (e.g. ".git/COMMIT_EDITMSG")
	MessageFile string
	// Source is the commit source tag; only meaningful when HasSource is set
	Source CommitSource
	// HasSource is false when git invoked the hook with a single argument
	HasSource bool
	// CommitSHA is the third argument, present for "commit" sources
	CommitSHA string
	// Branch is the resolved branch name (or "HEAD-<short-hash>" when detached)
	Branch string
	// Args are the raw positional arguments, forwarded verbatim on delegation
	Args []string
}

// NewInvocationContext builds a context from the positional hook arguments.
// The message file is left empty when args is empty; callers treat that as a usage error.
func NewInvocationContext(args []string) InvocationContext {
	ctx := InvocationContext{
		Args: append([]string(nil), args...),
	}
	if len(args) > 0 {
		ctx.MessageFile = args[0]
	}
	if len(args) > 1 {
		ctx.Source = CommitSource(args[1])
		ctx.HasSource = true
	}
	if len(args) > 2 {
		ctx.CommitSHA = args[2]
	}
	return ctx
}

// WithBranch sets the resolved branch and returns the InvocationContext
func (c InvocationContext) WithBranch(branch string) InvocationContext {
	c.Branch = branch
	return c
}
