// Package hook runs one prepare-commit-msg invocation: resolve the branch, decide
// whether to touch the message, rewrite it, then hand over to the repository's own hook.
package hook

import (
	"fmt"
	"io"

	"github.com/wahlandcase/task-hook/internal/config"
	"github.com/wahlandcase/task-hook/internal/git"
	"github.com/wahlandcase/task-hook/internal/message"
	"github.com/wahlandcase/task-hook/internal/models"
	"github.com/wahlandcase/task-hook/internal/workitem"

	"github.com/charmbracelet/log"
)

// OpenFunc opens the repository the hook runs in
type OpenFunc func() (git.Resolver, error)

// Runner carries the collaborators of a hook run
type Runner struct {
	Open   OpenFunc
	Config *config.Config
	Stdio  Stdio
	Logger *log.Logger
}

// NewRunner returns a Runner for the repository containing dir
func NewRunner(dir string, cfg *config.Config, stdio Stdio, logger *log.Logger) *Runner {
	return &Runner{
		Open: func() (git.Resolver, error) {
			return git.NewResolver(cfg.GitBackend, dir)
		},
		Config: cfg,
		Stdio:  stdio,
		Logger: logger,
	}
}

// Run handles the positional arguments git passed to the hook
func (r *Runner) Run(args []string) error {
	inv := models.NewInvocationContext(args)
	if inv.MessageFile == "" {
		return &MissingArgumentError{Name: "commit message file"}
	}

	resolver, err := r.Open()
	if err != nil {
		return &BranchResolutionError{Err: err}
	}
	branch, err := resolver.CurrentBranch()
	if err != nil {
		return &BranchResolutionError{Err: err}
	}
	inv = inv.WithBranch(branch)

	logger := r.logger()
	logger.Debug("resolved branch", "branch", inv.Branch, "source", inv.Source, "sha", inv.CommitSHA, "file", inv.MessageFile)

	if !message.ShouldRewrite(inv.Source, inv.HasSource) {
		logger.Debug("skipping message", "source", inv.Source)
		return nil
	}

	if err := r.rewrite(inv); err != nil {
		return err
	}

	if r.cfg().DryRun || r.cfg().NoDelegate {
		logger.Debug("delegation disabled")
		return nil
	}
	return r.delegate(resolver, inv)
}

func (r *Runner) rewrite(inv models.InvocationContext) error {
	logger := r.logger()

	if r.cfg().DryRun {
		content, err := message.Preview(inv.MessageFile, inv.Branch)
		if err != nil {
			return &MessageRewriteError{Path: inv.MessageFile, Err: err}
		}
		if _, err := io.WriteString(r.stdout(), content); err != nil {
			return &MessageRewriteError{Path: inv.MessageFile, Err: fmt.Errorf("print preview: %w", err)}
		}
		return nil
	}

	if _, err := message.Rewrite(inv.MessageFile, inv.Branch); err != nil {
		return &MessageRewriteError{Path: inv.MessageFile, Err: err}
	}
	if ref := workitem.Reference(inv.Branch); ref != "" {
		logger.Debug("added work item", "reference", ref)
	}
	return nil
}

func (r *Runner) delegate(resolver git.Resolver, inv models.InvocationContext) error {
	hooksDir, err := resolver.HooksDir()
	if err != nil {
		return &DelegationError{Code: ExitDelegation, Err: err}
	}

	ran, err := Delegate(hooksDir, inv.Args, r.Stdio)
	if ran {
		r.logger().Debug("ran local hook", "path", git.HookPath(hooksDir))
	}
	return err
}

func (r *Runner) cfg() *config.Config {
	if r.Config == nil {
		return config.DefaultConfig()
	}
	return r.Config
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard)
	}
	return r.Logger
}

func (r *Runner) stdout() io.Writer {
	if r.Stdio.Stdout == nil {
		return io.Discard
	}
	return r.Stdio.Stdout
}
