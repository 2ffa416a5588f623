package git

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/task-hook/internal/models"
)

// detachedSentinel is what `git rev-parse --abbrev-ref HEAD` prints when not on a branch
const detachedSentinel = "HEAD"

// Runner executes git with args in dir and returns its standard output
type Runner func(dir string, args ...string) (string, error)

// CommandResolver resolves branch and hooks information by shelling out to git
type CommandResolver struct {
	dir string
	run Runner
}

// NewCommandResolver returns a resolver for dir. A nil run uses the git binary on PATH.
func NewCommandResolver(dir string, run Runner) *CommandResolver {
	if run == nil {
		run = runGit
	}
	return &CommandResolver{dir: dir, run: run}
}

// CurrentBranch returns the abbreviated branch name, or "HEAD-<short-hash>" when detached
func (c *CommandResolver) CurrentBranch() (string, error) {
	out, err := c.run(c.dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	branch := strings.TrimSpace(out)
	if branch != detachedSentinel {
		return branch, nil
	}

	out, err = c.run(c.dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return models.DetachedPrefix + strings.TrimSpace(out), nil
}

// HooksDir returns <git common dir>/hooks
func (c *CommandResolver) HooksDir() (string, error) {
	out, err := c.run(c.dir, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", err
	}
	dir := strings.TrimSpace(out)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.dir, dir)
	}
	return filepath.Join(dir, "hooks"), nil
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		command := strings.Join(args, " ")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
				return "", &GitError{Command: command, Output: stderr, Err: err}
			}
		}
		return "", &GitError{Command: command, Err: err}
	}

	return string(output), nil
}
