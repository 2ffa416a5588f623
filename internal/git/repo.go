package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/task-hook/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// Repo resolves branch and hooks information through go-git, without a git binary
type Repo struct {
	repo *git.Repository
	path string
}

// OpenRepo opens the repository containing path, walking up to find .git
func OpenRepo(path string) (*Repo, error) {
	repo, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", path, err)
	}
	return &Repo{repo: repo, path: path}, nil
}

func open(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
}

// CurrentBranch returns the short branch name HEAD points at.
// A detached HEAD yields "HEAD-<7 hex chars>"; an unborn branch yields its name.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// First commit of a fresh repository: HEAD is symbolic but its target does not exist yet
		return r.unbornBranch()
	}
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}

	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	if head.Name() == plumbing.HEAD {
		return models.DetachedBranch(head.Hash().String()), nil
	}
	return head.Name().Short(), nil
}

func (r *Repo) unbornBranch() (string, error) {
	ref, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	if ref.Type() != plumbing.SymbolicReference {
		return "", ErrNoHead
	}
	return ref.Target().Short(), nil
}

// HooksDir returns <common git dir>/hooks. core.hooksPath is ignored on purpose:
// that is usually where this program itself is installed.
func (r *Repo) HooksDir() (string, error) {
	storage, ok := r.repo.Storer.(*filesystem.Storage)
	if !ok {
		return "", fmt.Errorf("repository at %s has no on-disk git directory", r.path)
	}
	gitDir := storage.Filesystem().Root()
	return filepath.Join(commonDir(gitDir), "hooks"), nil
}

// commonDir follows the "commondir" file linked worktrees keep in their private git dir
func commonDir(gitDir string) string {
	data, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if err != nil {
		return gitDir
	}
	dir := strings.TrimSpace(string(data))
	if dir == "" {
		return gitDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(gitDir, dir)
	}
	return filepath.Clean(dir)
}
