// Package testutil builds throwaway git repositories for tests using go-git,
// so no git binary is needed.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo is a temporary repository with one initial commit on "main"
type Repo struct {
	Dir  string
	Repo *git.Repository
	Head plumbing.Hash
}

// SetupTestRepo creates a temporary git repository with an initial commit.
// The repository is removed when the test ends.
func SetupTestRepo(t *testing.T) *Repo {
	t.Helper()

	r := SetupEmptyRepo(t)

	readme := filepath.Join(r.Dir, "README.md")
	if err := os.WriteFile(readme, []byte("# Test Repository\n"), 0o644); err != nil {
		t.Fatalf("failed to create README: %v", err)
	}

	wt, err := r.Repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := wt.Add("README.md"); err != nil {
		t.Fatalf("git add failed: %v", err)
	}

	hash, err := wt.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@test.com",
			When:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("git commit failed: %v", err)
	}
	r.Head = hash

	return r
}

// SetupEmptyRepo creates a repository with no commits whose HEAD points at "main"
func SetupEmptyRepo(t *testing.T) *Repo {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("git init failed: %v", err)
	}

	r := &Repo{Dir: dir, Repo: repo}
	r.PointHeadAt(t, "main")
	return r
}

// PointHeadAt makes HEAD a symbolic ref to branch without creating the branch
func (r *Repo) PointHeadAt(t *testing.T, branch string) {
	t.Helper()

	ref := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
	if err := r.Repo.Storer.SetReference(ref); err != nil {
		t.Fatalf("set HEAD: %v", err)
	}
}

// CreateBranch creates branch at HEAD and checks it out
func (r *Repo) CreateBranch(t *testing.T, branch string) {
	t.Helper()

	wt, err := r.Repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	err = wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: true,
	})
	if err != nil {
		t.Fatalf("checkout -b %s: %v", branch, err)
	}
}

// Detach points HEAD straight at the current commit
func (r *Repo) Detach(t *testing.T) {
	t.Helper()

	if err := r.Repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, r.Head)); err != nil {
		t.Fatalf("detach HEAD: %v", err)
	}
}

// HooksDir returns .git/hooks, creating it
func (r *Repo) HooksDir(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(r.Dir, ".git", "hooks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create hooks dir: %v", err)
	}
	return dir
}

// WriteHook writes an executable prepare-commit-msg hook with the given script body
func WriteHook(t *testing.T, hooksDir, script string) string {
	t.Helper()

	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		t.Fatalf("create hooks dir: %v", err)
	}
	path := filepath.Join(hooksDir, "prepare-commit-msg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write hook: %v", err)
	}
	return path
}

// WriteMessage writes a commit message file in its own temp dir and returns its path
func WriteMessage(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write message: %v", err)
	}
	return path
}

// ReadFile returns the content of path or fails the test
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
