// Package message rewrites the commit message file git hands to prepare-commit-msg.
package message

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wahlandcase/task-hook/internal/models"
	"github.com/wahlandcase/task-hook/internal/workitem"
)

// ShouldRewrite reports whether an invocation with this commit source gets a reference.
// No source (plain commit) and "message" (-m/-F) are rewritten; merge, squash, commit
// and template messages are left alone.
func ShouldRewrite(source models.CommitSource, present bool) bool {
	if !present {
		return true
	}
	return source == models.SourceMessage
}

// Compose appends reference to the original message with no separator
func Compose(original, reference string) string {
	return original + reference
}

// Preview returns what Rewrite would write to path, without touching the file
func Preview(path, branch string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read commit message: %w", err)
	}
	return Compose(string(data), workitem.Reference(branch)), nil
}

// Rewrite replaces the file at path with its content plus the branch's work-item reference.
// The file is rewritten even when there is no reference, so the content is unchanged then.
// It returns the content written.
func Rewrite(path, branch string) (string, error) {
	// A symlinked message file keeps its link; the target gets the new content
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("read commit message: %w", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", fmt.Errorf("read commit message: %w", err)
	}

	content, err := Preview(target, branch)
	if err != nil {
		return "", err
	}

	if err := writeAtomic(target, []byte(content), info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("write commit message: %w", err)
	}
	return content, nil
}

// writeAtomic writes data to a temp file next to path and renames it over path,
// so a failed write never leaves the message truncated.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	committed = true
	return nil
}
