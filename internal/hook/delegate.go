package hook

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/wahlandcase/task-hook/internal/git"
)

// Stdio is what a delegated hook inherits
type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// OSStdio returns the process's own standard streams
func OSStdio() Stdio {
	return Stdio{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Delegate runs the pre-existing prepare-commit-msg hook in hooksDir with args.
// A missing or non-executable hook, or one that is this very program, is skipped
// and reported as ran=false.
func Delegate(hooksDir string, args []string, stdio Stdio) (ran bool, err error) {
	hookPath := git.HookPath(hooksDir)

	info, err := os.Stat(hookPath)
	if err != nil || info.IsDir() {
		return false, nil
	}
	if info.Mode().Perm()&0o111 == 0 {
		return false, nil
	}
	if isSelf(hookPath, info) {
		return false, nil
	}

	// #nosec G204 -- path is the repository's own hook file
	cmd := exec.Command(hookPath, args...)
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return true, &DelegationError{Path: hookPath, Code: exitErr.ExitCode()}
		}
		return true, &DelegationError{Path: hookPath, Code: ExitDelegation, Err: err}
	}
	return true, nil
}

// isSelf reports whether hookPath is the running executable, which happens when
// this program is installed straight into .git/hooks
func isSelf(hookPath string, info os.FileInfo) bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	exeInfo, err := os.Stat(exe)
	if err != nil {
		return false
	}
	return os.SameFile(info, exeInfo)
}
