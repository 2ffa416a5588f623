package hook

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wahlandcase/task-hook/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelegate_NoHook(t *testing.T) {
	ran, err := Delegate(t.TempDir(), []string{"msg"}, Stdio{})
	require.NoError(t, err)
	assert.False(t, ran)

	ran, err = Delegate(filepath.Join(t.TempDir(), "missing"), nil, Stdio{})
	require.NoError(t, err)
	assert.False(t, ran)
}

func TestDelegate_NotExecutable(t *testing.T) {
	skipOnWindows(t)
	hooksDir := t.TempDir()
	path := testutil.WriteHook(t, hooksDir, "exit 1")
	require.NoError(t, os.Chmod(path, 0o644))

	ran, err := Delegate(hooksDir, nil, Stdio{})
	require.NoError(t, err)
	assert.False(t, ran)
}

func TestDelegate_Directory(t *testing.T) {
	hooksDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(hooksDir, "prepare-commit-msg"), 0o755))

	ran, err := Delegate(hooksDir, nil, Stdio{})
	require.NoError(t, err)
	assert.False(t, ran)
}

func TestDelegate_InheritsStdio(t *testing.T) {
	skipOnWindows(t)
	hooksDir := t.TempDir()
	testutil.WriteHook(t, hooksDir, `echo "out:$#"; echo err >&2; read line; echo "in:$line"`)

	var stdout, stderr bytes.Buffer
	ran, err := Delegate(hooksDir, []string{"a", "b", "c"}, Stdio{
		Stdin:  strings.NewReader("hello\n"),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, "out:3\nin:hello\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestDelegate_ExitStatus(t *testing.T) {
	skipOnWindows(t)
	hooksDir := t.TempDir()
	path := testutil.WriteHook(t, hooksDir, "exit 42")

	ran, err := Delegate(hooksDir, nil, Stdio{})
	assert.True(t, ran)

	var delegateErr *DelegationError
	require.ErrorAs(t, err, &delegateErr)
	assert.Equal(t, 42, delegateErr.Code)
	assert.Equal(t, path, delegateErr.Path)
	assert.Equal(t, 42, ExitCode(err))
	assert.Contains(t, err.Error(), "exited with status 42")
}

func TestDelegate_StartFailure(t *testing.T) {
	skipOnWindows(t)
	hooksDir := t.TempDir()
	path := filepath.Join(hooksDir, "prepare-commit-msg")
	require.NoError(t, os.WriteFile(path, []byte("#!/nonexistent/interpreter\n"), 0o755))

	ran, err := Delegate(hooksDir, nil, Stdio{})
	assert.True(t, ran)
	assert.Equal(t, ExitDelegation, ExitCode(err))
}

func TestDelegate_SkipsItself(t *testing.T) {
	skipOnWindows(t)
	exe, err := os.Executable()
	require.NoError(t, err)

	hooksDir := t.TempDir()
	require.NoError(t, os.Symlink(exe, filepath.Join(hooksDir, "prepare-commit-msg")))

	ran, err := Delegate(hooksDir, nil, Stdio{})
	require.NoError(t, err)
	assert.False(t, ran)
}
