package config

import (
	"testing"

	"github.com/wahlandcase/task-hook/internal/git"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(nil, envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, git.BackendLibrary, cfg.GitBackend)
}

func TestLoad_Env(t *testing.T) {
	cfg, err := load(nil, envOf(map[string]string{
		EnvDryRun:     "1",
		EnvNoDelegate: "true",
		EnvGitBackend: "cli",
		EnvDebug:      "yes-ish",
	}))
	require.Error(t, err)
	assert.Nil(t, cfg)

	cfg, err = load(nil, envOf(map[string]string{
		EnvDryRun:     "1",
		EnvNoDelegate: "true",
		EnvGitBackend: " cli ",
		EnvDebug:      "T",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.NoDelegate)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, git.BackendCLI, cfg.GitBackend)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	fs := newFlags(t, "--dry-run=false", "--git-backend", "library", "-v")
	cfg, err := load(fs, envOf(map[string]string{
		EnvDryRun:     "true",
		EnvGitBackend: "cli",
		EnvNoDelegate: "1",
	}))
	require.NoError(t, err)
	assert.False(t, cfg.DryRun)
	assert.True(t, cfg.NoDelegate)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, git.BackendLibrary, cfg.GitBackend)
}

func TestLoad_UnsetFlagsKeepEnv(t *testing.T) {
	fs := newFlags(t)
	cfg, err := load(fs, envOf(map[string]string{EnvDryRun: "true"}))
	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
}

func TestLoad_UnknownBackend(t *testing.T) {
	fs := newFlags(t, "--git-backend", "libgit2")
	_, err := load(fs, envOf(nil))

	var backendErr *git.UnknownBackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "libgit2", backendErr.Backend)
}
