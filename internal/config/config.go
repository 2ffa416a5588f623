package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wahlandcase/task-hook/internal/git"

	"github.com/spf13/pflag"
)

// Environment variables read by Load. There is no config file.
const (
	EnvDryRun     = "TASKHOOK_DRY_RUN"
	EnvNoDelegate = "TASKHOOK_NO_DELEGATE"
	EnvGitBackend = "TASKHOOK_GIT_BACKEND"
	EnvDebug      = "TASKHOOK_DEBUG"
)

// Flag names registered by RegisterFlags
const (
	FlagDryRun     = "dry-run"
	FlagNoDelegate = "no-delegate"
	FlagGitBackend = "git-backend"
	FlagVerbose    = "verbose"
)

type Config struct {
	// DryRun prints the rewritten message to stdout instead of writing it
	DryRun bool
	// NoDelegate skips running the repository's own prepare-commit-msg hook
	NoDelegate bool
	// GitBackend is "library" (go-git) or "cli" (git binary)
	GitBackend string
	// Verbose enables debug logging on stderr
	Verbose bool
}

func DefaultConfig() *Config {
	return &Config{
		GitBackend: git.BackendLibrary,
	}
}

// RegisterFlags adds the config flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.Bool(FlagDryRun, d.DryRun, "Print the rewritten message instead of writing it (env "+EnvDryRun+")")
	fs.Bool(FlagNoDelegate, d.NoDelegate, "Do not run the repository's own "+git.HookName+" hook (env "+EnvNoDelegate+")")
	fs.String(FlagGitBackend, d.GitBackend, "How to query git: "+strings.Join(git.Backends(), " or ")+" (env "+EnvGitBackend+")")
	fs.BoolP(FlagVerbose, "v", d.Verbose, "Log debug output to stderr (env "+EnvDebug+")")
}

// Load layers environment variables over the defaults and explicitly set flags over both.
// fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	return load(fs, os.LookupEnv)
}

func load(fs *pflag.FlagSet, lookup func(string) (string, bool)) (*Config, error) {
	cfg := DefaultConfig()

	if err := envBool(lookup, EnvDryRun, &cfg.DryRun); err != nil {
		return nil, err
	}
	if err := envBool(lookup, EnvNoDelegate, &cfg.NoDelegate); err != nil {
		return nil, err
	}
	if err := envBool(lookup, EnvDebug, &cfg.Verbose); err != nil {
		return nil, err
	}
	if v, ok := lookup(EnvGitBackend); ok && strings.TrimSpace(v) != "" {
		cfg.GitBackend = strings.TrimSpace(v)
	}

	if fs != nil {
		if err := applyFlags(fs, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(fs *pflag.FlagSet, cfg *Config) error {
	var err error
	if fs.Changed(FlagDryRun) {
		if cfg.DryRun, err = fs.GetBool(FlagDryRun); err != nil {
			return err
		}
	}
	if fs.Changed(FlagNoDelegate) {
		if cfg.NoDelegate, err = fs.GetBool(FlagNoDelegate); err != nil {
			return err
		}
	}
	if fs.Changed(FlagGitBackend) {
		if cfg.GitBackend, err = fs.GetString(FlagGitBackend); err != nil {
			return err
		}
	}
	if fs.Changed(FlagVerbose) {
		if cfg.Verbose, err = fs.GetBool(FlagVerbose); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validate() error {
	for _, b := range git.Backends() {
		if c.GitBackend == b {
			return nil
		}
	}
	return &git.UnknownBackendError{Backend: c.GitBackend}
}

func envBool(lookup func(string) (string, bool), key string, dst *bool) error {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = b
	return nil
}
