package git

import (
	"path/filepath"
)

// HookName is the git hook this program implements and delegates to
const HookName = "prepare-commit-msg"

// Backend names accepted by NewResolver
const (
	BackendLibrary = "library"
	BackendCLI     = "cli"
)

// Resolver answers the two repository questions the hook needs
type Resolver interface {
	// CurrentBranch returns the checked-out branch, or "HEAD-<short-hash>" when detached
	CurrentBranch() (string, error)
	// HooksDir returns the repository-local hooks directory ($GIT_COMMON_DIR/hooks)
	HooksDir() (string, error)
}

// Backends lists the valid backend names
func Backends() []string {
	return []string{BackendLibrary, BackendCLI}
}

// NewResolver returns a resolver for the repository containing dir
func NewResolver(backend, dir string) (Resolver, error) {
	switch backend {
	case "", BackendLibrary:
		return OpenRepo(dir)
	case BackendCLI:
		return NewCommandResolver(dir, nil), nil
	default:
		return nil, &UnknownBackendError{Backend: backend}
	}
}

// HookPath returns where the local hook named HookName lives inside hooksDir
func HookPath(hooksDir string) string {
	return filepath.Join(hooksDir, HookName)
}
