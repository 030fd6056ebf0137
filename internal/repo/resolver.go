package repo

import "strings"

// Hints orders the working-directory search inputs.
type Hints struct {
	// ProjectPath is the host-reported project file or directory.
	ProjectPath string
	// WorkingDir is the launcher process working directory.
	WorkingDir string
	// InstallDir is the directory the launcher binary was installed to.
	InstallDir string
}

// ConfigStore is the configuration collaborator the resolver reads from and
// persists into.
type ConfigStore interface {
	// RepoPath returns the persisted repository root, "" when unset.
	RepoPath() string
	// SetRepoPath persists a discovered root. Only called when RepoPath
	// was empty: user intent beats auto-discovery.
	SetRepoPath(dir string) error
}

// Resolve applies the precedence order: host-reported project path,
// persisted configuration, heuristic ancestor scan over the hints. Returns
// "" when nothing validates; callers must support an unconfigured mode.
//
// A root discovered via the project path or the scan is persisted when the
// configured value was previously empty. Persistence failures are ignored:
// configuration is advisory to this resolver.
func Resolve(hints Hints, store ConfigStore) string {
	if dir := FromProject(hints.ProjectPath); dir != "" {
		persistIfEmpty(store, dir)
		return dir
	}

	if store != nil {
		if configured := strings.TrimSpace(store.RepoPath()); configured != "" && IsRoot(configured) {
			return configured
		}
	}

	scan := []string{hints.ProjectPath, hints.WorkingDir, hints.InstallDir}
	if dir := Discover(scan, DefaultMaxDepth); dir != "" {
		persistIfEmpty(store, dir)
		return dir
	}

	return ""
}

func persistIfEmpty(store ConfigStore, dir string) {
	if store == nil {
		return
	}
	if strings.TrimSpace(store.RepoPath()) != "" {
		return
	}
	_ = store.SetRepoPath(dir)
}
