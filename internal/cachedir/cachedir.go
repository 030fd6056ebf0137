// Package cachedir resolves the per-user cache directory that holds the
// launcher's transient boot artifacts: the boot log, the instance
// descriptor, the single-instance lock, and the crash trace.
//
// The resolved path is deterministic for a given environment and platform.
// Directory creation is best-effort: callers must treat writes beneath the
// returned path as advisory.
package cachedir

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const appDirName = "kicad_library_manager"

const (
	bootLogName    = "boot.log"
	descriptorName = "instance.json"
	crashTraceName = "crash.log"
)

// Root returns the per-user cache root. XDG_CACHE_HOME overrides on every
// platform; otherwise the conventional platform location under the home
// directory is used.
func Root() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CACHE_HOME")); xdg != "" {
		return xdg
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	switch runtime.GOOS {
	case "windows":
		if base := strings.TrimSpace(os.Getenv("LOCALAPPDATA")); base != "" {
			return base
		}
		if base := strings.TrimSpace(os.Getenv("APPDATA")); base != "" {
			return base
		}
		return filepath.Join(home, "AppData", "Local")
	case "darwin":
		return filepath.Join(home, "Library", "Caches")
	default:
		return filepath.Join(home, ".cache")
	}
}

// Dir returns the launcher cache directory, creating it when possible.
// The path is returned even if creation fails.
func Dir() string {
	dir := filepath.Join(Root(), appDirName)
	_ = os.MkdirAll(dir, 0o755)
	return dir
}

// BootLogPath returns the append-only boot diagnostics log location.
func BootLogPath() string {
	return filepath.Join(Dir(), bootLogName)
}

// DescriptorPath returns the instance descriptor location.
func DescriptorPath() string {
	return filepath.Join(Dir(), descriptorName)
}

// CrashTracePath returns the crash trace file location.
func CrashTracePath() string {
	return filepath.Join(Dir(), crashTraceName)
}

// LockPath returns the single-instance lock artifact. The name is scoped
// per OS user account, never per project.
func LockPath() string {
	return filepath.Join(Dir(), fmt.Sprintf("single_instance_%s.lock", UserKey()))
}

// UserKey returns a stable per-user key for lock naming.
func UserKey() string {
	if uid := os.Getuid(); uid >= 0 {
		return strconv.Itoa(uid)
	}
	for _, name := range []string{"USERNAME", "USER"} {
		if u := strings.TrimSpace(os.Getenv(name)); u != "" {
			return u
		}
	}
	return "user"
}
