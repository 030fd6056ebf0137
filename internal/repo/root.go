package repo

import (
	"os"
	"path/filepath"
	"strings"
)

// Sentinel markers expected inside a library repository root.
const (
	databaseDirName   = "Database"
	categoriesName    = "categories.yml"
	footprintsDirName = "Footprints"
	symbolsDirName    = "Symbols"
)

// IsRoot reports whether dir is a library repository root.
func IsRoot(dir string) bool {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return false
	}
	if !dirExists(trimmed) {
		return false
	}
	return fileExists(filepath.Join(trimmed, databaseDirName, categoriesName)) &&
		dirExists(filepath.Join(trimmed, footprintsDirName)) &&
		dirExists(filepath.Join(trimmed, symbolsDirName))
}

// FromProject derives a candidate from the host-reported project path (its
// containing directory when the path is a file) and validates it. Returns
// "" when the candidate does not validate.
func FromProject(path string) string {
	candidate := containingDir(path)
	if candidate == "" || !IsRoot(candidate) {
		return ""
	}
	return candidate
}

// Discover walks each hint and its ancestors up to maxDepth levels,
// returning the first directory satisfying IsRoot. Hints are scanned in the
// order given; the nearest valid ancestor of an earlier hint wins.
func Discover(hints []string, maxDepth int) string {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	for _, hint := range hints {
		dir := containingDir(hint)
		for depth := 0; dir != "" && depth <= maxDepth; depth++ {
			if IsRoot(dir) {
				return dir
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	return ""
}

// DefaultMaxDepth bounds the upward ancestor scan.
const DefaultMaxDepth = 6

// containingDir maps a path to the directory candidate it implies: itself
// when a directory, its parent when a file, "" when neither exists.
func containingDir(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return ""
	}
	info, err := os.Stat(abs)
	if err != nil {
		return ""
	}
	if info.IsDir() {
		return abs
	}
	return filepath.Dir(abs)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
