// Package testsupport provides shared fixtures for launcher tests: library
// repository trees, cache directory redirection, stub UI binaries, and a
// fake host API server.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// MakeRepoRoot populates dir with the sentinel markers of a library
// repository root and returns dir.
func MakeRepoRoot(t testing.TB, dir string) string {
	t.Helper()
	for _, sub := range []string{"Database", "Footprints", "Symbols"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", sub, err)
		}
	}
	categories := filepath.Join(dir, "Database", "categories.yml")
	if err := os.WriteFile(categories, []byte("categories: []\n"), 0o644); err != nil {
		t.Fatalf("write categories.yml: %v", err)
	}
	return dir
}

// CacheDir redirects the launcher cache root into a per-test directory and
// returns the cache root override.
func CacheDir(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	return dir
}

// StubBinary writes an always-succeeding executable named name into a fresh
// directory prepended to PATH, and returns its path.
func StubBinary(t testing.TB, name string) string {
	t.Helper()
	binDir := t.TempDir()
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return target
}
