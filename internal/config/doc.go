// Package config loads, normalizes, validates, and persists the launcher
// configuration.
//
// It supplies defaults, expands tilde paths, reads the TOML file under
// ~/.config/kicad_library_manager, and writes it back when the
// working-directory resolver discovers a repository for the first time.
// The repo_path field is owned by the user once set: auto-discovery never
// overwrites a non-empty value.
package config
