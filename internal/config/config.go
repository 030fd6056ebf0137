package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// UI configures the graphical front end handoff.
type UI struct {
	// Command is the UI helper binary the launcher hands off to.
	Command string `toml:"command"`
}

// IPC configures the connection to the host KiCad API server.
type IPC struct {
	// Socket overrides the KICAD_API_SOCKET environment value when set.
	Socket         string `toml:"socket"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains configuration for structured log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all launcher configuration values.
type Config struct {
	// RepoPath is the library repository root. Empty means unconfigured;
	// the resolver fills it in once and never overwrites a user-set value.
	RepoPath string `toml:"repo_path"`

	UI      UI      `toml:"ui"`
	IPC     IPC     `toml:"ipc"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/kicad_library_manager/config.toml")
}

// Load locates, parses, and validates a configuration file. An absent file
// yields defaults with exists=false. The returned config has all path
// fields expanded.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("config path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// IPCTimeout returns the handshake timeout as a duration.
func (c *Config) IPCTimeout() time.Duration {
	secs := c.IPC.TimeoutSeconds
	if secs <= 0 {
		secs = defaultIPCTimeoutSeconds
	}
	return time.Duration(secs) * time.Second
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	}
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return expanded, !info.IsDir(), nil
}

// ExpandPath resolves a leading tilde against the user home directory and
// returns an absolute, cleaned path. Empty input stays empty.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("absolutize %q: %w", trimmed, err)
	}
	return abs, nil
}
