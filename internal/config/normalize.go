package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if c.RepoPath, err = ExpandPath(c.RepoPath); err != nil {
		return fmt.Errorf("repo_path: %w", err)
	}
	if c.IPC.Socket, err = ExpandPath(c.IPC.Socket); err != nil {
		return fmt.Errorf("ipc.socket: %w", err)
	}
	if strings.TrimSpace(c.UI.Command) == "" {
		c.UI.Command = defaultUICommand
	}
	if c.IPC.TimeoutSeconds <= 0 {
		c.IPC.TimeoutSeconds = defaultIPCTimeoutSeconds
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
