// Package ui is the boundary to the graphical front end, which runs as an
// external helper process. Only process handoff and user notification live
// here; the window itself is out of scope for the launcher.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Launcher starts the graphical front end with the resolved repository
// path ("" signals setup mode) and the active project directory.
type Launcher interface {
	Launch(ctx context.Context, repoPath, projectDir string) error
}

// Notifier delivers a modal message to the user.
type Notifier interface {
	Notify(title, message string)
}

// ExecLauncher runs the configured UI helper binary and waits for it.
type ExecLauncher struct {
	Command string
}

func (l ExecLauncher) Launch(ctx context.Context, repoPath, projectDir string) error {
	cmd := exec.CommandContext(ctx, l.Command, LaunchArgs(repoPath, projectDir)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run UI helper %s: %w", l.Command, err)
	}
	return nil
}

// LaunchArgs builds the helper's argument list. An empty repository path
// selects setup mode so the UI presents configuration affordances.
func LaunchArgs(repoPath, projectDir string) []string {
	var args []string
	if strings.TrimSpace(repoPath) != "" {
		args = append(args, "--repo", repoPath)
	} else {
		args = append(args, "--setup")
	}
	if strings.TrimSpace(projectDir) != "" {
		args = append(args, "--project", projectDir)
	}
	return args
}

// ExecNotifier shows a modal dialog via the UI helper, falling back to a
// plain message when the helper is unavailable.
type ExecNotifier struct {
	Command  string
	Fallback io.Writer // defaults to stderr
}

func (n ExecNotifier) Notify(title, message string) {
	if strings.TrimSpace(n.Command) != "" {
		cmd := exec.Command(n.Command, "--notify", "--title", title, "--message", message)
		if err := cmd.Run(); err == nil {
			return
		}
	}
	out := n.Fallback
	if out == nil {
		out = os.Stderr
	}
	_, _ = fmt.Fprintf(out, "%s: %s\n", title, message)
}
