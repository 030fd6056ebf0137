// Package crashtrace arms a crash-output file so fatal runtime errors from
// this externally-launched process survive for post-mortem inspection. The
// host application discards the launcher's stderr, so without this a crash
// leaves no trace at all.
package crashtrace

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"
)

// Install directs fatal crash output (panics, fatal signals) into the file
// at path, appending across launches. Best-effort: callers treat a failure
// as a diagnostic gap, never as fatal.
func Install(path string) (string, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("open crash trace: %w", err)
	}
	if err := debug.SetCrashOutput(f, debug.CrashOptions{}); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("arm crash output: %w", err)
	}
	_, _ = fmt.Fprintf(f, "=== crash trace armed %s pid=%d ===\n",
		time.Now().Format(time.RFC3339), os.Getpid())
	// The runtime holds its own duplicate of the descriptor.
	_ = f.Close()
	return path, nil
}
