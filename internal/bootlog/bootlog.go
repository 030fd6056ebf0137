// Package bootlog writes the append-only boot diagnostics log. Every write
// is best-effort: the log exists so a failed external launch can be debugged
// post mortem, and a broken log must never break the launch itself.
package bootlog

import (
	"fmt"
	"os"
	"time"
)

// Logger appends timestamped lines to a single file. Each append opens and
// closes the file so a partially failed write can never hold the handle.
type Logger struct {
	path string
}

// New returns a logger targeting path. An empty path yields a logger that
// discards everything.
func New(path string) *Logger {
	return &Logger{path: path}
}

// Append writes one timestamped line. Failures are swallowed.
func (l *Logger) Append(msg string) {
	if l == nil || l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	ts := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(f, "[%s] %s\n", ts, msg)
}

// Appendf formats and appends one line.
func (l *Logger) Appendf(format string, args ...any) {
	l.Append(fmt.Sprintf(format, args...))
}

// Path returns the file backing the logger.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}
