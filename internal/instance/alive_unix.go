//go:build unix

package instance

import (
	"errors"

	"golang.org/x/sys/unix"
)

func alive(pid int) bool {
	// Signal 0 probes existence without delivering anything.
	err := unix.Kill(pid, 0)
	switch {
	case err == nil:
		return true
	case errors.Is(err, unix.EPERM):
		// Exists but is not ours to signal.
		return true
	default:
		return false
	}
}
