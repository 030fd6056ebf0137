package instance

// Alive reports whether pid refers to a live process. Unknown states fold
// to false: the worst outcome of a wrong "not alive" is a premature lock
// recovery, not corruption.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	return alive(pid)
}
