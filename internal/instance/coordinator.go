package instance

import (
	"os"

	"github.com/gofrs/flock"

	"kicadlm/internal/bootlog"
)

// Result describes the outcome of the single-instance check.
type Result struct {
	// Proceed is true when this process may continue starting up.
	Proceed bool
	// Recovered is true when a stale lock left by a dead process was cleared.
	Recovered bool
	// ConflictPID is the detected live instance's process id, 0 when unknown.
	ConflictPID int
}

// Handle owns the acquired lock for the lifetime of the process.
type Handle struct {
	lock *flock.Flock
}

// Release drops the lock. Safe on nil handles and repeated calls; the OS
// also releases the lock on process exit.
func (h *Handle) Release() {
	if h == nil || h.lock == nil {
		return
	}
	_ = h.lock.Unlock()
	h.lock = nil
}

// Coordinator acquires the per-user exclusivity lock, distinguishing a
// genuine second instance from a stale lock left behind by a crash.
type Coordinator struct {
	LockPath       string
	DescriptorPath string
	Log            *bootlog.Logger
}

// Ensure attempts to become the single running instance.
//
// Any internal failure, including a panic, fails open: a broken checker
// must never block legitimate use. When Proceed is true and the returned
// handle is non-nil, the caller owns the lock until Release.
//
// Between clearing a stale lock and re-acquiring it, a third launch may win
// the freed lock. That race is accepted: the loser sees a genuine conflict
// on its next attempt.
func (c *Coordinator) Ensure() (res Result, handle *Handle) {
	defer func() {
		if r := recover(); r != nil {
			c.Log.Appendf("instance check panicked (%v); failing open", r)
			res = Result{Proceed: true}
			handle = nil
		}
	}()

	lk := flock.New(c.LockPath)
	ok, err := lk.TryLock()
	if err != nil {
		c.Log.Appendf("instance lock unavailable (%v); failing open", err)
		return Result{Proceed: true}, nil
	}
	if ok {
		return Result{Proceed: true}, &Handle{lock: lk}
	}

	// Another holder. Consult the previous instance's descriptor to decide
	// whether the lock is stale.
	prev := ReadDescriptor(c.DescriptorPath)
	if prev != nil && !Alive(prev.PID) {
		c.Log.Appendf("lock held by dead pid %d; clearing stale artifacts", prev.PID)
		_ = os.Remove(c.LockPath)
		_ = os.Remove(c.DescriptorPath)

		retry := flock.New(c.LockPath)
		ok, err := retry.TryLock()
		if err == nil && ok {
			return Result{Proceed: true, Recovered: true}, &Handle{lock: retry}
		}
	}

	res = Result{Proceed: false}
	if prev != nil && Alive(prev.PID) {
		res.ConflictPID = prev.PID
	}
	return res, nil
}
