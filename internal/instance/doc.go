// Package instance enforces the one-running-launcher-per-user policy.
//
// It persists an advisory descriptor identifying the current process,
// probes whether a recorded process id is still alive, and coordinates an
// OS-level file lock with stale-lock recovery. The descriptor and lock are
// shared across every launch by the same OS user; readers must tolerate
// missing or torn descriptor writes. A defect anywhere in this package
// degrades to "no singleton enforcement" rather than blocking the user.
package instance
