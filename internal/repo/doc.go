// Package repo validates and locates KiCad library repository roots.
//
// A directory qualifies as a root when it carries the sentinel markers a
// library repository is expected to contain: the category database file and
// the footprint and symbol directories. Resolution follows a strict
// precedence order (host-reported project path, persisted configuration,
// heuristic ancestor scan) and persists a newly discovered root into
// configuration only when no value was set before.
package repo
