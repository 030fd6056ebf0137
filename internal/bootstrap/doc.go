// Package bootstrap sequences the launcher's startup: boot diagnostics,
// crash trace, configuration, dependency checks, the single-instance check,
// the instance descriptor write, the host IPC handshake, working-directory
// resolution, and the handoff to the graphical front end.
//
// Every terminal condition maps to one of three exit codes. Only a missing
// mandatory dependency and a failed host handshake are fatal; every other
// failure degrades (setup mode, skipped diagnostics, no singleton
// enforcement) so the host application is never left blocked by this
// process. The instance descriptor is written strictly after the
// single-instance check passes; writing earlier would make the current
// launch indistinguishable from a stale one.
package bootstrap
