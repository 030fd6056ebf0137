// Package hostipc talks to the host KiCad process over its API socket.
//
// The launcher performs exactly one bounded handshake at startup to obtain
// the active project context; it never holds a long-lived connection. The
// socket address comes from the KICAD_API_SOCKET environment variable, the
// configuration, or a flag; the auth token environment value is only ever
// inspected for presence and handed to diagnostics, never parsed.
package hostipc
