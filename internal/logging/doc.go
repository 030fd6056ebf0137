// Package logging assembles the structured slog loggers used across the
// launcher.
//
// It centralizes level and format plumbing and provides a no-op logger for
// tests and wiring code that cannot fail. The boot diagnostics log is a
// separate, raw artifact (see internal/bootlog): it must survive conditions
// that break structured logging.
package logging
