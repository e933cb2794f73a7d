// Package logging assembles the structured slog loggers used across the
// organizer.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes context helpers so every line of a pass carries the same run ID.
// The console handler emits exactly one line per record, which the CLI relies
// on for its per-file failure diagnostics. A no-op logger is available for
// tests and wiring code that cannot fail.
package logging
