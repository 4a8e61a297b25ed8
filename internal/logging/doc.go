// Package logging builds the slog loggers used across the daemon and CLI.
//
// It offers a compact console handler for interactive use, a JSON handler for
// machine consumption, typed attribute helpers, and a no-op logger for tests
// and optional dependencies.
package logging
