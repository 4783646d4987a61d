// Package logging assembles structured slog loggers and formatting helpers used
// across lerobotviz.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes context helpers so every line emitted during one CLI invocation
// carries the same correlation ID. A no-op logger is provided for tests and
// for library callers that do not care about diagnostics.
package logging
