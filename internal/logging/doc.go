// Package logging assembles structured slog loggers used across showboat.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes small attr helpers so callers share one field vocabulary. The
// console format is picked automatically when the configured format is
// empty: pretty output on a terminal, JSON otherwise.
package logging
