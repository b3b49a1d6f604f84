// Package api defines wire-format types and converters for the HTTP layer.
// It translates stored chunks into transport DTOs: raw fields pass through,
// rendered markdown and HTML are recomputed per read, and image payloads are
// re-encoded as base64 text.
//
// JSON field names use snake_case to match the persisted column names, and
// timestamps are RFC3339 with nanoseconds in UTC.
package api
