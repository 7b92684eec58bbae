// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON format and is used by the Loader to report where
// configuration values came from; NewNop silences logging entirely.
package logging
