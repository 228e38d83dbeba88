// Package log provides logging utilities for wikiwalk, built on top of the
// standard slog package.
//
// The CompactHandler keeps warning output readable when attribute values
// carry page-sized strings: oversized values are truncated before being
// passed to the underlying handler. Fetch warnings stay one line each, even
// when an error message embeds a long URL list or a response snippet.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log
