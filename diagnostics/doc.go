// Package diagnostics implements the two output sinks the core's embedder
// injects, matching the original runtime's print_to_console/print_to_log
// split: a console stream for user-facing text and a structured log stream
// for operational diagnostics, backed by go.uber.org/zap.
package diagnostics
