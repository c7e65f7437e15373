// Package trace provides structured operation tracing for remotes.
//
// This package defines the Logger interface and Event type for capturing
// every operation a remote issues against its device, together with the
// device state observed after the operation completed. It is separate from
// operational logging (slog) - operation capture provides a complete
// machine-readable record for debugging and analysis.
//
// # Basic Usage
//
// Remotes emit events to any Logger implementation:
//
//	// For development: log to console via slog
//	rc.SetTraceLogger(trace.NewSlogAdapter(slog.Default()))
//
//	// For production: write to binary file
//	fl, _ := trace.NewFileLogger("session.alog")
//	rc.SetTraceLogger(fl)
//
//	// Both: use MultiLogger
//	rc.SetTraceLogger(trace.NewMultiLogger(
//	    trace.NewSlogAdapter(slog.Default()),
//	    fl,
//	))
//
// # Event Contents
//
// Each Event records the operation performed, the remote kind and session
// that issued it, the device kind label (when the device reports one), and
// the power and volume state observed after the operation completed.
//
// # File Format
//
// Trace files use CBOR encoding with .alog extension. The avb-trace CLI tool
// provides viewing, filtering, and export capabilities.
package trace
