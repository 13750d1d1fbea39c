// Package log captures decode activity as a machine-readable event trace.
//
// It is separate from operational logging (slog): a capture file records every
// buffer the tools looked at, what it decoded to, and why a decode failed, so a
// session can be replayed or audited later.
//
// # Basic Usage
//
//	// Console only, via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// Binary capture file
//	fileLogger, _ := log.NewFileLogger("decode.tlog")
//
//	// Both
//	logger = log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fileLogger)
//
//	session := log.NewSession(logger)
//	session.Input("fixture.bin", buf)
//
// # Event Types
//
// Each event belongs to a stage (read, decode, render) and carries one payload:
//   - InputEvent: size, BLAKE2b-256 digest and leading bytes of a buffer
//   - RecordEvent: the decoded TradeUpdate fields
//   - ErrorEventData: what failed and, for decode failures, which field
//
// # File Format
//
// Capture files are a sequence of CBOR-encoded events with integer keys,
// conventionally named *.tlog. The tradewire log command views, exports and
// summarizes them.
package log
