// Package diag defines the diagnostic model shared by checkers and the
// lint orchestrator.
//
// # Purpose
//
//   - Provide deterministic data structures capturing findings produced by
//     checker backends for live buffers.
//   - Offer light-weight utilities (Reporter, LineMap) that let producers
//     emit diagnostics without coupling to storage or rendering layers.
//
// # Data model
//
// Diagnostic is the central record: a 0-based Line/Col position, a
// tri-level Severity, a human-oriented Message and the name of the Linter
// backend that produced it.
//
// LineMap groups diagnostics by line, which is the shape both the result
// aggregator (replace-on-commit) and the status summarizer (rank ranges in
// global line/column order) consume. Insertion order within a line is
// preserved so that checker ordering stays observable; any consumer that
// needs a total order goes through SortedLines and LineSorted.
//
// # Emitting diagnostics
//
// Checkers should use a diag.Reporter to decouple emission from storage.
// MapReporter aggregates into a LineMap; DedupReporter suppresses exact
// duplicates before forwarding.
//
// Keep the data model deterministic: no field may depend on evaluation
// order of checkers, so results can be compared and cached safely.
package diag
