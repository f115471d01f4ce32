// Package checker defines the backend contract for pluggable code
// checkers and the registry binding them to buffers by syntax.
package checker

import (
	"context"

	"relint/internal/buffer"
	"relint/internal/diag"
	"relint/internal/highlight"
)

// Request carries everything a checker needs for one analysis pass. The
// content is snapshotted on the UI context before the pass starts, so
// checkers never read live buffer state.
type Request struct {
	Buffer  buffer.ID
	Path    string
	Content string
	// Regions maps each selector a checker declared to the matching
	// buffer regions, restricting analysis to embedded code sections.
	Regions map[string][]highlight.Region
}

// Result is one checker's findings for a completed pass.
type Result struct {
	Linter      string
	Diagnostics diag.LineMap
	Highlights  *highlight.Set
}

// Checker analyzes buffer content and produces diagnostics plus highlight
// regions. Implementations must be safe to call from a background
// goroutine; Check receives a snapshot and must not touch editor state.
type Checker interface {
	Name() string
	// Selectors lists the scope selectors this checker wants resolved
	// into Request.Regions. Empty means whole-buffer analysis.
	Selectors() []string
	Check(ctx context.Context, req Request) (Result, error)
	// Clear resets any internal incremental state. Called when a buffer
	// empties or its syntax is rebound.
	Clear()
}

// Factory builds a fresh checker instance for one buffer binding.
type Factory func() Checker
