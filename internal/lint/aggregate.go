package lint

import (
	"fmt"

	"relint/internal/checker"
	"relint/internal/diag"
	"relint/internal/highlight"
)

// validateResults panics on a structurally invalid completion payload.
// Missing required fields mean a broken integration, and silently
// continuing would corrupt buffer state.
func validateResults(results []checker.Result) {
	for i, r := range results {
		if r.Linter == "" {
			panic(fmt.Sprintf("lint: completion result %d has no linter name", i))
		}
		if r.Diagnostics == nil {
			panic(fmt.Sprintf("lint: completion result %d (%s) has nil diagnostics", i, r.Linter))
		}
		if r.Highlights == nil {
			panic(fmt.Sprintf("lint: completion result %d (%s) has nil highlights", i, r.Linter))
		}
	}
}

// mergeResults folds all per-checker diagnostics into one line-keyed map.
// Same-line diagnostics from different checkers append; checker order and
// per-checker order are both preserved.
func mergeResults(results []checker.Result) diag.LineMap {
	merged := diag.LineMap{}
	for _, r := range results {
		merged.Merge(r.Diagnostics)
	}
	return merged
}

// mergeHighlights folds all per-checker highlight sets into a fresh set.
func mergeHighlights(results []checker.Result) *highlight.Set {
	merged := highlight.NewSet()
	for _, r := range results {
		merged.Merge(r.Highlights)
	}
	return merged
}
