// Package status derives the human-readable status-line summary from a
// buffer's diagnostics and the cursor position.
package status

import (
	"fmt"
	"strings"

	"relint/internal/diag"
)

// NoLine is the sentinel for "no active selection". Any negative line
// behaves the same: the cursor-line branch never matches.
const NoLine = -1

// Separator joins the messages of one line in the summary.
const Separator = "; "

// Summarize renders the status text for a buffer. line is the 0-based
// line of the primary cursor, or NoLine when the view has no selection.
// ok is false when there are no diagnostics at all, in which case the
// caller erases any displayed status.
//
// Output is fully determined by the diagnostics map and the line; within
// a line messages are ordered by column.
func Summarize(diags diag.LineMap, line int) (text string, ok bool) {
	total := diags.Total()
	if total == 0 {
		return "", false
	}

	lineDiags := diags.LineSorted(line)
	if line < 0 || len(lineDiags) == 0 {
		return fmt.Sprintf("%d error%s", total, plural(total)), true
	}

	messages := make([]string, 0, len(lineDiags))
	for _, d := range lineDiags {
		messages = append(messages, d.Message)
	}
	joined := strings.Join(messages, Separator)

	if total == 1 {
		return "Error: " + joined, true
	}

	// 1-based rank of this line's first diagnostic in the global
	// (line, column) ordering.
	first := 1
	for _, l := range diags.SortedLines() {
		if l >= line {
			break
		}
		first += len(diags[l])
	}
	if len(lineDiags) == 1 {
		return fmt.Sprintf("%d of %d errors: %s", first, total, joined), true
	}
	last := first + len(lineDiags) - 1
	return fmt.Sprintf("%d-%d of %d errors: %s", first, last, total, joined), true
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
