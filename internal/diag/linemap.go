package diag

import (
	"fmt"
	"sort"
)

// LineMap keys diagnostics by 0-based line number. Insertion order within a
// line is preserved; consumers that need a global order go through
// SortedLines / LineSorted.
type LineMap map[int][]Diagnostic

// Add appends a diagnostic to its line.
func (m LineMap) Add(d Diagnostic) {
	m[d.Line] = append(m[d.Line], d)
}

// Merge appends all diagnostics from other, keeping other's per-line order.
func (m LineMap) Merge(other LineMap) {
	for line, list := range other {
		m[line] = append(m[line], list...)
	}
}

// Total returns the number of diagnostics across all lines.
func (m LineMap) Total() int {
	total := 0
	for _, list := range m {
		total += len(list)
	}
	return total
}

// SortedLines returns the line keys in ascending order.
func (m LineMap) SortedLines() []int {
	lines := make([]int, 0, len(m))
	for line := range m {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	return lines
}

// LineSorted returns the diagnostics of one line ordered by column, then
// linter. The stored slice is not modified.
func (m LineMap) LineSorted(line int) []Diagnostic {
	list := m[line]
	if len(list) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Col != out[j].Col {
			return out[i].Col < out[j].Col
		}
		return out[i].Linter < out[j].Linter
	})
	return out
}

// HasErrors reports whether any diagnostic has Severity >= Error.
func (m LineMap) HasErrors() bool {
	for _, list := range m {
		for i := range list {
			if list[i].Severity >= SevError {
				return true
			}
		}
	}
	return false
}

// Dedup removes duplicates with the same line, column, linter and message,
// keeping the first occurrence on each line.
func (m LineMap) Dedup() {
	for line, list := range m {
		seen := make(map[string]bool, len(list))
		kept := list[:0]
		for _, d := range list {
			key := fmt.Sprintf("%d:%d:%s:%s", d.Line, d.Col, d.Linter, d.Message)
			if seen[key] {
				continue
			}
			seen[key] = true
			kept = append(kept, d)
		}
		m[line] = kept
	}
}
