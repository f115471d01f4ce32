package diag

// Diagnostic is a single finding reported by a checker backend for one
// position inside a buffer. Line and Col are 0-based.
type Diagnostic struct {
	Line     int
	Col      int
	Severity Severity
	Message  string
	// Linter names the backend that produced this diagnostic.
	Linter string
}

// Before orders diagnostics by line, then column, then linter name for
// stable output.
func (d Diagnostic) Before(other Diagnostic) bool {
	if d.Line != other.Line {
		return d.Line < other.Line
	}
	if d.Col != other.Col {
		return d.Col < other.Col
	}
	return d.Linter < other.Linter
}
