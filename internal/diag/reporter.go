package diag

// Reporter is the minimal contract checkers use to emit findings without
// coupling to storage. Implementations: MapReporter (into a LineMap),
// DedupReporter (duplicate suppression fan-in).
type Reporter interface {
	Report(line, col int, sev Severity, linter, msg string)
}

// MapReporter writes into a LineMap.
type MapReporter struct{ Map LineMap }

func (r MapReporter) Report(line, col int, sev Severity, linter, msg string) {
	if r.Map == nil {
		return
	}
	r.Map.Add(Diagnostic{
		Line:     line,
		Col:      col,
		Severity: sev,
		Message:  msg,
		Linter:   linter,
	})
}

type dedupKey struct {
	line   int
	col    int
	sev    Severity
	linter string
	msg    string
}

// DedupReporter wraps another Reporter and suppresses duplicate reports
// with the same position, severity, linter and message.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that filters out duplicates while
// forwarding unique diagnostics to the provided reporter.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(line, col int, sev Severity, linter, msg string) {
	if r == nil {
		return
	}
	key := dedupKey{line: line, col: col, sev: sev, linter: linter, msg: msg}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(line, col, sev, linter, msg)
	}
}
