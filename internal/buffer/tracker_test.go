package buffer

import (
	"testing"

	"relint/internal/diag"
	"relint/internal/highlight"
)

func TestRecordSyntaxChangeDetection(t *testing.T) {
	tr := NewTracker()

	if !tr.RecordSyntax(1, "go") {
		t.Fatal("first RecordSyntax should report a change")
	}
	if tr.RecordSyntax(1, "go") {
		t.Fatal("same syntax should not report a change")
	}
	if !tr.RecordSyntax(1, "python") {
		t.Fatal("different syntax should report a change")
	}
	if got := tr.Syntax(1); got != "python" {
		t.Fatalf("Syntax(1) = %q, want %q", got, "python")
	}
}

func TestLastHitMonotonic(t *testing.T) {
	tr := NewTracker()
	tr.SetLastHit(1, 5)
	tr.SetLastHit(1, 3)
	got, ok := tr.LastHit(1)
	if !ok {
		t.Fatal("LastHit(1) not tracked")
	}
	if got != 5 {
		t.Fatalf("LastHit(1) = %d, want 5 (must not move backwards)", got)
	}
	tr.SetLastHit(1, 9)
	if got, _ = tr.LastHit(1); got != 9 {
		t.Fatalf("LastHit(1) = %d, want 9", got)
	}
}

func TestMarkFlagsIdempotent(t *testing.T) {
	tr := NewTracker()
	tr.MarkLoaded(7)
	tr.MarkLoaded(7)
	tr.MarkAnalyzed(7)
	if !tr.Loaded(7) || !tr.Analyzed(7) {
		t.Fatal("flags not set")
	}
	if tr.Loaded(8) || tr.Analyzed(8) {
		t.Fatal("flags leaked to untracked buffer")
	}
}

func TestPurgeCompleteness(t *testing.T) {
	tr := NewTracker()
	tr.MarkLoaded(4)
	tr.RecordSyntax(4, "go")
	tr.SetLastHit(4, 42)
	m := diag.LineMap{}
	m.Add(diag.Diagnostic{Line: 1, Message: "x", Linter: "demo"})
	tr.SetDiagnostics(4, m)
	set := highlight.NewSet()
	set.Add(highlight.ScopeError, highlight.Region{Line: 1, Start: 0, End: 1})
	tr.SetHighlights(4, set)

	tr.Purge(4)
	tr.Purge(4) // must be safe when already absent

	if tr.Tracked(4) || tr.Loaded(4) || tr.Analyzed(4) {
		t.Fatal("state survived purge")
	}
	if got := tr.Syntax(4); got != "" {
		t.Fatalf("Syntax after purge = %q, want empty", got)
	}
	if _, ok := tr.LastHit(4); ok {
		t.Fatal("LastHit tracked after purge")
	}
	if got := tr.Diagnostics(4).Total(); got != 0 {
		t.Fatalf("diagnostics after purge = %d, want 0", got)
	}
	if got := tr.Highlights(4).Len(); got != 0 {
		t.Fatalf("highlights after purge = %d, want 0", got)
	}
}

func TestIDsSorted(t *testing.T) {
	tr := NewTracker()
	tr.MarkLoaded(9)
	tr.MarkLoaded(2)
	tr.MarkLoaded(5)
	ids := tr.IDs()
	if len(ids) != 3 || ids[0] != 2 || ids[1] != 5 || ids[2] != 9 {
		t.Fatalf("IDs() = %v, want [2 5 9]", ids)
	}
}
