package diag

import (
	"reflect"
	"testing"
)

func TestLineMapMergePreservesOrder(t *testing.T) {
	first := LineMap{}
	first.Add(Diagnostic{Line: 3, Col: 7, Message: "unused var", Linter: "vet"})
	first.Add(Diagnostic{Line: 3, Col: 1, Message: "bad indent", Linter: "vet"})

	second := LineMap{}
	second.Add(Diagnostic{Line: 3, Col: 4, Message: "shadowed", Linter: "shadow"})
	second.Add(Diagnostic{Line: 9, Col: 0, Message: "long line", Linter: "style"})

	merged := LineMap{}
	merged.Merge(first)
	merged.Merge(second)

	if got := merged.Total(); got != 4 {
		t.Fatalf("Total() = %d, want 4", got)
	}
	if got := merged.SortedLines(); !reflect.DeepEqual(got, []int{3, 9}) {
		t.Fatalf("SortedLines() = %v, want [3 9]", got)
	}

	// Within line 3 insertion order is first's entries, then second's.
	msgs := make([]string, 0, 3)
	for _, d := range merged[3] {
		msgs = append(msgs, d.Message)
	}
	want := []string{"unused var", "bad indent", "shadowed"}
	if !reflect.DeepEqual(msgs, want) {
		t.Fatalf("line 3 order = %v, want %v", msgs, want)
	}
}

func TestLineSortedOrdersByColumn(t *testing.T) {
	m := LineMap{}
	m.Add(Diagnostic{Line: 5, Col: 12, Message: "missing semicolon", Linter: "b"})
	m.Add(Diagnostic{Line: 5, Col: 2, Message: "unused var", Linter: "a"})

	sorted := m.LineSorted(5)
	if len(sorted) != 2 {
		t.Fatalf("LineSorted len = %d, want 2", len(sorted))
	}
	if sorted[0].Message != "unused var" || sorted[1].Message != "missing semicolon" {
		t.Fatalf("wrong column order: %v", sorted)
	}
	// Stored slice untouched.
	if m[5][0].Message != "missing semicolon" {
		t.Fatalf("LineSorted mutated stored slice: %v", m[5])
	}
}

func TestLineSortedEmpty(t *testing.T) {
	m := LineMap{}
	if got := m.LineSorted(1); got != nil {
		t.Fatalf("LineSorted on empty map = %v, want nil", got)
	}
}

func TestDedupReporter(t *testing.T) {
	m := LineMap{}
	r := NewDedupReporter(MapReporter{Map: m})
	r.Report(2, 0, SevError, "vet", "bad indent")
	r.Report(2, 0, SevError, "vet", "bad indent")
	r.Report(2, 0, SevWarning, "vet", "bad indent")

	if got := m.Total(); got != 2 {
		t.Fatalf("Total() = %d, want 2 after dedup", got)
	}
}

func TestLineMapDedup(t *testing.T) {
	m := LineMap{}
	m.Add(Diagnostic{Line: 1, Col: 0, Message: "dup", Linter: "x"})
	m.Add(Diagnostic{Line: 1, Col: 0, Message: "dup", Linter: "x"})
	m.Add(Diagnostic{Line: 1, Col: 0, Message: "other", Linter: "x"})
	m.Dedup()
	if got := m.Total(); got != 2 {
		t.Fatalf("Total() = %d, want 2", got)
	}
}

func TestHasErrors(t *testing.T) {
	m := LineMap{}
	m.Add(Diagnostic{Line: 0, Severity: SevWarning, Message: "w", Linter: "x"})
	if m.HasErrors() {
		t.Fatal("HasErrors() = true with only warnings")
	}
	m.Add(Diagnostic{Line: 0, Severity: SevError, Message: "e", Linter: "x"})
	if !m.HasErrors() {
		t.Fatal("HasErrors() = false with an error present")
	}
}
