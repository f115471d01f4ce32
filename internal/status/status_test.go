package status

import (
	"testing"

	"relint/internal/diag"
)

func specMap() diag.LineMap {
	m := diag.LineMap{}
	m.Add(diag.Diagnostic{Line: 2, Col: 0, Message: "bad indent", Linter: "demo"})
	m.Add(diag.Diagnostic{Line: 5, Col: 3, Message: "unused var", Linter: "demo"})
	m.Add(diag.Diagnostic{Line: 5, Col: 14, Message: "missing semicolon", Linter: "demo"})
	return m
}

func TestSummarize(t *testing.T) {
	cases := []struct {
		name   string
		diags  diag.LineMap
		line   int
		want   string
		wantOK bool
	}{
		{
			name:   "cursor on multi-diagnostic line",
			diags:  specMap(),
			line:   5,
			want:   "2-3 of 3 errors: unused var; missing semicolon",
			wantOK: true,
		},
		{
			name:   "cursor on single-diagnostic line",
			diags:  specMap(),
			line:   2,
			want:   "1 of 3 errors: bad indent",
			wantOK: true,
		},
		{
			name:   "cursor on clean line",
			diags:  specMap(),
			line:   9,
			want:   "3 errors",
			wantOK: true,
		},
		{
			name:   "no selection",
			diags:  specMap(),
			line:   NoLine,
			want:   "3 errors",
			wantOK: true,
		},
		{
			name:   "empty diagnostics clears status",
			diags:  diag.LineMap{},
			line:   5,
			want:   "",
			wantOK: false,
		},
		{
			name: "single total on cursor line",
			diags: func() diag.LineMap {
				m := diag.LineMap{}
				m.Add(diag.Diagnostic{Line: 4, Col: 1, Message: "trailing whitespace", Linter: "demo"})
				return m
			}(),
			line:   4,
			want:   "Error: trailing whitespace",
			wantOK: true,
		},
		{
			name: "single total off cursor line",
			diags: func() diag.LineMap {
				m := diag.LineMap{}
				m.Add(diag.Diagnostic{Line: 4, Col: 1, Message: "trailing whitespace", Linter: "demo"})
				return m
			}(),
			line:   0,
			want:   "1 error",
			wantOK: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Summarize(tc.diags, tc.line)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("Summarize() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSummarizeMessagesSortedByColumn(t *testing.T) {
	m := diag.LineMap{}
	// Inserted out of column order on purpose.
	m.Add(diag.Diagnostic{Line: 1, Col: 20, Message: "second", Linter: "b"})
	m.Add(diag.Diagnostic{Line: 1, Col: 2, Message: "first", Linter: "a"})
	m.Add(diag.Diagnostic{Line: 7, Col: 0, Message: "elsewhere", Linter: "a"})

	got, ok := Summarize(m, 1)
	if !ok {
		t.Fatal("expected status text")
	}
	want := "1-2 of 3 errors: first; second"
	if got != want {
		t.Fatalf("Summarize() = %q, want %q", got, want)
	}
}

func TestSummarizeDeterministicAcrossCheckerOrder(t *testing.T) {
	a := diag.LineMap{}
	a.Add(diag.Diagnostic{Line: 3, Col: 5, Message: "from-x", Linter: "x"})
	a.Add(diag.Diagnostic{Line: 3, Col: 1, Message: "from-y", Linter: "y"})

	b := diag.LineMap{}
	b.Add(diag.Diagnostic{Line: 3, Col: 1, Message: "from-y", Linter: "y"})
	b.Add(diag.Diagnostic{Line: 3, Col: 5, Message: "from-x", Linter: "x"})

	s1, _ := Summarize(a, 3)
	s2, _ := Summarize(b, 3)
	if s1 != s2 {
		t.Fatalf("summary depends on insertion order: %q vs %q", s1, s2)
	}
}
