package checker

import (
	"context"
	"regexp"
	"strings"

	"relint/internal/diag"
	"relint/internal/highlight"
)

// Built-in checkers. They are deliberately language-agnostic: real
// language backends live out of process behind the same Checker contract,
// while these give every integration a working pipeline out of the box.

var todoPattern = regexp.MustCompile(`\b(TODO|FIXME|XXX)\b`)

// StyleChecker flags trailing whitespace and over-long lines.
type StyleChecker struct {
	// MaxLineLength is the longest allowed line in runes. Zero disables
	// the length check.
	MaxLineLength int
}

// NewStyleChecker returns a StyleChecker with a 120-rune line limit.
func NewStyleChecker() *StyleChecker {
	return &StyleChecker{MaxLineLength: 120}
}

func (c *StyleChecker) Name() string        { return "style" }
func (c *StyleChecker) Selectors() []string { return nil }
func (c *StyleChecker) Clear()              {}

func (c *StyleChecker) Check(ctx context.Context, req Request) (Result, error) {
	diags := diag.LineMap{}
	set := highlight.NewSet()
	r := diag.MapReporter{Map: diags}

	offset := 0
	for i, line := range strings.Split(req.Content, "\n") {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		trimmed := strings.TrimRight(line, " \t")
		if len(trimmed) != len(line) {
			col := len(trimmed)
			r.Report(i, col, diag.SevError, c.Name(), "trailing whitespace")
			set.Add(highlight.ScopeError, highlight.Region{
				Line:  i,
				Start: offset + col,
				End:   offset + len(line),
			})
		}
		if c.MaxLineLength > 0 {
			if width := len([]rune(line)); width > c.MaxLineLength {
				r.Report(i, c.MaxLineLength, diag.SevWarning, c.Name(), "line too long")
				set.Add(highlight.ScopeWarning, highlight.Region{
					Line:  i,
					Start: offset + c.MaxLineLength,
					End:   offset + len(line),
				})
			}
		}
		offset += len(line) + 1
	}
	return Result{Linter: c.Name(), Diagnostics: diags, Highlights: set}, nil
}

// TodoChecker surfaces TODO/FIXME/XXX markers as informational
// diagnostics.
type TodoChecker struct{}

// NewTodoChecker returns a TodoChecker.
func NewTodoChecker() *TodoChecker { return &TodoChecker{} }

func (c *TodoChecker) Name() string        { return "todo" }
func (c *TodoChecker) Selectors() []string { return nil }
func (c *TodoChecker) Clear()              {}

func (c *TodoChecker) Check(ctx context.Context, req Request) (Result, error) {
	diags := diag.LineMap{}
	set := highlight.NewSet()
	r := diag.MapReporter{Map: diags}

	offset := 0
	for i, line := range strings.Split(req.Content, "\n") {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		for _, loc := range todoPattern.FindAllStringIndex(line, -1) {
			marker := line[loc[0]:loc[1]]
			r.Report(i, loc[0], diag.SevInfo, c.Name(), marker+" marker")
			set.Add(highlight.ScopeInfo, highlight.Region{
				Line:  i,
				Start: offset + loc[0],
				End:   offset + loc[1],
			})
		}
		offset += len(line) + 1
	}
	return Result{Linter: c.Name(), Diagnostics: diags, Highlights: set}, nil
}

// RegisterBuiltins binds the built-in checkers to every listed syntax.
func RegisterBuiltins(r *Registry, syntaxes []string) {
	for _, syntax := range syntaxes {
		r.Register(syntax, func() Checker { return NewStyleChecker() })
		r.Register(syntax, func() Checker { return NewTodoChecker() })
	}
}
