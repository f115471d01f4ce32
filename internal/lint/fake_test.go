package lint

import (
	"context"
	"sort"
	"sync"

	"relint/internal/buffer"
	"relint/internal/checker"
	"relint/internal/diag"
	"relint/internal/editor"
	"relint/internal/highlight"
)

// fakeView is an in-memory stand-in for a host editor buffer. It records
// draw/clear and status calls so tests can assert on rendered state.
type fakeView struct {
	mu      sync.Mutex
	id      buffer.ID
	content string
	syntax  string
	path    string
	selLine int
	selOK   bool

	drawn      map[string][]highlight.Region
	status     map[string]string
	clearCalls int
}

func newFakeView(id buffer.ID, syntax, content string) *fakeView {
	return &fakeView{
		id:      id,
		content: content,
		syntax:  syntax,
		selOK:   true,
		drawn:   make(map[string][]highlight.Region),
		status:  make(map[string]string),
	}
}

func (v *fakeView) ID() buffer.ID    { return v.id }
func (v *fakeView) FilePath() string { return v.path }

func (v *fakeView) Size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.content)
}

func (v *fakeView) Content() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.content
}

func (v *fakeView) Syntax() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.syntax
}

func (v *fakeView) setSyntax(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.syntax = s
}

func (v *fakeView) PrimarySelectionLine() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selLine, v.selOK
}

func (v *fakeView) setSelection(line int, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selLine, v.selOK = line, ok
}

func (v *fakeView) RegionsBySelector(string) []highlight.Region { return nil }

func (v *fakeView) DrawRegions(scope string, regions []highlight.Region) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.drawn[scope] = append(v.drawn[scope], regions...)
}

func (v *fakeView) ClearRegions(scope string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.clearCalls++
	delete(v.drawn, scope)
}

func (v *fakeView) SetStatus(key, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status[key] = text
}

func (v *fakeView) EraseStatus(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.status, key)
}

func (v *fakeView) statusText() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	s, ok := v.status[StatusKey]
	return s, ok
}

func (v *fakeView) drawnRegions(scope string) []highlight.Region {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]highlight.Region(nil), v.drawn[scope]...)
}

type fakeHost struct {
	mu        sync.Mutex
	views     map[buffer.ID]*fakeView
	errLists  []buffer.ID
}

func newFakeHost(views ...*fakeView) *fakeHost {
	h := &fakeHost{views: make(map[buffer.ID]*fakeView)}
	for _, v := range views {
		h.views[v.id] = v
	}
	return h
}

func (h *fakeHost) ViewByID(id buffer.ID) (editor.View, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.views[id]
	return v, ok
}

func (h *fakeHost) Views() []editor.View {
	h.mu.Lock()
	defer h.mu.Unlock()
	ids := make([]buffer.ID, 0, len(h.views))
	for id := range h.views {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]editor.View, 0, len(ids))
	for _, id := range ids {
		out = append(out, h.views[id])
	}
	return out
}

func (h *fakeHost) ShowErrorList(id buffer.ID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errLists = append(h.errLists, id)
}

func (h *fakeHost) close(id buffer.ID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.views, id)
}

func (h *fakeHost) shownErrorLists() []buffer.ID {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]buffer.ID(nil), h.errLists...)
}

// fixedChecker returns predeclared findings and counts Clear calls.
type fixedChecker struct {
	mu      sync.Mutex
	name    string
	diags   []diag.Diagnostic
	regions []highlight.Region
	cleared int
	checks  int
}

func (c *fixedChecker) Name() string        { return c.name }
func (c *fixedChecker) Selectors() []string { return nil }

func (c *fixedChecker) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleared++
}

func (c *fixedChecker) clearCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cleared
}

func (c *fixedChecker) checkCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checks
}

func (c *fixedChecker) Check(_ context.Context, _ checker.Request) (checker.Result, error) {
	c.mu.Lock()
	c.checks++
	c.mu.Unlock()
	m := diag.LineMap{}
	for _, d := range c.diags {
		if d.Linter == "" {
			d.Linter = c.name
		}
		m.Add(d)
	}
	set := highlight.NewSet()
	for _, r := range c.regions {
		set.Add(highlight.ScopeError, r)
	}
	return checker.Result{Linter: c.name, Diagnostics: m, Highlights: set}, nil
}
