package checker

import "relint/internal/buffer"

// Registry resolves which checkers apply to a syntax and keeps the
// per-buffer bindings. Like the tracker it is UI-context-owned: no
// locking, all access serialized by the orchestrator.
type Registry struct {
	factories map[string][]Factory
	bound     map[buffer.ID][]Checker
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string][]Factory),
		bound:     make(map[buffer.ID][]Checker),
	}
}

// Register adds a checker factory for a syntax name.
func (r *Registry) Register(syntax string, f Factory) {
	r.factories[syntax] = append(r.factories[syntax], f)
}

// Assign rebinds the buffer to fresh checker instances for syntax. A
// syntax with no registered factories leaves the buffer bound to nothing,
// which is a valid state: the buffer is tracked but never analyzed.
func (r *Registry) Assign(id buffer.ID, syntax string) {
	factories := r.factories[syntax]
	if len(factories) == 0 {
		delete(r.bound, id)
		return
	}
	checkers := make([]Checker, 0, len(factories))
	for _, f := range factories {
		checkers = append(checkers, f())
	}
	r.bound[id] = checkers
}

// CheckersFor returns the checkers bound to a buffer, in registration
// order. Nil when nothing is bound.
func (r *Registry) CheckersFor(id buffer.ID) []Checker {
	return r.bound[id]
}

// Bound reports whether the buffer has at least one bound checker.
func (r *Registry) Bound(id buffer.ID) bool {
	return len(r.bound[id]) > 0
}

// Reset calls Clear on every checker bound to the buffer. Used for the
// deterministic empty-buffer path instead of scheduling analysis.
func (r *Registry) Reset(id buffer.ID) {
	for _, c := range r.bound[id] {
		c.Clear()
	}
}

// Unbind drops the buffer's checker bindings entirely.
func (r *Registry) Unbind(id buffer.ID) {
	delete(r.bound, id)
}

// Selectors returns the union of scope selectors requested by the
// buffer's checkers, deduplicated, in first-seen order.
func (r *Registry) Selectors(id buffer.ID) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range r.bound[id] {
		for _, sel := range c.Selectors() {
			if _, ok := seen[sel]; ok {
				continue
			}
			seen[sel] = struct{}{}
			out = append(out, sel)
		}
	}
	return out
}
