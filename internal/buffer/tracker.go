// Package buffer tracks per-buffer lint state: load/analyze flags, the
// bound syntax, the last hit time and the currently committed diagnostics
// and highlights.
package buffer

import (
	"sort"

	"relint/internal/diag"
	"relint/internal/highlight"
)

// ID identifies an open buffer. It is stable for the life of the buffer
// and may be reused by the host only after the buffer is closed and purged.
type ID int64

// HitTime orders lint requests. Values are minted from a process-wide
// counter; they carry no wall-clock meaning. Zero means "never hit".
type HitTime uint64

// State is the bookkeeping for one open buffer. Owned exclusively by
// Tracker and mutated only from the UI context.
type State struct {
	Loaded      bool
	Analyzed    bool
	Syntax      string
	LastHit     HitTime
	Diagnostics diag.LineMap
	Highlights  *highlight.Set
}

// Tracker owns one State per open buffer. It performs no locking; all
// access happens under the orchestrator's mutex.
type Tracker struct {
	states map[ID]*State
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[ID]*State)}
}

func (t *Tracker) state(id ID) *State {
	s, ok := t.states[id]
	if !ok {
		s = &State{
			Diagnostics: diag.LineMap{},
			Highlights:  highlight.NewSet(),
		}
		t.states[id] = s
	}
	return s
}

// MarkLoaded records that the buffer finished loading. Idempotent.
func (t *Tracker) MarkLoaded(id ID) {
	t.state(id).Loaded = true
}

// MarkAnalyzed records that the buffer has been scheduled for analysis at
// least once. Idempotent.
func (t *Tracker) MarkAnalyzed(id ID) {
	t.state(id).Analyzed = true
}

// Loaded reports whether the buffer finished loading.
func (t *Tracker) Loaded(id ID) bool {
	s, ok := t.states[id]
	return ok && s.Loaded
}

// Analyzed reports whether the buffer was ever scheduled for analysis.
func (t *Tracker) Analyzed(id ID) bool {
	s, ok := t.states[id]
	return ok && s.Analyzed
}

// RecordSyntax stores the buffer's syntax and reports whether it differs
// from the previously recorded value (or none was recorded). This is the
// sole authority for "did syntax change".
func (t *Tracker) RecordSyntax(id ID, syntax string) bool {
	s, ok := t.states[id]
	if ok && s.Syntax == syntax {
		return false
	}
	t.state(id).Syntax = syntax
	return true
}

// Syntax returns the bound syntax, or "" when none was recorded.
func (t *Tracker) Syntax(id ID) string {
	s, ok := t.states[id]
	if !ok {
		return ""
	}
	return s.Syntax
}

// SetLastHit advances the buffer's last hit time. Hit times never move
// backwards; an older value is ignored.
func (t *Tracker) SetLastHit(id ID, hit HitTime) {
	s := t.state(id)
	if hit < s.LastHit {
		return
	}
	s.LastHit = hit
}

// LastHit returns the buffer's last hit time. ok is false when the buffer
// is not tracked.
func (t *Tracker) LastHit(id ID) (HitTime, bool) {
	s, ok := t.states[id]
	if !ok {
		return 0, false
	}
	return s.LastHit, true
}

// Tracked reports whether the buffer has state.
func (t *Tracker) Tracked(id ID) bool {
	_, ok := t.states[id]
	return ok
}

// SetDiagnostics replaces the buffer's committed diagnostics.
func (t *Tracker) SetDiagnostics(id ID, m diag.LineMap) {
	if m == nil {
		m = diag.LineMap{}
	}
	t.state(id).Diagnostics = m
}

// Diagnostics returns the committed diagnostics. Empty map when untracked.
func (t *Tracker) Diagnostics(id ID) diag.LineMap {
	s, ok := t.states[id]
	if !ok {
		return diag.LineMap{}
	}
	return s.Diagnostics
}

// SetHighlights replaces the buffer's committed highlight set.
func (t *Tracker) SetHighlights(id ID, set *highlight.Set) {
	if set == nil {
		set = highlight.NewSet()
	}
	t.state(id).Highlights = set
}

// Highlights returns the committed highlight set. Empty set when untracked.
func (t *Tracker) Highlights(id ID) *highlight.Set {
	s, ok := t.states[id]
	if !ok {
		return highlight.NewSet()
	}
	return s.Highlights
}

// Purge removes all state for a closed buffer. Safe to call when the
// buffer was never tracked.
func (t *Tracker) Purge(id ID) {
	delete(t.states, id)
}

// IDs returns a sorted snapshot of all tracked buffer IDs.
func (t *Tracker) IDs() []ID {
	ids := make([]ID, 0, len(t.states))
	for id := range t.states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
