package highlight

import (
	"reflect"
	"testing"
)

type recordingPainter struct {
	drawn   map[string][]Region
	cleared []string
}

func newRecordingPainter() *recordingPainter {
	return &recordingPainter{drawn: make(map[string][]Region)}
}

func (p *recordingPainter) DrawRegions(scope string, regions []Region) {
	p.drawn[scope] = append(p.drawn[scope], regions...)
}

func (p *recordingPainter) ClearRegions(scope string) {
	p.cleared = append(p.cleared, scope)
	delete(p.drawn, scope)
}

func TestMergeAndRegionsSorted(t *testing.T) {
	a := NewSet()
	a.Add(ScopeError, Region{Line: 5, Start: 40, End: 44})
	a.Add(ScopeError, Region{Line: 2, Start: 10, End: 12})

	b := NewSet()
	b.Add(ScopeError, Region{Line: 2, Start: 4, End: 6})
	b.Add(ScopeWarning, Region{Line: 0, Start: 0, End: 3})

	merged := NewSet()
	merged.Merge(a)
	merged.Merge(b)

	if got := merged.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}
	want := []Region{
		{Line: 2, Start: 4, End: 6},
		{Line: 2, Start: 10, End: 12},
		{Line: 5, Start: 40, End: 44},
	}
	if got := merged.Regions(ScopeError); !reflect.DeepEqual(got, want) {
		t.Fatalf("Regions(error) = %v, want %v", got, want)
	}
}

func TestClearThenDrawIdempotent(t *testing.T) {
	s := NewSet()
	s.Add(ScopeError, Region{Line: 1, Start: 0, End: 4})
	s.Add(ScopeWarning, Region{Line: 3, Start: 2, End: 5})

	p := newRecordingPainter()

	commit := func() {
		s.Clear(p)
		s.Draw(p)
	}
	commit()
	first := map[string][]Region{}
	for scope, regions := range p.drawn {
		first[scope] = append([]Region(nil), regions...)
	}
	commit()

	if !reflect.DeepEqual(p.drawn, first) {
		t.Fatalf("second commit changed rendered state:\nfirst: %v\nsecond: %v", first, p.drawn)
	}
	if len(p.drawn[ScopeError]) != 1 || len(p.drawn[ScopeWarning]) != 1 {
		t.Fatalf("duplicated regions after recommit: %v", p.drawn)
	}
}

func TestClearCoversEmptyScopes(t *testing.T) {
	p := newRecordingPainter()
	p.DrawRegions(ScopeError, []Region{{Line: 9, Start: 0, End: 1}})

	empty := NewSet()
	empty.Clear(p)
	empty.Draw(p)

	if len(p.drawn) != 0 {
		t.Fatalf("empty set left stale marks: %v", p.drawn)
	}
	if len(p.cleared) != len(Scopes) {
		t.Fatalf("Clear touched %d scopes, want %d", len(p.cleared), len(Scopes))
	}
}
