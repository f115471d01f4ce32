// Package highlight models the visual regions derived from diagnostics and
// the clear/draw contract against the host editor.
package highlight

import "sort"

// Region is a highlighted stretch of one buffer line. Start and End are
// 0-based offsets into the buffer; Line is the 0-based line containing
// Start.
type Region struct {
	Line  int
	Start int
	End   int
}

// Painter is the abstract draw/clear primitive exposed by the host editor.
// Scope identifies a render group (severity class); the host maps it to
// gutter icons and underline styles.
type Painter interface {
	DrawRegions(scope string, regions []Region)
	ClearRegions(scope string)
}

// Render scopes, one per severity class. Clearing always covers the full
// list so a set with no regions for a scope still erases stale marks.
const (
	ScopeInfo    = "relint.info"
	ScopeWarning = "relint.warning"
	ScopeError   = "relint.error"
)

// Scopes lists every render scope in drawing order.
var Scopes = []string{ScopeInfo, ScopeWarning, ScopeError}

// Set groups regions by render scope.
type Set struct {
	regions map[string][]Region
}

// NewSet returns an empty highlight set.
func NewSet() *Set {
	return &Set{regions: make(map[string][]Region)}
}

// Add appends a region under scope.
func (s *Set) Add(scope string, r Region) {
	s.regions[scope] = append(s.regions[scope], r)
}

// Merge appends all regions from other, keeping per-scope order.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for scope, list := range other.regions {
		s.regions[scope] = append(s.regions[scope], list...)
	}
}

// Regions returns the regions stored under scope in stable sorted order.
func (s *Set) Regions(scope string) []Region {
	list := s.regions[scope]
	if len(list) == 0 {
		return nil
	}
	out := make([]Region, len(list))
	copy(out, list)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

// Len returns the total number of regions across all scopes.
func (s *Set) Len() int {
	total := 0
	for _, list := range s.regions {
		total += len(list)
	}
	return total
}

// Clear erases every render scope on the painter, regardless of whether
// this set holds regions for it. Stale marks from a previous draw must not
// survive an empty result.
func (s *Set) Clear(p Painter) {
	for _, scope := range Scopes {
		p.ClearRegions(scope)
	}
}

// Draw renders the set's regions. Callers clear first; draw-over-draw
// duplicates marks on hosts that accumulate regions per scope.
func (s *Set) Draw(p Painter) {
	for _, scope := range Scopes {
		regions := s.Regions(scope)
		if len(regions) == 0 {
			continue
		}
		p.DrawRegions(scope, regions)
	}
}
