// Package region defines the externally supplied region geometry mapping and
// the per-region data model. The engine never creates or destroys regions;
// it only reads their bounding boxes and attaches visual state elsewhere.
package region

import (
	"slices"

	"github.com/matzehuels/choromap/pkg/geom"
)

// Placeholder is the text rendered for a missing or unparsable value.
const Placeholder = "-"

// Set is a name → bounding box mapping with deterministic iteration order.
// Names are kept sorted so repeated renders of the same input produce
// byte-identical output.
type Set struct {
	boxes map[string]geom.Rect
	names []string
}

// NewSet creates an empty region set.
func NewSet() *Set {
	return &Set{boxes: make(map[string]geom.Rect)}
}

// Add registers a region's bounding box, replacing any previous geometry
// under the same name.
func (s *Set) Add(name string, box geom.Rect) {
	if _, ok := s.boxes[name]; !ok {
		i, _ := slices.BinarySearch(s.names, name)
		s.names = slices.Insert(s.names, i, name)
	}
	s.boxes[name] = box
}

// BBox returns the bounding box for name. The second return is false when
// the region is unknown; callers skip such names silently.
func (s *Set) BBox(name string) (geom.Rect, bool) {
	box, ok := s.boxes[name]
	return box, ok
}

// Names returns the region names in sorted order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of regions.
func (s *Set) Len() int { return len(s.boxes) }

// Rects returns all bounding boxes in name order.
func (s *Set) Rects() []geom.Rect {
	out := make([]geom.Rect, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.boxes[name])
	}
	return out
}

// Frame computes the union frame over all regions in the set.
func (s *Set) Frame() geom.Frame {
	return geom.Union(s.Rects())
}
