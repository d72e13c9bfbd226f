// Package layout derives the shared coordinate frame and per-region anchor
// points that every annotation pass measures against. The frame is computed
// from the regions as painted, before any callout-induced viewport growth.
package layout

import (
	"encoding/json"

	"github.com/matzehuels/choromap/pkg/geom"
	"github.com/matzehuels/choromap/pkg/region"
)

// Layout is the serializable result of a layout pass.
type Layout struct {
	Frame   geom.Frame            `json:"frame"`
	Order   []string              `json:"order"`
	BBoxes  map[string]geom.Rect  `json:"bboxes"`
	Anchors map[string]geom.Point `json:"anchors"`
}

// Build computes the layout for a region set. offsets holds optional
// per-region anchor nudges in pixels; names without an entry anchor at the
// bbox center.
func Build(set *region.Set, offsets map[string]geom.Point) Layout {
	l := Layout{
		Frame:   set.Frame(),
		Order:   set.Names(),
		BBoxes:  make(map[string]geom.Rect, set.Len()),
		Anchors: make(map[string]geom.Point, set.Len()),
	}
	for _, name := range l.Order {
		box, _ := set.BBox(name)
		l.BBoxes[name] = box
		l.Anchors[name] = box.Center().Add(offsets[name])
	}
	return l
}

// Viewport is the logical SVG viewBox.
type Viewport struct {
	MinX   float64 `json:"min_x"`
	MinY   float64 `json:"min_y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Viewport seeds a viewport from the frame.
func (l Layout) Viewport() Viewport {
	return Viewport{
		MinX:   l.Frame.X,
		MinY:   l.Frame.Y,
		Width:  l.Frame.Width,
		Height: l.Frame.Height,
	}
}

// ExpandX returns a copy widened by pad on both sides. The vertical extent
// is untouched. The receiver is not modified, so deriving the viewport from
// the frame and expanding it is idempotent across render passes.
func (v Viewport) ExpandX(pad float64) Viewport {
	v.MinX -= pad
	v.Width += 2 * pad
	return v
}

// Marshal encodes the layout as indented JSON for caching and export.
func (l Layout) Marshal() ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal decodes a layout produced by Marshal.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	err := json.Unmarshal(data, &l)
	return l, err
}
