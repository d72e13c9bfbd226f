// Package styles defines the visual artifacts the annotation passes emit
// and the Style interface that turns them into SVG fragments.
package styles

import (
	"bytes"

	"github.com/matzehuels/choromap/pkg/geom"
)

// Style controls how painted regions and their annotations are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderRegion writes the SVG for a single painted region.
	RenderRegion(buf *bytes.Buffer, r RegionShape)
	// RenderLabel writes the SVG for a region label.
	RenderLabel(buf *bytes.Buffer, l Label)
	// RenderGlyph writes the SVG for a proportional pie glyph.
	RenderGlyph(buf *bytes.Buffer, g Glyph)
	// RenderCallout writes the SVG for a leader-line callout.
	RenderCallout(buf *bytes.Buffer, c Callout)
	// RenderBarRow writes the SVG for one row of the ranked bar panel.
	RenderBarRow(buf *bytes.Buffer, b BarRow)
}

// RegionShape contains everything needed to paint one region.
type RegionShape struct {
	Name string    // Region identifier
	BBox geom.Rect // Painted geometry
	Fill string    // Scale-derived fill color
}

// Label is a centered region label, optionally carrying glyph data.
type Label struct {
	Name       string     // Owning region
	Text       string     // Display text
	At         geom.Point // Anchor (both axes centered)
	FontSize   float64
	FontWeight string
}

// Slice is one wedge of a pie glyph, already expressed as a path.
type Slice struct {
	Path string // SVG path data
	Fill string
}

// Glyph is a pie glyph attached near a region label.
type Glyph struct {
	Name   string // Owning region
	Center geom.Point
	Slices []Slice
}

// Callout is a leader line from a region anchor to margin text.
type Callout struct {
	Name      string       // Owning region
	Text      string       // Margin text
	Points    []geom.Point // Leader line: anchor, optional bypass bend, margin end
	TextAt    geom.Point   // Text position on the margin
	AlignEnd  bool         // true = text-anchor end (left-side callouts)
	LineColor string
	LineWidth float64
	PinRadius float64
	FontSize  float64
}

// BarRow is one row of the rank-ordered bar panel. Coordinates are local to
// the panel group; the sink positions the group under the map.
type BarRow struct {
	Name       string
	ValueText  string  // Formatted value, "-" for unknown
	Index      int     // Rank position, 0 = highest
	Y          float64 // Row top within the panel
	LabelWidth float64 // Horizontal space reserved for the name column
	BarLength  float64 // Scaled bar extent
	RowHeight  float64
	Rounding   float64 // Corner radius
	Fill       string
}
