package choropleth

import (
	"github.com/matzehuels/choromap/pkg/geom"
	"github.com/matzehuels/choromap/pkg/render/choropleth/layout"
	"github.com/matzehuels/choromap/pkg/render/choropleth/styles"
)

// Side positions a pie glyph relative to its label anchor.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Default minimum bbox for a readable label.
const (
	DefaultMinLabelWidth  = 16.0
	DefaultMinLabelHeight = 12.0
)

// LabelOptions configures label placement.
type LabelOptions struct {
	FontSize   float64 // default 11
	FontWeight string
	MinWidth   float64 // regions narrower than this get no label
	MinHeight  float64
	Offsets    map[string]geom.Point // per-region anchor nudges
	Glyph      *GlyphOptions         // nil disables glyphs
}

// GlyphOptions configures the optional pie glyph next to each label.
type GlyphOptions struct {
	Side        Side // default right
	Gap         float64
	Radius      float64
	InnerRadius float64
	Colors      []string
	Values      map[string][]float64  // proportional data per region
	Offsets     map[string]geom.Point // extra per-region glyph nudges
}

func (o LabelOptions) withDefaults() LabelOptions {
	if o.FontSize <= 0 {
		o.FontSize = 11
	}
	if o.MinWidth <= 0 {
		o.MinWidth = DefaultMinLabelWidth
	}
	if o.MinHeight <= 0 {
		o.MinHeight = DefaultMinLabelHeight
	}
	return o
}

// PlaceLabels computes label artifacts for every region large enough to
// carry one, plus pie glyphs for regions with proportional data. Regions
// smaller than the configured minimum are skipped so tiny regions do not
// collect unreadable overlapping text.
func PlaceLabels(l layout.Layout, opts LabelOptions) ([]styles.Label, []styles.Glyph) {
	opts = opts.withDefaults()

	var labels []styles.Label
	var glyphs []styles.Glyph
	for _, name := range l.Order {
		box := l.BBoxes[name]
		if box.Width < opts.MinWidth || box.Height < opts.MinHeight {
			continue
		}

		anchor := l.Anchors[name].Add(opts.Offsets[name])
		labels = append(labels, styles.Label{
			Name:       name,
			Text:       name,
			At:         anchor,
			FontSize:   styles.FitFontSize(opts.FontSize, box.Width, len(name)),
			FontWeight: opts.FontWeight,
		})

		if g := opts.Glyph; g != nil {
			values, ok := g.Values[name]
			if !ok {
				continue
			}
			center := glyphCenter(anchor, *g).Add(g.Offsets[name])
			slices := BuildSlices(center, values, SliceOptions{
				OuterRadius: g.Radius,
				InnerRadius: g.InnerRadius,
				Colors:      g.Colors,
			})
			if len(slices) > 0 {
				glyphs = append(glyphs, styles.Glyph{Name: name, Center: center, Slices: slices})
			}
		}
	}
	return labels, glyphs
}

// glyphCenter offsets the glyph from the label anchor by gap plus radius on
// the configured side.
func glyphCenter(anchor geom.Point, g GlyphOptions) geom.Point {
	d := g.Gap + g.Radius
	switch g.Side {
	case SideTop:
		return anchor.Add(geom.Point{Y: -d})
	case SideBottom:
		return anchor.Add(geom.Point{Y: d})
	case SideLeft:
		return anchor.Add(geom.Point{X: -d})
	default: // SideRight and unset
		return anchor.Add(geom.Point{X: d})
	}
}
