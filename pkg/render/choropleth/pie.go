package choropleth

import (
	"fmt"
	"math"

	"github.com/matzehuels/choromap/pkg/geom"
	"github.com/matzehuels/choromap/pkg/render/choropleth/styles"
)

// SliceOptions configures pie glyph geometry.
type SliceOptions struct {
	OuterRadius float64
	InnerRadius float64 // 0 = full pie
	Colors      []string
}

// defaultGlyphColors is a categorical palette for glyph slices.
var defaultGlyphColors = []string{"#e15759", "#4e79a7", "#f28e2b", "#76b7b2", "#59a14f", "#edc948"}

// BuildSlices computes the wedges of a proportional pie glyph. Angles are
// shares of 360° accumulated in input order, starting at 12 o'clock and
// proceeding clockwise. Values that are zero or negative contribute no
// slice; a non-positive total produces an empty glyph.
func BuildSlices(center geom.Point, values []float64, opts SliceOptions) []styles.Slice {
	var total float64
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return nil
	}

	colors := opts.Colors
	if len(colors) == 0 {
		colors = defaultGlyphColors
	}

	var out []styles.Slice
	angle := -90.0 // 12 o'clock
	for i, v := range values {
		if v <= 0 {
			continue
		}
		sweep := v / total * 360
		out = append(out, styles.Slice{
			Path: wedgePath(center, opts.OuterRadius, opts.InnerRadius, angle, angle+sweep),
			Fill: colors[i%len(colors)],
		})
		angle += sweep
	}
	return out
}

// wedgePath builds the SVG path for one wedge from startDeg to endDeg
// (clockwise, degrees). The large-arc flag must be set once a single slice
// crosses 180°, otherwise the arc renders inverted.
func wedgePath(c geom.Point, outer, inner, startDeg, endDeg float64) string {
	// A single full-circle slice would close on its own start point and
	// collapse; trim a hairline gap to keep one arc segment renderable.
	if endDeg-startDeg >= 360 {
		endDeg = startDeg + 359.99
	}

	largeArc := 0
	if endDeg-startDeg > 180 {
		largeArc = 1
	}

	p1 := arcPoint(c, outer, startDeg)
	p2 := arcPoint(c, outer, endDeg)

	if inner > 0 {
		p3 := arcPoint(c, inner, endDeg)
		p4 := arcPoint(c, inner, startDeg)
		return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z",
			p1.X, p1.Y, outer, outer, largeArc, p2.X, p2.Y,
			p3.X, p3.Y, inner, inner, largeArc, p4.X, p4.Y)
	}
	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f L %.2f %.2f Z",
		p1.X, p1.Y, outer, outer, largeArc, p2.X, p2.Y, c.X, c.Y)
}

func arcPoint(c geom.Point, r, deg float64) geom.Point {
	rad := deg * math.Pi / 180
	return geom.Point{X: c.X + r*math.Cos(rad), Y: c.Y + r*math.Sin(rad)}
}
