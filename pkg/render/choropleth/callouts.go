package choropleth

import (
	"fmt"

	"github.com/matzehuels/choromap/pkg/geom"
	"github.com/matzehuels/choromap/pkg/region"
	"github.com/matzehuels/choromap/pkg/render/choropleth/layout"
	"github.com/matzehuels/choromap/pkg/render/choropleth/styles"
)

// CalloutOptions configures leader-line callout routing.
type CalloutOptions struct {
	Padding    float64 // horizontal distance from frame edge to the text margin
	Margin     float64 // extra breathing room added to Padding
	// TextOffset is the gap between line end and text, flipping sign
	// with the side. Nil selects the default of 4; pointing at zero
	// butts the text against the line.
	TextOffset *float64
	LineColor  string
	LineWidth  float64
	PinRadius  float64
	FontSize   float64
	Offsets    map[string]geom.Point // per-region anchor nudges
	Bypass     map[string]geom.Point // manual waypoint, absolute offset from anchor
	Formatter  func(name string, d region.Datum) string
}

func (o CalloutOptions) withDefaults() CalloutOptions {
	if o.Padding <= 0 {
		o.Padding = 40
	}
	o.TextOffset = resolve(o.TextOffset, 4)
	if o.LineColor == "" {
		o.LineColor = "#555555"
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 1
	}
	if o.FontSize <= 0 {
		o.FontSize = 11
	}
	return o
}

// Routed is the result of a callout routing pass.
type Routed struct {
	Callouts []styles.Callout
	Viewport layout.Viewport
}

// RouteCallouts computes one leader line per region, from the region anchor
// to text on the left or right margin, and the viewport expanded to hold the
// margins. The expanded viewport is derived from the layout frame on every
// call, so repeated routing never re-stacks the padding.
//
// A region whose anchor sits left of the frame's horizontal center routes
// left; an anchor exactly on the center routes right (the comparison is
// strict), deterministically.
func RouteCallouts(l layout.Layout, data region.Dataset, opts CalloutOptions) Routed {
	opts = opts.withDefaults()

	if l.Frame.IsZero() {
		return Routed{Viewport: l.Viewport()}
	}

	pad := opts.Padding + opts.Margin
	leftX := l.Frame.X - pad
	rightX := l.Frame.MaxX() + pad

	out := Routed{Viewport: l.Viewport().ExpandX(pad)}
	for _, name := range l.Order {
		anchor := l.Anchors[name].Add(opts.Offsets[name])
		left := anchor.X < l.Frame.CenterX

		points := []geom.Point{anchor}
		endY := anchor.Y
		if bypass, ok := opts.Bypass[name]; ok {
			bend := anchor.Add(bypass)
			points = append(points, bend)
			endY = bend.Y
		}

		marginX, nudge := rightX, -*opts.TextOffset
		if left {
			marginX, nudge = leftX, *opts.TextOffset
		}
		points = append(points, geom.Point{X: marginX + nudge, Y: endY})

		out.Callouts = append(out.Callouts, styles.Callout{
			Name:      name,
			Text:      calloutText(name, data[name], opts.Formatter),
			Points:    points,
			TextAt:    geom.Point{X: marginX, Y: endY},
			AlignEnd:  left,
			LineColor: opts.LineColor,
			LineWidth: opts.LineWidth,
			PinRadius: opts.PinRadius,
			FontSize:  opts.FontSize,
		})
	}
	return out
}

func calloutText(name string, d region.Datum, formatter func(string, region.Datum) string) string {
	if formatter != nil {
		return formatter(name, d)
	}
	return fmt.Sprintf("%s : %s", name, d.CountText())
}
