package pipeline

import (
	chio "github.com/matzehuels/choromap/pkg/io"
	"github.com/matzehuels/choromap/pkg/render"
	"github.com/matzehuels/choromap/pkg/render/choropleth"
	"github.com/matzehuels/choromap/pkg/render/choropleth/layout"
	"github.com/matzehuels/choromap/pkg/render/choropleth/sink"
	"github.com/matzehuels/choromap/pkg/render/choropleth/styles"
	"github.com/matzehuels/choromap/pkg/scale"
)

// RenderFromLayout produces all requested artifacts for a computed layout.
// Rendering order is fixed: paint, labels, interactions, then the mode's
// extra feature.
func RenderFromLayout(l layout.Layout, geo *chio.Geometry, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	svgOpts := buildSVGOptions(l, geo, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	needsSVG := false
	for _, f := range opts.Formats {
		if f != FormatJSON {
			needsSVG = true
		}
	}
	if needsSVG {
		svg = sink.RenderSVG(l, svgOpts...)
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[FormatSVG] = svg
		case FormatPNG:
			png, err := render.ToPNG(svg, 2.0)
			if err != nil {
				return nil, err
			}
			artifacts[FormatPNG] = png
		case FormatPDF:
			pdf, err := render.ToPDF(svg)
			if err != nil {
				return nil, err
			}
			artifacts[FormatPDF] = pdf
		case FormatJSON:
			doc, err := sink.RenderJSON(l,
				sink.WithJSONData(opts.Data),
				sink.WithJSONMode(opts.Mode),
				sink.WithJSONStyle(opts.Style))
			if err != nil {
				return nil, err
			}
			artifacts[FormatJSON] = doc
		}
	}

	return artifacts, nil
}

// buildSVGOptions translates pipeline configuration into sink options.
func buildSVGOptions(l layout.Layout, geo *chio.Geometry, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithStyle(styles.Simple{}),
		sink.WithScale(scale.New(opts.Thresholds, opts.Colors)),
		sink.WithData(opts.Data),
	}

	labels, glyphs := choropleth.PlaceLabels(l, labelOptions(opts.Labels))
	svgOpts = append(svgOpts, sink.WithLabels(labels, glyphs))

	switch opts.Mode {
	case ModeBars:
		barOpts := barOptions(opts.Bars)
		svgOpts = append(svgOpts, sink.WithBars(choropleth.RankBars(opts.Data, barOpts), barOpts))
	case ModeCallouts:
		routed := choropleth.RouteCallouts(l, opts.Data, calloutOptions(opts.Callouts, geo))
		svgOpts = append(svgOpts, sink.WithCallouts(routed))
	}

	if opts.Interactive {
		svgOpts = append(svgOpts, sink.WithInteraction(opts.Interaction.ToOptions()))
	}
	if opts.Legend {
		svgOpts = append(svgOpts, sink.WithLegend())
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}

	return svgOpts
}

func labelOptions(c *LabelConfig) choropleth.LabelOptions {
	if c == nil {
		return choropleth.LabelOptions{}
	}
	opts := choropleth.LabelOptions{
		FontSize:   c.FontSize,
		FontWeight: c.FontWeight,
		MinWidth:   c.MinWidth,
		MinHeight:  c.MinHeight,
	}
	if c.Glyph != nil {
		opts.Glyph = &choropleth.GlyphOptions{
			Side:        choropleth.Side(c.Glyph.Side),
			Gap:         c.Glyph.Gap,
			Radius:      c.Glyph.Radius,
			InnerRadius: c.Glyph.InnerRadius,
			Colors:      c.Glyph.Colors,
			Values:      c.Glyph.Values,
		}
	}
	return opts
}

func barOptions(c *BarConfig) choropleth.BarOptions {
	if c == nil {
		return choropleth.BarOptions{}
	}
	return choropleth.BarOptions{
		RowHeight:  c.RowHeight,
		Gap:        c.Gap,
		MaxWidth:   c.MaxWidth,
		Rounding:   c.Rounding,
		LabelWidth: c.LabelWidth,
		Fill:       c.Fill,
	}
}

func calloutOptions(c *CalloutConfig, geo *chio.Geometry) choropleth.CalloutOptions {
	opts := choropleth.CalloutOptions{}
	if c != nil {
		opts = choropleth.CalloutOptions{
			Padding:    c.Padding,
			Margin:     c.Margin,
			TextOffset: c.TextOffset,
			LineColor:  c.LineColor,
			LineWidth:  c.LineWidth,
			PinRadius:  c.PinRadius,
			FontSize:   c.FontSize,
		}
	}
	if geo != nil {
		opts.Bypass = geo.Bypass
	}
	return opts
}
