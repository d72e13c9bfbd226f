// Package sink provides output format renderers for choropleth maps.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] plus annotation artifacts
// into a final output format. This package provides renderers for:
//
//   - SVG: Scalable vector graphics with interactivity
//   - JSON: Layout and data export for external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] produces an interactive SVG with:
//
//   - Regions painted through a threshold color scale
//   - Labels with optional proportional pie glyphs
//   - Leader-line callouts on the left and right margins
//   - A rank-ordered bar panel below the map
//   - Hover, selection, and keyboard interaction as embedded script
//
// Basic usage:
//
//	svg := sink.RenderSVG(l,
//	    sink.WithScale(colorScale),
//	    sink.WithData(dataset),
//	    sink.WithLabels(labels, glyphs),
//	    sink.WithInteraction(interact.Options{Shadow: true}),
//	)
//
// # JSON Output
//
// [RenderJSON] exports the layout and dataset as JSON, enabling external
// tooling and round-trip rendering via [ParseJSON].
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the layout by first generating SVG,
// then converting via [render.ToPDF] and [render.ToPNG]. These require
// librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [render.ToPDF]: github.com/matzehuels/choromap/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/choromap/pkg/render.ToPNG
// [layout.Layout]: github.com/matzehuels/choromap/pkg/render/choropleth/layout.Layout
package sink
