// Package render provides visualization rendering for choropleth maps.
//
// # Overview
//
// This package contains the rendering pipeline that transforms region
// geometry and per-region data into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Choropleth map rendering (in [choropleth] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are shared by every
// sink so any rendered map can be exported for print or raster use.
//
//	svg := sink.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Choropleth Rendering
//
// The [choropleth] subpackage computes annotation artifacts (labels, pie
// glyphs, leader-line callouts, ranked bars) from a shared layout frame.
//
// Key subpackages:
//   - [choropleth/layout]: Frame, anchor, and viewport computation
//   - [choropleth/sink]: Output formats (SVG, JSON, PDF, PNG)
//   - [choropleth/styles]: Visual artifact rendering
//
// [choropleth]: github.com/matzehuels/choromap/pkg/render/choropleth
// [choropleth/layout]: github.com/matzehuels/choromap/pkg/render/choropleth/layout
// [choropleth/sink]: github.com/matzehuels/choromap/pkg/render/choropleth/sink
// [choropleth/styles]: github.com/matzehuels/choromap/pkg/render/choropleth/styles
package render
