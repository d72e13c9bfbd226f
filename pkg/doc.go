// Package pkg provides the core libraries for choromap choropleth rendering.
//
// # Overview
//
// Choromap paints per-region statistics onto externally supplied region
// geometry and annotates the result with labels, ranking bars, or routed
// callouts. The pkg directory is organized into four main areas:
//
//  1. Domain model ([region], [geom], [scale]) - regions, rectangles, color scales
//  2. Rendering ([render/choropleth]) - layout, annotation features, output sinks
//  3. Interaction ([interact]) - hover and selection state machine
//  4. Orchestration ([pipeline], [cache], [io]) - cached end-to-end runs
//
// # Architecture
//
// The typical data flow through choromap:
//
//	Geometry file (JSON)
//	         ↓
//	    [io] package (read and validate regions, data, offsets)
//	         ↓
//	    [render/choropleth/layout] package (frame, paint order, anchors)
//	         ↓
//	    [render/choropleth] package (labels, bars, callouts)
//	         ↓
//	    [render/choropleth/sink] package (SVG, PDF, PNG, JSON output)
//
// # Quick Start
//
// Render a geometry file to SVG:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/choromap/pkg/io"
//	    "github.com/matzehuels/choromap/pkg/pipeline"
//	)
//
//	geo, _ := io.ImportJSON("regions.json")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), geo, pipeline.Options{
//	    Data: geo.Data,
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
//
// # Main Packages
//
// [region] - Region sets (name → bounding box, sorted iteration) and the
// per-region datum model (count, rate, text fallbacks).
//
// [geom] - Rectangles, points, frames, and viewports. All layout math
// happens on these types.
//
// [scale] - Threshold color scales and perceptual color ramps.
//
// [render/choropleth] - Annotation features: label placement with the
// min-size gate, pie and bar charts, callout routing around the frame.
//
// [render/choropleth/layout] - Frame computation, paint order, and anchor
// points, serializable for caching.
//
// [render/choropleth/sink] - Output sinks for SVG (optionally interactive),
// PDF, PNG, and JSON round-tripping.
//
// [interact] - The hover and selection state machine shared by the embedded
// SVG script and the terminal explorer.
//
// [pipeline] - Cached layout → render orchestration used by the CLI and the
// HTTP server.
//
// [cache] - File, Redis, and null cache backends with staged content keys
// (geometry → layout → artifact).
//
// [io] - Geometry document reading, validation, and export.
//
// [httputil] - Cached, retrying HTTP fetches for remote geometry.
//
// [errors] - Structured error codes and input validation shared by all
// surfaces.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/interact/... # Specific package
//	go test -run Example       # Examples only
package pkg
