// Package io provides JSON import and export for region geometry and data.
//
// # Overview
//
// This package enables serialization of region sets to and from a simple
// JSON format. The format is designed for:
//
//   - Rendering any named-region map, not just geographic ones
//   - Integration with external tools that produce or consume region data
//   - Caching of imported geometry for faster re-rendering
//   - Round-trip preservation: import, render, export, and re-import identically
//
// # JSON Format
//
// The format has one required top-level array and optional extras:
//
//	{
//	  "regions": [
//	    {"name": "Westfield", "bbox": {"x": 0, "y": 0, "width": 120, "height": 90}},
//	    {"name": "Eastbrook", "bbox": {"x": 140, "y": 10, "width": 80, "height": 60},
//	     "offset": {"x": 4, "y": 0},
//	     "bypass": {"x": -12, "y": 30}}
//	  ],
//	  "data": {
//	    "Westfield": 0.72,
//	    "Eastbrook": {"count": 1280, "rate": 0.41}
//	  }
//	}
//
// # Region Fields
//
// Required:
//   - name: Unique string identifier (also used as the display label)
//   - bbox: Bounding box with positive width and height
//
// Optional:
//   - offset: Per-region anchor nudge applied by label and callout placement
//   - bypass: Leader-line waypoint for callout routing around neighbors
//
// # Data Values
//
// Each data entry is either a bare normalized rate or a {count, rate}
// object. Values that are null or unparsable import as unknown and render
// in the fallback color with the "-" placeholder; they never fail the
// import.
//
// # Import
//
// Use [ImportJSON] to read geometry from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	geo, err := io.ImportJSON("regions.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate region names, reject duplicates, and require
// positive bbox dimensions. Errors are wrapped with context about which
// region caused the problem.
//
// # Export
//
// Use [ExportJSON] to write geometry to a file, or [WriteJSON] to write to
// any io.Writer. The export preserves offsets, bypass waypoints and data,
// enabling full round-trip fidelity.
//
// # Layout Export
//
// This package exports the logical region structure only (names, boxes,
// data). For external tools that need computed layout positions, use the
// JSON sink in [render/choropleth/sink], which exports the complete
// [layout.Layout] including the frame and per-region anchors.
//
// [render/choropleth/sink]: github.com/matzehuels/choromap/pkg/render/choropleth/sink
// [layout.Layout]: github.com/matzehuels/choromap/pkg/render/choropleth/layout.Layout
package io
