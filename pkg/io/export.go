package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/choromap/pkg/geom"
	"github.com/matzehuels/choromap/pkg/region"
)

type document struct {
	Regions []regionEntry  `json:"regions"`
	Data    region.Dataset `json:"data,omitempty"`
}

type regionEntry struct {
	Name   string      `json:"name"`
	BBox   geom.Rect   `json:"bbox"`
	Offset *geom.Point `json:"offset,omitempty"`
	Bypass *geom.Point `json:"bypass,omitempty"`
}

// WriteJSON encodes geometry as JSON and writes it to w.
// The output includes all regions (with offsets and bypass waypoints) and
// the dataset. This format can be re-imported with [ReadJSON] for
// round-trip processing.
func WriteJSON(geo *Geometry, w io.Writer) error {
	names := geo.Set.Names()
	out := document{
		Regions: make([]regionEntry, len(names)),
		Data:    geo.Data,
	}

	for i, name := range names {
		box, _ := geo.Set.BBox(name)
		entry := regionEntry{Name: name, BBox: box}
		if off, ok := geo.Offsets[name]; ok {
			o := off
			entry.Offset = &o
		}
		if bp, ok := geo.Bypass[name]; ok {
			b := bp
			entry.Bypass = &b
		}
		out.Regions[i] = entry
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes geometry to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(geo *Geometry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(geo, f)
}
