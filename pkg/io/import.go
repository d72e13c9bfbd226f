package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/choromap/pkg/errors"
	"github.com/matzehuels/choromap/pkg/geom"
	"github.com/matzehuels/choromap/pkg/region"
)

// Geometry is the decoded content of a region file: the region set plus the
// per-region extras that annotation passes consume.
type Geometry struct {
	Set     *region.Set
	Data    region.Dataset
	Offsets map[string]geom.Point
	Bypass  map[string]geom.Point
}

// ReadJSON decodes region geometry from r.
//
// The input must be a JSON object with a "regions" array and an optional
// "data" object:
//
//	{
//	  "regions": [{"name": "a", "bbox": {"x": 0, "y": 0, "width": 10, "height": 10}}],
//	  "data": {"a": 0.5}
//	}
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - A region name is empty, unsafe, or duplicated
//   - A bbox has non-positive width or height
//
// Data entries for names without geometry are kept; every consumer skips
// them silently. The returned Geometry is independent of r and can be
// modified safely after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Geometry, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGeometry, err, "decode geometry")
	}

	geo := &Geometry{
		Set:     region.NewSet(),
		Data:    data.Data,
		Offsets: make(map[string]geom.Point),
		Bypass:  make(map[string]geom.Point),
	}
	for _, rg := range data.Regions {
		if err := errors.ValidateRegionName(rg.Name); err != nil {
			return nil, err
		}
		if _, exists := geo.Set.BBox(rg.Name); exists {
			return nil, errors.New(errors.ErrCodeInvalidGeometry, "duplicate region %q", rg.Name)
		}
		if rg.BBox.Width <= 0 || rg.BBox.Height <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidGeometry,
				"region %q: bbox must have positive width and height", rg.Name)
		}
		geo.Set.Add(rg.Name, rg.BBox)
		if rg.Offset != nil {
			geo.Offsets[rg.Name] = *rg.Offset
		}
		if rg.Bypass != nil {
			geo.Bypass[rg.Name] = *rg.Bypass
		}
	}

	return geo, nil
}

// ImportJSON reads a JSON file at path and returns the decoded geometry.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. The error wraps the underlying cause with the file path for
// context.
func ImportJSON(path string) (*Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
