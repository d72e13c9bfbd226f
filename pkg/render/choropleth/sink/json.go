package sink

import (
	"encoding/json"

	"github.com/matzehuels/choromap/pkg/region"
	"github.com/matzehuels/choromap/pkg/render/choropleth/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	data  region.Dataset
	mode  string
	style string
}

// WithJSONData includes the per-region dataset in the output, so external
// tools can re-derive fills and rankings.
func WithJSONData(d region.Dataset) JSONOption { return func(r *jsonRenderer) { r.data = d } }

// WithJSONMode records the annotation mode the map was rendered with.
func WithJSONMode(mode string) JSONOption { return func(r *jsonRenderer) { r.mode = mode } }

// WithJSONStyle records the style name for round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Mode    string         `json:"mode,omitempty"`
	Style   string         `json:"style,omitempty"`
	Layout  layout.Layout  `json:"layout"`
	Regions region.Dataset `json:"regions,omitempty"`
}

// RenderJSON exports the layout and its data as an indented JSON document
// for external tools and caching.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return json.MarshalIndent(jsonOutput{
		Mode:    r.mode,
		Style:   r.style,
		Layout:  l,
		Regions: r.data,
	}, "", "  ")
}

// ParseJSON decodes a document produced by RenderJSON back into its layout
// and dataset.
func ParseJSON(data []byte) (layout.Layout, region.Dataset, error) {
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return layout.Layout{}, nil, err
	}
	return out.Layout, out.Regions, nil
}
