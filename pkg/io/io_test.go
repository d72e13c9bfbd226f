package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/choromap/pkg/errors"
	"github.com/matzehuels/choromap/pkg/geom"
)

const sampleDoc = `{
  "regions": [
    {"name": "Westfield", "bbox": {"x": 0, "y": 0, "width": 120, "height": 90}},
    {"name": "Eastbrook", "bbox": {"x": 140, "y": 10, "width": 80, "height": 60},
     "offset": {"x": 4, "y": 0},
     "bypass": {"x": -12, "y": 30}}
  ],
  "data": {
    "Westfield": 0.72,
    "Eastbrook": {"count": 1280, "rate": 0.41},
    "Ghost": null
  }
}`

func TestReadJSON(t *testing.T) {
	geo, err := ReadJSON(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if geo.Set.Len() != 2 {
		t.Fatalf("regions = %d, want 2", geo.Set.Len())
	}
	box, ok := geo.Set.BBox("Westfield")
	if !ok || box != (geom.Rect{Width: 120, Height: 90}) {
		t.Errorf("Westfield bbox = %+v (ok %v)", box, ok)
	}
	if off := geo.Offsets["Eastbrook"]; off != (geom.Point{X: 4}) {
		t.Errorf("offset = %+v, want {4 0}", off)
	}
	if bp := geo.Bypass["Eastbrook"]; bp != (geom.Point{X: -12, Y: 30}) {
		t.Errorf("bypass = %+v", bp)
	}

	if rate, ok := geo.Data["Westfield"].Norm(); !ok || rate != 0.72 {
		t.Errorf("Westfield rate = %v (ok %v)", rate, ok)
	}
	if geo.Data["Eastbrook"].CountText() != "1280" {
		t.Errorf("Eastbrook count = %q", geo.Data["Eastbrook"].CountText())
	}
	// Null data imports as unknown, not as an error.
	if _, ok := geo.Data["Ghost"].Norm(); ok {
		t.Error("null datum should be unknown")
	}
}

func TestReadJSONValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{
			"malformed",
			`{"regions": [`,
			errors.ErrCodeInvalidGeometry,
		},
		{
			"duplicate name",
			`{"regions": [
				{"name": "a", "bbox": {"width": 10, "height": 10}},
				{"name": "a", "bbox": {"width": 20, "height": 20}}
			]}`,
			errors.ErrCodeInvalidGeometry,
		},
		{
			"zero size bbox",
			`{"regions": [{"name": "a", "bbox": {"width": 0, "height": 10}}]}`,
			errors.ErrCodeInvalidGeometry,
		},
		{
			"empty name",
			`{"regions": [{"name": "", "bbox": {"width": 10, "height": 10}}]}`,
			errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	geo, err := ReadJSON(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(geo, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	again, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if again.Set.Len() != geo.Set.Len() {
		t.Errorf("region count changed: %d vs %d", again.Set.Len(), geo.Set.Len())
	}
	if again.Offsets["Eastbrook"] != geo.Offsets["Eastbrook"] {
		t.Error("offsets not preserved")
	}
	if again.Bypass["Eastbrook"] != geo.Bypass["Eastbrook"] {
		t.Error("bypass not preserved")
	}
}
