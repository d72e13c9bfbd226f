package choropleth

import (
	"testing"

	"github.com/matzehuels/choromap/pkg/geom"
	"github.com/matzehuels/choromap/pkg/region"
	"github.com/matzehuels/choromap/pkg/render/choropleth/layout"
)

func testLayout(boxes map[string]geom.Rect) layout.Layout {
	set := region.NewSet()
	for name, box := range boxes {
		set.Add(name, box)
	}
	return layout.Build(set, nil)
}

func TestPlaceLabelsMinimumSize(t *testing.T) {
	tests := []struct {
		name   string
		box    geom.Rect
		placed bool
	}{
		{"wide and tall enough", geom.Rect{Width: 40, Height: 20}, true},
		{"exactly at minimum", geom.Rect{Width: 16, Height: 12}, true},
		{"too narrow", geom.Rect{Width: 15, Height: 20}, false},
		{"too short", geom.Rect{Width: 40, Height: 11}, false},
		{"too small both ways", geom.Rect{Width: 5, Height: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testLayout(map[string]geom.Rect{"X": tt.box})
			labels, _ := PlaceLabels(l, LabelOptions{})
			if got := len(labels) == 1; got != tt.placed {
				t.Errorf("placed = %v, want %v for bbox %+v", got, tt.placed, tt.box)
			}
		})
	}
}

func TestPlaceLabelsAnchorAndOffset(t *testing.T) {
	l := testLayout(map[string]geom.Rect{
		"A": {X: 0, Y: 0, Width: 100, Height: 40},
	})

	labels, _ := PlaceLabels(l, LabelOptions{
		Offsets: map[string]geom.Point{"A": {X: 5, Y: -3}},
	})
	if len(labels) != 1 {
		t.Fatalf("expected one label, got %d", len(labels))
	}
	want := geom.Point{X: 55, Y: 17}
	if labels[0].At != want {
		t.Errorf("anchor = %+v, want center+offset %+v", labels[0].At, want)
	}
	if labels[0].Text != "A" {
		t.Errorf("text = %q, want region name", labels[0].Text)
	}
}

func TestPlaceLabelsGlyphSide(t *testing.T) {
	l := testLayout(map[string]geom.Rect{
		"A": {X: 0, Y: 0, Width: 100, Height: 40},
	})
	anchor := geom.Point{X: 50, Y: 20}

	tests := []struct {
		name string
		side Side
		want geom.Point
	}{
		{"right default", "", anchor.Add(geom.Point{X: 7})},
		{"right", SideRight, anchor.Add(geom.Point{X: 7})},
		{"left", SideLeft, anchor.Add(geom.Point{X: -7})},
		{"top", SideTop, anchor.Add(geom.Point{Y: -7})},
		{"bottom", SideBottom, anchor.Add(geom.Point{Y: 7})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, glyphs := PlaceLabels(l, LabelOptions{
				Glyph: &GlyphOptions{
					Side:   tt.side,
					Gap:    2,
					Radius: 5,
					Values: map[string][]float64{"A": {1, 1}},
				},
			})
			if len(glyphs) != 1 {
				t.Fatalf("expected one glyph, got %d", len(glyphs))
			}
			if glyphs[0].Center != tt.want {
				t.Errorf("center = %+v, want %+v", glyphs[0].Center, tt.want)
			}
		})
	}
}

func TestPlaceLabelsGlyphSkipsRegionsWithoutValues(t *testing.T) {
	l := testLayout(map[string]geom.Rect{
		"A": {Width: 100, Height: 40},
		"B": {X: 200, Width: 100, Height: 40},
	})

	labels, glyphs := PlaceLabels(l, LabelOptions{
		Glyph: &GlyphOptions{
			Radius: 5,
			Values: map[string][]float64{"B": {3, 1}},
		},
	})
	if len(labels) != 2 {
		t.Fatalf("expected labels for both regions, got %d", len(labels))
	}
	if len(glyphs) != 1 || glyphs[0].Name != "B" {
		t.Errorf("expected a single glyph for B, got %+v", glyphs)
	}
}
