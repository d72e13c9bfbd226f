package layout

import (
	"slices"
	"testing"

	"github.com/matzehuels/choromap/pkg/geom"
	"github.com/matzehuels/choromap/pkg/region"
)

func testSet(t *testing.T) *region.Set {
	t.Helper()
	s := region.NewSet()
	s.Add("A", geom.Rect{X: 0, Y: 0, Width: 100, Height: 50})
	s.Add("B", geom.Rect{X: 200, Y: 0, Width: 100, Height: 50})
	return s
}

func TestBuild(t *testing.T) {
	l := Build(testSet(t), map[string]geom.Point{"B": {X: 5, Y: -5}})

	wantFrame := geom.Frame{X: 0, Y: 0, Width: 300, Height: 50, CenterX: 150}
	if l.Frame != wantFrame {
		t.Errorf("Frame = %+v, want %+v", l.Frame, wantFrame)
	}
	if !slices.Equal(l.Order, []string{"A", "B"}) {
		t.Errorf("Order = %v, want [A B]", l.Order)
	}
	if got := l.Anchors["A"]; got != (geom.Point{X: 50, Y: 25}) {
		t.Errorf("anchor A = %+v, want bbox center", got)
	}
	if got := l.Anchors["B"]; got != (geom.Point{X: 255, Y: 20}) {
		t.Errorf("anchor B = %+v, want center plus offset", got)
	}
}

func TestBuildEmpty(t *testing.T) {
	l := Build(region.NewSet(), nil)
	if !l.Frame.IsZero() {
		t.Errorf("empty layout frame = %+v, want zero", l.Frame)
	}
	if len(l.Order) != 0 {
		t.Errorf("empty layout order = %v", l.Order)
	}
}

func TestViewportExpandX(t *testing.T) {
	l := Build(testSet(t), nil)

	v := l.Viewport().ExpandX(20)
	want := Viewport{MinX: -20, MinY: 0, Width: 340, Height: 50}
	if v != want {
		t.Errorf("ExpandX = %+v, want %+v", v, want)
	}

	// Re-deriving from the layout must not compound the padding.
	again := l.Viewport().ExpandX(20)
	if again != want {
		t.Errorf("second pass = %+v, want %+v", again, want)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	l := Build(testSet(t), nil)
	data, err := l.Marshal()
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if back.Frame != l.Frame || !slices.Equal(back.Order, l.Order) {
		t.Errorf("round-trip = %+v, want %+v", back, l)
	}
}
