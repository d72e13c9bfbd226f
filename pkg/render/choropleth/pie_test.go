package choropleth

import (
	"strings"
	"testing"

	"github.com/matzehuels/choromap/pkg/geom"
)

func TestBuildSlices(t *testing.T) {
	center := geom.Point{X: 100, Y: 100}

	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{"equal halves", []float64{1, 1}, 2},
		{"three way", []float64{2, 1, 1}, 3},
		{"zero value omitted", []float64{3, 0, 1}, 2},
		{"negative value omitted", []float64{3, -2, 1}, 2},
		{"all zero", []float64{0, 0}, 0},
		{"negative sum", []float64{-1, -5}, 0},
		{"empty", nil, 0},
		{"single value full circle", []float64{7}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slices := BuildSlices(center, tt.values, SliceOptions{OuterRadius: 10})
			if len(slices) != tt.want {
				t.Errorf("got %d slices, want %d", len(slices), tt.want)
			}
			for i, s := range slices {
				if s.Path == "" {
					t.Errorf("slice %d has empty path", i)
				}
				if s.Fill == "" {
					t.Errorf("slice %d has empty fill", i)
				}
			}
		})
	}
}

func TestBuildSlicesLargeArcFlag(t *testing.T) {
	center := geom.Point{X: 0, Y: 0}

	// 3/4 of the circle sweeps 270 degrees and needs the large-arc flag;
	// the remaining 1/4 does not.
	slices := BuildSlices(center, []float64{3, 1}, SliceOptions{OuterRadius: 10})
	if len(slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(slices))
	}
	if !strings.Contains(slices[0].Path, " 0 1 1 ") {
		t.Errorf("270 degree slice should set large-arc flag: %s", slices[0].Path)
	}
	if !strings.Contains(slices[1].Path, " 0 0 1 ") {
		t.Errorf("90 degree slice should not set large-arc flag: %s", slices[1].Path)
	}
}

func TestBuildSlicesStartsAtTwelveOClock(t *testing.T) {
	center := geom.Point{X: 0, Y: 0}

	slices := BuildSlices(center, []float64{1, 1}, SliceOptions{OuterRadius: 10})
	if len(slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(slices))
	}
	// The first wedge starts at the top of the circle: (0, -10).
	if !strings.HasPrefix(slices[0].Path, "M 0.00 -10.00 ") {
		t.Errorf("first slice should start at 12 o'clock: %s", slices[0].Path)
	}
}

func TestBuildSlicesDonut(t *testing.T) {
	center := geom.Point{X: 0, Y: 0}

	slices := BuildSlices(center, []float64{1, 1}, SliceOptions{OuterRadius: 10, InnerRadius: 4})
	if len(slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(slices))
	}
	// A donut wedge carries two arc segments, a pie wedge only one.
	if got := strings.Count(slices[0].Path, "A "); got != 2 {
		t.Errorf("donut wedge should have 2 arcs, got %d: %s", got, slices[0].Path)
	}
}

func TestBuildSlicesColorCycle(t *testing.T) {
	center := geom.Point{X: 0, Y: 0}

	slices := BuildSlices(center, []float64{1, 1, 1}, SliceOptions{
		OuterRadius: 10,
		Colors:      []string{"#aaa", "#bbb"},
	})
	want := []string{"#aaa", "#bbb", "#aaa"}
	for i, s := range slices {
		if s.Fill != want[i] {
			t.Errorf("slice %d fill = %q, want %q", i, s.Fill, want[i])
		}
	}
}
