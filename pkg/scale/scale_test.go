package scale

import (
	"math"
	"slices"
	"testing"
)

func TestColorForThresholds(t *testing.T) {
	s := New([]float64{0.8, 0.6, 0.4, 0.2}, []string{"c0", "c1", "c2", "c3", "c4"})

	tests := []struct {
		name string
		rate float64
		want string
	}{
		{"above top threshold", 0.9, "c0"},
		{"exactly top threshold", 0.8, "c0"},
		{"middle band", 0.5, "c2"},
		{"exactly a threshold selects its color", 0.6, "c1"},
		{"just below a threshold", 0.59, "c2"},
		{"below all thresholds", 0.1, "c4"},
		{"zero", 0, "c4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ColorFor(tt.rate); got != tt.want {
				t.Errorf("ColorFor(%v) = %q, want %q", tt.rate, got, tt.want)
			}
		})
	}
}

func TestColorForClampIdempotence(t *testing.T) {
	s := Default()
	if got, want := s.ColorFor(1.5), s.ColorFor(1.0); got != want {
		t.Errorf("ColorFor(1.5) = %q, want ColorFor(1.0) = %q", got, want)
	}
	if got, want := s.ColorFor(-0.3), s.ColorFor(0.0); got != want {
		t.Errorf("ColorFor(-0.3) = %q, want ColorFor(0.0) = %q", got, want)
	}
}

func TestColorForUnknownStability(t *testing.T) {
	s := Default()
	for _, rate := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := s.ColorFor(rate); got != s.Fallback() {
			t.Errorf("ColorFor(%v) = %q, want fallback %q", rate, got, s.Fallback())
		}
	}
}

// bandIndex returns the position of a color within the scale's color list,
// lower index meaning a higher threshold band.
func bandIndex(s Scale, c string) int {
	return slices.Index(s.Colors(), c)
}

func TestColorForMonotonic(t *testing.T) {
	s := Default()
	rates := []float64{0, 0.1, 0.2, 0.35, 0.4, 0.55, 0.6, 0.79, 0.8, 0.95, 1}
	for i := 1; i < len(rates); i++ {
		lo, hi := rates[i-1], rates[i]
		if bandIndex(s, s.ColorFor(hi)) > bandIndex(s, s.ColorFor(lo)) {
			t.Errorf("ColorFor(%v) maps below ColorFor(%v)", hi, lo)
		}
	}
}

func TestColorForShortColorList(t *testing.T) {
	// Three colors against four thresholds: out-of-range bands reuse the
	// last color rather than panicking.
	s := New([]float64{0.8, 0.6, 0.4, 0.2}, []string{"c0", "c1", "c2"})
	if got := s.ColorFor(0.5); got != "c2" {
		t.Errorf("ColorFor(0.5) = %q, want c2", got)
	}
	if got := s.ColorFor(0.05); got != "c2" {
		t.Errorf("ColorFor(0.05) = %q, want c2", got)
	}
}

func TestNewEmptyUsesDefaults(t *testing.T) {
	s := New(nil, nil)
	if got := len(s.Thresholds()); got != len(DefaultThresholds) {
		t.Fatalf("thresholds len = %d, want %d", got, len(DefaultThresholds))
	}
	if got := s.Fallback(); got != DefaultColors[len(DefaultColors)-1] {
		t.Errorf("Fallback() = %q, want %q", got, DefaultColors[len(DefaultColors)-1])
	}
}

func TestRamp(t *testing.T) {
	colors, err := Ramp("#08306b", "#c6dbef", 5)
	if err != nil {
		t.Fatalf("Ramp() error = %v", err)
	}
	if len(colors) != 5 {
		t.Fatalf("Ramp() returned %d colors, want 5", len(colors))
	}
	if colors[0] != "#08306b" {
		t.Errorf("Ramp()[0] = %q, want start color", colors[0])
	}
	for _, c := range colors {
		if !ValidColor(c) {
			t.Errorf("Ramp() produced invalid color %q", c)
		}
	}
}

func TestRampErrors(t *testing.T) {
	if _, err := Ramp("#08306b", "#c6dbef", 1); err == nil {
		t.Error("Ramp() with 1 step should fail")
	}
	if _, err := Ramp("navy", "#c6dbef", 3); err == nil {
		t.Error("Ramp() with non-hex start should fail")
	}
}

func TestValidColor(t *testing.T) {
	if !ValidColor("#1a2b3c") {
		t.Error("ValidColor(#1a2b3c) = false")
	}
	if ValidColor("blue") {
		t.Error("ValidColor(blue) = true, want false")
	}
}
