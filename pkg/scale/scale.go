// Package scale maps normalized rates in [0,1] to fill colors by ordered
// threshold lookup. A scale pairs a descending threshold list with a color
// list one entry longer; the last color doubles as the fallback for missing
// or unparsable values.
package scale

import "math"

// Default ramp: navy through light blue down to a neutral gray for
// "below all thresholds".
var (
	DefaultThresholds = []float64{0.8, 0.6, 0.4, 0.2}
	DefaultColors     = []string{"#08306b", "#2171b5", "#6baed6", "#c6dbef", "#bdbdbd"}
)

// hardFallback is used only when a scale was constructed with an empty
// color list, which New prevents for its own defaults.
const hardFallback = "#cccccc"

// Scale is an immutable threshold → color mapping.
type Scale struct {
	thresholds []float64
	colors     []string
}

// New creates a scale from descending thresholds and a color list of length
// thresholds+1. Either argument may be nil or empty, in which case the
// package defaults are used for it.
func New(thresholds []float64, colors []string) Scale {
	if len(thresholds) == 0 {
		thresholds = DefaultThresholds
	}
	if len(colors) == 0 {
		colors = DefaultColors
	}
	return Scale{
		thresholds: append([]float64(nil), thresholds...),
		colors:     append([]string(nil), colors...),
	}
}

// Default returns the scale built from DefaultThresholds and DefaultColors.
func Default() Scale {
	return New(nil, nil)
}

// EvenThresholds returns colors-1 evenly spaced descending thresholds for a
// color list of the given length, e.g. 5 colors yield [0.8 0.6 0.4 0.2].
func EvenThresholds(colors int) []float64 {
	if colors < 2 {
		return nil
	}
	out := make([]float64, colors-1)
	for i := range out {
		out[i] = float64(colors-1-i) / float64(colors)
	}
	return out
}

// ColorFor returns the color for a rate. Non-finite rates map to the
// fallback color; finite rates are clamped to [0,1] before the threshold
// scan. A rate exactly equal to a threshold selects that threshold's color.
func (s Scale) ColorFor(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return s.Fallback()
	}
	rate = min(1, max(0, rate))
	for i, t := range s.thresholds {
		if rate >= t {
			return s.color(i)
		}
	}
	return s.color(len(s.thresholds))
}

// Fallback returns the color used for unknown values: the last entry of the
// color list.
func (s Scale) Fallback() string {
	if len(s.colors) == 0 {
		return hardFallback
	}
	return s.colors[len(s.colors)-1]
}

// Thresholds returns a copy of the threshold list, for legend rendering.
func (s Scale) Thresholds() []float64 {
	return append([]float64(nil), s.thresholds...)
}

// Colors returns a copy of the color list, for legend rendering.
func (s Scale) Colors() []string {
	return append([]string(nil), s.colors...)
}

// color indexes the color list, falling back to the last entry when the
// list is shorter than thresholds+1.
func (s Scale) color(i int) string {
	if len(s.colors) == 0 {
		return hardFallback
	}
	if i >= len(s.colors) {
		return s.colors[len(s.colors)-1]
	}
	return s.colors[i]
}
