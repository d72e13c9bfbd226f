package scale

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Ramp generates a list of steps hex colors blending from one color to
// another in Lab space, suitable as the color list of a scale with steps-1
// thresholds. Blending in Lab keeps the perceived lightness progression
// even, which RGB interpolation does not.
func Ramp(from, to string, steps int) ([]string, error) {
	if steps < 2 {
		return nil, fmt.Errorf("ramp needs at least 2 steps, got %d", steps)
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return nil, fmt.Errorf("parse ramp start %q: %w", from, err)
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return nil, fmt.Errorf("parse ramp end %q: %w", to, err)
	}

	out := make([]string, steps)
	for i := range out {
		t := float64(i) / float64(steps-1)
		out[i] = a.BlendLab(b, t).Clamped().Hex()
	}
	return out, nil
}

// ValidColor reports whether s parses as a hex color like "#1a2b3c".
func ValidColor(s string) bool {
	_, err := colorful.Hex(strings.TrimSpace(s))
	return err == nil
}
