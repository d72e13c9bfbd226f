package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/choromap/pkg/geom"
)

func TestFitFontSize(t *testing.T) {
	tests := []struct {
		name       string
		size       float64
		availWidth float64
		textLen    int
		want       float64
	}{
		{"fits at requested size", 12, 200, 5, 12},
		{"floors at minimum", 12, 5, 20, fontSizeMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitFontSize(tt.size, tt.availWidth, tt.textLen); got != tt.want {
				t.Errorf("FitFontSize() = %v, want %v", got, tt.want)
			}
		})
	}

	// Shrinks proportionally when text is too wide for the box.
	got := FitFontSize(24, 55, 10)
	if got >= 24 || got < fontSizeMin {
		t.Errorf("FitFontSize() = %v, want shrunk value within bounds", got)
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`Tom & "Jerry" <3`); strings.ContainsAny(got, `<>"&`) && !strings.Contains(got, "&amp;") {
		t.Errorf("EscapeXML left raw markup: %q", got)
	}
}

func TestSimpleRenderRegion(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderRegion(&buf, RegionShape{
		Name: "Utah",
		BBox: geom.Rect{X: 10, Y: 20, Width: 100, Height: 50},
		Fill: "#2171b5",
	})

	out := buf.String()
	for _, want := range []string{`id="region-Utah"`, `fill="#2171b5"`, `width="100.0"`, `tabindex="0"`} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderRegion output missing %q:\n%s", want, out)
		}
	}
}

func TestSimpleRenderCalloutAlignment(t *testing.T) {
	c := Callout{
		Name:      "Hokkaido",
		Text:      "Hokkaido : 12",
		Points:    []geom.Point{{X: 50, Y: 25}, {X: -20, Y: 25}},
		TextAt:    geom.Point{X: -20, Y: 25},
		AlignEnd:  true,
		LineColor: "#333333",
		LineWidth: 1,
		FontSize:  11,
	}

	var buf bytes.Buffer
	Simple{}.RenderCallout(&buf, c)
	if !strings.Contains(buf.String(), `text-anchor="end"`) {
		t.Errorf("left-side callout should right-align text:\n%s", buf.String())
	}

	c.AlignEnd = false
	buf.Reset()
	Simple{}.RenderCallout(&buf, c)
	if !strings.Contains(buf.String(), `text-anchor="start"`) {
		t.Errorf("right-side callout should left-align text:\n%s", buf.String())
	}
}

func TestSimpleRenderGlyphEmpty(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderGlyph(&buf, Glyph{Name: "X"})
	if buf.Len() != 0 {
		t.Errorf("empty glyph should render nothing, got %q", buf.String())
	}
}

func TestSimpleRenderBarRowUnknownValue(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderBarRow(&buf, BarRow{
		Name:       "B",
		ValueText:  "-",
		LabelWidth: 80,
		BarLength:  0,
		RowHeight:  14,
	})

	out := buf.String()
	if strings.Contains(out, "<rect") {
		t.Errorf("zero-length bar should omit the rect:\n%s", out)
	}
	if !strings.Contains(out, ">-<") {
		t.Errorf("unknown value should render placeholder:\n%s", out)
	}
}
