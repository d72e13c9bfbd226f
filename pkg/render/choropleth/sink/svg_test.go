package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/choromap/pkg/geom"
	"github.com/matzehuels/choromap/pkg/interact"
	"github.com/matzehuels/choromap/pkg/region"
	"github.com/matzehuels/choromap/pkg/render/choropleth"
	"github.com/matzehuels/choromap/pkg/render/choropleth/layout"
	"github.com/matzehuels/choromap/pkg/scale"
)

func testLayout() layout.Layout {
	set := region.NewSet()
	set.Add("Alpha", geom.Rect{X: 0, Y: 0, Width: 100, Height: 80})
	set.Add("Beta", geom.Rect{X: 120, Y: 0, Width: 100, Height: 80})
	return layout.Build(set, nil)
}

func TestRenderSVGBasics(t *testing.T) {
	svg := string(RenderSVG(testLayout()))

	checks := []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`viewBox="0.0 0.0 220.0 80.0"`,
		`id="region-Alpha"`,
		`id="region-Beta"`,
		`class="backdrop"`,
		`</svg>`,
	}
	for _, want := range checks {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderSVGFills(t *testing.T) {
	s := scale.New([]float64{0.5}, []string{"#high", "#low"})
	data := region.Dataset{"Alpha": region.RateDatum(0.9)}

	svg := string(RenderSVG(testLayout(), WithScale(s), WithData(data)))
	if !strings.Contains(svg, `id="region-Alpha"`) || !strings.Contains(svg, `fill="#high"`) {
		t.Error("region with known rate should paint in its band color")
	}
	// Beta has no datum and paints the fallback (last color).
	if !strings.Contains(svg, `fill="#low"`) {
		t.Error("region without data should paint the fallback color")
	}
}

func TestRenderSVGCalloutsExpandViewBox(t *testing.T) {
	l := testLayout()
	routed := choropleth.RouteCallouts(l, nil, choropleth.CalloutOptions{Padding: 40, Margin: 10})

	svg := string(RenderSVG(l, WithCallouts(routed)))
	if !strings.Contains(svg, `viewBox="-50.0 0.0 320.0 80.0"`) {
		t.Errorf("viewBox should adopt the expanded viewport, got:\n%s", firstLine(svg))
	}
	if !strings.Contains(svg, `class="callout"`) {
		t.Error("callout group missing")
	}
}

func TestRenderSVGBarPanel(t *testing.T) {
	l := testLayout()
	gap := 4.0
	opts := choropleth.BarOptions{RowHeight: 10, Gap: &gap}
	rows := choropleth.RankBars(region.Dataset{
		"Alpha": region.RateDatum(0.3),
		"Beta":  region.RateDatum(0.7),
	}, opts)

	svg := string(RenderSVG(l, WithBars(rows, opts)))
	if !strings.Contains(svg, `class="bar-panel" transform="translate(0.0,104.0)"`) {
		t.Error("bar panel should sit one padding step below the frame")
	}
	// 80 frame + 24 padding + 24 panel (two 10px rows, one 4px gap).
	if !strings.Contains(svg, `height="128"`) {
		t.Errorf("canvas height should include the panel, got:\n%s", firstLine(svg))
	}
}

func TestRenderSVGInteractionScript(t *testing.T) {
	svg := string(RenderSVG(testLayout(), WithInteraction(interact.Options{
		HoverStyle:  interact.Style{Stroke: "#f00", StrokeWidth: "3"},
		Shadow:      true,
		AlwaysOnTop: []string{"Beta"},
	})))

	checks := []string{
		`.region.active { stroke: #f00; stroke-width: 3; cursor: pointer; }`,
		`const alwaysOnTop = ["Beta"];`,
		`const shadow = true;`,
		`<![CDATA[`,
		// Hovering raises the region above its siblings, like the native
		// controller does.
		`el.addEventListener('mouseenter', () => { if (el !== selected) { activate(el); raise(el); } });`,
		`el.addEventListener('focus', () => { if (el !== selected) { activate(el); raise(el); } });`,
	}
	for _, want := range checks {
		if !strings.Contains(svg, want) {
			t.Errorf("interaction block missing %q", want)
		}
	}
}

func TestRenderSVGPerRegionHoverReplaces(t *testing.T) {
	svg := string(RenderSVG(testLayout(), WithInteraction(interact.Options{
		HoverStyle:   interact.Style{Stroke: "#f00", StrokeWidth: "3"},
		RegionStyles: map[string]interact.Style{"Beta": {Opacity: "0.5"}},
	})))

	// The overridden region is carved out of the global rule, so its own
	// rule replaces the default instead of cascading over it.
	if !strings.Contains(svg, `.region.active:not([id="region-Beta"]) { stroke: #f00; stroke-width: 3; cursor: pointer; }`) {
		t.Error("global hover rule should exclude overridden regions")
	}
	if !strings.Contains(svg, `[id="region-Beta"].active { opacity: 0.5; }`) {
		t.Error("per-region hover rule missing")
	}
}

func TestRenderSVGLegend(t *testing.T) {
	svg := string(RenderSVG(testLayout(), WithScale(scale.Default()), WithLegend()))
	if !strings.Contains(svg, `class="legend"`) {
		t.Fatal("legend group missing")
	}
	for _, color := range scale.DefaultColors {
		if !strings.Contains(svg, color) {
			t.Errorf("legend missing swatch %s", color)
		}
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	l := testLayout()
	data := region.Dataset{"Alpha": region.RateDatum(0.4)}

	doc, err := RenderJSON(l, WithJSONData(data), WithJSONMode("labels"))
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	gotLayout, gotData, err := ParseJSON(doc)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if gotLayout.Frame != l.Frame {
		t.Errorf("frame = %+v, want %+v", gotLayout.Frame, l.Frame)
	}
	if rate, ok := gotData["Alpha"].Norm(); !ok || rate != 0.4 {
		t.Errorf("rate = %v (ok %v), want 0.4", rate, ok)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
