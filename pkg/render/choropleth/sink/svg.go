package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/choromap/pkg/interact"
	"github.com/matzehuels/choromap/pkg/region"
	"github.com/matzehuels/choromap/pkg/render/choropleth"
	"github.com/matzehuels/choromap/pkg/render/choropleth/layout"
	"github.com/matzehuels/choromap/pkg/render/choropleth/styles"
	"github.com/matzehuels/choromap/pkg/scale"
)

const barPanelPadding = 24.0

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	scale       scale.Scale
	data        region.Dataset
	labels      []styles.Label
	glyphs      []styles.Glyph
	bars        []styles.BarRow
	barOpts     choropleth.BarOptions
	callouts    []styles.Callout
	viewport    *layout.Viewport
	interaction *interact.Options
	legend      bool
	background  string
}

// WithStyle selects the visual style (default styles.Simple).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithScale sets the color scale used to paint regions.
func WithScale(s scale.Scale) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithData attaches the per-region dataset used for fills.
func WithData(d region.Dataset) SVGOption { return func(r *svgRenderer) { r.data = d } }

// WithLabels adds placed labels and their pie glyphs.
func WithLabels(labels []styles.Label, glyphs []styles.Glyph) SVGOption {
	return func(r *svgRenderer) { r.labels = labels; r.glyphs = glyphs }
}

// WithBars adds the ranked bar panel below the map. opts must be the
// options the rows were ranked with so panel height matches row geometry.
func WithBars(rows []styles.BarRow, opts choropleth.BarOptions) SVGOption {
	return func(r *svgRenderer) { r.bars = rows; r.barOpts = opts }
}

// WithCallouts adds routed callouts and adopts their expanded viewport.
func WithCallouts(routed choropleth.Routed) SVGOption {
	return func(r *svgRenderer) { r.callouts = routed.Callouts; r.viewport = &routed.Viewport }
}

// WithInteraction embeds hover and selection behavior as script.
func WithInteraction(opts interact.Options) SVGOption {
	return func(r *svgRenderer) { r.interaction = &opts }
}

// WithLegend draws the color scale legend in the top-left corner.
func WithLegend() SVGOption { return func(r *svgRenderer) { r.legend = true } }

// WithBackground fills the canvas with a solid color (default transparent).
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG produces the interactive SVG document for a layout. Regions are
// painted in layout order, then annotations, then the bar panel and legend,
// then the interaction script.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	vp := l.Viewport()
	if r.viewport != nil {
		vp = *r.viewport
	}

	totalHeight := vp.Height
	panelY := l.Frame.Y + l.Frame.Height + barPanelPadding
	if len(r.bars) > 0 {
		totalHeight = (panelY - vp.MinY) + r.barOpts.PanelHeight(len(r.bars))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vp.MinX, vp.MinY, vp.Width, totalHeight, vp.Width, totalHeight)

	r.style.RenderDefs(&buf)
	renderBackdrop(&buf, vp, totalHeight, r.background)
	renderRegions(&buf, &r, l)
	renderAnnotations(&buf, &r)

	if len(r.bars) > 0 {
		renderBarPanel(&buf, &r, vp.MinX, panelY)
	}
	if r.legend {
		renderLegend(&buf, r.scale, vp)
	}
	if r.interaction != nil {
		renderInteraction(&buf, l, *r.interaction)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, scale: scale.Default()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// renderBackdrop always emits the full-canvas rect so background clicks
// have a target even without a fill.
func renderBackdrop(buf *bytes.Buffer, vp layout.Viewport, height float64, color string) {
	fill := color
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(buf, `  <rect class="backdrop" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" pointer-events="all"/>`+"\n",
		vp.MinX, vp.MinY, vp.Width, height, fill)
}

func renderRegions(buf *bytes.Buffer, r *svgRenderer, l layout.Layout) {
	for _, name := range l.Order {
		r.style.RenderRegion(buf, styles.RegionShape{
			Name: name,
			BBox: l.BBoxes[name],
			Fill: regionFill(r.scale, r.data, name),
		})
	}
}

// regionFill maps a region's datum through the scale. Regions without a
// usable rate paint in the fallback color.
func regionFill(s scale.Scale, data region.Dataset, name string) string {
	rate, ok := data[name].Norm()
	if !ok {
		return s.Fallback()
	}
	return s.ColorFor(rate)
}

func renderAnnotations(buf *bytes.Buffer, r *svgRenderer) {
	for _, lbl := range r.labels {
		r.style.RenderLabel(buf, lbl)
	}
	for _, g := range r.glyphs {
		r.style.RenderGlyph(buf, g)
	}
	for _, c := range r.callouts {
		r.style.RenderCallout(buf, c)
	}
}

func renderBarPanel(buf *bytes.Buffer, r *svgRenderer, x, y float64) {
	styles.WrapGroup(buf, fmt.Sprintf(`class="bar-panel" transform="translate(%.1f,%.1f)"`, x, y), func() {
		for _, row := range r.bars {
			r.style.RenderBarRow(buf, row)
		}
	})
}

const (
	legendSwatch  = 12.0
	legendGap     = 4.0
	legendPadding = 8.0
)

// renderLegend draws one swatch per scale band, highest band first, with
// the final band standing in for "no data".
func renderLegend(buf *bytes.Buffer, s scale.Scale, vp layout.Viewport) {
	thresholds := s.Thresholds()
	colors := s.Colors()

	styles.WrapGroup(buf, fmt.Sprintf(`class="legend" transform="translate(%.1f,%.1f)"`,
		vp.MinX+legendPadding, vp.MinY+legendPadding), func() {
		for i, color := range colors {
			y := float64(i) * (legendSwatch + legendGap)
			fmt.Fprintf(buf, `    <rect x="0" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#999" stroke-width="0.5"/>`+"\n",
				y, legendSwatch, legendSwatch, color)
			fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" dominant-baseline="central" font-size="9">%s</text>`+"\n",
				legendSwatch+legendGap, y+legendSwatch/2, styles.EscapeXML(legendText(thresholds, i)))
		}
	})
}

func legendText(thresholds []float64, band int) string {
	switch {
	case band < len(thresholds):
		return fmt.Sprintf("≥ %.2f", thresholds[band])
	case len(thresholds) > 0:
		return fmt.Sprintf("< %.2f / no data", thresholds[len(thresholds)-1])
	default:
		return "no data"
	}
}
