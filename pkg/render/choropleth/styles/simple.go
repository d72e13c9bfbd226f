package styles

import (
	"bytes"
	"fmt"
)

// Simple is the default flat style: plain shapes, no filters.
type Simple struct{}

// RenderDefs writes the drop-shadow filter used for hover elevation.
func (Simple) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <filter id="region-shadow" x="-20%" y="-20%" width="140%" height="140%">` + "\n")
	buf.WriteString(`      <feDropShadow dx="0" dy="1.5" stdDeviation="2" flood-opacity="0.35"/>` + "\n")
	buf.WriteString("    </filter>\n")
	buf.WriteString("  </defs>\n")
}

func (Simple) RenderRegion(buf *bytes.Buffer, r RegionShape) {
	fmt.Fprintf(buf,
		`  <rect id="region-%s" class="region" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#ffffff" stroke-width="0.5" tabindex="0"/>`+"\n",
		EscapeXML(r.Name), r.BBox.X, r.BBox.Y, r.BBox.Width, r.BBox.Height, r.Fill)
}

func (Simple) RenderLabel(buf *bytes.Buffer, l Label) {
	weight := l.FontWeight
	if weight == "" {
		weight = "normal"
	}
	fmt.Fprintf(buf,
		`  <text class="region-label" data-region="%s" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-size="%.1f" font-weight="%s" pointer-events="none">%s</text>`+"\n",
		EscapeXML(l.Name), l.At.X, l.At.Y, l.FontSize, weight, EscapeXML(l.Text))
}

func (Simple) RenderGlyph(buf *bytes.Buffer, g Glyph) {
	if len(g.Slices) == 0 {
		return
	}
	WrapGroup(buf, fmt.Sprintf(`class="glyph" data-region="%s"`, EscapeXML(g.Name)), func() {
		for _, s := range g.Slices {
			fmt.Fprintf(buf, `    <path d="%s" fill="%s" stroke="#ffffff" stroke-width="0.5"/>`+"\n", s.Path, s.Fill)
		}
	})
}

func (Simple) RenderCallout(buf *bytes.Buffer, c Callout) {
	anchor := "start"
	if c.AlignEnd {
		anchor = "end"
	}
	WrapGroup(buf, fmt.Sprintf(`class="callout" data-region="%s"`, EscapeXML(c.Name)), func() {
		if len(c.Points) > 1 {
			buf.WriteString(`    <polyline points="`)
			for i, p := range c.Points {
				if i > 0 {
					buf.WriteByte(' ')
				}
				fmt.Fprintf(buf, "%.1f,%.1f", p.X, p.Y)
			}
			fmt.Fprintf(buf, `" fill="none" stroke="%s" stroke-width="%.1f"/>`+"\n", c.LineColor, c.LineWidth)
		}
		if c.PinRadius > 0 && len(c.Points) > 0 {
			fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
				c.Points[0].X, c.Points[0].Y, c.PinRadius, c.LineColor)
		}
		fmt.Fprintf(buf,
			`    <text x="%.1f" y="%.1f" text-anchor="%s" dominant-baseline="central" font-size="%.1f">%s</text>`+"\n",
			c.TextAt.X, c.TextAt.Y, anchor, c.FontSize, EscapeXML(c.Text))
	})
}

func (Simple) RenderBarRow(buf *bytes.Buffer, b BarRow) {
	textY := b.Y + b.RowHeight/2
	WrapGroup(buf, fmt.Sprintf(`class="bar-row" data-region="%s"`, EscapeXML(b.Name)), func() {
		fmt.Fprintf(buf,
			`    <text x="%.1f" y="%.1f" text-anchor="end" dominant-baseline="central" font-size="%.1f">%s</text>`+"\n",
			b.LabelWidth-6, textY, b.RowHeight*0.7, EscapeXML(b.Name))
		if b.BarLength > 0 {
			fmt.Fprintf(buf,
				`    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"/>`+"\n",
				b.LabelWidth, b.Y, b.BarLength, b.RowHeight, b.Rounding, b.Fill)
		}
		fmt.Fprintf(buf,
			`    <text x="%.1f" y="%.1f" dominant-baseline="central" font-size="%.1f">%s</text>`+"\n",
			b.LabelWidth+b.BarLength+6, textY, b.RowHeight*0.7, EscapeXML(b.ValueText))
	})
}

// Ensure Simple implements Style.
var _ Style = Simple{}
