package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	fontCharWidth = 0.55
	fontSizeMin   = 6.0
)

// FitFontSize shrinks size until text of textLen characters fits availWidth,
// bounded below by fontSizeMin. Used for labels inside small regions.
func FitFontSize(size, availWidth float64, textLen int) float64 {
	n := max(1, textLen)
	byWidth := availWidth / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(size, byWidth))
}

// EscapeXML escapes text for embedding in SVG attribute or element content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// WrapGroup emits fn's output inside a <g> carrying the given attributes.
func WrapGroup(buf *bytes.Buffer, attrs string, fn func()) {
	fmt.Fprintf(buf, "  <g %s>\n", attrs)
	fn()
	buf.WriteString("  </g>\n")
}
