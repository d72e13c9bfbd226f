package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/matzehuels/choromap/pkg/errors"
)

const converterBinary = "rsvg-convert"

// ToPDF converts a rendered SVG to PDF, for print-quality map exports.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin
// (Linux). A missing binary reports ErrCodeUnsupported.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG rasterizes a rendered SVG at the given scale factor; 2.0 doubles
// the viewport resolution. Requires librsvg like [ToPDF].
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// convert pipes the SVG through rsvg-convert. Conversion failures carry
// the tool's stderr, which names the offending SVG construct.
func convert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath(converterBinary); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command(converterBinary, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConvert, err, "%s: %s", converterBinary, stderr.String())
	}
	return out.Bytes(), nil
}
