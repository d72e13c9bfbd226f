package render

import (
	"testing"

	"github.com/matzehuels/choromap/pkg/errors"
)

func TestConvertWithoutLibrsvg(t *testing.T) {
	// An empty PATH guarantees the converter is not found.
	t.Setenv("PATH", t.TempDir())

	for _, run := range []struct {
		name string
		fn   func() ([]byte, error)
	}{
		{"pdf", func() ([]byte, error) { return ToPDF([]byte("<svg/>")) }},
		{"png", func() ([]byte, error) { return ToPNG([]byte("<svg/>"), 2.0) }},
	} {
		t.Run(run.name, func(t *testing.T) {
			_, err := run.fn()
			if err == nil {
				t.Fatal("expected error without rsvg-convert on PATH")
			}
			if !errors.Is(err, errors.ErrCodeUnsupported) {
				t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeUnsupported)
			}
		})
	}
}
