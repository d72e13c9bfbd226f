// Package pipeline provides the core rendering pipeline for choromap.
//
// This package implements the complete import → layout → render pipeline
// that can be used by the CLI, the server, and the terminal explorer. By
// centralizing this logic, we ensure consistent behavior across all entry
// points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two cached stages:
//
//  1. Layout: Compute the shared frame and per-region anchors
//  2. Render: Paint regions, place annotations, emit output formats
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Mode:    pipeline.ModeBars,
//	    Data:    dataset,
//	    Bars:    &pipeline.BarConfig{},
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, geo, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/choromap/pkg/cache"
	"github.com/matzehuels/choromap/pkg/errors"
	"github.com/matzehuels/choromap/pkg/interact"
	"github.com/matzehuels/choromap/pkg/region"
)

// Annotation modes. A rendered map always paints regions and places
// labels; the mode selects what else is drawn.
const (
	// ModeLabels renders labels only, no extra panel.
	ModeLabels = "labels"
	// ModeBars adds the rank-ordered bar panel below the map.
	ModeBars = "bars"
	// ModeCallouts adds leader-line callouts on the margins.
	ModeCallouts = "callouts"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// StyleSimple is the only built-in visual style.
const StyleSimple = "simple"

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleSimple: true,
}

// ValidModes is the set of supported annotation modes.
var ValidModes = map[string]bool{
	ModeLabels:   true,
	ModeBars:     true,
	ModeCallouts: true,
}

// Options contains all configuration for the rendering pipeline.
// This struct decodes from both JSON (server requests) and TOML (config
// files).
type Options struct {
	// Mode selects the annotation mode. Empty means infer: exactly one of
	// Bars/Callouts present selects that mode, neither selects labels,
	// both is a configuration error.
	Mode string `json:"mode,omitempty" toml:"mode"`

	// Data maps region names to values. Names without geometry are
	// silently skipped by every feature.
	Data region.Dataset `json:"data,omitempty" toml:"data"`

	// Scale configuration. Empty lists use the package defaults.
	Thresholds []float64 `json:"thresholds,omitempty" toml:"thresholds"`
	Colors     []string  `json:"colors,omitempty" toml:"colors"`

	// Render options
	Style       string   `json:"style,omitempty" toml:"style"`
	Formats     []string `json:"formats,omitempty" toml:"formats"`
	Legend      bool     `json:"legend,omitempty" toml:"legend"`
	Interactive bool     `json:"interactive,omitempty" toml:"interactive"`
	Background  string   `json:"background,omitempty" toml:"background"`

	// Mode-specific sections
	Labels      *LabelConfig       `json:"labels,omitempty" toml:"labels"`
	Bars        *BarConfig         `json:"bars,omitempty" toml:"bars"`
	Callouts    *CalloutConfig     `json:"callouts,omitempty" toml:"callouts"`
	Interaction *InteractionConfig `json:"interaction,omitempty" toml:"interaction"`

	// Refresh bypasses the cache on read (results are still written).
	Refresh bool `json:"refresh,omitempty" toml:"refresh"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-" toml:"-"`
}

// LabelConfig mirrors the label placement options.
type LabelConfig struct {
	FontSize   float64      `json:"font_size,omitempty" toml:"font_size"`
	FontWeight string       `json:"font_weight,omitempty" toml:"font_weight"`
	MinWidth   float64      `json:"min_width,omitempty" toml:"min_width"`
	MinHeight  float64      `json:"min_height,omitempty" toml:"min_height"`
	Glyph      *GlyphConfig `json:"glyph,omitempty" toml:"glyph"`
}

// GlyphConfig configures the optional pie glyph next to each label.
type GlyphConfig struct {
	Side        string               `json:"side,omitempty" toml:"side"`
	Gap         float64              `json:"gap,omitempty" toml:"gap"`
	Radius      float64              `json:"radius,omitempty" toml:"radius"`
	InnerRadius float64              `json:"inner_radius,omitempty" toml:"inner_radius"`
	Colors      []string             `json:"colors,omitempty" toml:"colors"`
	Values      map[string][]float64 `json:"values,omitempty" toml:"values"`
}

// BarConfig mirrors the bar panel options.
type BarConfig struct {
	RowHeight float64 `json:"row_height,omitempty" toml:"row_height"`
	// Gap is a pointer so a configured zero survives as "flush rows"
	// instead of re-defaulting.
	Gap        *float64 `json:"gap,omitempty" toml:"gap"`
	MaxWidth   float64  `json:"max_width,omitempty" toml:"max_width"`
	Rounding   float64  `json:"rounding,omitempty" toml:"rounding"`
	LabelWidth float64  `json:"label_width,omitempty" toml:"label_width"`
	Fill       string   `json:"fill,omitempty" toml:"fill"`
}

// CalloutConfig mirrors the callout routing options.
type CalloutConfig struct {
	Padding    float64  `json:"padding,omitempty" toml:"padding"`
	Margin     float64  `json:"margin,omitempty" toml:"margin"`
	TextOffset *float64 `json:"text_offset,omitempty" toml:"text_offset"`
	LineColor  string   `json:"line_color,omitempty" toml:"line_color"`
	LineWidth  float64  `json:"line_width,omitempty" toml:"line_width"`
	PinRadius  float64  `json:"pin_radius,omitempty" toml:"pin_radius"`
	FontSize   float64  `json:"font_size,omitempty" toml:"font_size"`
}

// InteractionConfig mirrors the interaction options.
type InteractionConfig struct {
	Hover        interact.Style            `json:"hover,omitempty" toml:"hover"`
	RegionStyles map[string]interact.Style `json:"region_styles,omitempty" toml:"region_styles"`
	Shadow       bool                      `json:"shadow,omitempty" toml:"shadow"`
	AlwaysOnTop  []string                  `json:"always_on_top,omitempty" toml:"always_on_top"`
}

// ToOptions converts the config into interact options.
func (c *InteractionConfig) ToOptions() interact.Options {
	if c == nil {
		return interact.Options{Shadow: true}
	}
	return interact.Options{
		HoverStyle:   c.Hover,
		RegionStyles: c.RegionStyles,
		Shadow:       c.Shadow,
		AlwaysOnTop:  c.AlwaysOnTop,
	}
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be: simple)", style)
	}
	return nil
}

// ResolveMode determines the annotation mode, inferring it from the
// configured sections when not declared.
//
// Rules:
//   - An explicit mode must be valid, and bars/callouts modes require
//     their section to be present.
//   - Without an explicit mode, exactly one of Bars/Callouts selects the
//     matching mode; neither selects labels; both is a hard configuration
//     error, never a silent pick.
func (o *Options) ResolveMode() (string, error) {
	if o.Mode != "" {
		if !ValidModes[o.Mode] {
			return "", errors.New(errors.ErrCodeInvalidMode,
				"invalid mode: %q (must be one of: labels, bars, callouts)", o.Mode)
		}
		if o.Mode == ModeBars && o.Bars == nil {
			return "", errors.New(errors.ErrCodeInvalidConfig, "mode %q requires a bars section", o.Mode)
		}
		if o.Mode == ModeCallouts && o.Callouts == nil {
			return "", errors.New(errors.ErrCodeInvalidConfig, "mode %q requires a callouts section", o.Mode)
		}
		return o.Mode, nil
	}

	switch {
	case o.Bars != nil && o.Callouts != nil:
		return "", errors.New(errors.ErrCodeInvalidConfig,
			"both bars and callouts configured; set mode explicitly")
	case o.Bars != nil:
		return ModeBars, nil
	case o.Callouts != nil:
		return ModeCallouts, nil
	default:
		return ModeLabels, nil
	}
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Configuration errors are hard failures raised before any rendering.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	mode, err := o.ResolveMode()
	if err != nil {
		return err
	}
	o.Mode = mode

	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}

	if o.Style == "" {
		o.Style = StyleSimple
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}

	if err := errors.ValidateThresholds(o.Thresholds); err != nil {
		return err
	}
	for _, c := range o.Colors {
		if err := errors.ValidateHexColor(c); err != nil {
			return err
		}
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(offsetsHash string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{OffsetsHash: offsetsHash}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format, dataHash, optionsHash string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Style:       o.Style,
		Mode:        o.Mode,
		Legend:      o.Legend,
		Interactive: o.Interactive,
		DataHash:    dataHash,
		OptionsHash: optionsHash,
	}
}
