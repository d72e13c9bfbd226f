package choropleth

import (
	"cmp"
	"slices"

	"github.com/matzehuels/choromap/pkg/region"
	"github.com/matzehuels/choromap/pkg/render/choropleth/styles"
)

// BarOptions configures the ranked bar panel.
type BarOptions struct {
	RowHeight float64 // default 14
	// Gap is the spacing between rows. Nil selects the default of 6;
	// pointing at zero packs the rows flush.
	Gap        *float64
	MaxWidth   float64 // full-scale bar length, default 160
	Rounding   float64 // corner radius
	LabelWidth float64 // name column width, default 80
	Fill       string  // bar color, default mid-scale blue
	Formatter  func(name string, d region.Datum) string
}

func (o BarOptions) withDefaults() BarOptions {
	if o.RowHeight <= 0 {
		o.RowHeight = 14
	}
	o.Gap = resolve(o.Gap, 6)
	if o.MaxWidth <= 0 {
		o.MaxWidth = 160
	}
	if o.LabelWidth <= 0 {
		o.LabelWidth = 80
	}
	if o.Fill == "" {
		o.Fill = "#2171b5"
	}
	return o
}

// resolve returns a pointer to def when p is nil and clamps negative
// values to zero, so zero stays a choosable spacing.
func resolve(p *float64, def float64) *float64 {
	v := def
	if p != nil {
		v = max(*p, 0)
	}
	return &v
}

// PanelHeight returns the vertical extent of a panel with n rows.
func (o BarOptions) PanelHeight(n int) float64 {
	o = o.withDefaults()
	if n == 0 {
		return 0
	}
	return float64(n)*(o.RowHeight+*o.Gap) - *o.Gap
}

// RankBars produces bar rows ordered descending by rate. A missing rate
// ranks below every known rate; ties break by region name so the order is
// stable across runs regardless of map iteration order. Bar length scales
// with the rate re-clamped to [0,1].
func RankBars(data region.Dataset, opts BarOptions) []styles.BarRow {
	opts = opts.withDefaults()

	type entry struct {
		name string
		d    region.Datum
		rate float64
		ok   bool
	}
	entries := make([]entry, 0, len(data))
	for name, d := range data {
		e := entry{name: name, d: d}
		e.rate, e.ok = d.Norm()
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case a.ok && b.ok:
			if c := cmp.Compare(b.rate, a.rate); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.name, b.name)
	})

	rows := make([]styles.BarRow, len(entries))
	for i, e := range entries {
		length := 0.0
		if e.ok {
			length = opts.MaxWidth * min(1, max(0, e.rate))
		}
		text := e.d.RateText()
		if opts.Formatter != nil {
			text = opts.Formatter(e.name, e.d)
		}
		rows[i] = styles.BarRow{
			Name:       e.name,
			ValueText:  text,
			Index:      i,
			Y:          float64(i) * (opts.RowHeight + *opts.Gap),
			LabelWidth: opts.LabelWidth,
			BarLength:  length,
			RowHeight:  opts.RowHeight,
			Rounding:   opts.Rounding,
			Fill:       opts.Fill,
		}
	}
	return rows
}
