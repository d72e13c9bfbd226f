// Package interact implements the hover and selection state machine shared
// by every interactive frontend. The controller mutates an abstract Surface,
// so the same transition rules drive browser SVG scripting, the terminal
// explorer, and tests.
package interact

import (
	"github.com/matzehuels/choromap/pkg/geom"
	"github.com/matzehuels/choromap/pkg/region"
	"github.com/matzehuels/choromap/pkg/render/choropleth/layout"
)

// Style is the subset of presentation attributes the controller manages.
// Empty fields mean "leave as is".
type Style struct {
	Fill        string `json:"fill,omitempty" toml:"fill"`
	Stroke      string `json:"stroke,omitempty" toml:"stroke"`
	StrokeWidth string `json:"stroke_width,omitempty" toml:"stroke_width"`
	Opacity     string `json:"opacity,omitempty" toml:"opacity"`
	Cursor      string `json:"cursor,omitempty" toml:"cursor"`
	Filter      string `json:"filter,omitempty" toml:"filter"`
}

// Merge overlays non-empty fields of other onto s.
func (s Style) Merge(other Style) Style {
	if other.Fill != "" {
		s.Fill = other.Fill
	}
	if other.Stroke != "" {
		s.Stroke = other.Stroke
	}
	if other.StrokeWidth != "" {
		s.StrokeWidth = other.StrokeWidth
	}
	if other.Opacity != "" {
		s.Opacity = other.Opacity
	}
	if other.Cursor != "" {
		s.Cursor = other.Cursor
	}
	if other.Filter != "" {
		s.Filter = other.Filter
	}
	return s
}

// IsZero reports whether no field is set.
func (s Style) IsZero() bool { return s == Style{} }

// Surface is the mutable display the controller drives. Implementations
// include the terminal explorer and test fakes; the SVG sink compiles the
// same transitions to embedded script instead.
type Surface interface {
	// Style returns the current style of a region. The second return is
	// false for unknown regions.
	Style(name string) (Style, bool)
	// SetStyle replaces a region's style.
	SetStyle(name string, s Style)
	// RaiseToTop moves a region above all others in paint order.
	RaiseToTop(name string)
	// SetShadow toggles the elevation shadow on a region.
	SetShadow(name string, on bool)
}

// Context carries the event payload passed to hooks.
type Context struct {
	Name    string
	Datum   region.Datum
	Rate    float64
	HasRate bool
	BBox    geom.Rect
	Event   string // "enter", "leave" or "click"
}

// Hooks are optional per-event callbacks. Nil hooks are skipped.
type Hooks struct {
	OnEnter func(Context)
	OnLeave func(Context)
	OnClick func(Context)
}

// Options configures the controller.
type Options struct {
	// HoverStyle overlays the region's base style while it is hovered or
	// selected.
	HoverStyle Style
	// RegionStyles overrides the hover overlay for specific regions.
	RegionStyles map[string]Style
	// Shadow elevates the active region with a drop shadow.
	Shadow bool
	// AlwaysOnTop lists regions re-raised after every selection raise, in
	// order, so small regions stay clickable under large neighbors.
	AlwaysOnTop []string
	Hooks       Hooks
}

// Controller owns the hover and selection state for one rendered map.
// At most one region is selected at a time.
type Controller struct {
	surface Surface
	layout  layout.Layout
	data    region.Dataset
	opts    Options

	hovered  string
	selected string
	// base holds the style each region had before the controller first
	// touched it. Captured once, restored on deactivation, never
	// overwritten by later transitions.
	base map[string]Style
}

// Bind attaches a controller to a surface. The layout defines which region
// names exist; events for any other name are ignored.
func Bind(surface Surface, l layout.Layout, data region.Dataset, opts Options) *Controller {
	return &Controller{
		surface: surface,
		layout:  l,
		data:    data,
		opts:    opts,
		base:    make(map[string]Style),
	}
}

// Hovered returns the currently hovered region name, or "".
func (c *Controller) Hovered() string { return c.hovered }

// Selected returns the currently selected region name, or "".
func (c *Controller) Selected() string { return c.selected }

// Enter handles the pointer entering a region: the hover overlay is
// applied and the region is raised above its siblings so its outline is
// not clipped by neighbors. The selected region is already raised and
// keeps its visuals.
func (c *Controller) Enter(name string) {
	if !c.known(name) {
		return
	}
	c.hovered = name
	if name != c.selected {
		c.activate(name)
		c.surface.RaiseToTop(name)
	}
	c.fire(c.opts.Hooks.OnEnter, name, "enter")
}

// Leave handles the pointer leaving a region. A selected region keeps its
// active visuals until it is deselected.
func (c *Controller) Leave(name string) {
	if !c.known(name) {
		return
	}
	if c.hovered == name {
		c.hovered = ""
	}
	if name != c.selected {
		c.deactivate(name)
	}
	c.fire(c.opts.Hooks.OnLeave, name, "leave")
}

// Click handles activation of a region. Clicking the selected region again
// is a no-op for state but still reaches the hook.
func (c *Controller) Click(name string) {
	if !c.known(name) {
		return
	}
	if name != c.selected {
		if c.selected != "" {
			c.deactivate(c.selected)
		}
		c.selected = name
		c.activate(name)
		c.surface.RaiseToTop(name)
		for _, top := range c.opts.AlwaysOnTop {
			if c.known(top) {
				c.surface.RaiseToTop(top)
			}
		}
	}
	c.fire(c.opts.Hooks.OnClick, name, "click")
}

// BackgroundClick clears the selection. Hover state is untouched.
func (c *Controller) BackgroundClick() {
	if c.selected == "" {
		return
	}
	prev := c.selected
	c.selected = ""
	if c.hovered != prev {
		c.deactivate(prev)
	}
}

// Focus mirrors Enter for keyboard navigation.
func (c *Controller) Focus(name string) { c.Enter(name) }

// Blur mirrors Leave for keyboard navigation.
func (c *Controller) Blur(name string) { c.Leave(name) }

// Key handles a key press on a focused region. Enter and Space activate,
// matching the pointer click.
func (c *Controller) Key(name, key string) {
	switch key {
	case "Enter", " ", "Space":
		c.Click(name)
	}
}

func (c *Controller) known(name string) bool {
	_, ok := c.layout.BBoxes[name]
	return ok
}

// activate applies the hover overlay, snapshotting the base style first.
func (c *Controller) activate(name string) {
	cur, ok := c.surface.Style(name)
	if !ok {
		return
	}
	if _, saved := c.base[name]; !saved {
		c.base[name] = cur
	}
	// A per-region style replaces the global hover style, it does not
	// layer on top of it.
	overlay := c.opts.HoverStyle
	if per, ok := c.opts.RegionStyles[name]; ok {
		overlay = per
	}
	c.surface.SetStyle(name, c.base[name].Merge(overlay))
	if c.opts.Shadow {
		c.surface.SetShadow(name, true)
	}
}

// deactivate restores the snapshotted base style.
func (c *Controller) deactivate(name string) {
	if snap, ok := c.base[name]; ok {
		c.surface.SetStyle(name, snap)
	}
	if c.opts.Shadow {
		c.surface.SetShadow(name, false)
	}
}

func (c *Controller) fire(hook func(Context), name, event string) {
	if hook == nil {
		return
	}
	d := c.data[name]
	rate, hasRate := d.Norm()
	hook(Context{
		Name:    name,
		Datum:   d,
		Rate:    rate,
		HasRate: hasRate,
		BBox:    c.layout.BBoxes[name],
		Event:   event,
	})
}
