package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/choromap/pkg/interact"
	"github.com/matzehuels/choromap/pkg/render/choropleth/layout"
)

const regionInteractionCSS = `
    .region { transition: stroke-width 0.15s ease, opacity 0.15s ease; }
    .region:focus { outline: none; }`

// regionInteractionJS drives hover and selection in the browser with the
// same transitions the interact package implements natively: activation
// toggles a class (so removing it restores the base style without a
// snapshot table), hovering raises the region above its siblings, at most
// one region is selected, the selected region is raised and the
// always-on-top list re-raised after it, and a click on the backdrop
// clears the selection.
const regionInteractionJS = `
    const alwaysOnTop = %s;
    const shadow = %s;
    let selected = null;
    function raise(el) { el.parentNode.appendChild(el); }
    function activate(el) {
      el.classList.add('active');
      if (shadow) el.setAttribute('filter', 'url(#region-shadow)');
    }
    function deactivate(el) {
      el.classList.remove('active');
      el.removeAttribute('filter');
    }
    function select(el) {
      if (selected && selected !== el) deactivate(selected);
      if (selected !== el) {
        selected = el;
        activate(el);
        raise(el);
        alwaysOnTop.forEach(name => {
          const t = document.getElementById('region-' + name);
          if (t) raise(t);
        });
      }
    }
    document.querySelectorAll('.region').forEach(el => {
      el.addEventListener('mouseenter', () => { if (el !== selected) { activate(el); raise(el); } });
      el.addEventListener('mouseleave', () => { if (el !== selected) deactivate(el); });
      el.addEventListener('focus', () => { if (el !== selected) { activate(el); raise(el); } });
      el.addEventListener('blur', () => { if (el !== selected) deactivate(el); });
      el.addEventListener('click', ev => { ev.stopPropagation(); select(el); });
      el.addEventListener('keydown', ev => {
        if (ev.key === 'Enter' || ev.key === ' ') { ev.preventDefault(); select(el); }
      });
    });
    document.querySelector('.backdrop').addEventListener('click', () => {
      if (selected) { deactivate(selected); selected = null; }
    });`

// renderInteraction compiles interaction options into embedded CSS and
// script. Hover styling becomes an .active class rule, so deactivation is
// a class removal and the painted base style survives untouched.
func renderInteraction(buf *bytes.Buffer, l layout.Layout, opts interact.Options) {
	// Regions with their own hover style are excluded from the global
	// rule, so a per-region style replaces the default outright instead
	// of cascading over it.
	global := ".region.active"
	for _, name := range l.Order {
		if _, ok := opts.RegionStyles[name]; ok {
			global += fmt.Sprintf(":not([id=%q])", "region-"+name)
		}
	}

	var css strings.Builder
	css.WriteString(regionInteractionCSS)
	css.WriteString("\n    " + global + " {")
	css.WriteString(styleCSS(defaultHover(opts.HoverStyle)))
	css.WriteString(" }")
	for _, name := range l.Order {
		per, ok := opts.RegionStyles[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&css, "\n    [id=%q].active {%s }", "region-"+name, styleCSS(per))
	}

	top, _ := json.Marshal(opts.AlwaysOnTop)
	if opts.AlwaysOnTop == nil {
		top = []byte("[]")
	}
	shadow := "false"
	if opts.Shadow {
		shadow = "true"
	}

	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", css.String())
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n",
		fmt.Sprintf(regionInteractionJS, top, shadow))
}

// defaultHover substitutes a visible hover treatment when none is given.
func defaultHover(s interact.Style) interact.Style {
	if s.IsZero() {
		return interact.Style{Stroke: "#333333", StrokeWidth: "2", Cursor: "pointer"}
	}
	if s.Cursor == "" {
		s.Cursor = "pointer"
	}
	return s
}

// styleCSS flattens a style into CSS declarations.
func styleCSS(s interact.Style) string {
	var b strings.Builder
	decl := func(prop, val string) {
		if val != "" {
			fmt.Fprintf(&b, " %s: %s;", prop, val)
		}
	}
	decl("fill", s.Fill)
	decl("stroke", s.Stroke)
	decl("stroke-width", s.StrokeWidth)
	decl("opacity", s.Opacity)
	decl("cursor", s.Cursor)
	decl("filter", s.Filter)
	return b.String()
}
