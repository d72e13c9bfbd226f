package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/choromap/pkg/interact"
	"github.com/matzehuels/choromap/pkg/pipeline"
	"github.com/matzehuels/choromap/pkg/region"
	"github.com/matzehuels/choromap/pkg/render/choropleth/layout"
	"github.com/matzehuels/choromap/pkg/scale"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listHoverStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the explore command, an interactive terminal view
// of the map's regions driven by the same interaction state machine the SVG
// output embeds.
func (c *CLI) exploreCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "explore [geometry.json]",
		Short: "Explore regions interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(args[0], configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config with data and thresholds")

	return cmd
}

func (c *CLI) runExplore(input, configPath string) error {
	geo, err := c.loadGeometry(context.Background(), input)
	if err != nil {
		return err
	}

	opts, err := loadPipelineOptions(&renderOpts{config: configPath})
	if err != nil {
		return err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	l := layout.Build(geo.Set, geo.Offsets)
	model := newExploreModel(l, opts)

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(exploreModel); ok && m.lastClicked != "" {
		printInfo("Last selected: %s", m.lastClicked)
	}
	return nil
}

// tuiSurface is the terminal rendering surface the interaction controller
// drives. Styles become list row colors, raising reorders the display list.
type tuiSurface struct {
	styles  map[string]interact.Style
	shadows map[string]bool
	order   []string
}

func newTUISurface(order []string) *tuiSurface {
	s := &tuiSurface{
		styles:  make(map[string]interact.Style),
		shadows: make(map[string]bool),
		order:   append([]string(nil), order...),
	}
	for _, name := range order {
		s.styles[name] = interact.Style{}
	}
	return s
}

func (s *tuiSurface) Style(name string) (interact.Style, bool) {
	st, ok := s.styles[name]
	return st, ok
}

func (s *tuiSurface) SetStyle(name string, st interact.Style) {
	s.styles[name] = st
}

func (s *tuiSurface) RaiseToTop(name string) {
	for i, n := range s.order {
		if n == name {
			s.order = append(append(s.order[:i:i], s.order[i+1:]...), name)
			return
		}
	}
}

func (s *tuiSurface) SetShadow(name string, on bool) {
	s.shadows[name] = on
}

// exploreModel is the bubbletea model for the region explorer.
type exploreModel struct {
	layout      layout.Layout
	data        region.Dataset
	colors      scale.Scale
	surface     *tuiSurface
	ctrl        *interact.Controller
	cursor      int
	names       []string // stable cursor order
	lastClicked string
	height      int
	offset      int
}

func newExploreModel(l layout.Layout, opts pipeline.Options) exploreModel {
	surface := newTUISurface(l.Order)
	iopts := opts.Interaction.ToOptions()
	m := exploreModel{
		layout:  l,
		data:    opts.Data,
		colors:  scale.New(opts.Thresholds, opts.Colors),
		surface: surface,
		names:   l.Order,
		height:  15,
	}
	m.ctrl = interact.Bind(surface, l, opts.Data, iopts)
	return m
}

func (m exploreModel) Init() tea.Cmd {
	if len(m.names) > 0 {
		m.ctrl.Focus(m.names[0])
	}
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.ctrl.Blur(m.names[m.cursor])
				m.cursor--
				m.ctrl.Focus(m.names[m.cursor])
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.ctrl.Blur(m.names[m.cursor])
				m.cursor++
				m.ctrl.Focus(m.names[m.cursor])
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			name := m.names[m.cursor]
			m.ctrl.Click(name)
			m.lastClicked = name
		case "esc":
			m.ctrl.BackgroundClick()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore Regions"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  esc deselect  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.names) {
		end = len(m.names)
	}

	for i := m.offset; i < end; i++ {
		name := m.names[i]
		b.WriteString(m.renderRow(name, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderRow renders a single region line: cursor, swatch, name, and value.
func (m exploreModel) renderRow(name string, atCursor bool) string {
	cursor := "  "
	if atCursor {
		cursor = "▸ "
	}

	d := m.data[name]
	rate, ok := d.Norm()
	fill := m.colors.Fallback()
	if ok {
		fill = m.colors.ColorFor(rate)
	}
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(fill)).Render("■")

	label := fmt.Sprintf("%-20s %8s %8s", name, d.CountText(), d.RateText())
	style := listDimStyle
	switch {
	case name == m.ctrl.Selected():
		style = listSelectedStyle
	case name == m.ctrl.Hovered():
		style = listHoverStyle
	}
	if m.surface.shadows[name] {
		label += " ●"
	}

	return cursor + swatch + " " + style.Render(label)
}

func (m exploreModel) renderStatus() string {
	selected := m.ctrl.Selected()
	if selected == "" {
		return listDimStyle.Render("nothing selected")
	}
	box, _ := m.layout.BBoxes[selected]
	return StyleHighlight.Render(selected) +
		listDimStyle.Render(fmt.Sprintf("  bbox %.0f,%.0f %.0f×%.0f  paint order top: %s",
			box.X, box.Y, box.Width, box.Height, m.surface.order[len(m.surface.order)-1]))
}
