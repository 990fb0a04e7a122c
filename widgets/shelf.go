package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shelf renders a heading above a horizontal run of tiles.
type Shelf struct {
	Heading string
	Tiles   []Tile
	Accent  lipgloss.Color
}

// ShelfHeight is heading line plus tile rows.
const ShelfHeight = TileHeight + 1

func (s Shelf) Render() string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(s.Accent).Render(s.Heading)
	if len(s.Tiles) == 0 {
		empty := lipgloss.NewStyle().Faint(true).Render("nothing here yet")
		return heading + "\n" + empty
	}
	rendered := make([]string, 0, len(s.Tiles))
	for _, t := range s.Tiles {
		rendered = append(rendered, t.Render())
	}
	return heading + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// MenuRail renders the vertical navigation rail. active marks the current
// route, focused the item holding navigation focus.
type MenuRail struct {
	Items   []string
	Active  int
	Focused int
	Width   int
	Accent  lipgloss.Color
}

func (m MenuRail) Render() string {
	var b strings.Builder
	base := lipgloss.NewStyle().Width(m.Width).Padding(0, 1)
	for i, item := range m.Items {
		style := base
		switch {
		case i == m.Focused:
			style = style.Bold(true).Foreground(lipgloss.Color("0")).Background(m.Accent)
		case i == m.Active:
			style = style.Bold(true).Foreground(m.Accent)
		}
		b.WriteString(style.Render(item))
		if i < len(m.Items)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
