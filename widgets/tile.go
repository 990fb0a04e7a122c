package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Tile is one poster card in a shelf or grid.
type Tile struct {
	Name    string
	Genre   string
	Year    int
	Focused bool
	Accent  lipgloss.Color
	Border  lipgloss.Color
}

// TileWidth and TileHeight are the rendered cell dimensions, border included.
const (
	TileWidth  = 20
	TileHeight = 5
)

func (t Tile) Render() string {
	border := lipgloss.NormalBorder()
	borderColor := t.Border
	if t.Focused {
		border = lipgloss.ThickBorder()
		borderColor = t.Accent
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Width(TileWidth - 2).
		Height(TileHeight - 2).
		Padding(0, 1)

	name := truncate(t.Name, TileWidth-4)
	meta := truncate(fmt.Sprintf("%s · %d", t.Genre, t.Year), TileWidth-4)
	if t.Year == 0 {
		meta = truncate(t.Genre, TileWidth-4)
	}
	metaStyle := lipgloss.NewStyle().Faint(true)
	return style.Render(name + "\n" + metaStyle.Render(meta))
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
