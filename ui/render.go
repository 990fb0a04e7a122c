package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jasktv/internal/player"
	"github.com/jask/jasktv/widgets"
)

func (a *App) View() string {
	var body string
	switch a.view {
	case viewMyList:
		body = a.renderMyList()
	case viewPlayer:
		body = a.renderPlayer()
	default:
		body = a.renderHome()
	}
	screen := body + "\n\n" + a.renderStatus()
	if a.detail != nil {
		card := a.renderDetailCard()
		if a.width > 0 && a.height > 0 {
			return widgets.Overlay(screen, card, a.width, a.height, colorAccent)
		}
		return screen + "\n\n" + card
	}
	return screen
}

func (a *App) renderMenu() string {
	focused := -1
	switch a.focused {
	case menuHomeID:
		focused = 0
	case menuMyListID:
		focused = 1
	}
	active := 0
	if a.view == viewMyList {
		active = 1
	}
	rail := widgets.MenuRail{
		Items:   []string{"Home", "My List"},
		Active:  active,
		Focused: focused,
		Width:   menuWidth,
		Accent:  colorBrand,
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(colorBrand).Padding(0, 1).Render("jasktv")
	return title + "\n\n" + rail.Render()
}

func (a *App) renderHome() string {
	rows := a.homeRows()
	parts := make([]string, 0, len(rows))
	for r, row := range rows {
		tiles := make([]widgets.Tile, 0, len(row.Titles))
		for _, t := range row.Titles {
			tiles = append(tiles, widgets.Tile{
				Name:    t.Name,
				Genre:   t.Genre,
				Year:    t.Year,
				Focused: a.focused == tileID(row.ID, t.ID),
				Accent:  colorFocus,
				Border:  colorSurface1,
			})
		}
		parts = append(parts, widgets.Shelf{Heading: row.Heading, Tiles: tiles, Accent: shelfAccent(r)}.Render())
	}
	content := strings.Join(parts, "\n")
	if len(parts) == 0 {
		content = lipgloss.NewStyle().Faint(true).Render("loading catalog...")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, a.renderMenu(), "  ", content)
}

func (a *App) renderMyList() string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("My List")
	if len(a.myList) == 0 {
		empty := lipgloss.NewStyle().Faint(true).Render("nothing saved yet")
		return lipgloss.JoinHorizontal(lipgloss.Top, a.renderMenu(), "  ", heading+"\n"+empty)
	}
	gridRows := make([]string, 0, (len(a.myList)+gridColumns-1)/gridColumns)
	for start := 0; start < len(a.myList); start += gridColumns {
		end := start + gridColumns
		if end > len(a.myList) {
			end = len(a.myList)
		}
		tiles := make([]string, 0, end-start)
		for _, t := range a.myList[start:end] {
			tiles = append(tiles, widgets.Tile{
				Name:    t.Name,
				Genre:   t.Genre,
				Year:    t.Year,
				Focused: a.focused == myListTileID(t.ID),
				Accent:  colorFocus,
				Border:  colorSurface1,
			}.Render())
		}
		gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	content := heading + "\n" + strings.Join(gridRows, "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, a.renderMenu(), "  ", content)
}

func (a *App) renderPlayer() string {
	sess := a.player.Current()
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Now Playing")
	name := lipgloss.NewStyle().Bold(true).Foreground(colorText).Render(a.playing.Name)
	meta := lipgloss.NewStyle().Faint(true).Render(a.playing.Genre)

	var state, progress, bar string
	if sess != nil {
		state = sess.State().String()
		if sess.State() == player.Paused {
			state = lipgloss.NewStyle().Foreground(colorWarning).Render(state)
		} else {
			state = lipgloss.NewStyle().Foreground(colorSuccess).Render(state)
		}
		progress = sess.Progress()
		bar = progressBar(sess.PositionSec(), sess.DurationSec(), 48)
	} else {
		state = lipgloss.NewStyle().Faint(true).Render("stopped")
	}

	pauseLabel := "Pause"
	if sess != nil && sess.State() == player.Paused {
		pauseLabel = "Resume"
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		a.button(playerPauseID, pauseLabel),
		" ",
		a.button(playerRewindID, "« 15s"),
		" ",
		a.button(playerForwardID, "15s »"),
		" ",
		a.button(playerStopID, "Stop"),
	)

	lines := []string{title, "", name, meta, "", state + "  " + progress, bar, "", controls}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

func (a *App) renderDetailCard() string {
	t := a.detail
	name := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(t.Name)
	meta := lipgloss.NewStyle().Faint(true).Render(metaLine(t.Genre, t.Year, t.DurationMin))
	synopsis := lipgloss.NewStyle().Width(46).Foreground(colorText).Render(t.Synopsis)

	listLabel := "+ My List"
	if a.detailInList {
		listLabel = "− My List"
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		a.button(detailPlayID, "Play"),
		" ",
		a.button(detailListID, listLabel),
		" ",
		a.button(detailCloseID, "Close"),
	)
	return name + "\n" + meta + "\n\n" + synopsis + "\n\n" + buttons
}

func (a *App) renderStatus() string {
	help := lipgloss.NewStyle().Faint(true).Render("↑/↓/←/→ move · enter select · esc back · q quit")
	if a.status == "" {
		return help
	}
	status := lipgloss.NewStyle().Foreground(colorInfo).Render(a.status)
	return status + "  " + help
}

func (a *App) button(id, label string) string {
	style := lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()).BorderForeground(colorSurface1)
	if a.focused == id {
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(colorFocus).Bold(true)
	}
	return style.Render(label)
}

func metaLine(genre string, year, durationMin int) string {
	parts := []string{genre}
	if year > 0 {
		parts = append(parts, strconv.Itoa(year))
	}
	if durationMin > 0 {
		parts = append(parts, strconv.Itoa(durationMin)+" min")
	}
	return strings.Join(parts, " · ")
}

func progressBar(positionSec, durationSec, width int) string {
	if durationSec <= 0 || width <= 0 {
		return ""
	}
	filled := positionSec * width / durationSec
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(colorAccent).Render(bar)
}
