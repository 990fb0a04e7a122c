package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jasktv/core/nav"
	"github.com/jask/jasktv/internal/catalog"
	"github.com/jask/jasktv/internal/catalog/repository"
)

const (
	menuHomeID   = "menu-home"
	menuMyListID = "menu-mylist"
	menuGroupID  = "menu"

	recommendRowID = "recommended"

	myListGroupID = "mylist-grid"

	detailPlayID  = "detail-play"
	detailListID  = "detail-list"
	detailCloseID = "detail-close"
	detailGroupID = "detail-actions"

	playerPauseID   = "player-pause"
	playerRewindID  = "player-rewind"
	playerForwardID = "player-forward"
	playerStopID    = "player-stop"
	playerGroupID   = "player-controls"
)

const seekStepSec = 15

func tileID(rowID, titleID string) string { return "tile:" + rowID + ":" + titleID }
func shelfGroupID(rowID string) string    { return "shelf:" + rowID }
func myListTileID(titleID string) string  { return "mylist:" + titleID }

// homeRows is the catalog shelves plus the recommendation row when the
// recommender produced one.
func (a *App) homeRows() []shelfRow {
	rows := a.rows
	if len(a.recommended) > 0 {
		rows = append(rows[:len(rows):len(rows)], shelfRow{
			ID:      recommendRowID,
			Heading: "Because you watched",
			Titles:  a.recommended,
		})
	}
	return rows
}

func (a *App) registerMenu() {
	a.engine.Register(nav.Element{
		ID:       menuHomeID,
		Geometry: rectFor(menuItemRect(0)),
		Action:   func() { a.gotoView(viewHome) },
	})
	a.engine.Register(nav.Element{
		ID:       menuMyListID,
		Geometry: rectFor(menuItemRect(1)),
		Action:   func() { a.gotoView(viewMyList) },
	})
	a.engine.RegisterGroup(menuGroupID, []string{menuHomeID, menuMyListID}, nav.Vertical(), false)
}

func (a *App) unregisterMenu() {
	a.engine.UnregisterGroup(menuGroupID)
	a.engine.Unregister(menuHomeID)
	a.engine.Unregister(menuMyListID)
}

// registerHome upserts an element per visible tile and a horizontal group
// per shelf row, then drops whatever the previous registration had that the
// current data no longer shows.
func (a *App) registerHome() {
	prevTiles, prevGroups := a.homeTileIDs, a.homeGroupIDs
	a.homeTileIDs, a.homeGroupIDs = nil, nil
	seen := make(map[string]bool)
	for r, row := range a.homeRows() {
		ids := make([]string, 0, len(row.Titles))
		for c, t := range row.Titles {
			title := t
			id := tileID(row.ID, t.ID)
			a.engine.Register(nav.Element{
				ID:       id,
				Geometry: rectFor(tileRect(r, c)),
				Action:   func() { a.openDetail(title) },
			})
			ids = append(ids, id)
			seen[id] = true
			a.homeTileIDs = append(a.homeTileIDs, id)
		}
		if len(ids) == 0 {
			continue
		}
		gid := shelfGroupID(row.ID)
		a.engine.RegisterGroup(gid, ids, nav.Horizontal(), false)
		seen[gid] = true
		a.homeGroupIDs = append(a.homeGroupIDs, gid)
	}
	for _, gid := range prevGroups {
		if !seen[gid] {
			a.engine.UnregisterGroup(gid)
		}
	}
	for _, id := range prevTiles {
		if !seen[id] {
			a.engine.Unregister(id)
		}
	}
}

func (a *App) unregisterHome() {
	for _, gid := range a.homeGroupIDs {
		a.engine.UnregisterGroup(gid)
	}
	for _, id := range a.homeTileIDs {
		a.engine.Unregister(id)
	}
	a.homeTileIDs, a.homeGroupIDs = nil, nil
}

// registerMyList lays saved titles out as a wrapping row-major grid.
func (a *App) registerMyList() {
	prev := a.myListIDs
	a.myListIDs = nil
	seen := make(map[string]bool)
	ids := make([]string, 0, len(a.myList))
	for i, t := range a.myList {
		title := t
		id := myListTileID(t.ID)
		a.engine.Register(nav.Element{
			ID:       id,
			Geometry: rectFor(gridTileRect(i)),
			Action:   func() { a.openDetail(title) },
		})
		ids = append(ids, id)
		seen[id] = true
		a.myListIDs = append(a.myListIDs, id)
	}
	if len(ids) > 0 {
		a.engine.RegisterGroup(myListGroupID, ids, nav.Grid(gridColumns), true)
	} else {
		a.engine.UnregisterGroup(myListGroupID)
	}
	for _, id := range prev {
		if !seen[id] {
			a.engine.Unregister(id)
		}
	}
}

func (a *App) unregisterMyList() {
	a.engine.UnregisterGroup(myListGroupID)
	for _, id := range a.myListIDs {
		a.engine.Unregister(id)
	}
	a.myListIDs = nil
}

func (a *App) registerPlayer() {
	controls := []struct {
		id     string
		action func()
	}{
		{playerPauseID, a.togglePause},
		{playerRewindID, func() { a.seekBy(-seekStepSec) }},
		{playerForwardID, func() { a.seekBy(seekStepSec) }},
		{playerStopID, a.stopPlayback},
	}
	ids := make([]string, 0, len(controls))
	for i, c := range controls {
		a.engine.Register(nav.Element{
			ID:       c.id,
			Geometry: rectFor(playerControlRect(i)),
			Action:   c.action,
		})
		ids = append(ids, c.id)
	}
	a.engine.RegisterGroup(playerGroupID, ids, nav.Horizontal(), false)
}

func (a *App) unregisterPlayer() {
	a.engine.UnregisterGroup(playerGroupID)
	for _, id := range []string{playerPauseID, playerRewindID, playerForwardID, playerStopID} {
		a.engine.Unregister(id)
	}
}

// view switching

// gotoView is the menu path: record the route change with the engine, then
// swap registrations.
func (a *App) gotoView(v string) {
	if a.view == v {
		return
	}
	a.engine.SetActiveView(v)
	a.showView(v)
}

// showView swaps element registrations for the new route. The engine's
// active view is set by the caller (menu action or the dispatcher's back
// handling), not here.
func (a *App) showView(v string) {
	if a.view == v {
		return
	}
	prev := a.view
	a.view = v
	switch v {
	case viewHome:
		if prev == viewPlayer {
			a.registerMenu()
		}
		a.registerHome()
	case viewMyList:
		if prev == viewPlayer {
			a.registerMenu()
		}
		a.registerMyList()
	case viewPlayer:
		a.registerPlayer()
	}
	switch prev {
	case viewHome:
		a.unregisterHome()
	case viewMyList:
		a.unregisterMyList()
	case viewPlayer:
		a.unregisterPlayer()
	}
	if v == viewPlayer {
		a.unregisterMenu()
	}
}

// onViewChange runs when a back action walks history to another view.
func (a *App) onViewChange(view string) {
	if a.view == viewPlayer {
		a.finishPlayback()
	}
	a.showView(view)
}

// onTrapRelease runs when a back action dismisses the detail modal; the
// engine has already restored the pre-trap focus.
func (a *App) onTrapRelease() {
	a.teardownDetail()
}

// detail modal

func (a *App) openDetail(t repository.Title) {
	if a.detail != nil {
		return
	}
	title := t
	a.detail = &title
	a.detailInList = false
	buttons := []struct {
		id     string
		action func()
	}{
		{detailPlayID, a.startPlayback},
		{detailListID, a.toggleMyList},
		{detailCloseID, a.closeDetail},
	}
	for i, b := range buttons {
		a.engine.Register(nav.Element{
			ID:       b.id,
			Geometry: rectFor(modalButtonRect(i)),
			Action:   b.action,
		})
	}
	a.engine.RegisterGroup(detailGroupID, []string{detailPlayID, detailListID, detailCloseID}, nav.Horizontal(), false)
	a.engine.TrapFocus(detailGroupID)
	a.pending = append(a.pending, a.loadInList(title.ID))
}

func (a *App) closeDetail() {
	if a.detail == nil {
		return
	}
	a.engine.ReleaseFocus()
	a.teardownDetail()
}

func (a *App) teardownDetail() {
	if a.detail == nil {
		return
	}
	a.engine.UnregisterGroup(detailGroupID)
	a.engine.Unregister(detailPlayID)
	a.engine.Unregister(detailListID)
	a.engine.Unregister(detailCloseID)
	a.detail = nil
	a.detailInList = false
}

func (a *App) toggleMyList() {
	if a.detail == nil {
		return
	}
	id := a.detail.ID
	add := !a.detailInList
	a.detailInList = add
	a.pending = append(a.pending, func() tea.Msg {
		if add {
			if err := a.repos.Watch.AddToList(a.ctx, id); err != nil {
				return errMsg{err}
			}
			return statusMsg("added to My List")
		}
		if err := a.repos.Watch.RemoveFromList(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return statusMsg("removed from My List")
	}, a.loadMyList())
}

// playback

func (a *App) startPlayback() {
	if a.detail == nil {
		return
	}
	title := *a.detail
	a.engine.ReleaseFocus()
	a.teardownDetail()

	resume, err := a.repos.Watch.LastPosition(a.ctx, title.ID)
	if err != nil {
		resume = 0
	}
	a.player.Start(title.ID, title.DurationMin*60, resume)
	a.playing = title

	a.engine.SetActiveView(viewPlayer)
	a.showView(viewPlayer)
	a.engine.SetFocus(playerPauseID)
}

func (a *App) togglePause() {
	if sess := a.player.Current(); sess != nil {
		sess.TogglePause()
	}
}

func (a *App) seekBy(deltaSec int) {
	if sess := a.player.Current(); sess != nil {
		sess.Seek(deltaSec)
	}
}

// stopPlayback is the stop control: persist progress and return home.
func (a *App) stopPlayback() {
	a.finishPlayback()
	a.gotoView(viewHome)
	if a.engine.CurrentFocusID() == "" {
		a.engine.SetFocus(menuHomeID)
	}
}

// finishPlayback ends the session and queues the watch-history write plus a
// recommendation refresh.
func (a *App) finishPlayback() {
	titleID, positionSec, ok := a.player.Stop()
	if !ok {
		return
	}
	record := func() tea.Msg {
		if err := a.repos.Watch.Record(a.ctx, titleID, catalog.Now(), positionSec); err != nil {
			return errMsg{err}
		}
		return statusMsg("progress saved")
	}
	a.pending = append(a.pending, tea.Sequence(record, a.loadRecommendations()))
}
