package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jasktv/core/nav"
	"github.com/jask/jasktv/internal/catalog/repository"
	"github.com/jask/jasktv/internal/config"
	"github.com/jask/jasktv/internal/player"
	"github.com/jask/jasktv/internal/recommend"
)

// View keys. These name routes in the engine's focus history, so they must
// stay stable across the app's lifetime.
const (
	viewHome   = "home"
	viewMyList = "my-list"
	viewPlayer = "player"
)

const flushInterval = 100 * time.Millisecond

// shelfRow is one rendered row on the home screen: a catalog shelf or the
// recommendation row.
type shelfRow struct {
	ID      string
	Heading string
	Titles  []repository.Title
}

// Repos groups the catalog repositories the shell reads from.
type Repos struct {
	Titles  *repository.TitleRepo
	Shelves *repository.ShelfRepo
	Watch   *repository.WatchRepo
}

// App ties the navigation engine to the catalog, recommender and player.
type App struct {
	ctx        context.Context
	cfg        config.Config
	engine     *nav.Engine
	dispatcher *nav.Dispatcher
	repos      Repos
	recommends recommend.Provider
	player     *player.Service

	view    string
	width   int
	height  int
	focused string
	status  string
	keys    keyMap

	rows        []shelfRow
	recommended []repository.Title
	myList      []repository.Title

	detail       *repository.Title
	detailInList bool
	playing      repository.Title

	homeTileIDs  []string
	homeGroupIDs []string
	myListIDs    []string

	// commands produced by element actions while the dispatcher drains;
	// collected after HandleKey returns.
	pending []tea.Cmd
}

func New(ctx context.Context, cfg config.Config, engine *nav.Engine, dispatcher *nav.Dispatcher, repos Repos, provider recommend.Provider, playerSvc *player.Service) *App {
	a := &App{
		ctx:        ctx,
		cfg:        cfg,
		engine:     engine,
		dispatcher: dispatcher,
		repos:      repos,
		recommends: provider,
		player:     playerSvc,
		view:       viewHome,
		keys:       defaultKeyMap(),
	}
	engine.Subscribe(func(prev, curr string) { a.focused = curr })
	dispatcher.OnViewChange = a.onViewChange
	dispatcher.OnTrapRelease = a.onTrapRelease
	engine.SetActiveView(viewHome)
	a.registerMenu()
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadShelves(), a.loadMyList(), a.loadRecommendations(), a.flushTick())
}

// messages

type rowsMsg []shelfRow

type myListMsg []repository.Title

type recommendMsg []repository.Title

type inListMsg bool

type statusMsg string

type errMsg struct{ err error }

func (m errMsg) Error() string { return m.err.Error() }

type flushMsg time.Time

// commands

func (a *App) loadShelves() tea.Cmd {
	return func() tea.Msg {
		shelves, err := a.repos.Shelves.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		rows := make([]shelfRow, 0, len(shelves))
		for _, s := range shelves {
			titles, err := a.repos.Titles.ListByShelf(a.ctx, s.ID)
			if err != nil {
				return errMsg{err}
			}
			rows = append(rows, shelfRow{ID: s.ID, Heading: s.Name, Titles: titles})
		}
		return rowsMsg(rows)
	}
}

func (a *App) loadMyList() tea.Cmd {
	return func() tea.Msg {
		titles, err := a.repos.Watch.ListTitles(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return myListMsg(titles)
	}
}

func (a *App) loadRecommendations() tea.Cmd {
	return func() tea.Msg {
		recent, err := a.repos.Watch.RecentTitles(a.ctx, 5)
		if err != nil {
			return errMsg{err}
		}
		if len(recent) == 0 {
			return recommendMsg(nil)
		}
		all, err := a.repos.Titles.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		req := recommend.Request{Limit: a.cfg.Recommend.ShelfSize}
		for _, t := range recent {
			req.RecentlyWatched = append(req.RecentlyWatched, titleInput(t))
		}
		for _, t := range all {
			req.Candidates = append(req.Candidates, titleInput(t))
		}
		resp, err := a.recommends.Recommend(a.ctx, req)
		if err != nil {
			return errMsg{err}
		}
		byID := make(map[string]repository.Title, len(all))
		for _, t := range all {
			byID[t.ID] = t
		}
		picks := make([]repository.Title, 0, len(resp.TitleIDs))
		for _, id := range resp.TitleIDs {
			if t, ok := byID[id]; ok {
				picks = append(picks, t)
			}
		}
		return recommendMsg(picks)
	}
}

func (a *App) loadInList(titleID string) tea.Cmd {
	return func() tea.Msg {
		in, err := a.repos.Watch.InList(a.ctx, titleID)
		if err != nil {
			return errMsg{err}
		}
		return inListMsg(in)
	}
}

func (a *App) flushTick() tea.Cmd {
	return tea.Tick(flushInterval, func(t time.Time) tea.Msg { return flushMsg(t) })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		a.dispatcher.HandleKey(m)
		if len(a.pending) > 0 {
			cmd := tea.Batch(a.pending...)
			a.pending = nil
			return a, cmd
		}
	case flushMsg:
		a.engine.Flush()
		return a, a.flushTick()
	case rowsMsg:
		a.rows = []shelfRow(m)
		a.syncHomeRegistration()
	case recommendMsg:
		a.recommended = []repository.Title(m)
		a.syncHomeRegistration()
	case myListMsg:
		a.myList = []repository.Title(m)
		if a.view == viewMyList {
			a.registerMyList()
		}
	case inListMsg:
		a.detailInList = bool(m)
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) syncHomeRegistration() {
	if a.view != viewHome {
		return
	}
	a.registerHome()
	if a.engine.CurrentFocusID() == "" {
		a.engine.SetFocus(menuHomeID)
	}
}

func titleInput(t repository.Title) recommend.TitleInput {
	return recommend.TitleInput{ID: t.ID, Name: t.Name, Genre: t.Genre, Year: t.Year}
}
