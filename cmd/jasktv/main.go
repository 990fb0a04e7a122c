package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jasktv/core/nav"
	"github.com/jask/jasktv/internal/catalog"
	"github.com/jask/jasktv/internal/catalog/repository"
	"github.com/jask/jasktv/internal/config"
	"github.com/jask/jasktv/internal/player"
	"github.com/jask/jasktv/internal/recommend"
	"github.com/jask/jasktv/ui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := catalog.RunMigrations(cfg.Database.Path, "internal/catalog/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := catalog.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := catalog.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	repos := ui.Repos{
		Titles:  repository.NewTitleRepo(db),
		Shelves: repository.NewShelfRepo(db),
		Watch:   repository.NewWatchRepo(db),
	}

	engine := nav.NewEngine(nav.Options{
		GraceWindow:  cfg.Nav.GraceWindow(),
		HistoryLimit: cfg.Nav.HistoryLimit,
		RestoreWait:  cfg.Nav.RestoreWait(),
		Logger:       navLogger(),
	})
	dispatcher := nav.NewDispatcher(engine, bindings(cfg))

	provider := recommend.NewHeuristicProvider()
	playerSvc := player.NewService(nil)

	app := ui.New(ctx, cfg, engine, dispatcher, repos, provider, playerSvc)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}

func bindings(cfg config.Config) []nav.Binding {
	if len(cfg.Bindings) == 0 {
		return nil
	}
	out := make([]nav.Binding, 0, len(cfg.Bindings))
	for action, keys := range cfg.Bindings {
		out = append(out, nav.Binding{Keys: keys, Action: action})
	}
	return out
}

// navLogger sends engine diagnostics to JASKTV_DEBUG_LOG when set; with the
// alt screen active anything written to stderr would be lost anyway.
func navLogger() *slog.Logger {
	path := os.Getenv("JASKTV_DEBUG_LOG")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
