package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JASKTV_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Nav.HistoryLimit != 50 {
		t.Errorf("history_limit = %d, want 50", cfg.Nav.HistoryLimit)
	}
	if cfg.Nav.GraceWindowMS != 50 {
		t.Errorf("grace_window_ms = %d, want 50", cfg.Nav.GraceWindowMS)
	}
	if got := cfg.Bindings["back"]; len(got) != 2 || got[0] != "esc" {
		t.Errorf("back binding = %v, want [esc backspace]", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte(`
[nav]
grace_window_ms = 0
history_limit = 7

[bindings]
select = ["enter", " "]
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JASKTV_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Nav.GraceWindowMS != 0 {
		t.Errorf("grace_window_ms = %d, want 0", cfg.Nav.GraceWindowMS)
	}
	if cfg.Nav.HistoryLimit != 7 {
		t.Errorf("history_limit = %d, want 7", cfg.Nav.HistoryLimit)
	}
	if got := cfg.Bindings["select"]; len(got) != 2 {
		t.Errorf("select binding = %v, want two keys", got)
	}
	if cfg.Nav.GraceWindow() != 0 {
		t.Errorf("grace window duration = %v, want 0", cfg.Nav.GraceWindow())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("JASKTV_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	cfg.Nav.HistoryLimit = 12
	cfg.UI.Theme = "latte"
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Nav.HistoryLimit != 12 {
		t.Errorf("history_limit = %d, want 12", got.Nav.HistoryLimit)
	}
	if got.UI.Theme != "latte" {
		t.Errorf("theme = %q, want latte", got.UI.Theme)
	}
}
