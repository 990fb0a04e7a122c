package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database  DatabaseConfig
	Nav       NavConfig
	UI        UIConfig
	Recommend RecommendConfig
	Bindings  map[string][]string
}

// DatabaseConfig holds sqlite settings for the content catalog.
type DatabaseConfig struct {
	Path string
}

// NavConfig tunes the focus navigation engine. Durations are in
// milliseconds in the config file.
type NavConfig struct {
	GraceWindowMS int `mapstructure:"grace_window_ms"`
	HistoryLimit  int `mapstructure:"history_limit"`
	RestoreWaitMS int `mapstructure:"restore_wait_ms"`
}

func (n NavConfig) GraceWindow() time.Duration {
	return time.Duration(n.GraceWindowMS) * time.Millisecond
}

func (n NavConfig) RestoreWait() time.Duration {
	return time.Duration(n.RestoreWaitMS) * time.Millisecond
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
}

// RecommendConfig tunes the recommendation shelf.
type RecommendConfig struct {
	ShelfSize int `mapstructure:"shelf_size"`
}

// Load reads configuration from file and env. Env var overrides use prefix JASKTV_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "jasktv", "jasktv.db"))
	v.SetDefault("nav.grace_window_ms", 50)
	v.SetDefault("nav.history_limit", 50)
	v.SetDefault("nav.restore_wait_ms", 500)
	v.SetDefault("ui.theme", "mocha")
	v.SetDefault("recommend.shelf_size", 8)
	v.SetDefault("bindings", map[string][]string{
		"move-up":    {"up"},
		"move-down":  {"down"},
		"move-left":  {"left"},
		"move-right": {"right"},
		"select":     {"enter"},
		"back":       {"esc", "backspace"},
	})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKTV_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jasktv"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKTV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path := os.Getenv("JASKTV_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "jasktv", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("nav.grace_window_ms", cfg.Nav.GraceWindowMS)
	v.Set("nav.history_limit", cfg.Nav.HistoryLimit)
	v.Set("nav.restore_wait_ms", cfg.Nav.RestoreWaitMS)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("recommend.shelf_size", cfg.Recommend.ShelfSize)
	v.Set("bindings", cfg.Bindings)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
