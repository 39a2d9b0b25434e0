package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ==================== Types Tests ====================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Log.Level != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.Log.Level)
	}
	if cfg.Log.Output != "" {
		t.Errorf("expected no console log output by default, got %q", cfg.Log.Output)
	}

	if cfg.Layout.WideMinWidth != 640 {
		t.Errorf("expected wide threshold 640, got %d", cfg.Layout.WideMinWidth)
	}
	if cfg.Layout.PanoramicMinWidth != 1024 {
		t.Errorf("expected panoramic threshold 1024, got %d", cfg.Layout.PanoramicMinWidth)
	}
	if cfg.Layout.CellWidth != 8 {
		t.Errorf("expected cell width 8, got %d", cfg.Layout.CellWidth)
	}

	if len(cfg.Navigation.Primary) != 10 {
		t.Errorf("expected 10 primary items, got %d", len(cfg.Navigation.Primary))
	}
	if len(cfg.Navigation.Secondary) != 1 || cfg.Navigation.Secondary[0].Page != "settings" {
		t.Errorf("expected settings as the only secondary item, got %+v", cfg.Navigation.Secondary)
	}
	if cfg.Navigation.StartPage != "main" {
		t.Errorf("expected start page 'main', got %q", cfg.Navigation.StartPage)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultPrimaryItems_Order(t *testing.T) {
	want := []string{
		"main", "webview", "mediaplayer", "masterdetail", "grid",
		"chart", "tabbed", "map", "camera", "imagegallery",
	}

	items := DefaultPrimaryItems()
	for i, page := range want {
		if items[i].Page != page {
			t.Errorf("item %d: expected page %q, got %q", i, page, items[i].Page)
		}
		if items[i].Label != "nav."+page {
			t.Errorf("item %d: expected label key %q, got %q", i, "nav."+page, items[i].Label)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero wide", func(c *Config) { c.Layout.WideMinWidth = 0 }, "wide_min_width"},
		{"panoramic not above wide", func(c *Config) { c.Layout.PanoramicMinWidth = 640 }, "panoramic_min_width"},
		{"zero cell width", func(c *Config) { c.Layout.CellWidth = 0 }, "cell_width"},
		{"port out of range", func(c *Config) { c.SSH.Port = 70000 }, "ssh.port"},
		{"empty page id", func(c *Config) {
			c.Navigation.Primary = append(c.Navigation.Primary, NavItemConfig{Label: "x"})
		}, "navigation.primary[10].page must not be empty"},
		{"page id repeated across lists", func(c *Config) {
			c.Navigation.Secondary = append(c.Navigation.Secondary, NavItemConfig{Label: "nav.main", Page: "main"})
		}, `navigation.secondary[1].page "main" already declared in navigation.primary`},
		{"page id repeated in one list", func(c *Config) {
			c.Navigation.Primary[1].Page = "main"
		}, `navigation.primary[1].page "main"`},
		{"empty navigation", func(c *Config) {
			c.Navigation.Primary = nil
			c.Navigation.Secondary = nil
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

// ==================== Loader Tests ====================

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
layout:
  wide_min_width: 80
  panoramic_min_width: 120
  cell_width: 1
navigation:
  start_page: inbox
  primary:
    - label: Inbox
      icon: mail
      page: inbox
    - label: Drafts
      icon: document
      page: drafts
  secondary:
    - label: Settings
      icon: settings
      page: settings
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Layout.WideMinWidth != 80 || cfg.Layout.PanoramicMinWidth != 120 || cfg.Layout.CellWidth != 1 {
		t.Errorf("unexpected layout config: %+v", cfg.Layout)
	}
	if len(cfg.Navigation.Primary) != 2 {
		t.Fatalf("expected 2 primary items, got %d", len(cfg.Navigation.Primary))
	}
	if cfg.Navigation.Primary[1].Page != "drafts" || cfg.Navigation.Primary[1].Icon != "document" {
		t.Errorf("unexpected second item: %+v", cfg.Navigation.Primary[1])
	}
	if cfg.Navigation.StartPage != "inbox" {
		t.Errorf("expected start page 'inbox', got %q", cfg.Navigation.StartPage)
	}
	// Untouched sections keep their defaults
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level, got %q", cfg.Log.Level)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected default theme, got %q", cfg.Theme)
	}
}

func TestLoad_InvalidThresholds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := "layout:\n  wide_min_width: 900\n  panoramic_min_width: 800\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("theme: light\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("NAVSHELL_LAYOUT_CELL_WIDTH", "4")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Layout.CellWidth != 4 {
		t.Errorf("expected cell width from env, got %d", cfg.Layout.CellWidth)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected theme 'light', got %q", cfg.Theme)
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}
	if len(cfg.Navigation.Primary) != len(DefaultPrimaryItems()) {
		t.Errorf("expected %d primary items, got %d", len(DefaultPrimaryItems()), len(cfg.Navigation.Primary))
	}

	if err := WriteDefault(path); err == nil {
		t.Error("expected error when config already exists")
	}
}

// ==================== Watcher Tests ====================

func TestWatcher_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := NewWatcher(path, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	var got *Config
	w.OnChange(func(cfg *Config) { got = cfg })

	if err := os.WriteFile(path, []byte("theme: nord\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}
	if err := w.Reload(); err != nil {
		t.Fatalf("unexpected reload error: %v", err)
	}

	if got == nil || got.Theme != "nord" {
		t.Fatalf("expected callback with theme 'nord', got %+v", got)
	}
	if w.Current().Theme != "nord" {
		t.Errorf("expected current theme 'nord', got %q", w.Current().Theme)
	}
}

func TestWatcher_ReloadInvalidKeepsLast(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := NewWatcher(path, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	var reported error
	w.OnError(func(err error) { reported = err })
	called := false
	w.OnChange(func(*Config) { called = true })

	if err := os.WriteFile(path, []byte("layout:\n  cell_width: -1\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}
	if err := w.Reload(); err == nil {
		t.Fatal("expected reload error")
	}

	if called {
		t.Error("change callback must not run for an invalid config")
	}
	if reported == nil {
		t.Error("expected error callback")
	}
	if w.Current().Theme != "dark" {
		t.Errorf("expected last good config to stay current, got %q", w.Current().Theme)
	}
}

func TestWatcher_ReloadDuplicatePageKeepsLast(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := NewWatcher(path, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Stop()

	called := false
	w.OnChange(func(*Config) { called = true })

	dup := `theme: nord
navigation:
  secondary:
    - label: nav.main
      icon: home
      page: main
`
	if err := os.WriteFile(path, []byte(dup), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}
	err = w.Reload()
	if err == nil {
		t.Fatal("expected reload error for a repeated page id")
	}
	if !strings.Contains(err.Error(), `"main"`) {
		t.Errorf("expected error naming the page, got %v", err)
	}

	if called {
		t.Error("change callback must not run for a repeated page id")
	}
	cur := w.Current()
	if cur.Theme != "dark" {
		t.Errorf("expected last good config to stay current, got %q", cur.Theme)
	}
	if len(cur.Navigation.Secondary) != 1 || cur.Navigation.Secondary[0].Page != "settings" {
		t.Errorf("expected default secondary items, got %+v", cur.Navigation.Secondary)
	}
}

func TestWatcher_StoppedIgnoresReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := NewWatcher(path, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	called := false
	w.OnChange(func(*Config) { called = true })
	w.Stop()

	if err := w.Reload(); err == nil {
		t.Error("expected error after stop")
	}
	if called {
		t.Error("callback must not run after stop")
	}
}
