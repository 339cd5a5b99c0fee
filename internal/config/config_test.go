package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "veil.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "veil.toml")
	content := `
theme = "dark.json"

[view]
width = 100
tab_width = 8

[conceal]
tabs = false

[editor]
max_undo_entries = 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ThemePath != "dark.json" {
		t.Errorf("ThemePath = %q, want %q", cfg.ThemePath, "dark.json")
	}
	if cfg.View.Width != 100 {
		t.Errorf("View.Width = %d, want 100", cfg.View.Width)
	}
	if cfg.View.TabWidth != 8 {
		t.Errorf("View.TabWidth = %d, want 8", cfg.View.TabWidth)
	}
	if cfg.Conceal.Tabs {
		t.Error("Conceal.Tabs = true, want false")
	}
	if !cfg.Conceal.NonPrintable {
		t.Error("Conceal.NonPrintable = false, want true (default kept)")
	}
	if cfg.Editor.MaxUndoEntries != 50 {
		t.Errorf("Editor.MaxUndoEntries = %d, want 50", cfg.Editor.MaxUndoEntries)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "veil.toml")
	if err := os.WriteFile(path, []byte("view = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults on parse error", cfg)
	}
}

func TestLoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "veil.toml")
	content := `
[view]
width = -5
tab_width = 0

[editor]
max_undo_entries = -1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.View.Width != 0 {
		t.Errorf("View.Width = %d, want 0", cfg.View.Width)
	}
	if cfg.View.TabWidth != Default().View.TabWidth {
		t.Errorf("View.TabWidth = %d, want default %d", cfg.View.TabWidth, Default().View.TabWidth)
	}
	if cfg.Editor.MaxUndoEntries != Default().Editor.MaxUndoEntries {
		t.Errorf("Editor.MaxUndoEntries = %d, want default %d", cfg.Editor.MaxUndoEntries, Default().Editor.MaxUndoEntries)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "veil.toml")
	if err := os.WriteFile(path, []byte("[view]\ntab_width = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 1)
	w, err := NewWatcher(path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[view]\ntab_width = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.View.TabWidth != 3 {
			t.Errorf("reloaded TabWidth = %d, want 3", cfg.View.TabWidth)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "veil.toml")

	w, err := NewWatcher(path, func(Config) {})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
