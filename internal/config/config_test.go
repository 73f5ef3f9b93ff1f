package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit_CreatesStructure(t *testing.T) {
	folder := t.TempDir()

	if err := Init(folder); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	for _, path := range []string{
		filepath.Join(folder, DirName, "config.json"),
		filepath.Join(folder, DirName, "themes", "built-in", "dark.json"),
		filepath.Join(folder, DirName, "themes", "built-in", "light.json"),
		filepath.Join(folder, DirName, "themes", "custom"),
		filepath.Join(folder, DirName, "plugins"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}
}

func TestInit_Idempotent(t *testing.T) {
	folder := t.TempDir()

	if err := Init(folder); err != nil {
		t.Fatalf("first Init: %v", err)
	}

	// Change the theme, re-init, and make sure the config survives.
	if err := SetTheme(folder, "light"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if err := Init(folder); err != nil {
		t.Fatalf("second Init: %v", err)
	}

	cfg, err := Load(folder)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CurrentTheme != "light" {
		t.Errorf("CurrentTheme = %q, want light (Init must not clobber config)", cfg.CurrentTheme)
	}
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.CurrentTheme != "dark" {
		t.Errorf("CurrentTheme = %q, want dark", cfg.CurrentTheme)
	}
	if !cfg.StatusBarVisible || !cfg.ConfirmFileDelete || !cfg.ConfirmFolderDelete {
		t.Errorf("boolean defaults = %+v, want all true", cfg)
	}
	if cfg.Keybinds == nil || cfg.CustomSettings == nil {
		t.Error("maps must be initialized")
	}
}

func TestLoad_MissingFolder(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Load on a missing folder should return an error")
	}
	if _, err := Load(""); err == nil {
		t.Error("Load with an empty folder should return an error")
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	folder := t.TempDir()
	if err := Init(folder); err != nil {
		t.Fatalf("Init: %v", err)
	}

	cfg := Default()
	cfg.CurrentTheme = "light"
	cfg.StatusBarVisible = false
	cfg.Keybinds["save"] = "ctrl+s"

	if err := Save(folder, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(folder)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.CurrentTheme != "light" {
		t.Errorf("CurrentTheme = %q, want light", loaded.CurrentTheme)
	}
	if loaded.StatusBarVisible {
		t.Error("StatusBarVisible = true, want false")
	}
	if loaded.Keybinds["save"] != "ctrl+s" {
		t.Errorf("Keybinds[save] = %q, want ctrl+s", loaded.Keybinds["save"])
	}
}
