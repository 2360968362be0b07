package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("unexpected default window size %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("vsync should default to true")
	}
	if cfg.Viewer.Wireframe || cfg.Viewer.Overlay {
		t.Error("wireframe and overlay should default to off")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected defaults, got width %d", cfg.Graphics.Width)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objview.yaml")
	content := "graphics:\n  width: 1920\n  height: 1080\nviewer:\n  wireframe: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("file values not applied: %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Viewer.Wireframe {
		t.Error("wireframe from file not applied")
	}
	// Untouched sections keep defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("graphics: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "objview.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Viewer.MeshPath = "models/bunny.obj"
	cfg.Logging.Level = "debug"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Graphics.Width != 800 {
		t.Errorf("width = %d, want 800", loaded.Graphics.Width)
	}
	if loaded.Viewer.MeshPath != "models/bunny.obj" {
		t.Errorf("mesh path = %q", loaded.Viewer.MeshPath)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", loaded.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Graphics.Width = -5
	cfg.Graphics.Height = 0
	cfg.Logging.Level = "verbose"
	cfg.Validate()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("invalid sizes not reset: %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("invalid level not reset: %q", cfg.Logging.Level)
	}
}
