package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 4173 {
		t.Errorf("expected default port 4173, got %d", cfg.Server.Port)
	}
	if cfg.Theme != theme.Default() {
		t.Errorf("expected default theme, got %+v", cfg.Theme)
	}
	if cfg.Log.Format != LogConsole {
		t.Errorf("expected console logs, got %q", cfg.Log.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.globe.yml")

	original := DefaultConfig()
	original.Server.Port = 8080
	original.Server.StaticDir = "dist"
	original.Dataset.Files = []string{"data/**/*.yaml", "extra.json"}
	original.Theme.PinColor = "#ff0000"
	original.Snapshot.Frames = 30

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != 8080 {
		t.Errorf("port: got %d, want 8080", loaded.Server.Port)
	}
	if loaded.Server.StaticDir != "dist" {
		t.Errorf("static_dir: got %q, want dist", loaded.Server.StaticDir)
	}
	if loaded.Theme != original.Theme {
		t.Errorf("theme: got %+v, want %+v", loaded.Theme, original.Theme)
	}
	if loaded.Snapshot.Frames != 30 {
		t.Errorf("frames: got %d, want 30", loaded.Snapshot.Frames)
	}
	if len(loaded.Dataset.Files) != 2 || loaded.Dataset.Files[0] != "data/**/*.yaml" {
		t.Errorf("dataset files: got %v", loaded.Dataset.Files)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadPartialThemeKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	data := "theme:\n  landColor: \"#123456\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme.LandColor != "#123456" {
		t.Errorf("landColor: got %q", cfg.Theme.LandColor)
	}
	if cfg.Theme.OceanColor != theme.Default().OceanColor {
		t.Errorf("oceanColor should keep its default, got %q", cfg.Theme.OceanColor)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GLOBE_SERVER__PORT", "9090")
	t.Setenv("GLOBE_LOG__FORMAT", "json")
	t.Setenv("GLOBE_THEME__PINCOLOR", "#abcdef")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.Log.Format != LogJSON {
		t.Errorf("format: got %q, want json", cfg.Log.Format)
	}
	if cfg.Theme.PinColor != "#abcdef" {
		t.Errorf("pinColor: got %q, want #abcdef", cfg.Theme.PinColor)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"theme", func(c *Config) { c.Theme.LandColor = "blue" }, "landColor"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"snapshot", func(c *Config) { c.Snapshot.Width = 0 }, "snapshot size"},
		{"frames", func(c *Config) { c.Snapshot.Frames = 0 }, "snapshot.frames"},
		{"window", func(c *Config) { c.Window.Height = -1 }, "window size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateThemeErrorIs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.HighlightColor = "nope"
	if err := cfg.Validate(); !errors.Is(err, theme.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestThemeItems(t *testing.T) {
	items := themeItems(theme.Default())
	if len(items) != len(theme.Fields)+1 {
		t.Fatalf("expected %d items, got %d", len(theme.Fields)+1, len(items))
	}
	if !strings.HasPrefix(items[0], "Background Inner") || !strings.HasSuffix(items[0], "#0f172a") {
		t.Errorf("unexpected first item %q", items[0])
	}
	if items[len(items)-1] != doneItem {
		t.Errorf("last item should be %q", doneItem)
	}
}

func TestValidateColor(t *testing.T) {
	if err := validateColor("#fff"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validateColor("white"); !errors.Is(err, theme.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}
