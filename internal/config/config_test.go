package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Output.Color {
		t.Fatal("default config should enable color")
	}
	if cfg.Output.Logo {
		t.Fatal("default config should not enable the logo")
	}
	if cfg.Output.Gap != 4 {
		t.Fatalf("default gap = %d; want 4", cfg.Output.Gap)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("Load(missing) = %+v; want defaults %+v", cfg, Default())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[output]\ncolor = false\nlogo = true\ncompact = true\ngap = 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Color {
		t.Fatal("color should be disabled")
	}
	if !cfg.Output.Logo || !cfg.Output.Compact {
		t.Fatalf("logo/compact not loaded: %+v", cfg.Output)
	}
	if cfg.Output.Gap != 2 {
		t.Fatalf("gap = %d; want 2", cfg.Output.Gap)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[output\ncolor ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed config should be an error")
	}
}

func TestLoadClampsNegativeGap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[output]\ngap = -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Gap != 0 {
		t.Fatalf("negative gap should clamp to 0, got %d", cfg.Output.Gap)
	}
}

func TestConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg-test", appName) {
		t.Fatalf("ConfigDir() = %q", got)
	}
}
