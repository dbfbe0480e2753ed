package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Theme.Name != "green" {
		t.Errorf("default theme = %q, want green", cfg.Theme.Name)
	}
	if cfg.Layout.Preset != "default" {
		t.Errorf("default preset = %q, want default", cfg.Layout.Preset)
	}
	if !cfg.Weather.Enabled {
		t.Error("weather disabled by default")
	}
	if cfg.Weather.MaxAge.Duration != time.Hour {
		t.Errorf("weather max age = %v, want 1h", cfg.Weather.MaxAge.Duration)
	}
	if cfg.General.DataDir == "" {
		t.Error("data dir is empty")
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[general]
log_level = "debug"

[theme]
name = "rose"

[weather]
enabled = false
check_interval = "5m"

[layout]
preset = "compact"
compact = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Theme.Name != "rose" {
		t.Errorf("theme = %q, want rose", cfg.Theme.Name)
	}
	if cfg.Weather.Enabled {
		t.Error("weather should be disabled")
	}
	if cfg.Weather.CheckInterval.Duration != 5*time.Minute {
		t.Errorf("check interval = %v, want 5m", cfg.Weather.CheckInterval.Duration)
	}
	if !cfg.Layout.Compact {
		t.Error("compact should be true")
	}
	// Unspecified values keep defaults.
	if cfg.Weather.MaxAge.Duration != time.Hour {
		t.Errorf("max age = %v, want default 1h", cfg.Weather.MaxAge.Duration)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
theme:
  name: blue
weather:
  check_interval: 30m
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Theme.Name != "blue" {
		t.Errorf("theme = %q, want blue", cfg.Theme.Name)
	}
	if cfg.Weather.CheckInterval.Duration != 30*time.Minute {
		t.Errorf("check interval = %v, want 30m", cfg.Weather.CheckInterval.Duration)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	if err := os.WriteFile(path, []byte("x=1"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile accepted unsupported format")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOMEDECK_THEME", "purple")
	t.Setenv("OPENWEATHER_API_KEY", "k-123")
	t.Setenv("HOMEDECK_DATA_DIR", "/tmp/hd-data")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.Theme.Name != "purple" {
		t.Errorf("theme = %q, want purple", cfg.Theme.Name)
	}
	if cfg.Weather.APIKey != "k-123" {
		t.Errorf("api key = %q, want k-123", cfg.Weather.APIKey)
	}
	if cfg.General.DataDir != "/tmp/hd-data" {
		t.Errorf("data dir = %q, want /tmp/hd-data", cfg.General.DataDir)
	}
}

func TestDurationParsing(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("90s")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if d.Duration != 90*time.Second {
		t.Errorf("duration = %v, want 90s", d.Duration)
	}

	if err := d.UnmarshalText([]byte("-5m")); err == nil {
		t.Error("negative duration accepted")
	}
	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Error("malformed duration accepted")
	}
}
