package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration for homedeck.
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Theme     ThemeConfig     `toml:"theme" yaml:"theme"`
	Layout    LayoutConfig    `toml:"layout" yaml:"layout"`
	Weather   WeatherConfig   `toml:"weather" yaml:"weather"`
	Analytics AnalyticsConfig `toml:"analytics" yaml:"analytics"`
}

// GeneralConfig holds paths and logging.
type GeneralConfig struct {
	// DataDir is where the preference store keeps its JSON entries.
	DataDir  string `toml:"data_dir" yaml:"data_dir"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// ThemeConfig selects the startup theme. The persisted "theme"
// preference wins once the user changes it in Settings; this is only
// the first-run default.
type ThemeConfig struct {
	Name string `toml:"name" yaml:"name"`
}

// LayoutConfig selects the dashboard arrangement.
type LayoutConfig struct {
	Preset  string `toml:"preset" yaml:"preset"`
	Compact bool   `toml:"compact" yaml:"compact"`
}

// WeatherConfig controls the weather service.
type WeatherConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// APIKey seeds the "weather-api-key" preference on first run; the
	// OPENWEATHER_API_KEY environment variable overrides it.
	APIKey string `toml:"api_key" yaml:"api_key"`

	// CheckInterval is how often the refresh policy is evaluated; the
	// actual fetch happens at most once per MaxAge.
	CheckInterval Duration `toml:"check_interval" yaml:"check_interval"`
	MaxAge        Duration `toml:"max_age" yaml:"max_age"`
}

// AnalyticsConfig controls the website-usage widget.
type AnalyticsConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// Default returns the default configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(xdgDataHome(home), "homedeck", "prefs")

	return &Config{
		General: GeneralConfig{
			DataDir:  dataDir,
			LogLevel: "info",
		},
		Theme: ThemeConfig{
			Name: "green",
		},
		Layout: LayoutConfig{
			Preset: "default",
		},
		Weather: WeatherConfig{
			Enabled:       true,
			CheckInterval: Duration{15 * time.Minute},
			MaxAge:        Duration{1 * time.Hour},
		},
		Analytics: AnalyticsConfig{
			Enabled: true,
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config
// values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("HOMEDECK_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("HOMEDECK_LAYOUT"); v != "" {
		cfg.Layout.Preset = v
	}
	if v := os.Getenv("HOMEDECK_DATA_DIR"); v != "" {
		cfg.General.DataDir = v
	}
}

// ConfigDir returns the homedeck config directory under XDG paths.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(xdgConfigHome(home), "homedeck")
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgDataHome returns XDG_DATA_HOME or ~/.local/share as fallback.
func xdgDataHome(home string) string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "share")
}
