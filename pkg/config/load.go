package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from the standard config paths.
// Search order:
//  1. $XDG_CONFIG_HOME/homedeck/config.toml
//  2. $XDG_CONFIG_HOME/homedeck/config.yaml
//  3. the same pair under ~/.config when XDG_CONFIG_HOME is set
//
// If no file exists, returns Default() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := Default()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific path, picking the
// decoder by extension (.toml, .yaml, .yml).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported format %q", filepath.Ext(path))
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// searchPaths returns the ordered list of config file paths to try.
func searchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths,
		filepath.Join(xdg, "homedeck", "config.toml"),
		filepath.Join(xdg, "homedeck", "config.yaml"),
	)

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback
	// default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths,
			filepath.Join(defaultXDG, "homedeck", "config.toml"),
			filepath.Join(defaultXDG, "homedeck", "config.yaml"),
		)
	}

	return paths
}
