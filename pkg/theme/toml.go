package theme

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the TOML-serializable representation of a Theme.
type tomlTheme struct {
	Name    string     `toml:"name"`
	Primary string     `toml:"primary"` // HSL triplet, e.g. "142 86% 28%"
	Accent  string     `toml:"accent"`  // HSL triplet
	Palette tomlColors `toml:"palette"`
	Status  tomlStatus `toml:"status"`
	Gauge   tomlGauge  `toml:"gauge"`
}

type tomlColors struct {
	Foreground  string `toml:"foreground"`
	Dim         string `toml:"dim"`
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
}

type tomlStatus struct {
	OK    string `toml:"ok"`
	Warn  string `toml:"warn"`
	Error string `toml:"error"`
}

type tomlGauge struct {
	Filled string `toml:"filled"`
	Empty  string `toml:"empty"`
}

type tomlThemeFile struct {
	Themes []tomlTheme `toml:"theme"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses one TOML theme definition from raw bytes and
// validates its colors.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	return fromTOML(tt)
}

// LoadCustomFile reads themes.toml at path and registers every theme
// it defines. A missing file is not an error; a malformed theme is.
func LoadCustomFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("theme: read %s: %w", path, err)
	}

	var file tomlThemeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("theme: parse %s: %w", path, err)
	}
	for _, tt := range file.Themes {
		t, err := fromTOML(tt)
		if err != nil {
			return fmt.Errorf("theme: %s: %w", path, err)
		}
		Register(t)
	}
	return nil
}

func fromTOML(tt tomlTheme) (Theme, error) {
	if tt.Name == "" {
		return Theme{}, fmt.Errorf("theme: missing name")
	}
	if _, _, _, ok := ParseHSL(tt.Primary); !ok {
		return Theme{}, fmt.Errorf("theme %q: invalid primary HSL %q", tt.Name, tt.Primary)
	}
	if _, _, _, ok := ParseHSL(tt.Accent); !ok {
		return Theme{}, fmt.Errorf("theme %q: invalid accent HSL %q", tt.Name, tt.Accent)
	}

	t := Theme{
		Name:    tt.Name,
		Primary: tt.Primary,
		Accent:  tt.Accent,

		Foreground:  tt.Palette.Foreground,
		Dim:         tt.Palette.Dim,
		Border:      tt.Palette.Border,
		BorderFocus: tt.Palette.BorderFocus,
		Title:       tt.Palette.Title,

		StatusOK:    tt.Status.OK,
		StatusWarn:  tt.Status.Warn,
		StatusError: tt.Status.Error,

		GaugeFilled: tt.Gauge.Filled,
		GaugeEmpty:  tt.Gauge.Empty,
	}

	// Unspecified palette slots fall back to the default theme so a
	// minimal custom theme only needs name, primary and accent.
	def := greenTheme()
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&t.Foreground, def.Foreground)
	fill(&t.Dim, def.Dim)
	fill(&t.Border, def.Border)
	fill(&t.Title, def.Title)
	fill(&t.StatusOK, def.StatusOK)
	fill(&t.StatusWarn, def.StatusWarn)
	fill(&t.StatusError, def.StatusError)
	fill(&t.GaugeEmpty, def.GaugeEmpty)
	if t.BorderFocus == "" {
		t.BorderFocus = t.PrimaryHex()
	}
	if t.GaugeFilled == "" {
		t.GaugeFilled = t.PrimaryHex()
	}

	for _, hex := range []string{
		t.Foreground, t.Dim, t.Border, t.BorderFocus, t.Title,
		t.StatusOK, t.StatusWarn, t.StatusError, t.GaugeFilled, t.GaugeEmpty,
	} {
		if !hexColorRegex.MatchString(hex) {
			return Theme{}, fmt.Errorf("theme %q: invalid hex color %q", tt.Name, hex)
		}
	}

	return t, nil
}
