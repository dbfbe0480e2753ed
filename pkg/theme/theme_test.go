package theme

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestDefaultThemeIsGreen(t *testing.T) {
	got := Get("no-such-theme")
	if got.Name != "green" {
		t.Errorf("fallback theme = %q, want \"green\"", got.Name)
	}
	if got.Primary != "142 86% 28%" {
		t.Errorf("green primary = %q, want \"142 86%% 28%%\"", got.Primary)
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	if got := Get("GREEN"); got.Name != "green" {
		t.Errorf("Get(GREEN) = %q, want green", got.Name)
	}
	if got := Get("Blue"); got.Name != "blue" {
		t.Errorf("Get(Blue) = %q, want blue", got.Name)
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) < 5 {
		t.Fatalf("Names() returned %d themes, want at least 5", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestParseHSL(t *testing.T) {
	cases := []struct {
		in      string
		h, s, l float64
		ok      bool
	}{
		{"142 86% 28%", 142, 0.86, 0.28, true},
		{"0 0% 100%", 0, 0, 1, true},
		{"360 50% 50%", 0, 0.5, 0.5, true},
		{"not a color", 0, 0, 0, false},
		{"142 86%", 0, 0, 0, false},
		{"142 186% 28%", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, tc := range cases {
		h, s, l, ok := ParseHSL(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseHSL(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if h != tc.h || !approxEqual(s, tc.s) || !approxEqual(l, tc.l) {
			t.Errorf("ParseHSL(%q) = (%v, %v, %v), want (%v, %v, %v)",
				tc.in, h, s, l, tc.h, tc.s, tc.l)
		}
	}
}

func approxEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestHSLToHex(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0 0% 0%", "#000000"},
		{"0 0% 100%", "#ffffff"},
		{"0 100% 50%", "#ff0000"},
		{"120 100% 50%", "#00ff00"},
		{"240 100% 50%", "#0000ff"},
	}
	for _, tc := range cases {
		got, ok := HSLToHex(tc.in)
		if !ok || got != tc.want {
			t.Errorf("HSLToHex(%q) = (%q, %v), want (%q, true)", tc.in, got, ok, tc.want)
		}
	}

	if _, ok := HSLToHex("bogus"); ok {
		t.Error("HSLToHex accepted malformed input")
	}
}

func TestPrimaryHexFallsBackOnBadHSL(t *testing.T) {
	th := Theme{Primary: "garbage", Title: "#d4d4d4"}
	if got := th.PrimaryHex(); got != "#d4d4d4" {
		t.Errorf("PrimaryHex() = %q, want Title fallback", got)
	}
}

func TestAdaptTrueColorUnchanged(t *testing.T) {
	orig := Get(DefaultName)
	adapted := Adapt(orig, termenv.TrueColor)
	if adapted != orig {
		t.Error("Adapt changed a theme for a true-color profile")
	}
}

func TestAdaptDowngrades(t *testing.T) {
	orig := Get(DefaultName)
	adapted := Adapt(orig, termenv.ANSI256)
	if adapted.BorderFocus == orig.BorderFocus {
		t.Errorf("Adapt(ANSI256) left BorderFocus as %q", adapted.BorderFocus)
	}
	if adapted.BorderFocus == "" || adapted.BorderFocus[0] == '#' {
		t.Errorf("Adapt(ANSI256) BorderFocus = %q, want palette index", adapted.BorderFocus)
	}
}

func TestLoadFromTOML(t *testing.T) {
	data := []byte(`
name = "custom"
primary = "200 80% 40%"
accent = "210 70% 60%"

[palette]
border_focus = "#123456"
`)
	th, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML failed: %v", err)
	}
	if th.Name != "custom" || th.Primary != "200 80% 40%" {
		t.Errorf("parsed theme = %+v", th)
	}
	if th.BorderFocus != "#123456" {
		t.Errorf("BorderFocus = %q, want #123456", th.BorderFocus)
	}
	// Unspecified slots fall back to the green defaults.
	if th.Foreground != greenTheme().Foreground {
		t.Errorf("Foreground = %q, want default fill", th.Foreground)
	}
}

func TestLoadFromTOMLRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"missing name": `primary = "1 1% 1%"` + "\n" + `accent = "1 1% 1%"`,
		"bad primary":  `name = "x"` + "\n" + `primary = "nope"` + "\n" + `accent = "1 1% 1%"`,
		"bad hex": `name = "x"
primary = "1 1% 1%"
accent = "1 1% 1%"
[palette]
foreground = "red"`,
	}
	for label, data := range cases {
		if _, err := LoadFromTOML([]byte(data)); err == nil {
			t.Errorf("%s: LoadFromTOML accepted invalid theme", label)
		}
	}
}
