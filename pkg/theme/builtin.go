package theme

// registerBuiltins registers all built-in themes in the registry.
func registerBuiltins() {
	for _, t := range []Theme{
		greenTheme(),
		blueTheme(),
		purpleTheme(),
		orangeTheme(),
		roseTheme(),
	} {
		Register(t)
	}
}

// greenTheme is the default: a deep green primary with an emerald
// accent.
func greenTheme() Theme {
	return Theme{
		Name:    "green",
		Primary: "142 86% 28%",
		Accent:  "150 66% 45%",

		Foreground:  "#d4d4d4",
		Dim:         "#6b6b6b",
		Border:      "#3e3e3e",
		BorderFocus: "#10B981",
		Title:       "#d4d4d4",

		StatusOK:    "#4ec970",
		StatusWarn:  "#e5c07b",
		StatusError: "#e06c75",

		GaugeFilled: "#4ec970",
		GaugeEmpty:  "#3e3e3e",
	}
}

func blueTheme() Theme {
	return Theme{
		Name:    "blue",
		Primary: "217 91% 60%",
		Accent:  "199 89% 48%",

		Foreground:  "#d4d4d4",
		Dim:         "#6b6b6b",
		Border:      "#3e3e3e",
		BorderFocus: "#3B82F6",
		Title:       "#d4d4d4",

		StatusOK:    "#4ec970",
		StatusWarn:  "#e5c07b",
		StatusError: "#e06c75",

		GaugeFilled: "#3B82F6",
		GaugeEmpty:  "#3e3e3e",
	}
}

func purpleTheme() Theme {
	return Theme{
		Name:    "purple",
		Primary: "262 83% 58%",
		Accent:  "258 90% 66%",

		Foreground:  "#d4d4d4",
		Dim:         "#6b6b6b",
		Border:      "#3e3e3e",
		BorderFocus: "#7C3AED",
		Title:       "#d4d4d4",

		StatusOK:    "#4ec970",
		StatusWarn:  "#e5c07b",
		StatusError: "#e06c75",

		GaugeFilled: "#A78BFA",
		GaugeEmpty:  "#3e3e3e",
	}
}

func orangeTheme() Theme {
	return Theme{
		Name:    "orange",
		Primary: "25 95% 53%",
		Accent:  "38 92% 50%",

		Foreground:  "#ebdbb2",
		Dim:         "#928374",
		Border:      "#504945",
		BorderFocus: "#fe8019",
		Title:       "#ebdbb2",

		StatusOK:    "#b8bb26",
		StatusWarn:  "#fabd2f",
		StatusError: "#fb4934",

		GaugeFilled: "#fe8019",
		GaugeEmpty:  "#504945",
	}
}

func roseTheme() Theme {
	return Theme{
		Name:    "rose",
		Primary: "347 77% 50%",
		Accent:  "351 95% 71%",

		Foreground:  "#e0def4",
		Dim:         "#6e6a86",
		Border:      "#403d52",
		BorderFocus: "#eb6f92",
		Title:       "#e0def4",

		StatusOK:    "#9ccfd8",
		StatusWarn:  "#f6c177",
		StatusError: "#eb6f92",

		GaugeFilled: "#eb6f92",
		GaugeEmpty:  "#403d52",
	}
}
