// homedeck is a terminal start page: a dashboard of small widgets
// (clock, greeting, web search, tasks, bookmarks, daily goals, weather,
// website analytics) backed by a persistent preference store, rendered
// as an interactive Bubbletea TUI.
//
// Usage:
//
//	homedeck [flags]
//
// Flags:
//
//	-config string     Path to configuration file (default: XDG config search)
//	-theme string      Theme name override (green|blue|purple|orange|rose|custom)
//	-preset string     Layout preset override (default|compact|focus)
//	-data-dir string   Preference store directory override
//	-detect-browsers   Print detected running browsers and exit
//	-reset-analytics   Wipe stored website usage data and exit
//	-verbose           Enable verbose logging
//	-version           Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/homedeck/pkg/app"
	"gitlab.com/tinyland/lab/homedeck/pkg/config"
	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
	"gitlab.com/tinyland/lab/homedeck/pkg/panel"
	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
	"gitlab.com/tinyland/lab/homedeck/pkg/preset"
	"gitlab.com/tinyland/lab/homedeck/pkg/search"
	"gitlab.com/tinyland/lab/homedeck/pkg/sitestats"
	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
	"gitlab.com/tinyland/lab/homedeck/pkg/tools"
	"gitlab.com/tinyland/lab/homedeck/pkg/weather"
	"gitlab.com/tinyland/lab/homedeck/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath     = flag.String("config", "", "Path to configuration file")
		themeName      = flag.String("theme", "", "Theme name override")
		presetName     = flag.String("preset", "", "Layout preset override")
		dataDir        = flag.String("data-dir", "", "Preference store directory override")
		detectBrowsers = flag.Bool("detect-browsers", false, "Print detected running browsers and exit")
		resetAnalytics = flag.Bool("reset-analytics", false, "Wipe stored website usage data and exit")
		verbose        = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion    = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("homedeck %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if *detectBrowsers {
		browsers := sitestats.DetectBrowsers()
		if len(browsers) == 0 {
			fmt.Println("no running browsers detected")
			os.Exit(0)
		}
		fmt.Println(strings.Join(browsers, "\n"))
		os.Exit(0)
	}

	// Load configuration, then let flags win over both file and env.
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *themeName != "" {
		cfg.Theme.Name = *themeName
	}
	if *presetName != "" {
		cfg.Layout.Preset = *presetName
	}
	if *dataDir != "" {
		cfg.General.DataDir = *dataDir
	}

	logLevel := parseLogLevel(cfg.General.LogLevel)
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	store, err := prefs.Open(cfg.General.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open preference store: %v\n", err)
		os.Exit(1)
	}

	tracker := sitestats.NewTracker(store)
	if *resetAnalytics {
		if err := tracker.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to reset analytics: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("website usage data cleared")
		os.Exit(0)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "homedeck requires an interactive terminal")
		os.Exit(1)
	}
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && (w < 60 || h < 20) {
		logger.Warn("terminal is smaller than the dashboard needs", "width", w, "height", h)
	}

	if err := run(cfg, store, tracker, logger); err != nil {
		fmt.Fprintf(os.Stderr, "homedeck: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, store prefs.Store, tracker *sitestats.Tracker, logger *slog.Logger) error {
	// User-supplied themes and presets live next to the config file.
	// Missing files are fine.
	confDir := config.ConfigDir()
	if err := theme.LoadCustomFile(filepath.Join(confDir, "theme.toml")); err != nil {
		logger.Warn("custom theme not loaded", "error", err)
	}
	if n, err := preset.LoadFile(filepath.Join(confDir, "presets.toml")); err != nil {
		logger.Warn("custom presets not loaded", "error", err)
	} else if n > 0 {
		logger.Debug("loaded custom presets", "count", n)
	}

	// Downgrade every registered theme to what the terminal can show,
	// so later theme switches from Settings stay adapted too.
	profile := termenv.ColorProfile()
	for _, name := range theme.Names() {
		theme.Register(theme.Adapt(theme.Get(name), profile))
	}

	// The persisted theme choice wins over the config default once the
	// user has picked one in Settings.
	theme.SetCurrent(prefs.GetOr(store, prefs.KeyTheme, cfg.Theme.Name))

	// Seed the API key preference from config/env on first run; the
	// stored value wins afterwards so Settings edits stick.
	if cfg.Weather.APIKey != "" {
		if _, ok := prefs.Get[string](store, prefs.KeyWeatherAPIKey); !ok {
			if err := prefs.Set(store, prefs.KeyWeatherAPIKey, cfg.Weather.APIKey); err != nil {
				logger.Warn("could not seed weather api key", "error", err)
			}
		}
	}

	bus := notify.NewBus(logger)
	coordinator := panel.NewCoordinator(bus)
	launcher := &search.SystemLauncher{}
	roster := search.NewRoster(store)

	if browsers := sitestats.DetectBrowsers(); len(browsers) > 0 {
		logger.Debug("running browsers detected", "browsers", strings.Join(browsers, ","))
	}

	settings := widgets.NewSettingsWidget(store, bus)

	items := []app.Widget{
		widgets.NewSearchWidget(roster, launcher),
		widgets.NewGreetingWidget(store, bus),
		widgets.NewClockWidget(store, bus),
		weatherWidget(cfg, store, bus),
		widgets.NewTasksWidget(store, bus),
		widgets.NewBookmarksWidget(store, bus, launcher),
		widgets.NewGoalsWidget(store, bus),
		analyticsWidget(cfg, tracker, store, bus, logger),
		widgets.NewDockWidget(coordinator, settings.Toggle),
		settings,
	}
	for _, cat := range panel.ToolCategories() {
		catalog := tools.NewCatalog(store, cat)
		items = append(items, widgets.NewToolsTrayWidget(catalog, bus, launcher))
	}

	appCfg := app.DefaultConfig()
	appCfg.Coordinator = coordinator
	appCfg.Preset = cfg.Layout.Preset
	appCfg.Compact = prefs.GetOr(store, prefs.KeyCompact, cfg.Layout.Compact)

	zone.NewGlobal()
	defer zone.Close()

	model := app.NewAppModel(appCfg, items...)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// weatherWidget builds the live widget, or a placeholder when the
// config disables weather entirely.
func weatherWidget(cfg *config.Config, store prefs.Store, bus *notify.Bus) app.Widget {
	if !cfg.Weather.Enabled {
		return app.NewPlaceholder("weather", "Weather")
	}

	var client weather.Fetcher
	key := prefs.GetOr(store, prefs.KeyWeatherAPIKey, cfg.Weather.APIKey)
	if key != "" {
		client = weather.NewClient(key)
	}
	service := weather.NewService(store, client, nil, slog.Default())
	return widgets.NewWeatherWidget(service, bus)
}

// analyticsWidget seeds sample data on an empty tracker so the widget
// has something to show before real usage arrives.
func analyticsWidget(cfg *config.Config, tracker *sitestats.Tracker, store prefs.Store, bus *notify.Bus, logger *slog.Logger) app.Widget {
	if !cfg.Analytics.Enabled {
		return app.NewPlaceholder("analytics", "Website Usage")
	}
	if err := tracker.Populate(time.Now()); err != nil {
		logger.Warn("could not seed sample usage data", "error", err)
	}
	return widgets.NewAnalyticsWidget(tracker, store, bus)
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
