package prefs

// Canonical preference keys. Every widget reads and writes through
// these constants; the practical discipline is one key, one logical
// owner, with the theme keys as the deliberate exception (written by
// Settings, read everywhere).
const (
	KeyUsername          = "username"
	KeyTheme             = "theme"
	KeyThemeMode         = "theme-mode"
	KeyDigitalClock      = "digital-clock"
	Key24HourClock       = "24hour-clock"
	KeyCompact           = "compact"
	KeyBookmarks         = "bookmarks"
	KeyTasks             = "tasks"
	KeyDailyGoals        = "daily-goals"
	KeyGoalProgress      = "goal-progress"
	KeyCurrentQuote      = "current-quote"
	KeySearchEngines     = "search-engines"
	KeyWebsiteData       = "website-data"
	KeyAdvancedFeatures  = "advanced-features"
	KeyWeather           = "weather"
	KeyWeatherLocation   = "weather-location"
	KeyWeatherAPIKey     = "weather-api-key"
	KeyUseCustomLocation = "use-custom-location"
	KeyWeatherLastUpdate = "weather-last-update"
)
