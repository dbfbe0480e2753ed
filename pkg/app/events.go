// Package app provides the core Bubbletea application framework for
// the homedeck dashboard. It defines the root model, the widget
// interface, the Bubbletea message types, and the preference-change
// events that travel over the Change Notifier bus.
//
// Two kinds of "event" meet here and stay distinct: tea.Msg values
// (ticks, async fetch results, window sizing) flow through the Elm
// update loop, while preference changes are published on the
// notify.Bus so that every mounted widget reacts in the same
// synchronous dispatch, before the next render.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// Bus event names, one channel per logical preference. Subscribing to
// a narrow channel beats filtering a generic one in every handler.
const (
	EventUserNameChanged         = "userNameChanged"
	EventClockTypeChanged        = "clockTypeChanged"
	EventClockFormatChanged      = "clockFormatChanged"
	EventThemeChanged            = "themeChanged"
	EventWeatherLocationChanged  = "weatherLocationChanged"
	EventAdvancedFeaturesChanged = "advancedFeaturesChanged"
)

// UserNameChanged is the detail payload of EventUserNameChanged.
type UserNameChanged struct {
	UserName string
}

// ClockTypeChanged switches the clock between digital and analog.
type ClockTypeChanged struct {
	IsDigital bool
}

// ClockFormatChanged switches between 12 and 24 hour display.
type ClockFormatChanged struct {
	Is24Hour bool
}

// ThemeChanged carries the full new theme so subscribers recolor
// without re-reading the store.
type ThemeChanged struct {
	Theme theme.Theme
}

// WeatherLocationChanged retargets the weather widget.
type WeatherLocationChanged struct {
	Location          string
	UseCustomLocation bool
	APIKey            string
}

// AdvancedFeaturesChanged toggles the analytics and focus widgets.
type AdvancedFeaturesChanged struct {
	Enabled bool
}

// --- Bubbletea messages ---

// TickEvent is sent periodically by the render ticker to drive the
// clock, blink cycles, and refresh checks.
type TickEvent struct {
	Time time.Time
}

// DataUpdateEvent carries the result of an async fetch (weather,
// browser history) back into the update loop. Receivers type-assert
// Data based on Source.
type DataUpdateEvent struct {
	Source    string
	Data      any
	Err       error
	Timestamp time.Time
}

// WidgetFocusEvent requests that focus move to a specific widget.
type WidgetFocusEvent struct {
	WidgetID string
}
