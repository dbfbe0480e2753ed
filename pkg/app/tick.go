package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd schedules the next TickEvent after the given interval.
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// DataFetchCmd runs fetch off the update loop and delivers the result
// as a DataUpdateEvent tagged with source.
func DataFetchCmd(source string, fetch func() (any, error)) tea.Cmd {
	return func() tea.Msg {
		data, err := fetch()
		return DataUpdateEvent{
			Source:    source,
			Data:      data,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
}
