package app

// CycleFocusForward moves focus to the next widget in mount order,
// wrapping at the end.
func (m *AppModel) CycleFocusForward() {
	if len(m.widgetOrder) == 0 {
		return
	}
	idx := m.focusIndex()
	idx = (idx + 1) % len(m.widgetOrder)
	m.focusedWidget = m.widgetOrder[idx]
}

// CycleFocusBackward moves focus to the previous widget, wrapping at
// the start.
func (m *AppModel) CycleFocusBackward() {
	if len(m.widgetOrder) == 0 {
		return
	}
	idx := m.focusIndex()
	idx--
	if idx < 0 {
		idx = len(m.widgetOrder) - 1
	}
	m.focusedWidget = m.widgetOrder[idx]
}

// FocusWidget focuses the widget with the given ID if it is mounted.
func (m *AppModel) FocusWidget(id string) bool {
	if _, ok := m.widgets[id]; !ok {
		return false
	}
	m.focusedWidget = id
	return true
}

// ToggleExpand expands the focused widget to fill the grid, or
// restores the grid if it is already expanded.
func (m *AppModel) ToggleExpand() {
	if m.expandedWidget == m.focusedWidget {
		m.expandedWidget = ""
	} else {
		m.expandedWidget = m.focusedWidget
	}
	m.layoutDirty = true
}

func (m *AppModel) focusIndex() int {
	for i, id := range m.widgetOrder {
		if id == m.focusedWidget {
			return i
		}
	}
	return 0
}
