package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"gitlab.com/tinyland/lab/homedeck/pkg/app"
	"gitlab.com/tinyland/lab/homedeck/pkg/components"
	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
	"gitlab.com/tinyland/lab/homedeck/pkg/panel"
	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// Task is one to-do entry.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// TasksWidget is the to-do list. It renders a summary in its grid
// slot and expands into a panel (exclusive with the other panels) for
// editing. Submitting an empty task is ignored.
type TasksWidget struct {
	store   prefs.Store
	bus     *notify.Bus
	tasks   []Task
	cursor  int
	state   panel.State
	input   textinput.Model
	adding  bool
	dispose func()
}

var _ app.Widget = (*TasksWidget)(nil)

// NewTasksWidget loads stored tasks and joins the panel exclusivity
// protocol for its category.
func NewTasksWidget(store prefs.Store, bus *notify.Bus) *TasksWidget {
	ti := textinput.New()
	ti.Placeholder = "New task"
	ti.CharLimit = 120

	w := &TasksWidget{
		store: store,
		tasks: prefs.GetOr(store, prefs.KeyTasks, []Task(nil)),
		bus:   bus,
		state: panel.NewState(panel.Tasks),
		input: ti,
	}
	w.dispose = notify.On(bus, panel.EventExpand, func(req panel.ExpandRequest) {
		w.state.Apply(req.Category)
		if !w.state.Expanded() {
			w.adding = false
			w.input.Blur()
		}
	})
	return w
}

func (w *TasksWidget) ID() string          { return "tasks" }
func (w *TasksWidget) Title() string       { return "Tasks" }
func (w *TasksWidget) MinSize() (int, int) { return 30, 12 }

// CapturingInput reports whether the add field is open.
func (w *TasksWidget) CapturingInput() bool { return w.adding }

func (w *TasksWidget) Close() {
	if w.dispose != nil {
		w.dispose()
	}
}

// Overlay renders the editing panel when expanded.
func (w *TasksWidget) Overlay() (string, bool) {
	if !w.state.Expanded() {
		return "", false
	}
	return w.renderList(40, 10, true), true
}

func (w *TasksWidget) Update(tea.Msg) tea.Cmd { return nil }

func (w *TasksWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	if w.adding {
		return w.handleInputKey(key)
	}

	switch key.String() {
	case "a", "n":
		w.adding = true
		w.input.SetValue("")
		w.input.Focus()
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < len(w.tasks)-1 {
			w.cursor++
		}
	case " ", "enter":
		w.toggle(w.cursor)
	case "d", "x":
		w.remove(w.cursor)
	case "esc":
		if w.state.Expanded() {
			notify.Emit(w.bus, panel.EventExpand, panel.ExpandRequest{Category: panel.None})
		}
	}
	return nil
}

func (w *TasksWidget) handleInputKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEnter:
		w.add(w.input.Value())
		w.adding = false
		w.input.Blur()
		return nil
	case tea.KeyEsc:
		w.adding = false
		w.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(key)
	return cmd
}

// add appends a task. Blank text is ignored.
func (w *TasksWidget) add(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	w.tasks = append(w.tasks, Task{ID: uuid.NewString(), Text: text})
	w.persist()
}

func (w *TasksWidget) toggle(i int) {
	if i < 0 || i >= len(w.tasks) {
		return
	}
	w.tasks[i].Done = !w.tasks[i].Done
	w.persist()
}

func (w *TasksWidget) remove(i int) {
	if i < 0 || i >= len(w.tasks) {
		return
	}
	w.tasks = append(w.tasks[:i], w.tasks[i+1:]...)
	if w.cursor >= len(w.tasks) && w.cursor > 0 {
		w.cursor--
	}
	w.persist()
}

func (w *TasksWidget) persist() {
	_ = prefs.Set(w.store, prefs.KeyTasks, w.tasks)
}

// Remaining counts open tasks.
func (w *TasksWidget) Remaining() int {
	n := 0
	for _, t := range w.tasks {
		if !t.Done {
			n++
		}
	}
	return n
}

func (w *TasksWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return components.FitBlock(w.renderList(width, height, false), width, height)
}

func (w *TasksWidget) renderList(width, height int, editing bool) string {
	var b strings.Builder

	if len(w.tasks) == 0 && !w.adding {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current.Dim))
		b.WriteString(dim.Render("No tasks. Press a to add one."))
		return b.String()
	}

	items := make([]components.ListItem, len(w.tasks))
	for i, t := range w.tasks {
		items[i] = components.ListItem{Text: t.Text, Done: t.Done, Checkbox: true}
	}

	rows := height - 1
	if w.adding {
		rows--
	}
	b.WriteString(components.RenderList(items, w.cursor, width, rows))

	if w.adding {
		w.input.Width = width - 4
		b.WriteString("\n" + w.input.View())
	} else {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current.Dim))
		b.WriteString("\n" + dim.Render(fmt.Sprintf("%d open", w.Remaining())))
	}
	return b.String()
}
