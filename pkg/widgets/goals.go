package widgets

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/homedeck/pkg/app"
	"gitlab.com/tinyland/lab/homedeck/pkg/components"
	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// goalCount is the fixed number of daily goals.
const goalCount = 3

// Pomodoro phase lengths.
const (
	pomodoroWork  = 25 * time.Minute
	pomodoroBreak = 5 * time.Minute
)

var builtinQuotes = []string{
	"Focus on being productive instead of busy.",
	"Small steps every day.",
	"Done is better than perfect.",
	"What you do today can improve all your tomorrows.",
	"Start where you are, use what you have, do what you can.",
}

// GoalsWidget is the focus panel: three daily goals with progress
// checkmarks, a motivational quote, and a pomodoro timer. Visible
// only while advanced features are on.
type GoalsWidget struct {
	store    prefs.Store
	enabled  bool
	goals    []string
	progress []bool
	quote    string

	// pomodoro state
	running   bool
	onBreak   bool
	remaining time.Duration
	lastTick  time.Time

	editing int // -1 idle, otherwise goal index being edited
	input   textinput.Model
	dispose func()
}

var _ app.Widget = (*GoalsWidget)(nil)

// NewGoalsWidget loads goals, progress, and the current quote.
func NewGoalsWidget(store prefs.Store, bus *notify.Bus) *GoalsWidget {
	ti := textinput.New()
	ti.CharLimit = 80

	w := &GoalsWidget{
		store:     store,
		enabled:   prefs.GetOr(store, prefs.KeyAdvancedFeatures, false),
		goals:     prefs.GetOr(store, prefs.KeyDailyGoals, make([]string, goalCount)),
		progress:  prefs.GetOr(store, prefs.KeyGoalProgress, make([]bool, goalCount)),
		quote:     prefs.GetOr(store, prefs.KeyCurrentQuote, builtinQuotes[0]),
		remaining: pomodoroWork,
		editing:   -1,
		input:     ti,
	}
	for len(w.goals) < goalCount {
		w.goals = append(w.goals, "")
	}
	for len(w.progress) < goalCount {
		w.progress = append(w.progress, false)
	}

	w.dispose = notify.On(bus, app.EventAdvancedFeaturesChanged, func(ev app.AdvancedFeaturesChanged) {
		w.enabled = ev.Enabled
	})
	return w
}

func (w *GoalsWidget) ID() string          { return "goals" }
func (w *GoalsWidget) Title() string       { return "Focus" }
func (w *GoalsWidget) MinSize() (int, int) { return 30, 10 }

// CapturingInput reports whether a goal is being edited.
func (w *GoalsWidget) CapturingInput() bool { return w.editing >= 0 }

func (w *GoalsWidget) Close() {
	if w.dispose != nil {
		w.dispose()
	}
}

func (w *GoalsWidget) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(app.TickEvent)
	if !ok || !w.running {
		return nil
	}
	if !w.lastTick.IsZero() {
		w.remaining -= tick.Time.Sub(w.lastTick)
	}
	w.lastTick = tick.Time

	if w.remaining <= 0 {
		// Phase flip: work and break alternate.
		w.onBreak = !w.onBreak
		if w.onBreak {
			w.remaining = pomodoroBreak
		} else {
			w.remaining = pomodoroWork
		}
	}
	return nil
}

func (w *GoalsWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	if !w.enabled {
		return nil
	}
	if w.editing >= 0 {
		return w.handleEditKey(key)
	}

	switch s := key.String(); s {
	case "1", "2", "3":
		i := int(s[0] - '1')
		w.progress[i] = !w.progress[i]
		_ = prefs.Set(w.store, prefs.KeyGoalProgress, w.progress)
	case "e":
		w.editing = 0
		w.startEdit()
	case "p":
		w.running = !w.running
		w.lastTick = time.Time{}
	case "P":
		w.running = false
		w.onBreak = false
		w.remaining = pomodoroWork
	case "m":
		w.nextQuote()
	}
	return nil
}

func (w *GoalsWidget) startEdit() {
	w.input.Placeholder = fmt.Sprintf("Goal %d", w.editing+1)
	w.input.SetValue(w.goals[w.editing])
	w.input.Focus()
}

// handleEditKey walks through the three goals; Enter saves and
// advances, Esc stops.
func (w *GoalsWidget) handleEditKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEnter:
		w.goals[w.editing] = strings.TrimSpace(w.input.Value())
		_ = prefs.Set(w.store, prefs.KeyDailyGoals, w.goals)
		w.editing++
		if w.editing >= goalCount {
			w.editing = -1
			w.input.Blur()
		} else {
			w.startEdit()
		}
		return nil
	case tea.KeyEsc:
		w.editing = -1
		w.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(key)
	return cmd
}

func (w *GoalsWidget) nextQuote() {
	for i, q := range builtinQuotes {
		if q == w.quote {
			w.quote = builtinQuotes[(i+1)%len(builtinQuotes)]
			_ = prefs.Set(w.store, prefs.KeyCurrentQuote, w.quote)
			return
		}
	}
	w.quote = builtinQuotes[0]
	_ = prefs.Set(w.store, prefs.KeyCurrentQuote, w.quote)
}

func (w *GoalsWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	t := theme.Current
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim))

	if !w.enabled {
		return components.FitBlock(dim.Render("Enable advanced features in settings."), width, height)
	}

	ok := lipgloss.NewStyle().Foreground(lipgloss.Color(t.StatusOK))
	var b strings.Builder

	for i := 0; i < goalCount; i++ {
		mark := "[ ]"
		if w.progress[i] {
			mark = ok.Render("[x]")
		}
		text := w.goals[i]
		if text == "" {
			text = dim.Render(fmt.Sprintf("goal %d (press e to set)", i+1))
		}
		if w.editing == i {
			w.input.Width = width - 6
			text = w.input.View()
		}
		b.WriteString(components.Truncate(fmt.Sprintf("%d %s %s", i+1, mark, text), width) + "\n")
	}

	phase := "work"
	if w.onBreak {
		phase = "break"
	}
	status := "paused"
	if w.running {
		status = "running"
	}
	mins := int(w.remaining.Minutes())
	secs := int(w.remaining.Seconds()) % 60
	if mins < 0 {
		mins, secs = 0, 0
	}
	b.WriteString(fmt.Sprintf("\n⏱ %02d:%02d %s (%s)\n", mins, secs, phase, status))
	b.WriteString(dim.Render(components.Truncate("“"+w.quote+"”", width)))

	return components.FitBlock(b.String(), width, height)
}
