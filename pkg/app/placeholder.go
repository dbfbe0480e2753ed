package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/homedeck/pkg/components"
)

// Placeholder fills a grid slot whose real widget is disabled, so
// presets render the same shape regardless of configuration.
type Placeholder struct {
	id    string
	title string
}

var _ Widget = (*Placeholder)(nil)

// NewPlaceholder creates a placeholder with the given identity.
func NewPlaceholder(id, title string) *Placeholder {
	return &Placeholder{id: id, title: title}
}

func (p *Placeholder) ID() string    { return p.id }
func (p *Placeholder) Title() string { return p.title }

func (p *Placeholder) MinSize() (int, int) { return 10, 3 }

func (p *Placeholder) Update(tea.Msg) tea.Cmd { return nil }

func (p *Placeholder) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

func (p *Placeholder) View(width, height int) string {
	return components.FitBlock(components.Center("disabled", width), width, height)
}
