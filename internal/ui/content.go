package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// TextPane is a scrollable text content view for panes. It resizes with the
// box its pane is allocated and scrolls with the viewport's default keys.
type TextPane struct {
	title string
	vp    viewport.Model
	ready bool
}

// Ensure TextPane implements View.
var _ View = (*TextPane)(nil)

// NewTextPane creates a pane showing body under a one-line title.
func NewTextPane(title, body string) *TextPane {
	vp := viewport.New(0, 0)
	vp.SetContent(body)
	return &TextPane{title: title, vp: vp}
}

// SetContent replaces the pane's body text.
func (p *TextPane) SetContent(body string) {
	p.vp.SetContent(body)
}

// Init implements View.
func (p *TextPane) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *TextPane) Update(msg tea.Msg) (View, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		p.vp.Width = size.Width
		p.vp.Height = size.Height - 1 // reserve the title line
		if p.vp.Height < 0 {
			p.vp.Height = 0
		}
		p.ready = true
		return p, nil
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

// View implements View.
func (p *TextPane) View() string {
	if !p.ready {
		// Default dimensions for rendering before the first size message.
		p.vp.Width = 40
		p.vp.Height = 10
	}
	return Styles.Title.Render(p.title) + "\n" + Styles.Content.Render(p.vp.View())
}
