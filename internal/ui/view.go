package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a screen or major UI region with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// viewAdapter wraps a View to implement tea.Model.
type viewAdapter struct {
	view View
}

// AsTeaModel adapts a View for use as a program's root model.
func AsTeaModel(v View) tea.Model {
	return &viewAdapter{view: v}
}

// Init implements tea.Model.
func (a *viewAdapter) Init() tea.Cmd {
	return a.view.Init()
}

// Update implements tea.Model.
func (a *viewAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v, cmd := a.view.Update(msg)
	a.view = v
	return a, cmd
}

// View implements tea.Model.
func (a *viewAdapter) View() string {
	return a.view.View()
}
