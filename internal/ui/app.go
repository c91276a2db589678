package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"splitkit/internal/split"
)

// SessionObserver is told when a drag session starts and ends, bracketing
// the OnResize notifications the group emits in between.
type SessionObserver interface {
	StartSession(handleID string)
	EndSession()
}

// AppView is the root model: a SplitView plus a hint line and quit keys.
type AppView struct {
	Split    *SplitView
	group    *split.Group
	observer SessionObserver

	// CollapseID, when set, is the panel the "c" key collapses.
	CollapseID string

	width  int
	height int
}

// Ensure AppView implements View.
var _ View = (*AppView)(nil)

// NewAppView wraps a split view for use as a program root. observer may be
// nil.
func NewAppView(group *split.Group, s *SplitView, observer SessionObserver) *AppView {
	return &AppView{Split: s, group: group, observer: observer}
}

// Init implements View.
func (a *AppView) Init() tea.Cmd {
	return a.Split.Init()
}

// Update implements View.
func (a *AppView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "c":
			if a.CollapseID != "" {
				a.group.Collapse(a.CollapseID)
				return a, a.forward(tea.WindowSizeMsg{Width: a.width, Height: a.splitHeight()})
			}
		}
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.forward(tea.WindowSizeMsg{Width: a.width, Height: a.splitHeight()})
	}
	return a, a.forward(msg)
}

// forward passes msg to the split view and reports drag-session boundaries
// to the observer by watching the group's session flag across the update.
func (a *AppView) forward(msg tea.Msg) tea.Cmd {
	wasResizing := a.group.Resizing()
	v, cmd := a.Split.Update(msg)
	if s, ok := v.(*SplitView); ok {
		a.Split = s
	}
	if a.observer != nil {
		nowResizing := a.group.Resizing()
		if !wasResizing && nowResizing {
			a.observer.StartSession(a.group.ActiveHandle())
		}
		if wasResizing && !nowResizing {
			a.observer.EndSession()
		}
	}
	return cmd
}

// splitHeight reserves the bottom hint line.
func (a *AppView) splitHeight() int {
	if a.height <= 1 {
		return 0
	}
	return a.height - 1
}

// View implements View.
func (a *AppView) View() string {
	hint := "drag dividers to resize • esc cancels a drag • q quits"
	if a.CollapseID != "" {
		hint = "drag dividers to resize • esc cancels a drag • c collapses " + a.CollapseID + " • q quits"
	}
	return a.Split.View() + "\n" + Styles.Hint.Render(hint)
}
