package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"splitkit/internal/split"
)

// Pane couples a registered panel id with the View rendered inside it.
type Pane struct {
	ID   string
	View View
}

// SplitView hosts one child View per panel of a split.Group, laid out along
// the group's axis with a one-cell divider bar between adjacent panes.
// Left-press on a bar starts a drag, motion resizes, release ends the drag,
// and esc mid-drag cancels and restores the pre-drag sizes.
type SplitView struct {
	group    *split.Group
	panes    []Pane
	dividers []*split.Divider

	width  int
	height int
	active *split.Divider // divider currently dragging, nil when idle
}

// Ensure SplitView implements View.
var _ View = (*SplitView)(nil)

// NewSplitView builds a split view over group. Each pane's ID must already
// be registered; one divider is created between each adjacent pair, so pane
// order must match registration order for drags to track the visual layout.
func NewSplitView(group *split.Group, panes []Pane) (*SplitView, error) {
	if group == nil {
		return nil, fmt.Errorf("ui: split view requires a group")
	}
	s := &SplitView{group: group, panes: panes}
	for i := 0; i+1 < len(panes); i++ {
		d, err := split.NewDivider(fmt.Sprintf("divider-%d", i+1), group, panes[i].ID, panes[i+1].ID)
		if err != nil {
			return nil, fmt.Errorf("ui: divider %d: %w", i+1, err)
		}
		s.dividers = append(s.dividers, d)
	}
	return s, nil
}

// Init implements View.
func (s *SplitView) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range s.panes {
		cmds = append(cmds, p.View.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements View.
func (s *SplitView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, s.relayout()
	case tea.MouseMsg:
		return s, s.handleMouse(msg)
	case tea.KeyMsg:
		if msg.String() == "esc" && s.active != nil {
			s.active.Cancel()
			s.active = nil
			return s, s.relayout()
		}
	}
	return s, s.broadcast(msg)
}

// handleMouse routes presses to the divider bar under the pointer and
// motion/release to the dragging divider.
func (s *SplitView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	coord := msg.X
	if s.group.Orientation() == split.Vertical {
		coord = msg.Y
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || s.active != nil {
			return nil
		}
		if d := s.dividerAt(coord); d != nil {
			s.active = d
			d.BeginDrag(float64(coord), float64(s.contentExtent()))
		}
	case tea.MouseActionMotion:
		if s.active != nil {
			s.active.Drag(float64(coord))
			return s.relayout()
		}
	case tea.MouseActionRelease:
		if s.active != nil {
			s.active.EndDrag()
			s.active = nil
		}
	}
	return nil
}

// dividerAt returns the divider whose bar occupies the given axis
// coordinate, or nil.
func (s *SplitView) dividerAt(coord int) *split.Divider {
	cells := s.paneCells()
	pos := 0
	for i := range s.dividers {
		pos += cells[i]
		if pos == coord {
			return s.dividers[i]
		}
		pos++ // the bar cell itself
	}
	return nil
}

// contentExtent is the axis extent available to panes: the container minus
// one cell per divider bar.
func (s *SplitView) contentExtent() int {
	extent := s.width
	if s.group.Orientation() == split.Vertical {
		extent = s.height
	}
	extent -= len(s.dividers)
	if extent < 0 {
		extent = 0
	}
	return extent
}

// paneCells converts the group's percentage sizes into whole cells along
// the axis. The last pane absorbs rounding so the cells always fill the
// content extent exactly.
func (s *SplitView) paneCells() []int {
	extent := s.contentExtent()
	sizes := s.group.Sizes()
	cells := make([]int, len(sizes))
	used := 0
	for i, size := range sizes {
		if i == len(sizes)-1 {
			cells[i] = extent - used
			break
		}
		cells[i] = int(math.Round(size / 100 * float64(extent)))
		used += cells[i]
	}
	if n := len(cells); n > 0 && cells[n-1] < 0 {
		cells[n-1] = 0
	}
	return cells
}

// relayout pushes each pane's current cell box to its child view.
func (s *SplitView) relayout() tea.Cmd {
	if s.width == 0 && s.height == 0 {
		return nil
	}
	cells := s.paneCells()
	var cmds []tea.Cmd
	for i := range s.panes {
		box := tea.WindowSizeMsg{Width: cells[i], Height: s.height}
		if s.group.Orientation() == split.Vertical {
			box = tea.WindowSizeMsg{Width: s.width, Height: cells[i]}
		}
		v, cmd := s.panes[i].View.Update(box)
		s.panes[i].View = v
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// broadcast forwards msg to every child view; all panes are visible at once.
func (s *SplitView) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range s.panes {
		v, cmd := s.panes[i].View.Update(msg)
		s.panes[i].View = v
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View implements View.
func (s *SplitView) View() string {
	// Set default dimensions if not set (for tests)
	if s.width == 0 {
		s.width = 80
	}
	if s.height == 0 {
		s.height = 24
	}

	cells := s.paneCells()
	horizontal := s.group.Orientation() == split.Horizontal

	parts := make([]string, 0, len(s.panes)*2)
	for i, p := range s.panes {
		box := lipgloss.NewStyle().Width(cells[i]).MaxWidth(cells[i]).Height(s.height).MaxHeight(s.height)
		if !horizontal {
			box = lipgloss.NewStyle().Width(s.width).MaxWidth(s.width).Height(cells[i]).MaxHeight(cells[i])
		}
		parts = append(parts, box.Render(p.View.View()))
		if i < len(s.dividers) {
			parts = append(parts, s.renderDivider(s.dividers[i]))
		}
	}

	if horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderDivider draws the one-cell bar between two panes, highlighted while
// it is driving a drag.
func (s *SplitView) renderDivider(d *split.Divider) string {
	style := Styles.Divider
	if d.Dragging() {
		style = Styles.DividerActive
	}
	if s.group.Orientation() == split.Horizontal {
		col := strings.TrimSuffix(strings.Repeat("│\n", s.height), "\n")
		return style.Render(col)
	}
	return style.Render(strings.Repeat("─", s.width))
}
