package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the active divider
	ColorMuted     = "241" // Gray - for dimmed text, idle dividers
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions used across pane rendering.
var Styles = struct {
	Title         lipgloss.Style // Pane title line (bold accent)
	Divider       lipgloss.Style // Idle divider bar
	DividerActive lipgloss.Style // Divider bar while dragging
	Content       lipgloss.Style // Pane body text
	Hint          lipgloss.Style // Help/hint text
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	DividerActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Content: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
