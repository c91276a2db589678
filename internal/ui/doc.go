// Package ui renders split panel groups with Bubble Tea.
//
// Core abstractions:
//   - View: a UI region with its own model, update, view (Elm-style)
//   - SplitView: hosts one child View per panel of a split.Group, draws
//     divider bars between panels, and feeds mouse drags into the group
//   - TextPane: a scrollable text content View for panes
//
// The layout engine itself lives in internal/split; this package only maps
// terminal cells and mouse events onto it.
package ui
