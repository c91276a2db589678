// Package split implements a constraint-based resizable panel layout engine.
//
// Core abstractions:
//   - Constraints: per-panel bounds and initial share, all in percent
//   - Group: owns the ordered panel registry, orientation, and the
//     bounded symmetric-transfer resize algorithm
//   - Divider: pointer-drag state machine that converts pixel motion
//     into percentage resize requests against a Group
//   - ResizeListener: explicit observer notified after each committed resize
//
// Sizes are percentages of the group's extent along its resize axis.
// Panels without an explicit default size share 100 evenly; a resize
// transfers size between a panel and its successor in registration order,
// equal and opposite or not at all.
package split
