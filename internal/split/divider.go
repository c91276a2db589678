package split

import "errors"

// DividerState is the drag state machine's current state.
type DividerState int

const (
	// Idle means no drag session is in progress.
	Idle DividerState = iota
	// Dragging means the divider holds the pointer and is driving resizes.
	Dragging
)

// Divider turns pointer motion along the group's axis into resize requests
// against the panel pair it separates. The pair is fixed at construction;
// adjacency never depends on rendering order.
type Divider struct {
	id      string
	group   *Group
	leftID  string
	rightID string

	state    DividerState
	anchor   float64            // pointer coordinate at the last processed event
	extent   float64            // container pixel extent, captured at drag start
	preDrag  map[string]float64 // sizes to restore on Cancel
}

// NewDivider creates a divider between two adjacent panels of g. A nil
// group or empty panel id is a composition mistake and returns an error;
// panels that are merely not registered yet degrade to no-op resizes.
func NewDivider(id string, g *Group, leftID, rightID string) (*Divider, error) {
	if g == nil {
		return nil, errors.New("split: divider requires a group")
	}
	if leftID == "" || rightID == "" {
		return nil, errors.New("split: divider requires both adjacent panel ids")
	}
	return &Divider{id: id, group: g, leftID: leftID, rightID: rightID}, nil
}

// ID returns the divider's identity.
func (d *Divider) ID() string { return d.id }

// PanelIDs returns the adjacent pair recorded at construction.
func (d *Divider) PanelIDs() (left, right string) {
	return d.leftID, d.rightID
}

// Dragging reports whether a drag session is in progress.
func (d *Divider) Dragging() bool {
	return d.state == Dragging
}

// BeginDrag starts a drag session: coord is the pointer's coordinate along
// the group's axis and extent the container's pixel extent along that axis.
// No-op when already dragging or when extent is not positive (a zero-extent
// container cannot produce a meaningful percentage).
func (d *Divider) BeginDrag(coord, extent float64) {
	if d.state == Dragging || extent <= 0 {
		return
	}
	d.state = Dragging
	d.anchor = coord
	d.extent = extent
	d.preDrag = d.group.snapshot()
	d.group.StartResize(d.id)
}

// Drag processes a pointer-move event. Each event carries an incremental
// delta from the previous one: the divider resizes by the motion since the
// last Drag call and re-anchors at coord. No-op when idle.
func (d *Divider) Drag(coord float64) {
	if d.state != Dragging {
		return
	}
	pixelDelta := coord - d.anchor
	d.group.Resize(d.leftID, pixelDelta/d.extent*100)
	d.anchor = coord
}

// EndDrag completes the drag session, keeping the sizes reached.
func (d *Divider) EndDrag() {
	if d.state != Dragging {
		return
	}
	d.state = Idle
	d.preDrag = nil
	d.group.EndResize()
}

// Cancel aborts the drag session and restores every panel to its size at
// BeginDrag time. No-op when idle.
func (d *Divider) Cancel() {
	if d.state != Dragging {
		return
	}
	d.state = Idle
	d.group.restore(d.preDrag)
	d.preDrag = nil
	d.group.EndResize()
}
