package split

import "fmt"

// Orientation is the axis a group resizes along, fixed for its lifetime.
type Orientation int

const (
	// Horizontal groups lay panels side by side and resize along width.
	Horizontal Orientation = iota
	// Vertical groups stack panels and resize along height.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ResizeListener is notified after every committed resize with each panel's
// current size in registration order.
type ResizeListener interface {
	OnResize(sizes []float64)
}

// ResizeListenerFunc adapts a function to ResizeListener.
type ResizeListenerFunc func(sizes []float64)

// OnResize implements ResizeListener.
func (f ResizeListenerFunc) OnResize(sizes []float64) { f(sizes) }

// Group owns the ordered panel registry and runs the resize algorithm.
// All operations are synchronous and must be called from a single event
// stream; the group does no locking of its own.
type Group struct {
	orientation Orientation
	panels      registry
	listeners   []ResizeListener

	resizing     bool
	activeHandle string

	nextID int
}

// NewGroup creates an empty group resizing along the given axis.
func NewGroup(o Orientation) *Group {
	return &Group{orientation: o}
}

// Orientation returns the group's fixed resize axis.
func (g *Group) Orientation() Orientation {
	return g.orientation
}

// AddResizeListener registers l for resize notifications. Nil listeners
// are ignored.
func (g *Group) AddResizeListener(l ResizeListener) {
	if l != nil {
		g.listeners = append(g.listeners, l)
	}
}

// Register inserts a panel at the end of the registry and returns its id,
// generating one sequentially when id is empty. Re-registering an existing
// id overwrites its record in place.
//
// When the new panel has no explicit DefaultSize, every panel lacking one
// (the new panel included) is assigned an equal share of 100. Panels with
// an explicit DefaultSize keep it untouched.
func (g *Group) Register(id string, c Constraints) string {
	if id == "" {
		g.nextID++
		id = fmt.Sprintf("panel-%d", g.nextID)
	}

	next := g.panels.clone()
	rec := record{ID: id, Constraints: c}
	if c.DefaultSize != nil {
		rec.Size = *c.DefaultSize
	}
	next.put(rec)

	if c.DefaultSize == nil {
		share := 100.0 / float64(next.flexible())
		for i := range next.order {
			if !next.order[i].hasDefault() {
				next.order[i].Size = share
			}
		}
	}

	g.panels = next
	return id
}

// Unregister removes the panel. Remaining panels keep their sizes; the
// group's total allocation may drop below 100 until something registers
// or resizes again.
func (g *Group) Unregister(id string) {
	next := g.panels.clone()
	next.remove(id)
	g.panels = next
}

// Size returns the panel's current size, or 50 when id is unknown.
func (g *Group) Size(id string) float64 {
	if rec, ok := g.panels.lookup(id); ok {
		return rec.Size
	}
	return 50
}

// Sizes returns every panel's current size in registration order.
func (g *Group) Sizes() []float64 {
	return g.panels.sizes()
}

// PanelIDs returns every panel id in registration order.
func (g *Group) PanelIDs() []string {
	return g.panels.ids()
}

// Resize transfers delta percent from the panel's successor to the panel,
// clamped to both panels' bounds. The transfer is symmetric: the size one
// panel gains is exactly the size the other loses, or nothing moves.
//
// Unknown ids, the last panel in registration order, and deltas whose
// clamped magnitudes disagree are silent no-ops, not errors.
func (g *Group) Resize(id string, delta float64) {
	i := g.panels.index(id)
	if i < 0 || i == g.panels.len()-1 {
		return
	}

	next := g.panels.clone()
	p := next.order[i]
	q := next.order[i+1]

	s1 := clamp(p.Size+delta, p.min(), p.max())
	actual := s1 - p.Size
	t1 := clamp(q.Size-actual, q.min(), q.max())
	actualNext := q.Size - t1
	if abs(actual) != abs(actualNext) {
		return
	}

	next.order[i].Size = s1
	next.order[i+1].Size = t1
	g.panels = next
	g.notify()
}

// Collapse drives a collapsible panel to its effective minimum via the
// same bounded transfer as Resize. No-op for non-collapsible or unknown
// panels.
func (g *Group) Collapse(id string) {
	rec, ok := g.panels.lookup(id)
	if !ok || !rec.Constraints.Collapsible {
		return
	}
	g.Resize(id, rec.min()-rec.Size)
}

// StartResize marks a drag session as active for the given handle.
func (g *Group) StartResize(handleID string) {
	g.resizing = true
	g.activeHandle = handleID
}

// EndResize clears the drag session flags.
func (g *Group) EndResize() {
	g.resizing = false
	g.activeHandle = ""
}

// Resizing reports whether a drag session is active.
func (g *Group) Resizing() bool {
	return g.resizing
}

// ActiveHandle returns the id of the divider driving the current drag,
// or "" when idle.
func (g *Group) ActiveHandle() string {
	return g.activeHandle
}

// snapshot captures every panel's size keyed by id, for drag cancellation.
func (g *Group) snapshot() map[string]float64 {
	out := make(map[string]float64, g.panels.len())
	for _, rec := range g.panels.order {
		out[rec.ID] = rec.Size
	}
	return out
}

// restore reapplies a snapshot. Panels registered since the snapshot keep
// their current size; panels gone from the registry are skipped.
func (g *Group) restore(sizes map[string]float64) {
	next := g.panels.clone()
	changed := false
	for i := range next.order {
		if s, ok := sizes[next.order[i].ID]; ok && s != next.order[i].Size {
			next.order[i].Size = s
			changed = true
		}
	}
	if !changed {
		return
	}
	g.panels = next
	g.notify()
}

// notify fans the current sizes out to all listeners. A panicking listener
// must not block the others.
func (g *Group) notify() {
	sizes := g.panels.sizes()
	for _, l := range g.listeners {
		safeNotify(l, sizes)
	}
}

func safeNotify(l ResizeListener, sizes []float64) {
	defer func() {
		_ = recover()
	}()
	l.OnResize(sizes)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
