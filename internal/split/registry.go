package split

// registry is an ordered id-to-record mapping. Insertion order is
// significant: it defines which two panels are adjacent for a divider.
// Mutating operations work on a clone and the Group swaps the whole
// registry in, so readers never see a half-applied change.
type registry struct {
	order []record
}

// clone returns a deep copy suitable for mutate-then-replace.
func (r registry) clone() registry {
	out := make([]record, len(r.order))
	copy(out, r.order)
	return registry{order: out}
}

// index returns the position of id, or -1 if unknown.
func (r registry) index(id string) int {
	for i, rec := range r.order {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// lookup returns the record for id.
func (r registry) lookup(id string) (record, bool) {
	if i := r.index(id); i >= 0 {
		return r.order[i], true
	}
	return record{}, false
}

// put appends rec, or overwrites in place when the id is already present.
// Overwriting keeps the original position, so re-registering a panel does
// not change its adjacency.
func (r *registry) put(rec record) {
	if i := r.index(rec.ID); i >= 0 {
		r.order[i] = rec
		return
	}
	r.order = append(r.order, rec)
}

// remove deletes the record for id, preserving the order of the rest.
func (r *registry) remove(id string) {
	i := r.index(id)
	if i < 0 {
		return
	}
	r.order = append(r.order[:i], r.order[i+1:]...)
}

// len returns the number of registered panels.
func (r registry) len() int {
	return len(r.order)
}

// sizes returns every panel's current size in registration order.
func (r registry) sizes() []float64 {
	out := make([]float64, len(r.order))
	for i, rec := range r.order {
		out[i] = rec.Size
	}
	return out
}

// ids returns every panel id in registration order.
func (r registry) ids() []string {
	out := make([]string, len(r.order))
	for i, rec := range r.order {
		out[i] = rec.ID
	}
	return out
}

// flexible returns how many panels lack an explicit default size.
func (r registry) flexible() int {
	n := 0
	for _, rec := range r.order {
		if !rec.hasDefault() {
			n++
		}
	}
	return n
}
