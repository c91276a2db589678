package split

// Constraints bounds a panel's size allocation. All values are percentages
// of the group's extent along the resize axis.
type Constraints struct {
	MinSize     float64  // lower bound; zero means unconstrained
	MaxSize     float64  // upper bound; zero means 100
	DefaultSize *float64 // explicit initial share; nil panels split 100 evenly
	Collapsible bool     // panel may be driven to MinSize via Group.Collapse
}

// Percent returns a pointer to v, for use as an explicit DefaultSize.
func Percent(v float64) *float64 { return &v }

// record is a panel's entry in the registry. Owned exclusively by the Group;
// only the resize algorithm and registration rebalancing mutate Size.
type record struct {
	ID          string
	Size        float64
	Constraints Constraints
}

// min returns the effective lower bound.
func (r record) min() float64 {
	return r.Constraints.MinSize
}

// max returns the effective upper bound (zero MaxSize means 100).
func (r record) max() float64 {
	if r.Constraints.MaxSize == 0 {
		return 100
	}
	return r.Constraints.MaxSize
}

// hasDefault reports whether the panel was registered with an explicit share.
func (r record) hasDefault() bool {
	return r.Constraints.DefaultSize != nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
