package tabview

// Pane is one unit of scrollable content selectable via the pager or the
// tab bar. Identity is the name; the ordinal index follows the declared
// order. ScrollOffset persists for the lifetime of the container and
// survives pane-set changes as long as the name survives.
type Pane struct {
	Name         string
	Index        int
	ScrollOffset float32
	Mounted      bool
}

// PaneSet is the ordered collection of panes with stable identity per name.
type PaneSet struct {
	panes []*Pane
}

// NewPaneSet builds a pane set from the declared names.
// Returns ErrEmptyPaneSet for an empty slice and a DuplicatePaneError when
// a name repeats.
func NewPaneSet(names []string) (*PaneSet, error) {
	if len(names) == 0 {
		return nil, ErrEmptyPaneSet
	}

	seen := make(map[string]bool, len(names))
	panes := make([]*Pane, 0, len(names))
	for i, name := range names {
		if seen[name] {
			return nil, &DuplicatePaneError{Name: name}
		}
		seen[name] = true
		panes = append(panes, &Pane{Name: name, Index: i})
	}
	return &PaneSet{panes: panes}, nil
}

// Len returns the number of panes.
func (ps *PaneSet) Len() int {
	return len(ps.panes)
}

// At returns the pane at ordinal i, or nil if out of range.
func (ps *PaneSet) At(i int) *Pane {
	if i < 0 || i >= len(ps.panes) {
		return nil
	}
	return ps.panes[i]
}

// ByName returns the pane with the given name, or nil if not found.
func (ps *PaneSet) ByName(name string) *Pane {
	for _, p := range ps.panes {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// IndexOf returns the ordinal of the named pane, or -1 if not found.
func (ps *PaneSet) IndexOf(name string) int {
	for i, p := range ps.panes {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the pane names in order.
func (ps *PaneSet) Names() []string {
	names := make([]string, len(ps.panes))
	for i, p := range ps.panes {
		names[i] = p.Name
	}
	return names
}

// Reconcile replaces the declared pane set, diffing by name: records whose
// name persists are retained (keeping ScrollOffset and Mounted), new names
// get fresh records, and dropped names are destroyed. Ordinals are
// renumbered to the new order.
func (ps *PaneSet) Reconcile(names []string) error {
	if len(names) == 0 {
		return ErrEmptyPaneSet
	}

	old := make(map[string]*Pane, len(ps.panes))
	for _, p := range ps.panes {
		old[p.Name] = p
	}

	seen := make(map[string]bool, len(names))
	next := make([]*Pane, 0, len(names))
	for i, name := range names {
		if seen[name] {
			return &DuplicatePaneError{Name: name}
		}
		seen[name] = true

		if p, ok := old[name]; ok {
			p.Index = i
			next = append(next, p)
		} else {
			next = append(next, &Pane{Name: name, Index: i})
		}
	}

	ps.panes = next
	return nil
}
