package tabview

// ScrollTracker routes raw vertical scroll events into pane records and,
// for the driving (active) pane, into the shared scroll accumulator.
type ScrollTracker struct {
	store *Store
	panes *PaneSet
}

// NewScrollTracker creates a tracker over the given store and pane set.
func NewScrollTracker(store *Store, panes *PaneSet) *ScrollTracker {
	return &ScrollTracker{store: store, panes: panes}
}

// OnScroll records a pane's vertical scroll offset. If the pane is the
// active one it also feeds the shared accumulator, carrying the offset
// correction accumulated at pane switches so the logical timeline stays
// continuous. Events for unknown pane ordinals are dropped.
func (t *ScrollTracker) OnScroll(index int, offsetY float32) {
	pane := t.panes.At(index)
	if pane == nil {
		tabLogger.Debug("scroll event for unknown pane", "index", index)
		return
	}

	pane.ScrollOffset = offsetY
	pane.Mounted = true

	if index == t.store.ActiveIndex.Get() {
		t.store.Acc.Current = offsetY + t.store.Acc.OffsetCarry
	}
}

// SnapshotAll returns the current scroll offset of every pane in ordinal
// order. Used when recomputing the header offset after an index switch.
func (t *ScrollTracker) SnapshotAll() []float32 {
	offsets := make([]float32, t.panes.Len())
	for i := range offsets {
		offsets[i] = t.panes.At(i).ScrollOffset
	}
	return offsets
}
