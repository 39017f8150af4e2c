package tabview

// CollapseMode selects how the header collapse calculator derives the
// visible header translation from the shared scroll accumulator.
type CollapseMode int

const (
	// CollapseDirect follows the accumulated scroll of the driving pane:
	// translation = -min(accumulated, scrollDistance). Monotonic with
	// scroll position.
	CollapseDirect CollapseMode = iota

	// CollapseDiffClamp integrates the per-tick scroll delta, clamped to
	// [0, scrollDistance]. The header collapses on scroll-down and
	// reveals on scroll-up regardless of absolute position, which is
	// what makes panes shorter than the collapse distance behave.
	CollapseDiffClamp
)

// Snap convergence constants, shared with the pager's animated settle.
const (
	snapSmoothSpeed   float32 = 15.0 // higher = faster convergence
	snapDoneThreshold float32 = 0.5  // stop animating when this close
	snapIdleDelay     float32 = 0.15 // seconds of no scroll before snapping
)

// HeaderCollapse derives the header's visible translation each tick.
// It is the sole writer of Store.Translation and of the diff-clamp
// accumulator.
type HeaderCollapse struct {
	store *Store
	mode  CollapseMode

	// Snap settles a partially collapsed header to fully revealed or
	// fully collapsed once scrolling goes idle. Only meaningful in
	// diff-clamp mode, where the header can rest between the bounds.
	snapEnabled   bool
	snapThreshold float32

	idleTime   float32
	snapping   bool
	snapTarget float32
}

// NewHeaderCollapse creates the calculator. snapThreshold is the collapsed
// fraction at or above which an idle header settles to fully collapsed
// rather than fully revealed.
func NewHeaderCollapse(store *Store, mode CollapseMode, snapEnabled bool, snapThreshold float32) *HeaderCollapse {
	return &HeaderCollapse{
		store:         store,
		mode:          mode,
		snapEnabled:   snapEnabled,
		snapThreshold: snapThreshold,
	}
}

// Mode returns the configured collapse mode.
func (h *HeaderCollapse) Mode() CollapseMode {
	return h.mode
}

// Update recomputes the diff-clamp accumulator and the header translation
// for this tick. Must run after the transition engine's tick so the
// accumulator is settled; the container enforces this ordering.
func (h *HeaderCollapse) Update(dt float32) {
	dist := h.store.ScrollDistance()
	if dist <= 0 {
		// No collapsible height: the calculator is a no-op at 0.
		h.store.Acc.Previous = h.store.Acc.Current
		h.store.Acc.DiffClamp = 0
		h.store.Translation.Set(0)
		return
	}

	acc := &h.store.Acc
	delta := acc.Current - acc.Previous
	acc.DiffClamp = clampf(acc.DiffClamp+delta, 0, dist)
	acc.Previous = acc.Current

	if h.mode == CollapseDiffClamp && h.snapEnabled {
		h.updateSnap(dt, delta, dist)
	}

	var translation float32
	switch h.mode {
	case CollapseDirect:
		translation = -minf(maxf(acc.Current, 0), dist)
	case CollapseDiffClamp:
		translation = -acc.DiffClamp
	}
	h.store.Translation.Set(translation)
}

// updateSnap drives the diff-clamp accumulator toward a resting bound once
// scrolling has been idle long enough. Uses the same smooth-interpolation
// convergence as the pager's animated settle.
func (h *HeaderCollapse) updateSnap(dt, delta, dist float32) {
	acc := &h.store.Acc

	if delta != 0 {
		h.idleTime = 0
		h.snapping = false
		return
	}

	h.idleTime += dt
	if !h.snapping {
		if h.idleTime < snapIdleDelay || acc.DiffClamp <= 0 || acc.DiffClamp >= dist {
			return
		}
		h.snapping = true
		if acc.DiffClamp/dist >= h.snapThreshold {
			h.snapTarget = dist
		} else {
			h.snapTarget = 0
		}
		tabLogger.Debug("header snap", "target", h.snapTarget, "diffClamp", acc.DiffClamp)
	}

	diff := h.snapTarget - acc.DiffClamp
	if absf32(diff) < snapDoneThreshold {
		acc.DiffClamp = h.snapTarget
		h.snapping = false
		return
	}
	acc.DiffClamp = clampf(acc.DiffClamp+diff*dt*snapSmoothSpeed, 0, dist)
}
