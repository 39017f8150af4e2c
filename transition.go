package tabview

// TransitionState is the index transition engine's current mode.
type TransitionState int

const (
	// StateIdle means no transition is in flight. Initial and terminal.
	StateIdle TransitionState = iota
	// StateSwiping means a finger is dragging the pager.
	StateSwiping
	// StateGliding means the pager is settling under residual momentum
	// after release.
	StateGliding
	// StateSnapping means a programmatic (tab press / imperative) settle
	// is animating toward its target pane.
	StateSnapping
	// StateCommitting is the atomic instant at which the active index is
	// authoritatively updated. It is never observable across ticks.
	StateCommitting
)

// String returns a human-readable name for a transition state.
func (s TransitionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwiping:
		return "swiping"
	case StateGliding:
		return "gliding"
	case StateSnapping:
		return "snapping"
	case StateCommitting:
		return "committing"
	}
	return "?"
}

// IndexChange is the notification emitted when the active index commits to
// a new pane.
type IndexChange struct {
	PrevIndex int
	Index     int
	PrevTab   string
	Tab       string
}

// Glide tuning. Velocity is sampled from the pager position once per tick;
// a release faster than glideMinVelocity keeps moving, projected
// glideProjection seconds ahead to pick the landing pane.
const (
	glideMinVelocity float32 = 50
	glideProjection  float32 = 0.2
)

// TransitionEngine decides the next active pane from swipe, tap and
// imperative input, carries the scroll offset across the switch so the
// header does not jump, and notifies observers of the change.
//
// It is the only writer of Store.ActiveIndex and Store.Flags.
type TransitionEngine struct {
	store *Store
	panes *PaneSet
	pager *Pager

	state         TransitionState
	pendingTarget int
	velocity      float32
	lastOffset    float32

	notify func(IndexChange)
}

// NewTransitionEngine creates the engine over the shared store, pane set
// and pager bridge.
func NewTransitionEngine(store *Store, panes *PaneSet, pager *Pager) *TransitionEngine {
	return &TransitionEngine{
		store:         store,
		panes:         panes,
		pager:         pager,
		state:         StateIdle,
		pendingTarget: -1,
	}
}

// SetNotify registers the change-notification sink. The container points
// this at its host-callback dispatch queue.
func (e *TransitionEngine) SetNotify(fn func(IndexChange)) {
	e.notify = fn
}

// State returns the engine's current transition state.
func (e *TransitionEngine) State() TransitionState {
	return e.state
}

// PendingTarget returns the pane that would become active if the gesture
// were released now, and whether one is recorded. Only set while swiping
// or gliding with the pager past the midpoint to a neighbour.
func (e *TransitionEngine) PendingTarget() (int, bool) {
	if e.pendingTarget < 0 {
		return 0, false
	}
	return e.pendingTarget, true
}

// DragBegin starts a swipe. Any in-flight glide or programmatic snap is
// cancelled immediately; the finger takes authority over the pager.
func (e *TransitionEngine) DragBegin() {
	e.state = StateSwiping
	e.store.Flags = TransitionFlags{Swiping: true}
	e.velocity = 0
	e.lastOffset = e.pager.Offset()
	// Cancel a running animated settle without moving.
	e.pager.SetOffset(e.pager.Offset())
}

// DragMove carries a new pager position while the finger is down, or while
// host-driven momentum is running after release.
func (e *TransitionEngine) DragMove(offsetX float32) {
	if e.state != StateSwiping && e.state != StateGliding {
		return
	}
	e.pager.SetOffset(offsetX)
}

// DragEnd releases the swipe. With residual velocity the engine glides to
// the projected landing pane; a dead release settles directly on the
// nearest pane boundary.
func (e *TransitionEngine) DragEnd(offsetX float32) {
	if e.state != StateSwiping {
		return
	}
	e.pager.SetOffset(offsetX)
	e.store.Flags.Swiping = false

	if absf32(e.velocity) >= glideMinVelocity {
		e.state = StateGliding
		e.store.Flags.Gliding = true
		e.pager.MoveTo(e.glideTarget(), true)
		return
	}
	e.settle(e.pager.IndexAt(e.pager.ContinuousIndex()))
}

// MomentumEnd receives the host's momentum-scroll rest position and
// commits wherever the pager came to rest.
func (e *TransitionEngine) MomentumEnd(offsetX float32) {
	if e.state != StateGliding && e.state != StateSwiping {
		return
	}
	e.pager.SetOffset(offsetX)
	e.store.Flags.Swiping = false
	e.settle(e.pager.IndexAt(e.pager.ContinuousIndex()))
}

// RequestIndex asks for a programmatic move to pane i (tab press or
// imperative command). Rejected with false while a gesture-driven
// transition is in flight, or for an out-of-range ordinal.
func (e *TransitionEngine) RequestIndex(i int, animated bool) bool {
	if i < 0 || i >= e.panes.Len() {
		return false
	}
	if e.store.GestureInFlight() {
		tabLogger.Debug("index request rejected during gesture", "index", i, "state", e.state.String())
		return false
	}

	if !animated {
		e.settle(i)
		return true
	}
	e.state = StateSnapping
	e.store.Flags = TransitionFlags{Snapping: true, SnapTarget: i}
	e.pager.MoveTo(i, true)
	return true
}

// Cancel aborts any in-flight transition without committing. Used when the
// pane set is replaced under the engine and stale ordinals must not land.
func (e *TransitionEngine) Cancel() {
	e.state = StateIdle
	e.pendingTarget = -1
	e.velocity = 0
	e.store.Flags = TransitionFlags{}
	e.pager.SetOffset(e.pager.Offset())
}

// Tick runs once per frame: samples swipe velocity, advances any animated
// settle, republishes the continuous index, tracks the pending target and
// commits when a glide or snap reaches its integer boundary.
func (e *TransitionEngine) Tick(dt float32) {
	off := e.pager.Offset()
	if e.state == StateSwiping && dt > 0 {
		e.velocity = (off - e.lastOffset) / dt
	}
	e.lastOffset = off

	e.pager.Update(dt)

	continuous := e.pager.ContinuousIndex()
	e.store.ContinuousIndex.Set(continuous)

	switch e.state {
	case StateSwiping, StateGliding:
		if next := e.pager.IndexAt(continuous); next != e.store.ActiveIndex.Get() {
			e.pendingTarget = next
		} else {
			e.pendingTarget = -1
		}
	}

	if (e.state == StateGliding || e.state == StateSnapping) && e.pager.Settled() {
		e.commit(e.pager.TargetIndex())
	}
}

// glideTarget projects the release velocity ahead to pick the landing
// pane, never further than one pane from the active one.
func (e *TransitionEngine) glideTarget() int {
	continuous := e.pager.ContinuousIndex()
	if w := e.pager.Width(); w > 0 {
		continuous += e.velocity * glideProjection / w
	}
	active := e.store.ActiveIndex.Get()
	return clampi(e.pager.IndexAt(continuous), active-1, active+1)
}

// settle lands the pager on pane i instantly and commits. The committing
// state is atomic: it is entered and left within the same call.
func (e *TransitionEngine) settle(i int) {
	e.state = StateCommitting
	e.pager.MoveTo(i, false)
	e.store.ContinuousIndex.Set(e.pager.ContinuousIndex())
	e.commit(i)
}

// commit authoritatively switches the active pane. The scroll offset
// difference between the outgoing and incoming pane is folded into the
// accumulator (offset carry) so the header translation computed
// immediately after the commit equals the one immediately before it.
func (e *TransitionEngine) commit(i int) {
	prev := e.store.ActiveIndex.Get()
	e.pendingTarget = -1
	e.store.Flags = TransitionFlags{}
	e.state = StateIdle

	if i == prev {
		return
	}

	prevPane := e.panes.At(prev)
	nextPane := e.panes.At(i)
	if nextPane == nil {
		return
	}

	if prevPane != nil {
		carry := prevPane.ScrollOffset - nextPane.ScrollOffset
		acc := &e.store.Acc
		acc.OffsetCarry += carry
		acc.Current += carry
		acc.Previous += carry
	}
	nextPane.Mounted = true

	e.store.ActiveIndex.Set(i)
	tabLogger.Debug("index committed", "prev", prev, "index", i, "tab", nextPane.Name)

	if e.notify != nil {
		change := IndexChange{PrevIndex: prev, Index: i, Tab: nextPane.Name}
		if prevPane != nil {
			change.PrevTab = prevPane.Name
		}
		e.notify(change)
	}
}
