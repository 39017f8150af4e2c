package tabview

import "testing"

type transitionRig struct {
	store   *Store
	panes   *PaneSet
	pager   *Pager
	tracker *ScrollTracker
	header  *HeaderCollapse
	engine  *TransitionEngine
	changes []IndexChange
}

func newTransitionRig(t *testing.T, names ...string) *transitionRig {
	t.Helper()
	panes, err := NewPaneSet(names)
	if err != nil {
		t.Fatalf("NewPaneSet: %v", err)
	}
	store := NewStore()
	pager := NewPager(panes)
	pager.SetWidth(300)

	r := &transitionRig{
		store:   store,
		panes:   panes,
		pager:   pager,
		tracker: NewScrollTracker(store, panes),
		header:  NewHeaderCollapse(store, CollapseDirect, false, 0),
		engine:  NewTransitionEngine(store, panes, pager),
	}
	r.engine.SetNotify(func(c IndexChange) { r.changes = append(r.changes, c) })
	return r
}

func (r *transitionRig) advance() {
	r.engine.Tick(dt)
	r.header.Update(dt)
}

// swipeTo drags the pager to offsetX and releases with no residual
// velocity, which commits at the nearest pane immediately.
func (r *transitionRig) swipeTo(offsetX float32) {
	r.engine.DragBegin()
	r.engine.DragMove(offsetX)
	r.advance()
	r.advance() // second tick with no movement zeroes the velocity
	r.engine.DragEnd(offsetX)
	r.advance()
}

func TestSwipeCommitCarriesOffset(t *testing.T) {
	r := newTransitionRig(t, "a", "b")
	r.store.HeaderHeight.Set(100)

	// Pane a is deep in its content, pane b near the top.
	r.tracker.OnScroll(0, 120)
	r.tracker.OnScroll(1, 40)
	r.advance()
	if got := r.store.Translation.Get(); got != -100 {
		t.Fatalf("pre-commit translation = %v, want -100", got)
	}

	r.swipeTo(310)

	if got := r.store.ActiveIndex.Get(); got != 1 {
		t.Fatalf("ActiveIndex = %d, want 1", got)
	}
	if len(r.changes) != 1 {
		t.Fatalf("notifications = %d, want 1", len(r.changes))
	}
	want := IndexChange{PrevIndex: 0, Index: 1, PrevTab: "a", Tab: "b"}
	if r.changes[0] != want {
		t.Errorf("notification = %+v, want %+v", r.changes[0], want)
	}

	// carry = 120 - 40 = 80, folded into the accumulator exactly once.
	if got := r.store.Acc.OffsetCarry; got != 80 {
		t.Errorf("OffsetCarry = %v, want 80", got)
	}
	// The header did not move because of the switch.
	if got := r.store.Translation.Get(); got != -100 {
		t.Errorf("post-commit translation = %v, want unchanged -100", got)
	}

	// Pane b now drives: its raw offsets land on the carried timeline.
	r.tracker.OnScroll(1, 40)
	r.advance()
	if got := r.store.Translation.Get(); got != -100 {
		t.Errorf("translation after b scroll event = %v, want -100", got)
	}
	r.tracker.OnScroll(1, 0) // b scrolls back to its top
	r.advance()
	if got := r.store.Translation.Get(); got != -80 {
		t.Errorf("translation at b top = %v, want -80 (carry only)", got)
	}
}

func TestSwipeBackToActiveDoesNotNotify(t *testing.T) {
	r := newTransitionRig(t, "a", "b")
	r.swipeTo(40) // barely moved, rounds back to pane 0

	if got := r.store.ActiveIndex.Get(); got != 0 {
		t.Errorf("ActiveIndex = %d, want 0", got)
	}
	if len(r.changes) != 0 {
		t.Errorf("notifications = %d, want none", len(r.changes))
	}
	if r.store.Acc.OffsetCarry != 0 {
		t.Errorf("OffsetCarry = %v, want 0 after aborted swipe", r.store.Acc.OffsetCarry)
	}
}

func TestCommandsGatedDuringGesture(t *testing.T) {
	r := newTransitionRig(t, "a", "b", "c")

	r.engine.DragBegin()
	r.engine.DragMove(100)
	if r.engine.RequestIndex(2, true) {
		t.Error("RequestIndex accepted during swipe")
	}
	if got := r.store.ActiveIndex.Get(); got != 0 {
		t.Errorf("ActiveIndex moved during gesture: %d", got)
	}

	r.advance()
	r.advance()
	r.engine.DragEnd(100)
	r.advance()

	if !r.engine.RequestIndex(2, true) {
		t.Error("RequestIndex rejected while idle")
	}
}

func TestRequestIndexAnimatedCommitsOnSettle(t *testing.T) {
	r := newTransitionRig(t, "a", "b", "c")

	if !r.engine.RequestIndex(2, true) {
		t.Fatal("RequestIndex rejected")
	}
	if got := r.engine.State(); got != StateSnapping {
		t.Fatalf("state = %v, want snapping", got)
	}
	if !r.store.Flags.Snapping || r.store.Flags.SnapTarget != 2 {
		t.Fatalf("flags = %+v, want snapping toward 2", r.store.Flags)
	}
	// Commit must wait for the settle, not happen on request.
	if got := r.store.ActiveIndex.Get(); got != 0 {
		t.Fatalf("ActiveIndex committed early: %d", got)
	}

	for i := 0; i < 600 && r.engine.State() != StateIdle; i++ {
		r.advance()
	}
	if got := r.store.ActiveIndex.Get(); got != 2 {
		t.Errorf("ActiveIndex = %d, want 2", got)
	}
	if got := r.store.ContinuousIndex.Get(); got != 2 {
		t.Errorf("ContinuousIndex = %v, want 2", got)
	}
	if len(r.changes) != 1 || r.changes[0].Tab != "c" {
		t.Errorf("notifications = %+v, want one landing on c", r.changes)
	}
}

func TestRequestIndexRejectsOutOfRange(t *testing.T) {
	r := newTransitionRig(t, "a", "b")
	if r.engine.RequestIndex(-1, false) || r.engine.RequestIndex(2, false) {
		t.Error("out-of-range RequestIndex accepted")
	}
}

func TestRequestIndexInstant(t *testing.T) {
	r := newTransitionRig(t, "a", "b")
	if !r.engine.RequestIndex(1, false) {
		t.Fatal("RequestIndex rejected")
	}
	if got := r.store.ActiveIndex.Get(); got != 1 {
		t.Errorf("ActiveIndex = %d, want committed 1", got)
	}
	if !r.pager.Settled() || r.pager.Offset() != 300 {
		t.Errorf("pager not parked: offset %v settled %v", r.pager.Offset(), r.pager.Settled())
	}
}

func TestGlideCommitsAtProjectedPane(t *testing.T) {
	r := newTransitionRig(t, "a", "b", "c")

	r.engine.DragBegin()
	r.engine.DragMove(120)
	r.advance() // velocity = 120/dt, far above the glide minimum
	r.engine.DragEnd(120)

	if got := r.engine.State(); got != StateGliding {
		t.Fatalf("state after fast release = %v, want gliding", got)
	}
	for i := 0; i < 600 && r.engine.State() != StateIdle; i++ {
		r.advance()
	}
	// Projection is clamped to one pane from the active one.
	if got := r.store.ActiveIndex.Get(); got != 1 {
		t.Errorf("ActiveIndex = %d, want 1", got)
	}
}

func TestGlideNeverSkipsPanes(t *testing.T) {
	r := newTransitionRig(t, "a", "b", "c", "d")

	r.engine.DragBegin()
	r.engine.DragMove(500) // already past pane b
	r.advance()
	r.engine.DragEnd(500)
	for i := 0; i < 600 && r.engine.State() != StateIdle; i++ {
		r.advance()
	}
	if got := r.store.ActiveIndex.Get(); got != 1 {
		t.Errorf("ActiveIndex = %d, want clamped to neighbour 1", got)
	}
}

func TestMomentumEndCommitsAtRest(t *testing.T) {
	r := newTransitionRig(t, "a", "b", "c")

	r.engine.DragBegin()
	r.engine.DragMove(150)
	r.advance()
	r.engine.DragEnd(150)
	if got := r.engine.State(); got != StateGliding {
		t.Fatalf("state = %v, want gliding", got)
	}

	// Host momentum keeps feeding positions, then reports rest.
	r.engine.DragMove(480)
	r.engine.MomentumEnd(590)

	if got := r.store.ActiveIndex.Get(); got != 2 {
		t.Errorf("ActiveIndex = %d, want 2", got)
	}
	if got := r.engine.State(); got != StateIdle {
		t.Errorf("state = %v, want idle", got)
	}
}

func TestDragBeginCancelsSnap(t *testing.T) {
	r := newTransitionRig(t, "a", "b")
	r.engine.RequestIndex(1, true)
	r.advance()

	r.engine.DragBegin()
	if got := r.engine.State(); got != StateSwiping {
		t.Errorf("state = %v, want swiping", got)
	}
	if r.store.Flags.Snapping {
		t.Error("snapping flag survived DragBegin")
	}
	before := r.pager.Offset()
	r.advance()
	if got := r.pager.Offset(); got != before {
		t.Errorf("cancelled snap still animating: %v -> %v", before, got)
	}
}

func TestPendingTargetTracksMidpoint(t *testing.T) {
	r := newTransitionRig(t, "a", "b")

	r.engine.DragBegin()
	r.engine.DragMove(100)
	r.advance()
	if _, ok := r.engine.PendingTarget(); ok {
		t.Error("pending target set before the midpoint")
	}

	r.engine.DragMove(200)
	r.advance()
	target, ok := r.engine.PendingTarget()
	if !ok || target != 1 {
		t.Errorf("pending target = %d/%v, want 1/true", target, ok)
	}

	r.engine.DragMove(50)
	r.advance()
	if _, ok := r.engine.PendingTarget(); ok {
		t.Error("pending target survived moving back under the midpoint")
	}
}
