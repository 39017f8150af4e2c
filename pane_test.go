package tabview

import (
	"errors"
	"testing"
)

func TestNewPaneSet(t *testing.T) {
	ps, err := NewPaneSet([]string{"home", "feed", "profile"})
	if err != nil {
		t.Fatalf("NewPaneSet: %v", err)
	}
	if ps.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ps.Len())
	}
	for i, want := range []string{"home", "feed", "profile"} {
		p := ps.At(i)
		if p.Name != want || p.Index != i {
			t.Errorf("pane %d = {%q, %d}, want {%q, %d}", i, p.Name, p.Index, want, i)
		}
	}
}

func TestNewPaneSetEmpty(t *testing.T) {
	if _, err := NewPaneSet(nil); !errors.Is(err, ErrEmptyPaneSet) {
		t.Errorf("err = %v, want ErrEmptyPaneSet", err)
	}
}

func TestNewPaneSetDuplicate(t *testing.T) {
	_, err := NewPaneSet([]string{"a", "b", "a"})
	var dup *DuplicatePaneError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want DuplicatePaneError", err)
	}
	if dup.Name != "a" {
		t.Errorf("duplicate name = %q, want %q", dup.Name, "a")
	}
}

func TestPaneSetLookup(t *testing.T) {
	ps, _ := NewPaneSet([]string{"a", "b"})
	if ps.At(-1) != nil || ps.At(2) != nil {
		t.Error("out-of-range At must return nil")
	}
	if ps.ByName("c") != nil {
		t.Error("unknown ByName must return nil")
	}
	if got := ps.IndexOf("b"); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := ps.IndexOf("c"); got != -1 {
		t.Errorf("IndexOf(c) = %d, want -1", got)
	}
}

func TestReconcileRetainsState(t *testing.T) {
	ps, _ := NewPaneSet([]string{"a", "b", "c"})
	ps.ByName("b").ScrollOffset = 120
	ps.ByName("b").Mounted = true

	if err := ps.Reconcile([]string{"c", "b", "d"}); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	if got := ps.Names(); len(got) != 3 || got[0] != "c" || got[1] != "b" || got[2] != "d" {
		t.Fatalf("Names() = %v, want [c b d]", got)
	}
	b := ps.ByName("b")
	if b.ScrollOffset != 120 || !b.Mounted {
		t.Errorf("retained pane lost state: offset=%v mounted=%v", b.ScrollOffset, b.Mounted)
	}
	if b.Index != 1 {
		t.Errorf("retained pane index = %d, want 1", b.Index)
	}
	if d := ps.ByName("d"); d.ScrollOffset != 0 || d.Mounted {
		t.Errorf("new pane not fresh: offset=%v mounted=%v", d.ScrollOffset, d.Mounted)
	}
	if ps.ByName("a") != nil {
		t.Error("dropped pane still present")
	}
}

func TestReconcileRejectsBadSets(t *testing.T) {
	ps, _ := NewPaneSet([]string{"a", "b"})
	if err := ps.Reconcile(nil); !errors.Is(err, ErrEmptyPaneSet) {
		t.Errorf("empty: err = %v, want ErrEmptyPaneSet", err)
	}
	var dup *DuplicatePaneError
	if err := ps.Reconcile([]string{"x", "x"}); !errors.As(err, &dup) {
		t.Errorf("duplicate: err = %v, want DuplicatePaneError", err)
	}
	// Failed reconciles must leave the set untouched.
	if got := ps.Names(); len(got) != 2 || got[0] != "a" {
		t.Errorf("pane set mutated by failed Reconcile: %v", got)
	}
}

func TestScrollTrackerRouting(t *testing.T) {
	store := NewStore()
	ps, _ := NewPaneSet([]string{"a", "b"})
	tr := NewScrollTracker(store, ps)

	// Active pane feeds the accumulator.
	tr.OnScroll(0, 80)
	if ps.At(0).ScrollOffset != 80 || !ps.At(0).Mounted {
		t.Errorf("pane 0 = {offset %v, mounted %v}", ps.At(0).ScrollOffset, ps.At(0).Mounted)
	}
	if store.Acc.Current != 80 {
		t.Errorf("Acc.Current = %v, want 80", store.Acc.Current)
	}

	// Inactive pane records only.
	tr.OnScroll(1, 30)
	if ps.At(1).ScrollOffset != 30 {
		t.Errorf("pane 1 offset = %v, want 30", ps.At(1).ScrollOffset)
	}
	if store.Acc.Current != 80 {
		t.Errorf("inactive scroll leaked into accumulator: %v", store.Acc.Current)
	}

	// Unknown ordinal is dropped.
	tr.OnScroll(5, 999)
	if store.Acc.Current != 80 {
		t.Errorf("unknown pane scroll leaked: %v", store.Acc.Current)
	}
}

func TestSnapshotAll(t *testing.T) {
	store := NewStore()
	ps, _ := NewPaneSet([]string{"a", "b", "c"})
	tr := NewScrollTracker(store, ps)

	tr.OnScroll(0, 10)
	tr.OnScroll(2, 30)

	got := tr.SnapshotAll()
	want := []float32{10, 0, 30}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("offset[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScrollTrackerAppliesCarry(t *testing.T) {
	store := NewStore()
	ps, _ := NewPaneSet([]string{"a", "b"})
	tr := NewScrollTracker(store, ps)

	store.ActiveIndex.Set(1)
	store.Acc.OffsetCarry = 40

	tr.OnScroll(1, 10)
	if store.Acc.Current != 50 {
		t.Errorf("Acc.Current = %v, want raw+carry = 50", store.Acc.Current)
	}
}
