package tabview

import "sync"

// Value is a single observable cell in the shared store.
//
// Writes are last-write-wins and observers are notified synchronously, so a
// subscriber always sees the new value before the tick that produced it
// ends. Unlike a general pub/sub bus there is no unsubscribe: observers
// live as long as the container that registered them.
//
// Value is fully generic - no runtime type checks, no boxing of primitive
// types.
type Value[T any] struct {
	mu        sync.RWMutex
	v         T
	observers []func(T)
}

// Get returns the current value.
func (c *Value[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

// Set stores a new value and notifies all observers with it.
// Observers run on the caller's goroutine, outside the cell's lock, in
// registration order.
func (c *Value[T]) Set(v T) {
	c.mu.Lock()
	c.v = v
	obs := c.observers
	c.mu.Unlock()

	for _, fn := range obs {
		fn(v)
	}
}

// Observe registers fn to be called on every subsequent Set.
func (c *Value[T]) Observe(fn func(T)) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

// ScrollAccumulator is the shared running-scroll state of the driving pane.
//
// Current is the accumulated scroll of the single logical timeline: the
// active pane's raw offset plus OffsetCarry, the correction built up at
// pane-switch commits so the timeline (and the header computed from it)
// stays continuous even though each pane scrolls independently. Previous is
// last tick's Current; DiffClamp integrates their clamped difference.
//
// Owned exclusively by the header calculator and the transition engine.
// Panes never read it.
type ScrollAccumulator struct {
	Current     float32
	Previous    float32
	DiffClamp   float32
	OffsetCarry float32
}

// TransitionFlags gate imperative commands against gesture-driven
// transitions. While Swiping or Gliding is set, SetIndex/JumpToTab are
// rejected so the gesture stays the single authoritative writer of the
// active index.
type TransitionFlags struct {
	Swiping    bool
	Gliding    bool
	Snapping   bool
	SnapTarget int
}

// Store holds every value shared between the engine's components. It is
// created once per Container and passed by reference to each component
// constructor; each field has exactly one writer, enforced by component
// ownership rather than by the type system.
type Store struct {
	// ActiveIndex is the authoritative focused pane ordinal. Written only
	// by the transition engine.
	ActiveIndex Value[int]

	// ContinuousIndex tracks the pager's real-valued position: integer
	// part is the active pane during a drag, fractional part is the
	// transition progress. It observes ActiveIndex, never sets it.
	ContinuousIndex Value[float32]

	// Header geometry, written only by layout measurement callbacks.
	HeaderHeight    Value[float32]
	MinHeaderHeight Value[float32]
	TabBarHeight    Value[float32]
	ContainerHeight Value[float32]

	// Translation is the derived visible header transform, written only
	// by the header collapse calculator.
	Translation Value[float32]

	// PagerOpacity hides the pager until the initial layout pass has
	// completed. Written only by the container.
	PagerOpacity Value[float32]

	// Acc and Flags are plain shared state with single owners; they are
	// recomputed every tick and intentionally not observable.
	Acc   ScrollAccumulator
	Flags TransitionFlags
}

// NewStore creates an empty store. The pager is hidden (opacity 0) until
// the container sees its first layout.
func NewStore() *Store {
	return &Store{}
}

// ScrollDistance returns the collapsible height of the header,
// headerHeight - minHeaderHeight, clamped to be non-negative.
func (s *Store) ScrollDistance() float32 {
	return maxf(0, s.HeaderHeight.Get()-s.MinHeaderHeight.Get())
}

// GestureInFlight reports whether a gesture-driven transition currently
// owns the active index.
func (s *Store) GestureInFlight() bool {
	return s.Flags.Swiping || s.Flags.Gliding
}
