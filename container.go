package tabview

import "fmt"

// Option configures a Container at construction.
type Option func(*containerConfig)

type containerConfig struct {
	initialTab      string
	minHeaderHeight float32
	mode            CollapseMode
	snapEnabled     bool
	snapThreshold   float32
	paneWidth       float32
	lazy            bool
	onIndexChange   func(IndexChange)
	onScrollToTop   func(tab string)
}

// WithInitialTab focuses the named pane at construction instead of the
// first declared one.
func WithInitialTab(name string) Option {
	return func(c *containerConfig) { c.initialTab = name }
}

// WithMinHeaderHeight pins the given height of the header on screen; only
// the remainder collapses.
func WithMinHeaderHeight(h float32) Option {
	return func(c *containerConfig) { c.minHeaderHeight = h }
}

// WithSnap enables header snapping: after scrolling rests partway through
// the collapse, the header animates fully open or fully collapsed.
// threshold in (0,1) is the collapsed fraction above which it closes.
func WithSnap(threshold float32) Option {
	return func(c *containerConfig) {
		c.snapEnabled = true
		c.snapThreshold = clampf(threshold, 0, 1)
	}
}

// WithDiffClamp selects the diff-clamp collapse mode, where the header
// re-expands on any upward scroll regardless of absolute offset.
func WithDiffClamp() Option {
	return func(c *containerConfig) { c.mode = CollapseDiffClamp }
}

// WithPaneWidth sets the pane width up front, for hosts that know their
// viewport before the first layout callback.
func WithPaneWidth(w float32) Option {
	return func(c *containerConfig) { c.paneWidth = w }
}

// WithLazy defers mounting panes until they are first focused.
func WithLazy() Option {
	return func(c *containerConfig) { c.lazy = true }
}

// WithOnIndexChange registers the focus-change callback. It is invoked
// from Flush, never from inside the engine tick.
func WithOnIndexChange(fn func(IndexChange)) Option {
	return func(c *containerConfig) { c.onIndexChange = fn }
}

// WithOnScrollToTop registers the callback fired when the already-focused
// tab is selected again. Hosts normally scroll that pane back to the top.
func WithOnScrollToTop(fn func(tab string)) Option {
	return func(c *containerConfig) { c.onScrollToTop = fn }
}

// Container is the single entry point for a host view. It owns the shared
// store and wires the scroll tracker, header calculator, transition engine
// and pager together; hosts feed it input events and layout measurements,
// call Advance once per frame, and read the derived values back out.
//
// All methods must be called from the host's UI thread.
type Container struct {
	store   *Store
	panes   *PaneSet
	pager   *Pager
	tracker *ScrollTracker
	header  *HeaderCollapse
	engine  *TransitionEngine
	queue   dispatchQueue

	onIndexChange func(IndexChange)
	onScrollToTop func(tab string)

	lazy    bool
	laidOut bool
}

// New creates a container over the declared pane names.
func New(paneNames []string, opts ...Option) (*Container, error) {
	cfg := containerConfig{snapThreshold: 0.5}
	for _, opt := range opts {
		opt(&cfg)
	}

	panes, err := NewPaneSet(paneNames)
	if err != nil {
		return nil, err
	}

	initial := 0
	if cfg.initialTab != "" {
		initial = panes.IndexOf(cfg.initialTab)
		if initial < 0 {
			return nil, fmt.Errorf("initial tab %q: %w", cfg.initialTab, ErrUnknownTab)
		}
	}

	store := NewStore()
	store.MinHeaderHeight.Set(cfg.minHeaderHeight)
	store.ActiveIndex.Set(initial)

	c := &Container{
		store:         store,
		panes:         panes,
		pager:         NewPager(panes),
		tracker:       NewScrollTracker(store, panes),
		onIndexChange: cfg.onIndexChange,
		onScrollToTop: cfg.onScrollToTop,
		lazy:          cfg.lazy,
	}
	c.header = NewHeaderCollapse(store, cfg.mode, cfg.snapEnabled, cfg.snapThreshold)
	c.engine = NewTransitionEngine(store, panes, c.pager)
	c.engine.SetNotify(c.postIndexChange)

	if cfg.lazy {
		panes.At(initial).Mounted = true
	} else {
		for i := 0; i < panes.Len(); i++ {
			panes.At(i).Mounted = true
		}
	}

	if cfg.paneWidth > 0 {
		c.SetViewportWidth(cfg.paneWidth)
	}
	return c, nil
}

// Advance runs one engine tick: the transition engine first (it may fold a
// commit carry into the accumulator), then the header calculator, so the
// translation published this tick already reflects any pane switch.
func (c *Container) Advance(dt float32) {
	c.engine.Tick(dt)
	c.header.Update(dt)
}

// Flush runs pending host callbacks (index changes, scroll-to-top) on the
// calling thread. Call it once per frame after Advance, at a point where
// re-entering the container is safe.
func (c *Container) Flush() {
	c.queue.flush()
}

// OnPaneScroll feeds a pane's vertical scroll position into the tracker.
func (c *Container) OnPaneScroll(index int, offsetY float32) {
	c.tracker.OnScroll(index, offsetY)
}

// OnPagerDrag feeds a horizontal pager gesture event.
func (c *Container) OnPagerDrag(phase DragPhase, offsetX float32) {
	switch phase {
	case PhaseBegin:
		c.engine.DragBegin()
		c.engine.DragMove(offsetX)
	case PhaseMove:
		c.engine.DragMove(offsetX)
	case PhaseEnd:
		c.engine.DragEnd(offsetX)
	case PhaseMomentumEnd:
		c.engine.MomentumEnd(offsetX)
	}
}

// OnTabPress handles a tap on the named tab. Selecting the focused tab
// again requests a scroll to top instead of a transition. Returns false
// when the press is rejected (mid-gesture or unknown name).
func (c *Container) OnTabPress(name string) bool {
	i := c.panes.IndexOf(name)
	if i < 0 {
		return false
	}
	return c.selectIndex(i, true)
}

// SetIndex imperatively focuses pane index with an animated transition.
// Rejected with false while a swipe or glide owns the index.
func (c *Container) SetIndex(index int) bool {
	return c.selectIndex(index, true)
}

// JumpToTab focuses the named pane without animation.
// Rejected with false for unknown names or while a gesture is in flight.
func (c *Container) JumpToTab(name string) bool {
	i := c.panes.IndexOf(name)
	if i < 0 {
		return false
	}
	return c.selectIndex(i, false)
}

func (c *Container) selectIndex(index int, animated bool) bool {
	if index < 0 || index >= c.panes.Len() {
		return false
	}
	if c.store.GestureInFlight() {
		return false
	}
	if index == c.store.ActiveIndex.Get() {
		name := c.panes.At(index).Name
		c.queue.post(func() {
			if c.onScrollToTop != nil {
				c.onScrollToTop(name)
			}
		})
		return true
	}
	return c.engine.RequestIndex(index, animated)
}

// GetCurrentIndex returns the authoritative focused pane ordinal.
func (c *Container) GetCurrentIndex() int {
	return c.store.ActiveIndex.Get()
}

// GetFocusedTab returns the focused pane's name.
func (c *Container) GetFocusedTab() string {
	if p := c.panes.At(c.store.ActiveIndex.Get()); p != nil {
		return p.Name
	}
	return ""
}

// ContinuousIndex returns the pager's real-valued position.
func (c *Container) ContinuousIndex() float32 {
	return c.store.ContinuousIndex.Get()
}

// HeaderTranslation returns the derived header transform, in [-scrollDistance, 0].
func (c *Container) HeaderTranslation() float32 {
	return c.store.Translation.Get()
}

// PagerOpacity returns 0 before the first layout pass, 1 after.
func (c *Container) PagerOpacity() float32 {
	return c.store.PagerOpacity.Get()
}

// Mounted reports whether pane index has been mounted, either eagerly at
// construction or lazily on first focus.
func (c *Container) Mounted(index int) bool {
	p := c.panes.At(index)
	return p != nil && p.Mounted
}

// Store exposes the shared store for observers. Read-only by convention.
func (c *Container) Store() *Store {
	return c.store
}

// SetHeaderHeight records a header measurement. Unchanged values are
// dropped so repeated identical layout callbacks stay cheap.
func (c *Container) SetHeaderHeight(h float32) {
	if c.store.HeaderHeight.Get() == h {
		return
	}
	c.store.HeaderHeight.Set(h)
}

// SetTabBarHeight records a tab bar measurement.
func (c *Container) SetTabBarHeight(h float32) {
	if c.store.TabBarHeight.Get() == h {
		return
	}
	c.store.TabBarHeight.Set(h)
}

// SetContainerHeight records the overall container measurement.
func (c *Container) SetContainerHeight(h float32) {
	if c.store.ContainerHeight.Get() == h {
		return
	}
	c.store.ContainerHeight.Set(h)
}

// SetViewportWidth records the pane width. The first call reveals the
// pager; any width change repositions it instantly under the focused pane
// with no transition and no focus notification.
func (c *Container) SetViewportWidth(w float32) {
	if w <= 0 {
		return
	}
	changed := c.pager.SetWidth(w)
	if !c.laidOut {
		c.laidOut = true
		c.store.PagerOpacity.Set(1)
		changed = true
	}
	if changed {
		c.pager.MoveTo(c.store.ActiveIndex.Get(), false)
		c.store.ContinuousIndex.Set(c.pager.ContinuousIndex())
	}
}

// SetPanes replaces the declared pane set, diffing by name. A surviving
// focused pane keeps focus (its ordinal may shift) with no notification.
// If the focused pane is removed, focus recovers to the same ordinal
// clamped into range and a change notification fires; the recovered pane
// keeps whatever scroll offset it already had.
func (c *Container) SetPanes(names []string) error {
	prevIndex := c.store.ActiveIndex.Get()
	prevName := c.GetFocusedTab()

	if err := c.panes.Reconcile(names); err != nil {
		return err
	}
	c.engine.Cancel()

	if i := c.panes.IndexOf(prevName); i >= 0 {
		if i != prevIndex {
			c.store.ActiveIndex.Set(i)
		}
		c.pager.MoveTo(i, false)
		c.store.ContinuousIndex.Set(c.pager.ContinuousIndex())
		return nil
	}

	recoveredIndex := clampi(prevIndex, 0, c.panes.Len()-1)
	recovered := c.panes.At(recoveredIndex)
	recovered.Mounted = true

	// Rebase the carry so the accumulated scroll timeline stays where it
	// was; the header must not move because a pane disappeared.
	c.store.Acc.OffsetCarry = c.store.Acc.Current - recovered.ScrollOffset

	c.store.ActiveIndex.Set(recoveredIndex)
	c.pager.MoveTo(recoveredIndex, false)
	c.store.ContinuousIndex.Set(c.pager.ContinuousIndex())

	c.postIndexChange(IndexChange{
		PrevIndex: prevIndex,
		Index:     recoveredIndex,
		PrevTab:   prevName,
		Tab:       recovered.Name,
	})
	return nil
}

// PaneNames returns the declared pane names in order.
func (c *Container) PaneNames() []string {
	return c.panes.Names()
}

// PaneScrollOffset returns the last reported vertical offset of pane index.
func (c *Container) PaneScrollOffset(index int) float32 {
	if p := c.panes.At(index); p != nil {
		return p.ScrollOffset
	}
	return 0
}

func (c *Container) postIndexChange(change IndexChange) {
	c.queue.post(func() {
		if c.onIndexChange != nil {
			c.onIndexChange(change)
		}
	})
}
