// Package tabview implements the scroll-synchronization engine behind a
// collapsible-header tab view: several independently scrollable content
// panes, a horizontally swipeable pager that switches between them, and a
// shared header that collapses as whichever pane is active scrolls.
//
// The package is the coordination core only. It consumes measured heights,
// raw per-pane scroll offsets and pager drag events from the host view
// layer, and exposes the derived values that layer renders from (active
// index, continuous index, header translation, pager opacity). Rendering,
// gesture recognition and scroll physics stay on the host side; a minimal
// OpenGL/GLFW host lives under backend/opengl and example/.
//
// A Container drives a single logical scroll timeline:
//
//	tv, err := tabview.New([]string{"posts", "photos", "about"},
//	    tabview.WithMinHeaderHeight(48),
//	    tabview.WithDiffClamp(),
//	    tabview.WithOnIndexChange(func(ch tabview.IndexChange) {
//	        log.Printf("focused %s", ch.Tab)
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Each frame, on the host's tick:
//	tv.Advance(deltaTime)
//	tv.Flush() // deliver queued callbacks on the host thread
//
//	// From the view layer:
//	tv.OnPaneScroll(paneIndex, offsetY)
//	tv.OnPagerDrag(tabview.PhaseMove, offsetX)
//	tv.OnTabPress("photos")
//
// All shared state lives in an explicit Store passed by reference to each
// component; every shared value has exactly one writer. The per-frame
// recomputation order is fixed: scroll accumulator, then diff-clamp, then
// header translation, so derived values never observe a partially updated
// accumulator.
package tabview
