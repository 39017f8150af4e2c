package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/tabview"
)

// Pixels of vertical scroll per wheel notch.
const wheelScrollSpeed = 40

// GLFWGestureAdapter translates GLFW mouse input into tabview gestures:
// horizontal drags in the pane area become pager drag phases, the wheel
// scrolls the focused pane, and clicks in the tab bar become tab presses.
type GLFWGestureAdapter struct {
	window *glfw.Window
	view   *tabview.Container

	headerHeight float32
	tabBarHeight float32
	paneWidth    float32

	dragging    bool
	dragStartX  float32
	startOffset float32
	lastX       float32

	scrollPos []float32
}

// NewGLFWGestureAdapter wires the window's input callbacks to the
// container. headerHeight and tabBarHeight describe the demo layout so
// clicks can be routed to the right region.
func NewGLFWGestureAdapter(window *glfw.Window, view *tabview.Container, headerHeight, tabBarHeight float32) *GLFWGestureAdapter {
	a := &GLFWGestureAdapter{
		window:       window,
		view:         view,
		headerHeight: headerHeight,
		tabBarHeight: tabBarHeight,
		scrollPos:    make([]float32, len(view.PaneNames())),
	}

	w, _ := window.GetFramebufferSize()
	a.setWidth(float32(w))

	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)

	return a
}

// PaneWidth returns the current pane width in pixels.
func (a *GLFWGestureAdapter) PaneWidth() float32 {
	return a.paneWidth
}

// PaneScroll returns the demo scroll position of pane index.
func (a *GLFWGestureAdapter) PaneScroll(index int) float32 {
	if index < 0 || index >= len(a.scrollPos) {
		return 0
	}
	return a.scrollPos[index]
}

// ScrollToTop resets the demo scroll position of the named pane. Wire it
// to the container's scroll-to-top callback.
func (a *GLFWGestureAdapter) ScrollToTop(tab string) {
	for i, name := range a.view.PaneNames() {
		if name == tab {
			a.scrollPos[i] = 0
			a.view.OnPaneScroll(i, 0)
			return
		}
	}
}

func (a *GLFWGestureAdapter) setWidth(w float32) {
	a.paneWidth = w
	a.view.SetViewportWidth(w)
}

// tabBarTop returns the tab bar's current screen position, following the
// collapsed header.
func (a *GLFWGestureAdapter) tabBarTop() float32 {
	return a.headerHeight + a.view.HeaderTranslation()
}

func (a *GLFWGestureAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	x64, y64 := a.window.GetCursorPos()
	x, y := float32(x64), float32(y64)

	switch action {
	case glfw.Press:
		tabTop := a.tabBarTop()
		if y >= tabTop && y < tabTop+a.tabBarHeight {
			names := a.view.PaneNames()
			if n := len(names); n > 0 && a.paneWidth > 0 {
				if i := int(x / (a.paneWidth / float32(n))); i >= 0 && i < n {
					a.view.OnTabPress(names[i])
				}
			}
			return
		}
		if y >= tabTop+a.tabBarHeight {
			a.dragging = true
			a.dragStartX = x
			a.lastX = x
			a.startOffset = a.view.ContinuousIndex() * a.paneWidth
			a.view.OnPagerDrag(tabview.PhaseBegin, a.startOffset)
		}
	case glfw.Release:
		if !a.dragging {
			return
		}
		a.dragging = false
		a.view.OnPagerDrag(tabview.PhaseEnd, a.dragOffset(a.lastX))
	}
}

func (a *GLFWGestureAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if !a.dragging {
		return
	}
	a.lastX = float32(xpos)
	a.view.OnPagerDrag(tabview.PhaseMove, a.dragOffset(a.lastX))
}

// dragOffset maps the cursor position to a pager offset: dragging the
// content left moves the pager toward higher indices.
func (a *GLFWGestureAdapter) dragOffset(x float32) float32 {
	return a.startOffset + (a.dragStartX - x)
}

func (a *GLFWGestureAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	i := a.view.GetCurrentIndex()
	if i < 0 || i >= len(a.scrollPos) {
		return
	}
	pos := a.scrollPos[i] - float32(yoff)*wheelScrollSpeed
	if pos < 0 {
		pos = 0
	}
	a.scrollPos[i] = pos
	a.view.OnPaneScroll(i, pos)
}

func (a *GLFWGestureAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	if width > 0 {
		a.setWidth(float32(width))
	}
}
