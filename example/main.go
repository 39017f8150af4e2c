// Example demonstrates the tabview engine driving a collapsing header,
// tab bar and horizontally swipeable panes in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Drag horizontally below the tab bar to swipe between panes, scroll the
// wheel to collapse the header, and click a tab to jump. The window title
// tracks the focused tab.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/tabview"
	"github.com/go-theft-auto/tabview/backend/opengl"
)

const (
	windowWidth  = 480
	windowHeight = 720
	windowTitle  = "tabview example"

	headerHeight    = 160
	minHeaderHeight = 48
	tabBarHeight    = 44
	rowHeight       = 56
	rowGap          = 10
)

// One accent color per pane.
var paneColors = [][3]float32{
	{0.26, 0.52, 0.96},
	{0.91, 0.30, 0.24},
	{0.18, 0.70, 0.45},
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	var adapter *opengl.GLFWGestureAdapter
	view, err := tabview.New([]string{"Feed", "Search", "Profile"},
		tabview.WithMinHeaderHeight(minHeaderHeight),
		tabview.WithDiffClamp(),
		tabview.WithSnap(0.5),
		tabview.WithOnIndexChange(func(c tabview.IndexChange) {
			window.SetTitle(windowTitle + " - " + c.Tab)
		}),
		tabview.WithOnScrollToTop(func(tab string) {
			adapter.ScrollToTop(tab)
		}),
	)
	if err != nil {
		return fmt.Errorf("tabview: %w", err)
	}
	view.SetHeaderHeight(headerHeight)
	view.SetTabBarHeight(tabBarHeight)
	view.SetContainerHeight(windowHeight)

	adapter = opengl.NewGLFWGestureAdapter(window, view, headerHeight, tabBarHeight)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		view.Advance(dt)
		view.Flush()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.10, 0.10, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		renderer.Begin()
		drawFrame(renderer, view, adapter, float32(w), float32(h))
		renderer.End()

		window.SwapBuffers()
	}

	return nil
}

// drawFrame renders the header, tab bar and pane strip from the
// container's derived values.
func drawFrame(r *opengl.Renderer, view *tabview.Container, adapter *opengl.GLFWGestureAdapter, width, height float32) {
	translation := view.HeaderTranslation()
	continuous := view.ContinuousIndex()
	opacity := view.PagerOpacity()
	names := view.PaneNames()
	n := len(names)
	paneW := adapter.PaneWidth()

	contentTop := headerHeight + tabBarHeight + translation

	// Pane strip, shifted by the continuous index.
	for i := 0; i < n; i++ {
		x := (float32(i) - continuous) * paneW
		if x+paneW <= 0 || x >= width {
			continue
		}
		c := paneColors[i%len(paneColors)]

		// Content rows scrolled by the pane's own offset.
		scroll := adapter.PaneScroll(i)
		for row := 0; row < 40; row++ {
			y := contentTop + float32(row)*(rowHeight+rowGap) - scroll
			if y+rowHeight < contentTop || y > height {
				continue
			}
			r.Rect(x+16, y, paneW-32, rowHeight, c[0], c[1], c[2], 0.35*opacity)
		}
	}

	// Header on top of the content, sliding up as it collapses.
	r.Rect(0, translation, width, headerHeight, 0.17, 0.17, 0.20, 1)
	r.Rect(16, translation+16, width-32, headerHeight-minHeaderHeight-32, 0.30, 0.30, 0.36, 1)

	// Tab bar pinned under the header.
	tabTop := headerHeight + translation
	r.Rect(0, tabTop, width, tabBarHeight, 0.13, 0.13, 0.16, 1)
	if n > 0 {
		tabW := width / float32(n)
		active := view.GetCurrentIndex()
		for i := 0; i < n; i++ {
			c := paneColors[i%len(paneColors)]
			alpha := float32(0.25)
			if i == active {
				alpha = 0.6
			}
			r.Rect(float32(i)*tabW+8, tabTop+8, tabW-16, tabBarHeight-16, c[0], c[1], c[2], alpha)
		}
		// Indicator tracks the continuous index through a swipe.
		r.Rect(continuous*tabW, tabTop+tabBarHeight-4, tabW, 4, 0.95, 0.95, 0.95, opacity)
	}
}
