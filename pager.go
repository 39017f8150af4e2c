package tabview

import "math"

// Pager maps the continuous physical swipe position to a real-valued pane
// index and back. The integer part of the continuous index is the active
// pane during a drag; the fractional part is the transition progress used
// for interpolated header/tab-bar visuals.
//
// The pager never writes the active index itself. It only carries position;
// the transition engine watches it for integer-boundary settles.
type Pager struct {
	panes *PaneSet

	width     float32
	offset    float32
	target    float32
	animating bool
}

// NewPager creates a pager over the given pane set.
func NewPager(panes *PaneSet) *Pager {
	return &Pager{panes: panes}
}

// Width returns the current pane width (viewport width).
func (p *Pager) Width() float32 {
	return p.width
}

// SetWidth updates the pane width. Returns true if the width changed.
func (p *Pager) SetWidth(w float32) bool {
	if w == p.width {
		return false
	}
	p.width = w
	return true
}

// Offset returns the current horizontal position in pixels.
func (p *Pager) Offset() float32 {
	return p.offset
}

// SetOffset positions the pager directly from a host drag/momentum event.
// Host positions are authoritative: any in-flight animated settle is
// cancelled. The offset is clamped to the valid page range.
func (p *Pager) SetOffset(x float32) {
	p.animating = false
	p.offset = p.clampOffset(x)
}

// ContinuousIndex returns offset / paneWidth, clamped to the valid ordinal
// range. Returns 0 before the first layout (zero width).
func (p *Pager) ContinuousIndex() float32 {
	if p.width <= 0 {
		return 0
	}
	return clampf(p.offset/p.width, 0, float32(p.panes.Len()-1))
}

// IndexAt returns the pane ordinal nearest to the given continuous index,
// clamped to the valid range.
func (p *Pager) IndexAt(continuous float32) int {
	return clampi(int(math.Round(float64(continuous))), 0, p.panes.Len()-1)
}

// TargetIndex returns the pane ordinal of the current settle target.
func (p *Pager) TargetIndex() int {
	if p.width <= 0 {
		return 0
	}
	return p.IndexAt(p.target / p.width)
}

// MoveTo commands the pager to the given pane ordinal. Out-of-range
// ordinals are clamped to the last valid pane (the recovery path used when
// the pane set shrinks below the active index). When animated, the offset
// converges over subsequent Update calls; otherwise it lands immediately.
func (p *Pager) MoveTo(index int, animated bool) {
	index = clampi(index, 0, p.panes.Len()-1)
	p.target = float32(index) * p.width
	if animated {
		p.animating = true
		return
	}
	p.animating = false
	p.offset = p.target
}

// Settled reports whether the pager is at rest on its target position.
func (p *Pager) Settled() bool {
	return !p.animating && p.offset == p.target
}

// Update advances an animated settle toward the target position using
// smooth interpolation. No-op when not animating.
func (p *Pager) Update(dt float32) {
	if !p.animating {
		return
	}

	diff := p.target - p.offset
	if absf32(diff) < snapDoneThreshold {
		p.offset = p.target
		p.animating = false
		return
	}
	p.offset += diff * dt * snapSmoothSpeed
}

func (p *Pager) clampOffset(x float32) float32 {
	return clampf(x, 0, float32(p.panes.Len()-1)*p.width)
}
