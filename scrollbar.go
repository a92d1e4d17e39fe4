package scrollview

// ScrollbarAdapter maps the scroller's item-interval position onto the [0, 1]
// value range a scrollbar widget expects, and feeds scrollbar drags back as
// direct position changes. With fewer than two items there is nothing to
// scroll and the adapter pins the value to 0 with a full-length thumb.
//
// An adapter with a nil scroller or geometry is inert: it reports a parked
// scrollbar and ignores value changes.
type ScrollbarAdapter struct {
	scroller *Scroller
	geo      ScrollGeometryProvider
}

// NewScrollbarAdapter creates an adapter over a scroller and its geometry.
func NewScrollbarAdapter(scroller *Scroller, geo ScrollGeometryProvider) *ScrollbarAdapter {
	return &ScrollbarAdapter{scroller: scroller, geo: geo}
}

// Value returns the scrollbar value in [0, 1]: 0 at the first item, 1 at the
// last. Out-of-range positions during an elastic overshoot are clamped.
func (a *ScrollbarAdapter) Value() float32 {
	if a.scroller == nil {
		return 0
	}
	count := a.scroller.TotalCount()
	if count < 2 {
		return 0
	}
	return clamp01(a.scroller.Position() / float32(count-1))
}

// Size returns the normalized thumb length in (0, 1]: the fraction of the
// content extent one viewport covers. Head and tail padding from the
// geometry count toward the content extent.
func (a *ScrollbarAdapter) Size() float32 {
	if a.scroller == nil || a.geo == nil {
		return 1
	}
	count := a.scroller.TotalCount()
	if count < 1 {
		return 1
	}
	interval := maxf(a.geo.CellInterval(), minCellInterval)
	extent := float32(count)*interval + a.geo.PaddingHead() + a.geo.PaddingTail()
	if extent <= 1 {
		return 1
	}
	return clamp01(1 / extent)
}

// HandleValueChanged applies a scrollbar drag: a value in [0, 1] becomes a
// direct position change. No animation is involved; a running one is
// cancelled by the scroller.
func (a *ScrollbarAdapter) HandleValueChanged(value float32) {
	if a.scroller == nil {
		return
	}
	count := a.scroller.TotalCount()
	if count < 2 {
		return
	}
	a.scroller.SetPosition(clamp01(value) * float32(count-1))
}
