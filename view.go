package scrollview

// dragThreshold is the pointer travel in pixels before a press becomes a drag.
const dragThreshold = 4

// wheelPixelsPerLine converts wheel notches into pixel deltas before they are
// normalized by the viewport size.
const wheelPixelsPerLine = 40

// pageScrollDuration is the animation time for keyboard paging.
const pageScrollDuration = 0.3

// ScrollView ties the pieces together: it owns the config, the shared
// geometry context, the cell pool and the scroller, translates raw input into
// scroller gestures and drives the pool from the scroller's position once per
// tick.
//
// Like the scroller it orchestrates, a ScrollView is single-threaded: call
// HandleInput and Update from the same goroutine, once per frame.
type ScrollView[T any] struct {
	cfg  Config
	host CellHost[T]

	ctx      *Context
	pool     *Pool[T]
	scroller *Scroller

	viewport Rect
	sized    bool

	pressed   bool
	pressPos  Vec2
	pendItems []T
}

// New creates a scroll view over a cell host. Options are applied on top of
// DefaultConfig; an invalid combination fails here, never later in the tick
// path.
func New[T any](host CellHost[T], opts ...Option) (*ScrollView[T], error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &ScrollView[T]{cfg: cfg, host: host}, nil
}

// Config returns the view's validated configuration.
func (v *ScrollView[T]) Config() Config {
	return v.cfg
}

// SetViewport sets the screen rectangle the view occupies. The first call
// creates the geometry context, pool and scroller; later calls with a new
// size trigger a relayout.
func (v *ScrollView[T]) SetViewport(viewport Rect) error {
	size := v.axisExtent(viewport)

	if !v.sized {
		v.viewport = viewport
		v.sized = true
		v.ctx = newContext(v.cfg, size)
		v.pool = NewPool(v.host, v.ctx, v.cfg.ReuseCellMargin)
		v.scroller = NewScroller(v.cfg, size)
		if v.pendItems != nil {
			items := v.pendItems
			v.pendItems = nil
			return v.SetItems(items)
		}
		return nil
	}

	resized := v.axisExtent(v.viewport) != size
	v.viewport = viewport
	if resized {
		v.ctx.Viewport = size
		v.scroller.SetViewportSize(size)
		return v.pool.Relayout()
	}
	return nil
}

func (v *ScrollView[T]) axisExtent(r Rect) float32 {
	if v.cfg.Axis == Horizontal {
		return r.W
	}
	return r.H
}

// SetItems replaces the logical data source. Visible cells are rebound at the
// current position.
func (v *ScrollView[T]) SetItems(items []T) error {
	if !v.sized {
		// Held until the first SetViewport establishes geometry.
		v.pendItems = items
		return nil
	}
	v.scroller.SetTotalCount(len(items))
	return v.pool.SetItems(items)
}

// Items returns the current logical data source.
func (v *ScrollView[T]) Items() []T {
	if v.pool == nil {
		return v.pendItems
	}
	return v.pool.Items()
}

// Scroller returns the position controller, for direct gesture or
// subscription access.
func (v *ScrollView[T]) Scroller() *Scroller {
	return v.scroller
}

// Pool returns the cell pool.
func (v *ScrollView[T]) Pool() *Pool[T] {
	return v.pool
}

// Context returns the shared geometry record.
func (v *ScrollView[T]) Context() *Context {
	return v.ctx
}

// Scrollbar returns an adapter mapping the scroll position onto a [0, 1]
// scrollbar value. Before the first viewport is set the view has no
// geometry, so the returned adapter is inert.
func (v *ScrollView[T]) Scrollbar() *ScrollbarAdapter {
	if !v.sized {
		return NewScrollbarAdapter(nil, nil)
	}
	return NewScrollbarAdapter(v.scroller, v.ctx)
}

// Position returns the current scroll position in item-interval units.
func (v *ScrollView[T]) Position() float32 {
	if v.scroller == nil {
		return 0
	}
	return v.scroller.Position()
}

// ScrollTo animates to a target position. See Scroller.ScrollTo.
func (v *ScrollView[T]) ScrollTo(target, duration float32, easing Easing, onComplete func()) {
	v.scroller.ScrollTo(target, duration, easing, onComplete)
}

// JumpTo moves instantly to an item index. See Scroller.JumpTo.
func (v *ScrollView[T]) JumpTo(index int) error {
	return v.scroller.JumpTo(index)
}

// OnPositionChanged subscribes to scroll position changes.
func (v *ScrollView[T]) OnPositionChanged(fn func(position float32)) func() {
	return v.scroller.OnPositionChanged(fn)
}

// OnSelectionChanged subscribes to settled-selection changes.
func (v *ScrollView[T]) OnSelectionChanged(fn func(index int)) func() {
	return v.scroller.OnSelectionChanged(fn)
}

// HandleInput translates one frame of raw input into scroller gestures:
// press, drag past a small threshold, release, wheel and keyboard paging.
// The viewport is the screen rectangle the view occupies this frame.
func (v *ScrollView[T]) HandleInput(input *InputState, viewport Rect) error {
	if err := v.SetViewport(viewport); err != nil {
		return err
	}

	mouse := input.MousePos()

	if input.MouseClicked(MouseButtonLeft) && viewport.Contains(mouse) {
		v.pressed = true
		v.pressPos = mouse
		v.scroller.PointerDown(mouse)
	}

	if v.pressed && input.MouseDown(MouseButtonLeft) {
		if !v.scroller.Dragging() {
			d := mouse.Sub(v.pressPos)
			if d.X*d.X+d.Y*d.Y > dragThreshold*dragThreshold {
				v.scroller.BeginDrag(v.pressPos)
			}
		}
		if v.scroller.Dragging() {
			v.scroller.Drag(mouse)
		}
	}

	if v.pressed && input.MouseReleased(MouseButtonLeft) {
		if v.scroller.Dragging() {
			v.scroller.Drag(mouse)
			v.scroller.EndDrag()
		}
		v.scroller.PointerUp(mouse)
		v.pressed = false
	}

	if wheel := v.wheelDelta(input); wheel != 0 && viewport.Contains(mouse) {
		v.scroller.Wheel(wheel * wheelPixelsPerLine)
	}

	v.handleKeys(input)
	return nil
}

func (v *ScrollView[T]) wheelDelta(input *InputState) float32 {
	if v.cfg.Axis == Horizontal {
		if input.MouseWheelX != 0 {
			return -input.MouseWheelX
		}
		return -input.MouseWheelY
	}
	return -input.MouseWheelY
}

func (v *ScrollView[T]) handleKeys(input *InputState) {
	count := v.scroller.TotalCount()
	if count < 1 {
		return
	}
	interval := maxf(v.cfg.CellInterval, minCellInterval)
	page := 1 / interval

	switch {
	case input.KeyPressed(KeyHome):
		v.scroller.ScrollTo(0, pageScrollDuration, EaseInOutCubic, nil)
	case input.KeyPressed(KeyEnd):
		v.scroller.ScrollTo(float32(count-1), pageScrollDuration, EaseInOutCubic, nil)
	case input.KeyPressed(KeyPageUp):
		v.scroller.ScrollTo(v.scroller.Position()-page, pageScrollDuration, EaseInOutCubic, nil)
	case input.KeyPressed(KeyPageDown):
		v.scroller.ScrollTo(v.scroller.Position()+page, pageScrollDuration, EaseInOutCubic, nil)
	}
}

// Update advances animations by dt seconds and lays out cells at the
// resulting position. Call once per frame after HandleInput.
func (v *ScrollView[T]) Update(dt float32) error {
	if !v.sized {
		return nil
	}
	v.scroller.Update(dt)
	return v.pool.UpdatePosition(v.scroller.Position(), false)
}
