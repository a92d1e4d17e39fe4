package scrollview

import "fmt"

// velocityRest is the speed below which inertial coasting stops outright.
const velocityRest = 0.001

// reboundRest is the spring speed below which an elastic rebound is
// considered settled.
const reboundRest = 0.01

// Scroller owns the continuous scroll position and all the ways it moves:
// direct dragging, wheel deltas, inertial coasting, elastic rebound, snapping
// and programmatic animation. Position is measured in item-interval units, so
// position 3.5 sits halfway between items 3 and 4.
//
// The scroller is single-threaded: input handlers and Update must be called
// from the same goroutine. State transitions happen only inside those calls,
// never asynchronously.
type Scroller struct {
	cfg          Config
	viewportSize float32
	totalCount   int

	position float32
	velocity float32

	// prevPosition is the position at the end of the previous Update. The
	// velocity estimate derives from it, so movement applied by input
	// handlers between ticks is observed.
	prevPosition float32

	held      bool
	dragging  bool
	scrolling bool

	dragStartPointer  float32
	dragStartPosition float32

	autoScroll autoScrollState

	// elapsed is the scroller's own clock, advanced only by Update. Animations
	// are timed against it so behavior is deterministic under fixed ticks.
	elapsed float64

	positionFeed  feed[float32]
	selectionFeed feed[int]
	lastSelection int
}

type autoScrollState struct {
	enabled       bool
	elastic       bool
	duration      float32
	startTime     float64
	startPosition float32
	endPosition   float32
	easing        Easing
	onComplete    func()
}

// reset cancels any running animation. The completion callback is discarded,
// never invoked for a cancelled animation.
func (a *autoScrollState) reset() {
	*a = autoScrollState{}
}

// NewScroller creates a scroller for a viewport of the given extent along the
// scroll axis, in pixels. The config must already be validated.
func NewScroller(cfg Config, viewportSize float32) *Scroller {
	return &Scroller{
		cfg:           cfg,
		viewportSize:  maxf(viewportSize, 1),
		totalCount:    0,
		lastSelection: -1,
	}
}

// SetTotalCount sets the number of logical items. Boundary math uses it on
// the next update; the position itself is not touched.
func (s *Scroller) SetTotalCount(n int) {
	s.totalCount = max(n, 0)
}

// SetViewportSize updates the viewport extent along the scroll axis, in
// pixels. Called on window resize; in-flight gestures keep their start state.
func (s *Scroller) SetViewportSize(size float32) {
	s.viewportSize = maxf(size, 1)
}

// TotalCount returns the number of logical items.
func (s *Scroller) TotalCount() int {
	return s.totalCount
}

// Position returns the current scroll position in item-interval units.
func (s *Scroller) Position() float32 {
	return s.position
}

// Velocity returns the current coasting velocity in positions per second.
func (s *Scroller) Velocity() float32 {
	return s.velocity
}

// Dragging reports whether a pointer drag is in progress.
func (s *Scroller) Dragging() bool {
	return s.dragging
}

// Animating reports whether a programmatic or rebound animation is running.
func (s *Scroller) Animating() bool {
	return s.autoScroll.enabled
}

// OnPositionChanged subscribes to scroll position changes. Callbacks run
// synchronously, in subscription order, whenever the position changes for any
// reason. The returned closure unsubscribes.
func (s *Scroller) OnPositionChanged(fn func(position float32)) func() {
	return s.positionFeed.subscribe(fn)
}

// OnSelectionChanged subscribes to selection changes. The selection is the
// item index the view has settled on after a snap, jump or programmatic
// scroll; a repeated settle on the same index does not re-notify.
func (s *Scroller) OnSelectionChanged(fn func(index int)) func() {
	return s.selectionFeed.subscribe(fn)
}

// project maps a 2D pointer position onto the scroll axis. Dragging content
// left (negative X) must advance the position on a horizontal axis, hence the
// sign flip.
func (s *Scroller) project(p Vec2) float32 {
	if s.cfg.Axis == Horizontal {
		return -p.X
	}
	return p.Y
}

func (s *Scroller) setPosition(p float32) {
	if p == s.position {
		return
	}
	s.position = p
	s.positionFeed.publish(p)
}

func (s *Scroller) selectIndex(index int) {
	if index == s.lastSelection {
		return
	}
	s.lastSelection = index
	s.selectionFeed.publish(index)
}

// calculateOffset returns the correction that would bring the position back
// inside [0, count-1], or 0 if it is already inside or movement is
// unrestricted.
func (s *Scroller) calculateOffset(position float32) float32 {
	if s.cfg.MovementMode == Unrestricted || s.totalCount < 1 {
		return 0
	}
	if position < 0 {
		return -position
	}
	if last := float32(s.totalCount - 1); position > last {
		return last - position
	}
	return 0
}

// PointerDown records the press that may become a drag. Any running
// animation keeps playing until a real drag starts, but coasting stops so
// the content can be caught mid-flight.
func (s *Scroller) PointerDown(pointer Vec2) {
	s.held = true
	s.velocity = 0
}

// PointerUp records the release of the pointer.
func (s *Scroller) PointerUp(pointer Vec2) {
	s.held = false
}

// BeginDrag starts a drag from the given pointer position. A running
// animation is cancelled and its completion callback discarded.
func (s *Scroller) BeginDrag(pointer Vec2) {
	if !s.held {
		return
	}
	s.dragging = true
	s.dragStartPointer = s.project(pointer)
	s.dragStartPosition = s.position
	s.velocity = 0
	s.autoScroll.reset()
	scrollLogger.Debug("drag begin", "position", s.position)
}

// Drag moves the position to follow the pointer. In Elastic mode the
// position past a boundary is pulled back by a rubber-band factor, so
// resistance grows the further the content is dragged outside.
func (s *Scroller) Drag(pointer Vec2) {
	if !s.dragging {
		return
	}
	delta := s.project(pointer) - s.dragStartPointer
	position := s.dragStartPosition + delta/s.viewportSize*s.cfg.DragSensitivity

	offset := s.calculateOffset(position)
	position += offset
	if s.cfg.MovementMode == Elastic && offset != 0 {
		position -= rubberDelta(offset, s.cfg.DragSensitivity)
	}
	s.setPosition(position)
}

// EndDrag finishes a drag. The velocity estimated during the drag is left in
// place so the update loop can coast on it.
func (s *Scroller) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	scrollLogger.Debug("drag end", "position", s.position, "velocity", s.velocity)
}

// Wheel applies a wheel delta, already projected onto the scroll axis and
// expressed in pixels. Bounded modes correct any overshoot immediately; the
// wheel never leaves the position outside the item range.
func (s *Scroller) Wheel(delta float32) {
	position := s.position + delta/s.viewportSize*s.cfg.DragSensitivity
	if s.cfg.MovementMode != Unrestricted {
		position += s.calculateOffset(position)
	}
	s.autoScroll.reset()
	s.scrolling = true
	s.setPosition(position)
}

// SetPosition moves the position directly, as a scrollbar does. Clamped mode
// clamps, loop mode wraps, Elastic mode admits out-of-range values and lets
// the next updates rebound them.
func (s *Scroller) SetPosition(position float32) {
	s.autoScroll.reset()
	s.velocity = 0
	switch {
	case s.cfg.Loop && s.cfg.MovementMode == Unrestricted:
		position = circularPosition(position, s.totalCount)
	case s.cfg.MovementMode == Clamped && s.totalCount > 0:
		position = clampf(position, 0, float32(s.totalCount-1))
	}
	s.setPosition(position)
}

// JumpTo moves instantly to an item index without animation. An index outside
// [0, count) is rejected and the position is left untouched.
func (s *Scroller) JumpTo(index int) error {
	if index < 0 || index >= s.totalCount {
		return fmt.Errorf("%w: jump to %d with %d items", ErrIndexOutOfRange, index, s.totalCount)
	}
	s.autoScroll.reset()
	s.velocity = 0
	s.setPosition(float32(index))
	s.selectIndex(index)
	return nil
}

// ScrollTo animates to a target position over the given duration using the
// easing (EaseInOutCubic if nil). In loop mode the animation takes the
// shorter way around the circle. A non-positive duration jumps immediately.
// onComplete, if non-nil, runs exactly once when the animation finishes; a
// cancelled animation never runs it.
func (s *Scroller) ScrollTo(target, duration float32, easing Easing, onComplete func()) {
	if easing == nil {
		easing = EaseInOutCubic
	}

	if duration <= 0 {
		switch {
		case s.cfg.Loop && s.cfg.MovementMode == Unrestricted:
			target = circularPosition(target, s.totalCount)
		case s.cfg.MovementMode != Unrestricted && s.totalCount > 0:
			target = clampf(target, 0, float32(s.totalCount-1))
		}
		s.autoScroll.reset()
		s.velocity = 0
		s.setPosition(target)
		s.selectIndex(CircularIndex(roundToInt(target), s.totalCount))
		if onComplete != nil {
			onComplete()
		}
		return
	}

	amount := s.movementAmount(s.position, target)
	s.velocity = 0
	s.autoScroll = autoScrollState{
		enabled:       true,
		elastic:       false,
		duration:      duration,
		startTime:     s.elapsed,
		startPosition: s.position,
		endPosition:   s.position + amount,
		easing:        easing,
		onComplete:    onComplete,
	}
	s.selectIndex(CircularIndex(roundToInt(s.position+amount), s.totalCount))
	scrollLogger.Debug("scroll to", "target", target, "amount", amount, "duration", duration)
}

// movementAmount returns the signed distance to animate from one position to
// another. Bounded modes clamp the target first; loop mode takes the shorter
// way around the circle.
func (s *Scroller) movementAmount(from, to float32) float32 {
	if s.cfg.MovementMode != Unrestricted {
		if s.totalCount > 0 {
			to = clampf(to, 0, float32(s.totalCount-1))
		}
		return to - from
	}
	if s.cfg.Loop {
		amount := circularPosition(to, s.totalCount) - circularPosition(from, s.totalCount)
		if absf32(amount) > float32(s.totalCount)*0.5 {
			amount = signf(-amount) * (float32(s.totalCount) - absf32(amount))
		}
		return amount
	}
	return to - from
}

// Direction returns the axis-relative direction of a movement from one
// position to another, accounting for loop-mode wraparound.
func (s *Scroller) Direction(from, to float32) MovementDirection {
	amount := s.movementAmount(from, to)
	switch {
	case amount == 0:
		return DirectionNone
	case s.cfg.Axis == Horizontal && amount > 0:
		return DirectionLeft
	case s.cfg.Axis == Horizontal:
		return DirectionRight
	case amount > 0:
		return DirectionUp
	default:
		return DirectionDown
	}
}

// Update advances the scroller by dt seconds. It runs at most one state's
// worth of work per call: animation playback, elastic rebound, inertial
// coasting with optional snap, or drag velocity estimation. It never fails;
// degenerate inputs decay toward rest instead of erroring.
func (s *Scroller) Update(dt float32) {
	if dt <= 0 {
		return
	}
	s.elapsed += float64(dt)
	offset := s.calculateOffset(s.position)

	switch {
	case s.autoScroll.enabled:
		s.updateAutoScroll(dt, offset)

	case !s.dragging && !s.scrolling && (offset != 0 || s.velocity != 0):
		if s.cfg.MovementMode == Elastic && offset != 0 {
			// Out of bounds with no input driving it: hand over to the spring.
			s.autoScroll = autoScrollState{enabled: true, elastic: true}
			scrollLogger.Debug("rebound begin", "position", s.position, "offset", offset)
		} else if s.cfg.Inertia {
			s.velocity *= powf(s.cfg.DecelerationRate, dt)
			if absf32(s.velocity) < velocityRest {
				s.velocity = 0
			}
			s.setPosition(s.position + s.velocity*dt)

			// Coasting into a hard boundary stops and reports arrival.
			atBoundary := false
			if s.cfg.MovementMode == Clamped && s.totalCount > 0 {
				if off := s.calculateOffset(s.position); off != 0 {
					s.setPosition(s.position + off)
					s.velocity = 0
					s.selectIndex(roundToInt(s.position))
					atBoundary = true
				}
			}

			if s.cfg.Snap.Enable && !atBoundary && absf32(s.velocity) < s.cfg.Snap.VelocityThreshold {
				s.ScrollTo(float32(roundToInt(s.position)), s.cfg.Snap.Duration, s.cfg.Snap.Easing, nil)
			}
		} else {
			s.velocity = 0
		}
	}

	if !s.autoScroll.enabled && (s.dragging || s.scrolling) {
		// Smoothed derivative of movement since the previous tick, which
		// includes handler-driven movement applied between ticks.
		instant := (s.position - s.prevPosition) / dt
		s.velocity = lerpUnclamped(s.velocity, instant, clamp01(dt*10))
	}

	s.prevPosition = s.position
	s.scrolling = false
}

func (s *Scroller) updateAutoScroll(dt float32, offset float32) {
	a := &s.autoScroll

	if a.elastic {
		pos, vel := smoothDamp(s.position, s.position+offset, s.velocity, s.cfg.Elasticity, dt)
		s.velocity = vel
		s.setPosition(pos)

		if absf32(s.velocity) < reboundRest {
			settled := clampf(float32(roundToInt(s.position)), 0, float32(max(s.totalCount-1, 0)))
			s.velocity = 0
			s.setPosition(settled)
			onComplete := a.onComplete
			a.reset()
			s.selectIndex(roundToInt(settled))
			if onComplete != nil {
				onComplete()
			}
			scrollLogger.Debug("rebound settled", "position", settled)
		}
		return
	}

	alpha := clamp01(float32(s.elapsed-a.startTime) / maxf(a.duration, 1e-4))
	s.setPosition(lerpUnclamped(a.startPosition, a.endPosition, a.easing(alpha)))

	if alpha >= 1 {
		onComplete := a.onComplete
		a.reset()
		if onComplete != nil {
			onComplete()
		}
		scrollLogger.Debug("scroll complete", "position", s.position)
	}
}
