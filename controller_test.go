package scrollview_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-theft-auto/scrollview"
)

const tick = float32(1.0 / 60.0)

func newScroller(t *testing.T, count int, opts ...scrollview.Option) *scrollview.Scroller {
	t.Helper()
	cfg, err := scrollview.NewConfig(opts...)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	s := scrollview.NewScroller(cfg, 500)
	s.SetTotalCount(count)
	return s
}

func runTicks(s *scrollview.Scroller, n int) {
	for i := 0; i < n; i++ {
		s.Update(tick)
	}
}

func nearf(a, b, eps float32) bool {
	d := a - b
	return d < eps && d > -eps
}

func TestScrollToImmediate(t *testing.T) {
	s := newScroller(t, 10, scrollview.WithMovementMode(scrollview.Unrestricted))

	completed := 0
	s.ScrollTo(9, 0, nil, func() { completed++ })

	if s.Position() != 9 {
		t.Errorf("expected position 9, got %v", s.Position())
	}
	if completed != 1 {
		t.Errorf("expected completion callback once, got %d", completed)
	}
	if s.Animating() {
		t.Error("immediate scroll must not leave an animation running")
	}
}

func TestScrollToAnimated(t *testing.T) {
	s := newScroller(t, 10, scrollview.WithMovementMode(scrollview.Unrestricted))

	completed := 0
	s.ScrollTo(9, 0.5, scrollview.Linear, func() { completed++ })

	if s.Position() != 0 {
		t.Errorf("animation must not move the position at call time, got %v", s.Position())
	}

	runTicks(s, 15) // 0.25s: halfway
	if s.Position() <= 0 || s.Position() >= 9 {
		t.Errorf("expected mid-flight position in (0, 9), got %v", s.Position())
	}
	if completed != 0 {
		t.Error("completion fired mid-flight")
	}

	runTicks(s, 60) // well past the 0.5s duration
	if s.Position() != 9 {
		t.Errorf("expected final position 9, got %v", s.Position())
	}
	if completed != 1 {
		t.Errorf("expected completion exactly once, got %d", completed)
	}
	if s.Animating() {
		t.Error("animation still marked running after completion")
	}
}

func TestScrollToLoopTakesShortestPath(t *testing.T) {
	s := newScroller(t, 10, scrollview.WithLoop())

	// From 0 to 9 the short way is one step backward through the wrap.
	s.ScrollTo(9, 0.5, scrollview.Linear, nil)
	runTicks(s, 60)

	if !nearf(s.Position(), -1, 1e-3) {
		t.Errorf("expected wrapped position -1 (logical 9), got %v", s.Position())
	}
}

func TestScrollToSelectionNotification(t *testing.T) {
	s := newScroller(t, 10, scrollview.WithLoop())

	var selected []int
	s.OnSelectionChanged(func(index int) { selected = append(selected, index) })

	s.ScrollTo(9, 0, nil, nil)
	if len(selected) != 1 || selected[0] != 9 {
		t.Fatalf("expected selection [9], got %v", selected)
	}

	// Settling on the same index again must not re-notify.
	s.ScrollTo(9, 0, nil, nil)
	if len(selected) != 1 {
		t.Errorf("duplicate selection notified: %v", selected)
	}
}

func TestJumpToOutOfRange(t *testing.T) {
	s := newScroller(t, 10)
	s.SetPosition(3)

	if err := s.JumpTo(10); !errors.Is(err, scrollview.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := s.JumpTo(-1); !errors.Is(err, scrollview.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if s.Position() != 3 {
		t.Errorf("failed jump moved the position to %v", s.Position())
	}

	if err := s.JumpTo(7); err != nil {
		t.Fatalf("JumpTo(7): %v", err)
	}
	if s.Position() != 7 {
		t.Errorf("expected position 7, got %v", s.Position())
	}
}

func TestDragMovesPosition(t *testing.T) {
	s := newScroller(t, 10, scrollview.WithMovementMode(scrollview.Unrestricted))

	s.PointerDown(scrollview.Vec2{X: 0, Y: 0})
	s.BeginDrag(scrollview.Vec2{X: 0, Y: 0})
	s.Drag(scrollview.Vec2{X: 0, Y: 100})
	s.EndDrag()
	s.PointerUp(scrollview.Vec2{X: 0, Y: 100})

	// 100px over a 500px viewport at sensitivity 1.
	if !nearf(s.Position(), 0.2, 1e-5) {
		t.Errorf("expected position 0.2, got %v", s.Position())
	}
}

func TestDragCancelsAnimation(t *testing.T) {
	s := newScroller(t, 10, scrollview.WithMovementMode(scrollview.Unrestricted))

	completed := 0
	s.ScrollTo(5, 1.0, nil, func() { completed++ })
	runTicks(s, 10)

	s.PointerDown(scrollview.Vec2{})
	s.BeginDrag(scrollview.Vec2{})

	if s.Animating() {
		t.Error("drag must cancel the running animation")
	}

	s.EndDrag()
	s.PointerUp(scrollview.Vec2{})
	runTicks(s, 120)

	if completed != 0 {
		t.Errorf("cancelled animation invoked its completion callback %d times", completed)
	}
}

func TestElasticDragResists(t *testing.T) {
	s := newScroller(t, 10) // Elastic is the default mode

	s.PointerDown(scrollview.Vec2{})
	s.BeginDrag(scrollview.Vec2{})
	// Drag far past the head boundary: raw position would be -0.6.
	s.Drag(scrollview.Vec2{X: 0, Y: -300})

	if s.Position() >= 0 {
		t.Errorf("expected overshoot past the boundary, got %v", s.Position())
	}
	if s.Position() <= -0.6 {
		t.Errorf("expected rubber-band resistance, got full displacement %v", s.Position())
	}
}

func TestElasticReboundSettlesInside(t *testing.T) {
	s := newScroller(t, 10, scrollview.WithElasticity(0.1))

	s.SetPosition(11) // Elastic mode admits out-of-range direct positions
	runTicks(s, 600)

	if s.Position() != 9 {
		t.Errorf("expected rebound to settle at 9, got %v", s.Position())
	}
	if s.Animating() {
		t.Error("rebound still running after settling")
	}
	if s.Velocity() != 0 {
		t.Errorf("expected zero velocity after settling, got %v", s.Velocity())
	}
}

func TestInertiaCoastsAndSnaps(t *testing.T) {
	s := newScroller(t, 10,
		scrollview.WithMovementMode(scrollview.Unrestricted),
		scrollview.WithSnap(scrollview.SnapConfig{
			Enable:            true,
			VelocityThreshold: 0.5,
			Duration:          0.2,
			Easing:            scrollview.Linear,
		}),
	)

	// Seed movement with a wheel flick, then let it coast.
	s.Wheel(100)
	runTicks(s, 600)

	pos := float64(s.Position())
	if math.Abs(pos-math.Round(pos)) > 1e-4 {
		t.Errorf("expected snap to an integer position, got %v", s.Position())
	}
	if s.Velocity() != 0 {
		t.Errorf("expected rest after snapping, got velocity %v", s.Velocity())
	}
	if s.Animating() {
		t.Error("snap animation still running")
	}
}

func TestDragReleaseCoasts(t *testing.T) {
	s := newScroller(t, 10, scrollview.WithMovementMode(scrollview.Unrestricted))

	// A steady drag of 20px per tick, then release.
	s.PointerDown(scrollview.Vec2{})
	s.BeginDrag(scrollview.Vec2{})
	for i := 1; i <= 10; i++ {
		s.Drag(scrollview.Vec2{X: 0, Y: float32(i) * 20})
		s.Update(tick)
	}
	s.EndDrag()
	s.PointerUp(scrollview.Vec2{X: 0, Y: 200})

	released := s.Position()
	if !nearf(released, 0.4, 1e-5) {
		t.Fatalf("expected drag to end at 0.4, got %v", released)
	}
	if s.Velocity() == 0 {
		t.Fatal("expected the drag movement to leave a coasting velocity")
	}

	runTicks(s, 60)
	if s.Position() <= released {
		t.Errorf("expected inertial coasting past %v, got %v", released, s.Position())
	}
}

func TestCoastingWithoutInertiaStopsDead(t *testing.T) {
	s := newScroller(t, 10,
		scrollview.WithMovementMode(scrollview.Unrestricted),
		scrollview.WithInertia(false),
	)

	s.Wheel(100)
	pos := s.Position()
	runTicks(s, 10)

	if s.Position() != pos {
		t.Errorf("position moved without inertia: %v -> %v", pos, s.Position())
	}
}

func TestClampedStopsAtBoundary(t *testing.T) {
	s := newScroller(t, 10, scrollview.WithMovementMode(scrollview.Clamped))

	var selected []int
	s.OnSelectionChanged(func(index int) { selected = append(selected, index) })

	// A huge wheel flick: the position clamps immediately and coasting into
	// the boundary stops with an arrival notification.
	s.Wheel(10000)
	if s.Position() != 9 {
		t.Fatalf("expected clamp to 9, got %v", s.Position())
	}

	runTicks(s, 60)
	if s.Position() != 9 {
		t.Errorf("position left the boundary: %v", s.Position())
	}
	if len(selected) == 0 || selected[len(selected)-1] != 9 {
		t.Errorf("expected arrival selection 9, got %v", selected)
	}
}

func TestClampedAnimationKeepsOvershoot(t *testing.T) {
	s := newScroller(t, 10, scrollview.WithMovementMode(scrollview.Clamped))

	// An overshooting easing must be free to pass the end position
	// mid-flight; the hard boundary applies to coasting, not animations.
	s.ScrollTo(9, 0.5, scrollview.EaseOutBack, nil)

	var maxPos float32
	for i := 0; i < 60; i++ {
		s.Update(tick)
		if s.Position() > maxPos {
			maxPos = s.Position()
		}
	}

	if maxPos <= 9.01 {
		t.Errorf("expected the easing to overshoot past 9 mid-flight, got max %v", maxPos)
	}
	if s.Position() != 9 {
		t.Errorf("expected final position 9, got %v", s.Position())
	}
}

func TestSetPositionRespectsMode(t *testing.T) {
	clamped := newScroller(t, 10, scrollview.WithMovementMode(scrollview.Clamped))
	clamped.SetPosition(100)
	if clamped.Position() != 9 {
		t.Errorf("clamped: expected 9, got %v", clamped.Position())
	}

	looped := newScroller(t, 10, scrollview.WithLoop())
	looped.SetPosition(-1)
	if looped.Position() != 9 {
		t.Errorf("loop: expected wrap to 9, got %v", looped.Position())
	}
}

func TestPositionNotifications(t *testing.T) {
	s := newScroller(t, 10, scrollview.WithMovementMode(scrollview.Unrestricted))

	var positions []float32
	unsubscribe := s.OnPositionChanged(func(p float32) { positions = append(positions, p) })

	s.SetPosition(2)
	s.SetPosition(2) // unchanged: no notification
	s.SetPosition(3)

	if len(positions) != 2 || positions[0] != 2 || positions[1] != 3 {
		t.Fatalf("expected notifications [2 3], got %v", positions)
	}

	unsubscribe()
	s.SetPosition(4)
	if len(positions) != 2 {
		t.Errorf("notified after unsubscribe: %v", positions)
	}
}

func TestDirection(t *testing.T) {
	vertical := newScroller(t, 10, scrollview.WithMovementMode(scrollview.Unrestricted))
	if d := vertical.Direction(0, 5); d != scrollview.DirectionUp {
		t.Errorf("vertical forward: expected DirectionUp, got %v", d)
	}
	if d := vertical.Direction(5, 0); d != scrollview.DirectionDown {
		t.Errorf("vertical backward: expected DirectionDown, got %v", d)
	}
	if d := vertical.Direction(5, 5); d != scrollview.DirectionNone {
		t.Errorf("no movement: expected DirectionNone, got %v", d)
	}

	horizontal := newScroller(t, 10,
		scrollview.WithMovementMode(scrollview.Unrestricted),
		scrollview.WithAxis(scrollview.Horizontal),
	)
	if d := horizontal.Direction(0, 5); d != scrollview.DirectionLeft {
		t.Errorf("horizontal forward: expected DirectionLeft, got %v", d)
	}
}
