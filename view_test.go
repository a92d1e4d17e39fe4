package scrollview_test

import (
	"testing"

	"github.com/go-theft-auto/scrollview"
)

func intItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func newTestView(t *testing.T, count int, opts ...scrollview.Option) (*scrollview.ScrollView[int], *mockHost[int]) {
	t.Helper()
	host := newMockHost[int]()
	view, err := scrollview.New[int](host, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := view.SetItems(intItems(count)); err != nil {
		t.Fatalf("SetItems: %v", err)
	}
	return view, host
}

func TestViewLifecycle(t *testing.T) {
	view, host := newTestView(t, 20,
		scrollview.WithMovementMode(scrollview.Unrestricted),
		scrollview.WithCellInterval(0.25),
	)

	input := scrollview.NewInputState()
	viewport := scrollview.Rect{X: 0, Y: 0, W: 200, H: 400}

	if err := view.HandleInput(input, viewport); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}
	if err := view.Update(tick); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if view.Pool().Len() != 4 {
		t.Errorf("expected 4 cells for interval 0.25, got %d", view.Pool().Len())
	}
	if host.visibleCount() != 4 {
		t.Errorf("expected 4 visible cells, got %d", host.visibleCount())
	}
	if view.Scroller().TotalCount() != 20 {
		t.Errorf("expected total count 20, got %d", view.Scroller().TotalCount())
	}
}

func TestViewDragGesture(t *testing.T) {
	view, _ := newTestView(t, 20,
		scrollview.WithMovementMode(scrollview.Unrestricted),
		scrollview.WithCellInterval(0.25),
	)

	input := scrollview.NewInputState()
	viewport := scrollview.Rect{X: 0, Y: 0, W: 200, H: 400}

	frame := func() {
		if err := view.HandleInput(input, viewport); err != nil {
			t.Fatalf("HandleInput: %v", err)
		}
		if err := view.Update(tick); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	// Press inside the viewport.
	input.Reset()
	input.SetMousePos(100, 200)
	input.SetMouseButton(scrollview.MouseButtonLeft, true)
	frame()

	// Move past the drag threshold.
	input.Reset()
	input.SetMousePos(100, 100)
	frame()

	if !view.Scroller().Dragging() {
		t.Fatal("expected an active drag after moving past the threshold")
	}

	// Release.
	input.Reset()
	input.SetMouseButton(scrollview.MouseButtonLeft, false)
	if err := view.HandleInput(input, viewport); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}

	// 100px upward over a 400px viewport.
	if !nearf(view.Position(), -0.25, 1e-5) {
		t.Errorf("expected position -0.25 after the drag, got %v", view.Position())
	}
	if view.Scroller().Dragging() {
		t.Error("drag still active after release")
	}
}

func TestViewPressOutsideViewportIgnored(t *testing.T) {
	view, _ := newTestView(t, 20, scrollview.WithMovementMode(scrollview.Unrestricted))

	input := scrollview.NewInputState()
	viewport := scrollview.Rect{X: 0, Y: 0, W: 200, H: 400}

	input.Reset()
	input.SetMousePos(500, 500)
	input.SetMouseButton(scrollview.MouseButtonLeft, true)
	if err := view.HandleInput(input, viewport); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}

	input.Reset()
	input.SetMousePos(500, 300)
	if err := view.HandleInput(input, viewport); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}

	if view.Scroller().Dragging() {
		t.Error("press outside the viewport started a drag")
	}
	if view.Position() != 0 {
		t.Errorf("position moved without a gesture: %v", view.Position())
	}
}

func TestViewWheelScrolls(t *testing.T) {
	view, _ := newTestView(t, 20, scrollview.WithMovementMode(scrollview.Unrestricted))

	input := scrollview.NewInputState()
	viewport := scrollview.Rect{X: 0, Y: 0, W: 200, H: 400}

	input.Reset()
	input.SetMousePos(100, 200)
	input.SetMouseWheel(0, -2) // wheel down scrolls forward
	if err := view.HandleInput(input, viewport); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}

	if view.Position() <= 0 {
		t.Errorf("expected forward scroll from a downward wheel, got %v", view.Position())
	}
}

func TestViewKeyboardPaging(t *testing.T) {
	view, _ := newTestView(t, 20,
		scrollview.WithMovementMode(scrollview.Clamped),
		scrollview.WithCellInterval(0.25),
	)

	input := scrollview.NewInputState()
	viewport := scrollview.Rect{X: 0, Y: 0, W: 200, H: 400}

	settle := func() {
		for i := 0; i < 60; i++ {
			if err := view.Update(tick); err != nil {
				t.Fatalf("Update: %v", err)
			}
		}
	}

	input.Reset()
	input.SetKey(scrollview.KeyEnd, true)
	if err := view.HandleInput(input, viewport); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}
	settle()
	if view.Position() != 19 {
		t.Errorf("End: expected position 19, got %v", view.Position())
	}

	input.Reset()
	input.SetKey(scrollview.KeyEnd, false)
	input.SetKey(scrollview.KeyPageUp, true)
	if err := view.HandleInput(input, viewport); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}
	settle()
	// One page is 1/interval = 4 items.
	if view.Position() != 15 {
		t.Errorf("PageUp: expected position 15, got %v", view.Position())
	}

	input.Reset()
	input.SetKey(scrollview.KeyPageUp, false)
	input.SetKey(scrollview.KeyHome, true)
	if err := view.HandleInput(input, viewport); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}
	settle()
	if view.Position() != 0 {
		t.Errorf("Home: expected position 0, got %v", view.Position())
	}
}

func TestViewScrollToDrivesPool(t *testing.T) {
	view, _ := newTestView(t, 20,
		scrollview.WithMovementMode(scrollview.Unrestricted),
		scrollview.WithCellInterval(0.25),
	)

	input := scrollview.NewInputState()
	viewport := scrollview.Rect{X: 0, Y: 0, W: 200, H: 400}
	if err := view.HandleInput(input, viewport); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}
	if err := view.Update(tick); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := view.JumpTo(10); err != nil {
		t.Fatalf("JumpTo: %v", err)
	}
	if err := view.Update(tick); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found := false
	for _, c := range view.Pool().Cells() {
		if c.Visible && c.Index == 10 {
			found = true
		}
		if c.Visible && (c.Index < 10 || c.Index > 14) {
			t.Errorf("unexpected visible index %d at position 10", c.Index)
		}
	}
	if !found {
		t.Error("item 10 not visible after jumping to it")
	}
}

func TestCheckSetupFindsProblems(t *testing.T) {
	view, err := scrollview.New[int](nil,
		scrollview.WithSnap(scrollview.DefaultSnapConfig()),
		scrollview.WithInertia(false),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	problems := scrollview.CheckSetup(view)
	codes := make(map[string]bool)
	for _, p := range problems {
		codes[p.Code] = true
	}

	if !codes["no-host"] {
		t.Errorf("expected a no-host finding, got %v", problems)
	}
	if !codes["snap-without-inertia"] {
		t.Errorf("expected a snap-without-inertia finding, got %v", problems)
	}
}

func TestCheckSetupCleanView(t *testing.T) {
	view, _ := newTestView(t, 10, scrollview.WithCellInterval(0.2))

	input := scrollview.NewInputState()
	if err := view.HandleInput(input, scrollview.Rect{W: 200, H: 400}); err != nil {
		t.Fatalf("HandleInput: %v", err)
	}

	if problems := scrollview.CheckSetup(view); len(problems) != 0 {
		t.Errorf("expected no findings, got %v", problems)
	}
}
