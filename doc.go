// Package scrollview implements a cell-recycling scroll view core.
//
// Arbitrarily large (or endlessly looping) item collections are rendered
// through a small, fixed pool of reusable cells. A continuous scroll position
// maps onto the pool via circular indexing, so a handful of cells covers any
// number of items. The scroll position itself is owned by a Scroller, a
// tick-driven state machine that handles pointer dragging, inertial coasting,
// elastic boundary rebound, snapping, and animated programmatic scrolling.
//
// The package is backend-agnostic: cell creation, visibility, positioning and
// data binding go through the CellHost interface, and input arrives through an
// InputState populated by the application (see backend/opengl for a GLFW
// adapter). ScrollView ties the pieces together for the common case:
//
//	view, err := scrollview.New[string](host,
//	    scrollview.WithAxis(scrollview.Horizontal),
//	    scrollview.WithLoop(),
//	    scrollview.WithSnap(scrollview.DefaultSnapConfig()),
//	)
//	view.SetItems(items)
//
//	// each frame:
//	view.HandleInput(input, viewport)
//	view.Update(deltaTime)
//
// Scroller and Pool can also be used directly for custom compositions.
package scrollview
