package scrollview

import (
	"log/slog"
	"os"
)

// scrollLogLevel controls the log level for scroll view debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var scrollLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the scroll view.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		scrollLogLevel.Set(slog.LevelDebug)
	} else {
		scrollLogLevel.Set(slog.LevelInfo)
	}
}

// scrollLogger is the logger for scroll view debugging.
var scrollLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: scrollLogLevel}))

// ScrollGeometryProvider exposes the layout geometry cells and the pool need
// to place themselves along the scroll axis. Concrete layouts (linear, grid)
// implement this by composition rather than subclassing; Context is the
// linear implementation.
type ScrollGeometryProvider interface {
	// ScrollAxis is the axis cells are laid out along.
	ScrollAxis() Axis
	// CellInterval is the normalized size of one item plus spacing.
	CellInterval() float32
	// ScrollOffset is the anchor alignment within the viewport.
	ScrollOffset() float32
	// Looping reports whether logical indices wrap around.
	Looping() bool
	// ViewportSize is the viewport extent along the scroll axis, in pixels.
	ViewportSize() float32
	// GroupCount is the number of items per scroll step.
	GroupCount() int
	// PaddingHead and PaddingTail are the normalized space before the first
	// and after the last item. They extend the content extent (scrollbar
	// thumb sizing); cell placement itself is anchored by ScrollOffset.
	PaddingHead() float32
	PaddingTail() float32
}

// Context is the shared geometry record for one scroll view. The owning view
// is the single writer (at initialization and on relayout); cells and the
// pool hold a non-owning reference and only read through the
// ScrollGeometryProvider methods. It is identity-shared, never copied.
type Context struct {
	Axis     Axis
	Interval float32
	Offset   float32
	Loop     bool
	Viewport float32
	Groups   int
	PadHead  float32
	PadTail  float32
}

// newContext builds the geometry record from a validated Config.
// Called once, lazily, at the first position update.
func newContext(cfg Config, viewportSize float32) *Context {
	return &Context{
		Axis:     cfg.Axis,
		Interval: cfg.CellInterval,
		Offset:   cfg.ScrollOffset,
		Loop:     cfg.Loop,
		Viewport: viewportSize,
		Groups:   cfg.GroupCount,
		PadHead:  cfg.PaddingHead,
		PadTail:  cfg.PaddingTail,
	}
}

func (c *Context) ScrollAxis() Axis      { return c.Axis }
func (c *Context) CellInterval() float32 { return c.Interval }
func (c *Context) ScrollOffset() float32 { return c.Offset }
func (c *Context) Looping() bool         { return c.Loop }
func (c *Context) ViewportSize() float32 { return c.Viewport }
func (c *Context) GroupCount() int       { return c.Groups }
func (c *Context) PaddingHead() float32  { return c.PadHead }
func (c *Context) PaddingTail() float32  { return c.PadTail }

var _ ScrollGeometryProvider = (*Context)(nil)
