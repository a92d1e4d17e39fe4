package scrollview

import "fmt"

// SnapConfig configures settle-to-nearest-item behavior. When inertial
// coasting slows below VelocityThreshold, the scroller animates to the
// nearest integer position over Duration using Easing.
type SnapConfig struct {
	Enable            bool
	VelocityThreshold float32
	Duration          float32
	Easing            Easing
}

// DefaultSnapConfig returns a sensible default snap configuration.
func DefaultSnapConfig() SnapConfig {
	return SnapConfig{
		Enable:            true,
		VelocityThreshold: 0.5,
		Duration:          0.3,
		Easing:            EaseInOutCubic,
	}
}

// Config holds all scroll view configuration. It is built once via New or
// NewConfig, validated at construction, and treated as immutable afterwards.
type Config struct {
	// Axis is the scroll axis (Vertical or Horizontal).
	Axis Axis

	// MovementMode controls boundary behavior (Unrestricted, Elastic, Clamped).
	MovementMode MovementMode

	// Elasticity is the smoothing time of the elastic rebound, in seconds.
	// Smaller values rebound faster. Only used in Elastic mode.
	Elasticity float32

	// DragSensitivity scales pointer movement into scroll position change.
	// 1.0 means dragging one full viewport moves the position by one
	// viewport worth of cells.
	DragSensitivity float32

	// Inertia enables coasting after a drag is released.
	Inertia bool

	// DecelerationRate is the fraction of velocity remaining after one
	// second of coasting, in (0, 1). Smaller values stop sooner.
	DecelerationRate float32

	// Snap configures settling to the nearest integer position.
	Snap SnapConfig

	// Loop wraps logical indices so the collection scrolls endlessly.
	// Only meaningful with Unrestricted movement.
	Loop bool

	// CellInterval is the fraction of the viewport occupied by one
	// item plus its spacing, in (0, 1].
	CellInterval float32

	// ScrollOffset shifts where the anchor item sits within the viewport,
	// in normalized units (0 = leading edge, 0.5 = center).
	ScrollOffset float32

	// PaddingHead and PaddingTail add normalized space before the first
	// and after the last item.
	PaddingHead float32
	PaddingTail float32

	// ReuseCellMargin is the number of extra cells kept beyond the strict
	// viewport coverage, to hide rebinds during fast scrolling.
	ReuseCellMargin int

	// GroupCount is the number of items per scroll step (1 for linear
	// layouts; grid adapters group items before handing them to the core).
	GroupCount int
}

// DefaultConfig returns the default scroll view configuration: a vertical,
// elastic, inertial view with snapping disabled.
func DefaultConfig() Config {
	return Config{
		Axis:             Vertical,
		MovementMode:     Elastic,
		Elasticity:       0.1,
		DragSensitivity:  1.0,
		Inertia:          true,
		DecelerationRate: 0.03,
		Snap:             SnapConfig{Enable: false, VelocityThreshold: 0.5, Duration: 0.3, Easing: EaseInOutCubic},
		Loop:             false,
		CellInterval:     0.2,
		ScrollOffset:     0,
		ReuseCellMargin:  0,
		GroupCount:       1,
	}
}

// Validate reports configuration errors that would corrupt layout math.
// Degenerate but recoverable inputs (zero cell interval, zero item count)
// are clamped at use sites instead and are not errors.
func (c Config) Validate() error {
	if c.GroupCount < 1 {
		return fmt.Errorf("%w: group count %d, must be >= 1", ErrInvalidConfig, c.GroupCount)
	}
	if c.CellInterval < 0 {
		return fmt.Errorf("%w: negative cell interval %v", ErrInvalidConfig, c.CellInterval)
	}
	if c.DragSensitivity <= 0 {
		return fmt.Errorf("%w: drag sensitivity %v, must be > 0", ErrInvalidConfig, c.DragSensitivity)
	}
	if c.DecelerationRate <= 0 || c.DecelerationRate > 1 {
		return fmt.Errorf("%w: deceleration rate %v, must be in (0, 1]", ErrInvalidConfig, c.DecelerationRate)
	}
	if c.Elasticity <= 0 {
		return fmt.Errorf("%w: elasticity %v, must be > 0", ErrInvalidConfig, c.Elasticity)
	}
	if c.ReuseCellMargin < 0 {
		return fmt.Errorf("%w: reuse cell margin %d, must be >= 0", ErrInvalidConfig, c.ReuseCellMargin)
	}
	if c.Snap.Enable && c.Snap.Duration <= 0 {
		return fmt.Errorf("%w: snap duration %v, must be > 0 when snapping is enabled", ErrInvalidConfig, c.Snap.Duration)
	}
	return nil
}

// Option configures a Config.
type Option func(*Config)

// NewConfig applies options on top of DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithAxis sets the scroll axis.
func WithAxis(axis Axis) Option { return func(c *Config) { c.Axis = axis } }

// WithMovementMode sets the boundary behavior.
func WithMovementMode(mode MovementMode) Option { return func(c *Config) { c.MovementMode = mode } }

// WithElasticity sets the elastic rebound smoothing time in seconds.
func WithElasticity(e float32) Option { return func(c *Config) { c.Elasticity = e } }

// WithDragSensitivity scales pointer movement into position change.
func WithDragSensitivity(s float32) Option { return func(c *Config) { c.DragSensitivity = s } }

// WithInertia enables or disables coasting after drag release.
func WithInertia(enabled bool) Option { return func(c *Config) { c.Inertia = enabled } }

// WithDecelerationRate sets the coasting deceleration rate.
func WithDecelerationRate(rate float32) Option { return func(c *Config) { c.DecelerationRate = rate } }

// WithSnap sets the snap configuration.
func WithSnap(snap SnapConfig) Option { return func(c *Config) { c.Snap = snap } }

// WithLoop enables endless looping through the items and switches the
// movement mode to Unrestricted, which looping requires.
func WithLoop() Option {
	return func(c *Config) {
		c.Loop = true
		c.MovementMode = Unrestricted
	}
}

// WithCellInterval sets the normalized size of one item plus spacing.
func WithCellInterval(interval float32) Option { return func(c *Config) { c.CellInterval = interval } }

// WithScrollOffset sets the anchor alignment within the viewport.
func WithScrollOffset(offset float32) Option { return func(c *Config) { c.ScrollOffset = offset } }

// WithPadding sets normalized space before the first and after the last item.
func WithPadding(head, tail float32) Option {
	return func(c *Config) {
		c.PaddingHead = head
		c.PaddingTail = tail
	}
}

// WithReuseCellMargin keeps extra cells beyond the visible viewport.
func WithReuseCellMargin(cells int) Option { return func(c *Config) { c.ReuseCellMargin = cells } }

// WithGroupCount sets the number of items per scroll step.
func WithGroupCount(n int) Option { return func(c *Config) { c.GroupCount = n } }
