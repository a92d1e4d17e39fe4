package scrollview

import "math"

// Vec2 represents a 2D vector for positions and deltas.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Axis is the scroll axis of a view.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// MovementMode controls how the scroll position behaves at the ends of the
// item range.
type MovementMode int

const (
	// Unrestricted imposes no bounds; combined with looping it scrolls
	// endlessly through the items.
	Unrestricted MovementMode = iota
	// Elastic resists movement past the ends and rebounds back inside.
	Elastic
	// Clamped hard-stops at the first and last item.
	Clamped
)

// MovementDirection is the axis-relative direction of a scroll movement.
type MovementDirection int

const (
	DirectionNone MovementDirection = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

// CircularIndex wraps an integer index into [0, size) using true modulo, so
// negative indices wrap to the end rather than truncating toward zero. It is
// used both for pool-slot reuse and for logical-index wraparound in loop mode.
// Returns 0 for size < 1.
func CircularIndex(i, size int) int {
	if size < 1 {
		return 0
	}
	if i < 0 {
		return size - 1 + (i+1)%size
	}
	return i % size
}

// circularPosition is the continuous counterpart of CircularIndex, wrapping a
// fractional scroll position into [0, size).
func circularPosition(p float32, size int) float32 {
	if size < 1 {
		return 0
	}
	fsize := float64(size)
	m := math.Mod(float64(p), fsize)
	if m < 0 {
		m += fsize
	}
	return float32(m)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp01 clamps a float32 value to [0, 1].
func clamp01(v float32) float32 {
	return clampf(v, 0, 1)
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// absf32 returns the absolute value of a float32.
func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// signf returns -1, 0 or 1 depending on the sign of v.
func signf(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// lerpUnclamped interpolates from a to b by t without clamping t, so easing
// functions that overshoot (t < 0 or t > 1) produce positions beyond the
// endpoints.
func lerpUnclamped(a, b, t float32) float32 {
	return a + (b-a)*t
}

// ceilf returns the ceiling of a float32 as both float32 and int.
func ceilf(v float32) (float32, int) {
	c := float32(math.Ceil(float64(v)))
	return c, int(c)
}

// roundToInt rounds a float32 to the nearest integer, halves away from zero.
func roundToInt(v float32) int {
	return int(math.Round(float64(v)))
}

// powf raises base to exp for float32 values.
func powf(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}

// smoothDamp moves current toward target with critically damped spring
// behavior, never overshooting the target. smoothTime is roughly the time to
// cover most of the remaining distance; velocity is carried between calls.
// Returns the new position and the updated velocity.
func smoothDamp(current, target, velocity, smoothTime, dt float32) (float32, float32) {
	smoothTime = maxf(smoothTime, 1e-4)
	omega := 2 / smoothTime

	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (velocity + omega*change) * dt
	velocity = (velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	// Guard against overshooting the target.
	if (target-current > 0) == (output > target) {
		output = target
		if dt > 0 {
			velocity = (output - target) / dt
		}
	}
	return output, velocity
}

// rubberDelta computes the diminishing rubber-band displacement for an
// overshoot past a boundary: resistance grows with the overshoot magnitude,
// so the view can never be dragged arbitrarily far outside its bounds.
func rubberDelta(overshoot, viewSize float32) float32 {
	const stiffness = 0.55
	return (1 - 1/(absf32(overshoot)*stiffness/viewSize+1)) * viewSize * signf(overshoot)
}
