package scrollview

import "errors"

var (
	// ErrInvalidConfig indicates a configuration value that would corrupt
	// layout math. Surfaced at construction, never from the tick path.
	ErrInvalidConfig = errors.New("scrollview: invalid configuration")

	// ErrNoHost indicates the cell host was nil when the pool first needed
	// to instantiate cells.
	ErrNoHost = errors.New("scrollview: cell host is nil")

	// ErrInstantiate wraps a host failure to create a new cell (for example
	// a missing or malformed cell template). Pool growth aborts without
	// touching already-created cells.
	ErrInstantiate = errors.New("scrollview: cell instantiation failed")

	// ErrIndexOutOfRange indicates a jump or selection request outside
	// [0, count). The scroll position is left unchanged.
	ErrIndexOutOfRange = errors.New("scrollview: index out of range")
)
