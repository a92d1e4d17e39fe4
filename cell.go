package scrollview

// CellHandle identifies a visual element created by the host. The core never
// inspects it; it is handed back on every visibility, position and bind call.
type CellHandle any

// CellHost creates and manipulates the visual elements cells are bound to.
// The core never destroys handles - cells live for the whole session and are
// only hidden and rebound as the window scrolls.
type CellHost[T any] interface {
	// Instantiate creates one cell visual from the host's template.
	// A missing or malformed template is a fatal configuration error;
	// the returned error aborts pool growth.
	Instantiate() (CellHandle, error)

	// SetVisible shows or hides a cell visual.
	SetVisible(h CellHandle, visible bool)

	// SetLocalOffset positions a cell visual along the scroll axis, in
	// normalized viewport units.
	SetLocalOffset(h CellHandle, offset float32)

	// Bind loads an item's data into a cell visual.
	Bind(h CellHandle, index int, item T)
}

// Cell is a reusable visual slot bound to at most one logical item. Cells are
// owned by the pool and are never destroyed once instantiated, only rebound
// and hidden. Each cell holds a non-owning read-only reference to the shared
// geometry context.
type Cell struct {
	// Index is the bound logical item index, or -1 while unbound.
	Index int

	// Visible reports whether the cell's visual is currently shown.
	Visible bool

	// LocalOffset is the cell's position along the scroll axis in
	// normalized viewport units.
	LocalOffset float32

	handle CellHandle
	geo    ScrollGeometryProvider
}

// Handle returns the host handle backing this cell.
func (c *Cell) Handle() CellHandle {
	return c.handle
}

// Geometry returns the shared geometry the cell reads from.
func (c *Cell) Geometry() ScrollGeometryProvider {
	return c.geo
}
