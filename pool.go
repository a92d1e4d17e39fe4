package scrollview

import "fmt"

// minCellInterval guards the division in position mapping against a zero
// cell interval. Degenerate geometry scrolls badly but never divides by zero.
const minCellInterval = 1e-5

// Pool owns the fixed-growing collection of cells and maps a continuous
// scroll position onto logical item indices. A fixed physical slot is reused
// as the window scrolls via circular indexing over the pool length, so the
// pool never needs more cells than cover one viewport span (plus the
// configured reuse margin).
//
// The pool grows monotonically and never destroys cells; out-of-range slots
// are hidden instead. All methods must be called from the same goroutine that
// drives the per-tick update.
type Pool[T any] struct {
	host   CellHost[T]
	geo    ScrollGeometryProvider
	margin int

	cells       []*Cell
	items       []T
	position    float32
	initialized bool
}

// NewPool creates a pool bound to a host and a shared geometry record.
// No cells are created until the first position update (lazy init).
func NewPool[T any](host CellHost[T], geo ScrollGeometryProvider, reuseMargin int) *Pool[T] {
	return &Pool[T]{
		host:   host,
		geo:    geo,
		margin: max(reuseMargin, 0),
	}
}

// SetItems replaces the logical data source and forces a rebind of all
// visible cells at the current position.
func (p *Pool[T]) SetItems(items []T) error {
	p.items = items
	if !p.initialized {
		return nil
	}
	return p.Refresh()
}

// Items returns the current logical data source.
func (p *Pool[T]) Items() []T {
	return p.items
}

// Len returns the number of cells in the pool.
func (p *Pool[T]) Len() int {
	return len(p.cells)
}

// Cells returns the pool's cells in slot order. Callers must treat the
// returned slice and cells as read-only.
func (p *Pool[T]) Cells() []*Cell {
	return p.cells
}

// Position returns the scroll position of the last update.
func (p *Pool[T]) Position() float32 {
	return p.position
}

// FirstSlotOffset returns the normalized offset of the first slot at the
// current position, in [0, cellInterval).
func (p *Pool[T]) FirstSlotOffset() float32 {
	interval := p.interval()
	pos := p.position - p.geo.ScrollOffset()/interval
	ceil, _ := ceilf(pos)
	return (ceil - pos) * interval
}

// UpdatePosition is the single entry point for all layout updates. It maps
// the position to logical indices, grows the pool if the viewport is no
// longer covered, and rebinds/positions/hides cells. With forceRefresh false,
// cells whose bound index is unchanged are only repositioned, never rebound.
//
// Growth failures (nil host, host instantiation errors) abort the update
// without touching already-created cells.
func (p *Pool[T]) UpdatePosition(position float32, forceRefresh bool) error {
	if !p.initialized {
		if err := p.initialize(); err != nil {
			return err
		}
	}
	p.position = position

	interval := p.interval()
	pos := position - p.geo.ScrollOffset()/interval
	ceil, firstIndex := ceilf(pos)
	firstOffset := (ceil - pos) * interval

	if firstOffset+float32(len(p.cells))*interval < 1 {
		if err := p.grow(firstOffset); err != nil {
			return err
		}
	}
	p.updateCells(firstOffset, firstIndex, forceRefresh)
	return nil
}

// Relayout recomputes cell positions at the current position without forcing
// rebinds. Use after a geometry-only change.
func (p *Pool[T]) Relayout() error {
	return p.UpdatePosition(p.position, false)
}

// Refresh recomputes the layout and forces a rebind of all visible cells.
// Use after the underlying data changed in place.
func (p *Pool[T]) Refresh() error {
	return p.UpdatePosition(p.position, true)
}

func (p *Pool[T]) initialize() error {
	if p.host == nil {
		return ErrNoHost
	}
	if p.geo == nil {
		return fmt.Errorf("%w: nil geometry provider", ErrInvalidConfig)
	}
	p.initialized = true
	scrollLogger.Debug("pool initialized", "interval", p.geo.CellInterval(), "loop", p.geo.Looping())
	return nil
}

func (p *Pool[T]) interval() float32 {
	return maxf(p.geo.CellInterval(), minCellInterval)
}

// grow instantiates cells until the pool covers one viewport span at the
// current first-slot offset, plus the reuse margin. Growth never removes
// cells; new cells start hidden and unbound.
func (p *Pool[T]) grow(firstOffset float32) error {
	interval := p.interval()
	_, needed := ceilf((1 - firstOffset) / interval)
	needed += p.margin

	for len(p.cells) < needed {
		handle, err := p.host.Instantiate()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInstantiate, err)
		}
		p.host.SetVisible(handle, false)
		p.cells = append(p.cells, &Cell{
			Index:  -1,
			handle: handle,
			geo:    p.geo,
		})
	}

	scrollLogger.Debug("pool grown", "cells", len(p.cells), "firstOffset", firstOffset)
	return nil
}

func (p *Pool[T]) updateCells(firstOffset float32, firstIndex int, forceRefresh bool) {
	interval := p.interval()
	count := len(p.items)
	loop := p.geo.Looping()
	visibleLimit := 1 + float32(p.margin)*interval

	for i := range p.cells {
		logical := firstIndex + i
		offset := firstOffset + float32(i)*interval

		// A fixed physical slot follows each logical index as the window
		// scrolls; the slot assignment is circular over the pool length.
		cell := p.cells[CircularIndex(logical, len(p.cells))]

		if loop {
			logical = CircularIndex(logical, count)
		}

		if logical < 0 || logical >= count || offset > visibleLimit {
			if cell.Visible {
				cell.Visible = false
				p.host.SetVisible(cell.handle, false)
			}
			continue
		}

		if forceRefresh || cell.Index != logical || !cell.Visible {
			cell.Index = logical
			cell.Visible = true
			p.host.SetVisible(cell.handle, true)
			p.host.Bind(cell.handle, logical, p.items[logical])
		}

		// Position is pushed every update, bound or not.
		cell.LocalOffset = offset
		p.host.SetLocalOffset(cell.handle, offset)
	}
}
