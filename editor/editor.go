// Package editor: the Grid document and its editing operations.
package editor

import (
	"fmt"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/session"
)

// Grid is the editable document: dimensions, endpoints and a sparse
// override map keyed by cell. The zero value is not usable; construct
// with New or FromSnapshot. Not safe for concurrent use.
type Grid struct {
	size  grid.Point
	start grid.Point
	end   grid.Point
	cells map[grid.Point]session.Override
}

// New returns a w×h document with clear terrain, the start in the
// top-left corner and the end in the bottom-right one.
//
// Returns ErrBadDimensions when the size cannot hold two endpoints.
func New(w, h int) (*Grid, error) {
	if w < 1 || h < 1 || w*h < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	return &Grid{
		size:  grid.Pt(w, h),
		start: grid.Pt(0, 0),
		end:   grid.Pt(w-1, h-1),
		cells: make(map[grid.Point]session.Override),
	}, nil
}

// FromSnapshot rebuilds an editable document from a session snapshot,
// dropping overrides outside its bounds and clearing any obstacle that
// sits under an endpoint.
//
// Returns ErrBadDimensions, ErrOutOfBounds or ErrEndpointOverlap.
func FromSnapshot(snap session.Snapshot) (*Grid, error) {
	if snap.Size.X < 1 || snap.Size.Y < 1 || snap.Size.X*snap.Size.Y < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, snap.Size.X, snap.Size.Y)
	}
	if !grid.InBounds(snap.Start, snap.Size) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, snap.Start)
	}
	if !grid.InBounds(snap.End, snap.Size) {
		return nil, fmt.Errorf("%w: end %s", ErrOutOfBounds, snap.End)
	}
	if snap.Start == snap.End {
		return nil, ErrEndpointOverlap
	}

	g := &Grid{
		size:  snap.Size,
		start: snap.Start,
		end:   snap.End,
		cells: make(map[grid.Point]session.Override, len(snap.Overrides)),
	}
	for p, o := range snap.Overrides {
		if !grid.InBounds(p, snap.Size) {
			continue
		}
		g.put(p, o)
	}
	g.ensureWalkable(g.start)
	g.ensureWalkable(g.end)

	return g, nil
}

// put stores o at p, pruning entries equal to the untouched default so
// the map lists exactly the cells a user changed.
func (g *Grid) put(p grid.Point, o session.Override) {
	if o.Walkable && o.Cost == 0 {
		delete(g.cells, p)
		return
	}
	g.cells[p] = o
}

// at reads the effective override at p.
func (g *Grid) at(p grid.Point) session.Override {
	if o, ok := g.cells[p]; ok {
		return o
	}
	return session.Override{Walkable: true}
}

// ensureWalkable clears any obstacle at p, keeping its terrain cost.
// Endpoints always sit on walkable terrain.
func (g *Grid) ensureWalkable(p grid.Point) {
	o := g.at(p)
	if !o.Walkable {
		o.Walkable = true
		g.put(p, o)
	}
}

//----------------------------------------------------------------------------//
// Inspection
//----------------------------------------------------------------------------//

// Size returns the document dimensions.
func (g *Grid) Size() grid.Point { return g.size }

// Start returns the search origin.
func (g *Grid) Start() grid.Point { return g.start }

// End returns the search goal.
func (g *Grid) End() grid.Point { return g.end }

// IsBlocked reports whether p holds an obstacle. Out-of-bounds cells
// read as blocked.
func (g *Grid) IsBlocked(p grid.Point) bool {
	if !grid.InBounds(p, g.size) {
		return true
	}
	return !g.at(p).Walkable
}

// CostAt returns the extra terrain cost at p, 0 for untouched or
// out-of-bounds cells.
func (g *Grid) CostAt(p grid.Point) int {
	if !grid.InBounds(p, g.size) {
		return 0
	}
	return g.at(p).Cost
}

// Obstacles counts the blocked cells.
func (g *Grid) Obstacles() int {
	n := 0
	for _, o := range g.cells {
		if !o.Walkable {
			n++
		}
	}
	return n
}

//----------------------------------------------------------------------------//
// Endpoint edits
//----------------------------------------------------------------------------//

// SetStart moves the search origin to p. An obstacle under p is
// cleared rather than rejected, so endpoints can land anywhere.
//
// Returns ErrOutOfBounds or ErrEndpointOverlap.
func (g *Grid) SetStart(p grid.Point) error {
	if !grid.InBounds(p, g.size) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if p == g.end {
		return fmt.Errorf("%w: %s", ErrEndpointOverlap, p)
	}
	g.start = p
	g.ensureWalkable(p)
	return nil
}

// SetEnd moves the search goal to p under the same rules as SetStart.
func (g *Grid) SetEnd(p grid.Point) error {
	if !grid.InBounds(p, g.size) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if p == g.start {
		return fmt.Errorf("%w: %s", ErrEndpointOverlap, p)
	}
	g.end = p
	g.ensureWalkable(p)
	return nil
}

//----------------------------------------------------------------------------//
// Cell edits
//----------------------------------------------------------------------------//

// Toggle flips the obstacle flag at p.
//
// Returns ErrOutOfBounds or ErrReservedCell.
func (g *Grid) Toggle(p grid.Point) error {
	if !grid.InBounds(p, g.size) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if p == g.start || p == g.end {
		return fmt.Errorf("%w: %s", ErrReservedCell, p)
	}
	o := g.at(p)
	o.Walkable = !o.Walkable
	g.put(p, o)
	return nil
}

// Block places an obstacle at p.
//
// Returns ErrOutOfBounds or ErrReservedCell.
func (g *Grid) Block(p grid.Point) error {
	if !grid.InBounds(p, g.size) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if p == g.start || p == g.end {
		return fmt.Errorf("%w: %s", ErrReservedCell, p)
	}
	o := g.at(p)
	o.Walkable = false
	g.put(p, o)
	return nil
}

// Unblock clears the obstacle at p, keeping any terrain cost.
//
// Returns ErrOutOfBounds.
func (g *Grid) Unblock(p grid.Point) error {
	if !grid.InBounds(p, g.size) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	o := g.at(p)
	o.Walkable = true
	g.put(p, o)
	return nil
}

// SetCost assigns extra traversal cost to p; 0 restores plain terrain.
// Costs are legal on endpoint cells: entering the goal pays its cost.
//
// Returns ErrOutOfBounds or ErrNegativeCost.
func (g *Grid) SetCost(p grid.Point, cost int) error {
	if !grid.InBounds(p, g.size) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if cost < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCost, cost)
	}
	o := g.at(p)
	o.Cost = cost
	g.put(p, o)
	return nil
}

// ClearAll wipes every obstacle and terrain cost.
func (g *Grid) ClearAll() {
	g.cells = make(map[grid.Point]session.Override)
}

//----------------------------------------------------------------------------//
// Document edits
//----------------------------------------------------------------------------//

// Resize changes the dimensions to w×h. Overrides outside the new
// bounds are dropped and the endpoints are clamped inside; if clamping
// makes them collide, the end jumps to the bottom-right corner, or to
// the top-left one when the start already sits there.
//
// Returns ErrBadDimensions.
func (g *Grid) Resize(w, h int) error {
	if w < 1 || h < 1 || w*h < 2 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}
	g.size = grid.Pt(w, h)

	for p := range g.cells {
		if !grid.InBounds(p, g.size) {
			delete(g.cells, p)
		}
	}

	g.start = clamp(g.start, g.size)
	g.end = clamp(g.end, g.size)
	if g.start == g.end {
		g.end = grid.Pt(w-1, h-1)
		if g.start == g.end {
			g.end = grid.Pt(0, 0)
		}
	}
	g.ensureWalkable(g.start)
	g.ensureWalkable(g.end)

	return nil
}

// clamp forces p inside size.
func clamp(p, size grid.Point) grid.Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.X >= size.X {
		p.X = size.X - 1
	}
	if p.Y >= size.Y {
		p.Y = size.Y - 1
	}
	return p
}

// Snapshot exports the document as an immutable run input. The override
// map is copied, so later edits never reach a session built from it.
func (g *Grid) Snapshot() session.Snapshot {
	out := session.Snapshot{
		Size:      g.size,
		Start:     g.start,
		End:       g.end,
		Overrides: make(map[grid.Point]session.Override, len(g.cells)),
	}
	for p, o := range g.cells {
		out.Overrides[p] = o
	}
	return out
}
