package search

import (
	"fmt"

	"github.com/katalvlaran/pathlab/grid"
)

// CellState is the lifecycle of a cell within one run. Transitions are
// monotonic: Unvisited → Open → Closed, never backwards.
type CellState uint8

const (
	// Unvisited means the search has not touched the cell yet.
	Unvisited CellState = iota
	// Open means the cell is discovered and waiting in the frontier.
	Open
	// Closed means the cell was expanded; its record is final.
	Closed
)

// String returns a short lowercase label for logs.
func (s CellState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Cell is the complete per-cell search record. Cells travel by value:
// the NodeMap holds the authoritative copy and every read is a snapshot,
// so holding a Cell across steps never observes later mutation.
type Cell struct {
	// Pos is the cell coordinate.
	Pos grid.Point
	// Parent is the predecessor on the best known route; meaningful
	// only when HasParent is true. Seeds have no parent.
	Parent grid.Point
	// HasParent reports whether Parent is set.
	HasParent bool
	// G is the accumulated cost from the seed along the best known route.
	G int
	// H is the heuristic estimate toward the goal (0 when disabled).
	H int
	// CellCost is extra terrain cost added when entering this cell.
	CellCost int
	// Depth counts moves from the seed along the parent chain.
	Depth int
	// Walkable marks whether the cell can be entered at all.
	Walkable bool
	// State is the lifecycle position within the current run.
	State CellState
}

// F returns the total estimated cost g + h.
func (c Cell) F() int {
	return c.G + c.H
}

// NodeMap is the sparse per-cell store for one grid. Missing keys read
// as pristine walkable cells, so only touched or overridden cells
// occupy memory. Engines mutate entries by read-modify-write-back.
type NodeMap map[grid.Point]Cell

// NewNodeMap returns an empty node map.
func NewNodeMap() NodeMap {
	return make(NodeMap)
}

// At returns the cell record for p, or a pristine walkable cell when p
// was never written. The result is a snapshot; write it back to persist.
func (m NodeMap) At(p grid.Point) Cell {
	if c, ok := m[p]; ok {
		return c
	}
	return Cell{Pos: p, Walkable: true}
}

// Block marks p as unwalkable, preserving any terrain cost already set.
func (m NodeMap) Block(p grid.Point) {
	c := m.At(p)
	c.Walkable = false
	m[p] = c
}

// SetCost assigns extra terrain cost for entering p.
func (m NodeMap) SetCost(p grid.Point, cost int) {
	c := m.At(p)
	c.CellCost = cost
	m[p] = c
}
