// Package grid provides bounds checks, neighbor enumeration and move
// costs for rectangular 2D grids. All costs use a ×10 fixed-point
// integer scale so that heuristic estimates and accumulated path costs
// stay in one unit system with no floating-point drift.
package grid

// Fixed-point move costs on the ×10 scale.
const (
	// StraightCost is the cost of one orthogonal move (distance 1 × 10).
	StraightCost = 10
	// DiagonalCost is the cost of one diagonal move (≈ √2 × 10).
	DiagonalCost = 14
)

// conn4Offsets lists orthogonal neighbors in order: up, left, right, down.
var conn4Offsets = [4]Point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// conn8Offsets sweeps clockwise from north: N, NE, E, SE, S, SW, W, NW.
var conn8Offsets = [8]Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Offsets returns the neighbor displacement vectors for c in their fixed
// visit order. The slice is a fresh copy; callers iterating it per step
// should fetch it once and reuse it.
// Complexity: O(d) for d ∈ {4, 8}.
func Offsets(c Connectivity) []Point {
	if c == Conn8 {
		out := make([]Point, len(conn8Offsets))
		copy(out, conn8Offsets[:])
		return out
	}
	out := make([]Point, len(conn4Offsets))
	copy(out, conn4Offsets[:])
	return out
}

// InBounds reports whether p lies within a grid of the given size,
// i.e. 0 ≤ p.X < size.X and 0 ≤ p.Y < size.Y.
// Complexity: O(1).
func InBounds(p, size Point) bool {
	return p.X >= 0 && p.X < size.X && p.Y >= 0 && p.Y < size.Y
}

// Neighbors returns the in-bounds neighbors of p for the given
// connectivity, in the fixed Offsets order.
// Complexity: O(d) time and memory for d ∈ {4, 8}.
func Neighbors(p, size Point, c Connectivity) []Point {
	offs := conn4Offsets[:]
	if c == Conn8 {
		offs = conn8Offsets[:]
	}
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		n := p.Add(d)
		if InBounds(n, size) {
			out = append(out, n)
		}
	}
	return out
}

// StepCost returns the base cost of moving between two adjacent cells:
// StraightCost for orthogonal moves, DiagonalCost when both axes change.
// The caller guarantees adjacency; per-cell terrain costs are added on
// top by the search, not here.
// Complexity: O(1).
func StepCost(from, to Point) int {
	if from.X != to.X && from.Y != to.Y {
		return DiagonalCost
	}
	return StraightCost
}
