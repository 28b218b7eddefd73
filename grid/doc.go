// Package grid provides the coordinate model shared by every search in
// pathlab: points, rectangular bounds, 4/8-neighbor connectivity, move
// costs and heuristic distance estimates.
//
// What
//
//   - Point: an (X, Y) cell coordinate, usable directly as a map key.
//   - Connectivity: Conn4 (up, left, right, down) or Conn8 (clockwise
//     from north), each with a fixed, documented neighbor order.
//   - StepCost: the cost of one move between adjacent cells, using the
//     classic ×10 fixed-point scale (10 straight, 14 diagonal ≈ 10·√2).
//   - Distance: heuristic estimates (Manhattan, Chebyshev, Octile,
//     Euclidean) on the same ×10 scale, so g and h add without mixing
//     units.
//
// Why
//
//   - Integer arithmetic keeps runs bit-for-bit reproducible: no float
//     drift, no platform-dependent rounding inside the hot loop (the
//     Euclidean estimate rounds exactly once, at the end).
//   - A fixed neighbor order makes expansion order, tie-breaking and
//     recorded step logs deterministic, which replay and tests rely on.
//
// Determinism
//
//	Offsets returns neighbors in a fixed order: Conn4 visits up, left,
//	right, down; Conn8 sweeps clockwise N, NE, E, SE, S, SW, W, NW.
//	Callers that iterate the returned slice inherit that order.
//
// Complexity
//
//   - All functions are O(1) except Neighbors, which is O(d) for
//     d ∈ {4, 8}.
//
// Usage
//
//	h, err := grid.ParseHeuristic("octile")
//	if err != nil { ... }
//	est, err := grid.Distance(h, grid.Pt(0, 0), grid.Pt(3, 5))
//	// est == 14*3 + 10*2 = 62
//
// Errors
//
//   - ErrUnknownHeuristic    if a Heuristic value or name is not recognized.
//   - ErrUnknownConnectivity if a Connectivity value or name is not recognized.
package grid
