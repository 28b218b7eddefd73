package grid

import (
	"fmt"
	"math"
)

// Distance returns the heuristic estimate between a and b on the ×10
// fixed-point scale. HeuristicNone always returns 0. The estimate is
// symmetric and Distance(h, p, p) == 0 for every supported h.
// Returns ErrUnknownHeuristic for values outside the declared set.
// Complexity: O(1).
func Distance(h Heuristic, a, b Point) (int, error) {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	// Order the deltas so dx is the major axis; Chebyshev and Octile
	// read directly off the ordered pair.
	if dx < dy {
		dx, dy = dy, dx
	}
	switch h {
	case HeuristicNone:
		return 0, nil
	case Manhattan:
		return StraightCost * (dx + dy), nil
	case Chebyshev:
		return StraightCost * dx, nil
	case Octile:
		return DiagonalCost*dy + StraightCost*(dx-dy), nil
	case Euclidean:
		return int(math.Round(StraightCost * math.Hypot(float64(dx), float64(dy)))), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownHeuristic, int(h))
	}
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
