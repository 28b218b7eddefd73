package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathlab/grid"
)

//----------------------------------------------------------------------------//
// Distance Tests
//----------------------------------------------------------------------------//

// TestDistance_Values pins the fixed-point arithmetic of every estimate on
// the delta (3,5) and a few degenerate pairs.
func TestDistance_Values(t *testing.T) {
	a, b := grid.Pt(2, 1), grid.Pt(5, 6) // dx=3, dy=5
	cases := []struct {
		name string
		h    grid.Heuristic
		a, b grid.Point
		want int
	}{
		{"None", grid.HeuristicNone, a, b, 0},
		{"Manhattan", grid.Manhattan, a, b, 10 * (3 + 5)},
		{"Chebyshev", grid.Chebyshev, a, b, 10 * 5},
		{"Octile", grid.Octile, a, b, 14*3 + 10*(5-3)},
		{"Euclidean", grid.Euclidean, a, b, 58}, // round(10·√34) = round(58.309…)
		{"ManhattanSamePoint", grid.Manhattan, a, a, 0},
		{"EuclideanSamePoint", grid.Euclidean, b, b, 0},
		{"OctileStraightLine", grid.Octile, grid.Pt(0, 0), grid.Pt(4, 0), 40},
		{"OctilePureDiagonal", grid.Octile, grid.Pt(0, 0), grid.Pt(3, 3), 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := grid.Distance(tc.h, tc.a, tc.b)
			if err != nil {
				t.Fatalf("Distance(%v, %v, %v) error: %v", tc.h, tc.a, tc.b, err)
			}
			if got != tc.want {
				t.Errorf("Distance(%v, %v, %v) = %d; want %d", tc.h, tc.a, tc.b, got, tc.want)
			}
		})
	}
}

// TestDistance_Symmetry verifies Distance(h,a,b) == Distance(h,b,a) for all modes.
func TestDistance_Symmetry(t *testing.T) {
	a, b := grid.Pt(-2, 7), grid.Pt(4, -1)
	for _, h := range []grid.Heuristic{
		grid.HeuristicNone, grid.Manhattan, grid.Chebyshev, grid.Octile, grid.Euclidean,
	} {
		ab, err := grid.Distance(h, a, b)
		if err != nil {
			t.Fatalf("Distance(%v, a, b) error: %v", h, err)
		}
		ba, err := grid.Distance(h, b, a)
		if err != nil {
			t.Fatalf("Distance(%v, b, a) error: %v", h, err)
		}
		if ab != ba {
			t.Errorf("Distance(%v) asymmetric: a→b=%d, b→a=%d", h, ab, ba)
		}
	}
}

// TestDistance_UnknownHeuristic verifies the sentinel on out-of-range values.
func TestDistance_UnknownHeuristic(t *testing.T) {
	_, err := grid.Distance(grid.Heuristic(42), grid.Pt(0, 0), grid.Pt(1, 1))
	if !errors.Is(err, grid.ErrUnknownHeuristic) {
		t.Errorf("Distance(Heuristic(42)) error = %v; want ErrUnknownHeuristic", err)
	}
}

// TestParseHeuristic covers every canonical name plus the error path.
func TestParseHeuristic(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Heuristic
		err  error
	}{
		{"none", grid.HeuristicNone, nil},
		{"", grid.HeuristicNone, nil},
		{"manhattan", grid.Manhattan, nil},
		{"chebyshev", grid.Chebyshev, nil},
		{"octile", grid.Octile, nil},
		{"euclidean", grid.Euclidean, nil},
		{"taxicab", 0, grid.ErrUnknownHeuristic},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := grid.ParseHeuristic(tc.in)
			if !errors.Is(err, tc.err) {
				t.Fatalf("ParseHeuristic(%q) error = %v; want %v", tc.in, err, tc.err)
			}
			if err == nil && got != tc.want {
				t.Errorf("ParseHeuristic(%q) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}
