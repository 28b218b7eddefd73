// Package grid defines core types, constants, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/pathlab.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrUnknownHeuristic indicates a Heuristic value or name outside the supported set.
	ErrUnknownHeuristic = errors.New("grid: unknown heuristic")
	// ErrUnknownConnectivity indicates a Connectivity value or name outside the supported set.
	ErrUnknownConnectivity = errors.New("grid: unknown connectivity")
)

// Point is a cell coordinate on a rectangular grid.
// X grows rightward, Y grows downward; the origin is the top-left cell.
// Point is comparable and may be used directly as a map key.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the translation of p by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// String renders p as "(x,y)" for logs and error messages.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity, visited in order: up, left, right, down.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, visited clockwise: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Valid reports whether c is one of the declared Connectivity constants.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// String returns the canonical name accepted by ParseConnectivity.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4-way"
	case Conn8:
		return "8-way"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// ParseConnectivity maps a configuration string to a Connectivity.
// Accepted names: "4", "4-way", "8", "8-way".
// Returns ErrUnknownConnectivity for anything else.
func ParseConnectivity(name string) (Connectivity, error) {
	switch name {
	case "4", "4-way":
		return Conn4, nil
	case "8", "8-way":
		return Conn8, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownConnectivity, name)
	}
}

// Heuristic selects the distance estimate used by informed searches.
// All estimates share the ×10 fixed-point scale of StepCost.
type Heuristic int

const (
	// HeuristicNone always estimates 0; informed modes degrade to uniform-cost behavior.
	HeuristicNone Heuristic = iota
	// Manhattan estimates 10·(|dx|+|dy|); admissible on Conn4 grids.
	Manhattan
	// Chebyshev estimates 10·max(|dx|,|dy|); admissible on Conn8 grids.
	Chebyshev
	// Octile estimates 14·min(|dx|,|dy|) + 10·(max−min); exact for obstacle-free Conn8 travel.
	Octile
	// Euclidean estimates round(10·√(dx²+dy²)); the straight-line distance.
	Euclidean
)

// Valid reports whether h is one of the declared Heuristic constants.
func (h Heuristic) Valid() bool {
	return h >= HeuristicNone && h <= Euclidean
}

// String returns the canonical name accepted by ParseHeuristic.
func (h Heuristic) String() string {
	switch h {
	case HeuristicNone:
		return "none"
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	case Octile:
		return "octile"
	case Euclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// ParseHeuristic maps a configuration string to a Heuristic.
// Accepted names: "none", "manhattan", "chebyshev", "octile", "euclidean".
// Returns ErrUnknownHeuristic for anything else.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "none", "":
		return HeuristicNone, nil
	case "manhattan":
		return Manhattan, nil
	case "chebyshev":
		return Chebyshev, nil
	case "octile":
		return Octile, nil
	case "euclidean":
		return Euclidean, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}
