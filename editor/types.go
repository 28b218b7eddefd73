// Package editor: sentinel errors shared by every editing operation.
package editor

import "errors"

var (
	// ErrBadDimensions is returned for sizes that cannot hold two
	// distinct endpoints (non-positive, or a single cell).
	ErrBadDimensions = errors.New("editor: grid needs positive dimensions and at least two cells")

	// ErrOutOfBounds is returned when a coordinate misses the grid.
	ErrOutOfBounds = errors.New("editor: coordinate outside the grid")

	// ErrReservedCell is returned when an obstacle edit hits a cell
	// occupied by the start or the end.
	ErrReservedCell = errors.New("editor: cell reserved by an endpoint")

	// ErrEndpointOverlap is returned when start and end would coincide.
	ErrEndpointOverlap = errors.New("editor: start and end must differ")

	// ErrNegativeCost is returned for negative terrain costs.
	ErrNegativeCost = errors.New("editor: terrain cost must be non-negative")

	// ErrBadDensity is returned when a scatter density falls outside [0, 1).
	ErrBadDensity = errors.New("editor: density must be within [0, 1)")
)
