// Package scenario: document schema, coordinate codec and sentinels.
package scenario

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlab/grid"
)

// Sentinel errors for scenario documents.
var (
	// ErrBadScenario wraps YAML decoding failures.
	ErrBadScenario = errors.New("scenario: malformed document")
	// ErrBadCoordinate indicates a coordinate that is not an [x, y] pair.
	ErrBadCoordinate = errors.New("scenario: coordinate must be an [x, y] pair")
	// ErrBadDimensions indicates a grid too small for two distinct endpoints.
	ErrBadDimensions = errors.New("scenario: width and height must hold at least two cells")
	// ErrOutOfBounds indicates a cell reference outside the grid.
	ErrOutOfBounds = errors.New("scenario: coordinate outside the grid")
	// ErrEndpointOverlap indicates coinciding start and end cells.
	ErrEndpointOverlap = errors.New("scenario: start and end must differ")
	// ErrReservedCell indicates a wall placed on an endpoint.
	ErrReservedCell = errors.New("scenario: wall on an endpoint")
	// ErrNegativeCost indicates a negative terrain cost.
	ErrNegativeCost = errors.New("scenario: cost must be non-negative")
)

// Coord is a cell position, written as a flow pair [x, y] in files.
type Coord struct {
	X int
	Y int
}

// Point converts c to the grid coordinate type.
func (c Coord) Point() grid.Point { return grid.Pt(c.X, c.Y) }

// coordOf converts a grid coordinate to the file representation.
func coordOf(p grid.Point) Coord { return Coord{X: p.X, Y: p.Y} }

// UnmarshalYAML decodes a two-element sequence into c.
func (c *Coord) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("%w: %v", ErrBadCoordinate, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: got %d values", ErrBadCoordinate, len(pair))
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}

// MarshalYAML encodes c as a flow sequence, keeping files compact.
func (c Coord) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{}
	if err := node.Encode([]int{c.X, c.Y}); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return node, nil
}

// CostCell assigns extra traversal cost to one cell.
type CostCell struct {
	At   Coord `yaml:"at"`
	Cost int   `yaml:"cost"`
}

// Scenario is one saved map plus its algorithm settings. Mode,
// heuristic, connectivity, weight and depth limit are optional; absent
// values fall back to the session defaults.
type Scenario struct {
	Name         string     `yaml:"name,omitempty"`
	Width        int        `yaml:"width"`
	Height       int        `yaml:"height"`
	Start        Coord      `yaml:"start"`
	End          Coord      `yaml:"end"`
	Mode         string     `yaml:"mode,omitempty"`
	Heuristic    string     `yaml:"heuristic,omitempty"`
	Connectivity string     `yaml:"connectivity,omitempty"`
	Weight       float64    `yaml:"weight,omitempty"`
	DepthLimit   int        `yaml:"depth_limit,omitempty"`
	Walls        []Coord    `yaml:"walls,omitempty"`
	Costs        []CostCell `yaml:"costs,omitempty"`
}
