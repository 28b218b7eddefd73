// Package session defines the configuration and snapshot types
// for the session subpackage of github.com/katalvlaran/pathlab.
package session

import (
	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// Override customizes one cell of an otherwise pristine grid.
type Override struct {
	// Walkable marks whether the cell can be entered.
	Walkable bool
	// Cost is extra terrain cost added when entering the cell.
	Cost int
}

// Snapshot is the complete grid description a session consumes: the
// dimensions, the endpoints, and a sparse set of per-cell overrides.
// Cells absent from Overrides are walkable with zero extra cost.
//
// Sessions deep-copy snapshots on intake, so callers may keep mutating
// their own copy; out-of-bounds override keys are ignored at build time.
type Snapshot struct {
	Size      grid.Point
	Start     grid.Point
	End       grid.Point
	Overrides map[grid.Point]Override
}

// cloneSnapshot returns a deep copy of s, never sharing the override map.
func cloneSnapshot(s Snapshot) Snapshot {
	out := Snapshot{Size: s.Size, Start: s.Start, End: s.End}
	if s.Overrides != nil {
		out.Overrides = make(map[grid.Point]Override, len(s.Overrides))
		for p, o := range s.Overrides {
			out.Overrides[p] = o
		}
	}
	return out
}

// Config is the algorithm selection a session runs with.
type Config struct {
	// Mode selects the strategy, FlowFieldSearch included.
	Mode search.Mode
	// Heuristic feeds the informed modes; level-order modes ignore it.
	Heuristic grid.Heuristic
	// Conn selects 4- or 8-directional neighborhoods.
	Conn grid.Connectivity
	// Weight scales the heuristic in WeightedAStar mode.
	Weight float64
	// DepthLimit bounds exploration in moves from the seed; 0 disables.
	DepthLimit int
}

// DefaultConfig returns the out-of-the-box selection: A* with the
// Octile estimate on an 8-connected grid, weight 1.0, no depth limit.
func DefaultConfig() Config {
	return Config{
		Mode:      search.AStar,
		Heuristic: grid.Octile,
		Conn:      grid.Conn8,
		Weight:    1.0,
	}
}

// Option adjusts the initial Config of a new session.
type Option func(*Config)

// WithMode selects the search strategy.
func WithMode(m search.Mode) Option {
	return func(c *Config) { c.Mode = m }
}

// WithHeuristic selects the distance estimate for informed modes.
func WithHeuristic(h grid.Heuristic) Option {
	return func(c *Config) { c.Heuristic = h }
}

// WithConnectivity selects the neighborhood shape.
func WithConnectivity(conn grid.Connectivity) Option {
	return func(c *Config) { c.Conn = conn }
}

// WithWeight sets the WeightedAStar heuristic scale.
func WithWeight(w float64) Option {
	return func(c *Config) { c.Weight = w }
}

// WithDepthLimit bounds exploration depth; 0 disables the limit.
func WithDepthLimit(d int) Option {
	return func(c *Config) { c.DepthLimit = d }
}

// WithConfig replaces the whole configuration at once. Later options
// still apply on top of it.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}
