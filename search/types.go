// Package search defines core types, options, and sentinel errors
// for the search subpackage of github.com/katalvlaran/pathlab.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathlab/grid"
)

// Sentinel errors for search construction and initialization.
var (
	// ErrUnsupportedMode indicates a Mode the requested engine cannot run.
	ErrUnsupportedMode = errors.New("search: unsupported search mode")
	// ErrNilFrontier indicates a nil Frontier was supplied to a constructor.
	ErrNilFrontier = errors.New("search: frontier is nil")
	// ErrNilNodes indicates Init received a nil node map.
	ErrNilNodes = errors.New("search: node map is nil")
	// ErrEmptyGrid indicates the grid size is not positive in both axes.
	ErrEmptyGrid = errors.New("search: grid must have positive width and height")
	// ErrOutOfBounds indicates start or end lies outside the grid.
	ErrOutOfBounds = errors.New("search: point outside the grid")
	// ErrOptionViolation is returned when an invalid RunOption is supplied.
	ErrOptionViolation = errors.New("search: invalid run option")
)

// Mode selects the search strategy. The six graph modes run on the
// GraphSearch engine; FlowFieldSearch runs on the FlowField engine.
type Mode int

const (
	// BreadthFirst expands in FIFO level order; priority is always 0.
	BreadthFirst Mode = iota
	// DepthFirst expands in LIFO order; priority is always 0.
	DepthFirst
	// UniformCost expands by accumulated cost g (Dijkstra).
	UniformCost
	// GreedyBestFirst expands by heuristic estimate h alone.
	GreedyBestFirst
	// AStar expands by f = g + h.
	AStar
	// WeightedAStar expands by g + round(weight·h); weight > 1 trades
	// optimality for speed.
	WeightedAStar
	// FlowFieldSearch propagates cost goal-outward over every reachable
	// cell; it has no start-to-goal priority function.
	FlowFieldSearch
)

// graphMode reports whether m runs on the GraphSearch engine.
func (m Mode) graphMode() bool {
	return m >= BreadthFirst && m <= WeightedAStar
}

// levelOrder reports whether m relaxes without cost comparison.
func (m Mode) levelOrder() bool {
	return m == BreadthFirst || m == DepthFirst
}

// String returns the canonical name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case UniformCost:
		return "ucs"
	case GreedyBestFirst:
		return "greedy"
	case AStar:
		return "astar"
	case WeightedAStar:
		return "weighted-astar"
	case FlowFieldSearch:
		return "flowfield"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a configuration string to a Mode.
// Accepted names: "bfs", "dfs", "ucs"/"dijkstra", "greedy", "astar"/"a*",
// "weighted-astar"/"wastar", "flowfield"/"flow-field".
// Returns ErrUnsupportedMode for anything else.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "bfs":
		return BreadthFirst, nil
	case "dfs":
		return DepthFirst, nil
	case "ucs", "dijkstra":
		return UniformCost, nil
	case "greedy":
		return GreedyBestFirst, nil
	case "astar", "a*":
		return AStar, nil
	case "weighted-astar", "wastar":
		return WeightedAStar, nil
	case "flowfield", "flow-field":
		return FlowFieldSearch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
	}
}

// Status is the engine lifecycle: NotStarted after Init, Running once
// stepping begins, Complete when the goal is found or the frontier drains.
type Status uint8

const (
	// StatusNotStarted means Init succeeded and no step has run yet.
	StatusNotStarted Status = iota
	// StatusRunning means at least one step ran and the search can continue.
	StatusRunning
	// StatusComplete means the search terminated; further steps are no-ops.
	StatusComplete
)

// String returns a short lowercase label for logs.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusRunning:
		return "running"
	case StatusComplete:
		return "complete"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// RunOption configures a single Init via functional arguments.
// If an option is invalid (e.g. negative weight), it is recorded
// internally and surfaced as ErrOptionViolation when Init is invoked.
type RunOption func(*RunOptions)

// RunOptions holds per-run parameters applied at Init.
type RunOptions struct {
	// Weight scales the heuristic in WeightedAStar mode: priority is
	// g + round(Weight·h). Other modes ignore it.
	Weight float64

	// DepthLimit, if > 0, rejects relaxations beyond that many moves
	// from the seed. A value of 0 explicitly disables the limit.
	DepthLimit int

	// Record enables the per-step narration log.
	Record bool

	// internal error recorded during option parsing
	err error
}

// DefaultRunOptions returns RunOptions with sane defaults:
// Weight 1.0, no depth limit, no recording.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Weight:     1.0,
		DepthLimit: 0,
		Record:     false,
		err:        nil,
	}
}

// WithWeight sets the heuristic scale for WeightedAStar.
//
//	w ≥ 0: valid (0 degrades to uniform-cost ordering)
//	w < 0: invalid option → ErrOptionViolation
func WithWeight(w float64) RunOption {
	return func(o *RunOptions) {
		if w < 0 {
			o.err = fmt.Errorf("%w: Weight cannot be negative (%g)", ErrOptionViolation, w)
			return
		}
		o.Weight = w
	}
}

// WithDepthLimit bounds exploration depth (in moves from the seed).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithDepthLimit(d int) RunOption {
	return func(o *RunOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithStepLog enables per-step narration, readable via Log() after Init.
func WithStepLog() RunOption {
	return func(o *RunOptions) {
		o.Record = true
	}
}

// Searcher is the common surface of GraphSearch and FlowField. Callers
// that only orchestrate runs (sessions, CLIs) depend on this interface
// rather than a concrete engine.
type Searcher interface {
	// Init binds a run: grid size, endpoints, terrain and options.
	// It fully resets prior state, including counters and the log.
	Init(size, start, end grid.Point, nodes NodeMap, opts ...RunOption) error
	// Step performs one productive expansion; false means terminal.
	Step() bool
	// Run steps until terminal and reports whether the goal was reached.
	Run() bool
	// Path returns the found route as cell snapshots, start first.
	Path() []Cell
	// Found reports whether the goal was reached.
	Found() bool
	// Status reports the engine lifecycle state.
	Status() Status
	// Steps returns the number of productive steps taken so far.
	Steps() int
	// OpenCount returns the number of cells currently Open.
	OpenCount() int
	// ClosedCount returns the number of cells Closed so far.
	ClosedCount() int
	// Nodes exposes the live node map bound at Init.
	Nodes() NodeMap
	// Log returns the narration log, or nil unless WithStepLog was set.
	Log() *StepLog
}

// New builds the engine and frontier matching mode: a FIFO queue for
// BreadthFirst, a LIFO stack for DepthFirst, a min-heap for the four
// cost-aware modes, and the FlowField engine (FIFO wavefront) for
// FlowFieldSearch.
// Returns ErrUnsupportedMode for anything else.
func New(mode Mode, h grid.Heuristic, conn grid.Connectivity) (Searcher, error) {
	switch mode {
	case BreadthFirst:
		return NewGraphSearch(mode, h, conn, NewQueueFrontier())
	case DepthFirst:
		return NewGraphSearch(mode, h, conn, NewStackFrontier())
	case UniformCost, GreedyBestFirst, AStar, WeightedAStar:
		return NewGraphSearch(mode, h, conn, NewHeapFrontier())
	case FlowFieldSearch:
		return NewFlowField(conn, NewQueueFrontier())
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMode, int(mode))
	}
}
