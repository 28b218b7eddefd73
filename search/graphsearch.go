// Package search implements the generalized start-to-goal engine: one
// expansion loop serving BFS, DFS, Dijkstra, Greedy best-first, A* and
// Weighted A*, differing only in the priority a cell receives.
//
// Lifecycle per run:
//
//   - Init binds size, endpoints, terrain and options, and seeds start.
//   - Step closes exactly one cell and relaxes its neighbors.
//   - Run drives Step until the goal closes or the frontier drains.
//
// Notes on implementation choices:
//
//   - The NodeMap is authoritative: frontier entries are snapshots, and
//     a popped snapshot is re-read from the map before use.
//   - Re-prioritization is lazy: improving an Open cell pushes a
//     duplicate; the stale twin is skipped when popped (already Closed).
//   - The goal short-circuits twice: when dequeued, and the moment a
//     relaxation touches it, skipping the rest of that neighbor scan.
package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/grid"
)

// GraphSearch is the incremental start-to-goal engine. Construct it
// with NewGraphSearch (or the New factory), bind a run with Init, then
// drive it with Step or Run. A single engine value can be re-initialized
// any number of times; every Init fully resets prior state.
type GraphSearch struct {
	mode      Mode              // strategy; fixed at construction
	heuristic grid.Heuristic    // estimate toward end (HeuristicNone disables)
	conn      grid.Connectivity // neighborhood shape
	frontier  Frontier          // pending-cell container
	offsets   []grid.Point      // cached neighbor displacements, fixed order

	size  grid.Point // grid dimensions
	start grid.Point // seed cell
	end   grid.Point // goal cell
	nodes NodeMap    // authoritative per-cell records

	weight     float64  // heuristic scale for WeightedAStar
	depthLimit int      // 0 = unlimited
	log        *StepLog // nil unless WithStepLog

	status      Status
	found       bool
	openCount   int
	closedCount int
	steps       int
}

// NewGraphSearch validates the strategy combination and returns an
// engine with no run bound yet. FlowFieldSearch is rejected here:
// goal-outward propagation lives in the FlowField engine.
//
// Returns ErrUnsupportedMode, grid.ErrUnknownHeuristic,
// grid.ErrUnknownConnectivity or ErrNilFrontier on invalid input.
func NewGraphSearch(mode Mode, h grid.Heuristic, conn grid.Connectivity, f Frontier) (*GraphSearch, error) {
	// 1) The engine only runs the six start-to-goal modes.
	if !mode.graphMode() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}

	// 2) Heuristic and connectivity must be declared constants; this is
	//    the single validation point, so the hot loop never re-checks.
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %d", grid.ErrUnknownHeuristic, int(h))
	}
	if !conn.Valid() {
		return nil, fmt.Errorf("%w: %d", grid.ErrUnknownConnectivity, int(conn))
	}

	// 3) A frontier is mandatory; its flavour shapes expansion order.
	if f == nil {
		return nil, ErrNilFrontier
	}

	return &GraphSearch{
		mode:      mode,
		heuristic: h,
		conn:      conn,
		frontier:  f,
		offsets:   grid.Offsets(conn),
	}, nil
}

// Init binds a run to the engine: grid size, endpoints, the terrain in
// nodes, and per-run options. All prior state is discarded: counters
// zero, frontier emptied, log replaced, and every record in nodes reset
// to Unvisited while its Walkable flag and CellCost survive.
//
// The engine takes nodes as its live store; callers wanting an
// untouched copy of the terrain must pass a copy.
//
// Returns ErrOptionViolation, ErrNilNodes, ErrEmptyGrid or ErrOutOfBounds.
// Complexity: O(|nodes|) for the scrub, O(1) otherwise.
func (s *GraphSearch) Init(size, start, end grid.Point, nodes NodeMap, opts ...RunOption) error {
	// 1) Build and validate per-run options.
	cfg := DefaultRunOptions()
	var opt RunOption
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}

	// 2) Validate the run inputs.
	if nodes == nil {
		return ErrNilNodes
	}
	if size.X <= 0 || size.Y <= 0 {
		return ErrEmptyGrid
	}
	if !grid.InBounds(start, size) {
		return fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !grid.InBounds(end, size) {
		return fmt.Errorf("%w: end %s", ErrOutOfBounds, end)
	}

	// 3) Bind the run.
	s.size, s.start, s.end = size, start, end
	s.nodes = nodes
	s.weight = cfg.Weight
	s.depthLimit = cfg.DepthLimit

	// 4) Reset all transient state from any previous run.
	s.frontier.Reset()
	s.log = nil
	if cfg.Record {
		s.log = NewStepLog()
	}
	s.status = StatusNotStarted
	s.found = false
	s.openCount, s.closedCount, s.steps = 0, 0, 0

	// 5) Scrub search residue out of the node map, keeping terrain.
	var p grid.Point
	var c Cell
	for p, c = range s.nodes {
		c.State = Unvisited
		c.G, c.H, c.Depth = 0, 0, 0
		c.Parent, c.HasParent = grid.Point{}, false
		s.nodes[p] = c
	}

	// 6) Seed the start cell: g=0, fresh estimate, no parent.
	seed := s.nodes.At(s.start)
	seed.G = 0
	seed.H = s.estimate(s.start)
	seed.Depth = 0
	seed.Parent, seed.HasParent = grid.Point{}, false
	seed.State = Open
	s.nodes[s.start] = seed
	s.openCount = 1

	// 7) Push the seed and narrate it under the pseudo-step index.
	s.frontier.Add(seed, s.priority(seed))
	s.noteAt(SeedStep, StepInit, s.start,
		fmt.Sprintf("seed %s (h=%d, mode=%s)", s.start, seed.H, s.mode))

	return nil
}

// Step performs one productive expansion: it closes exactly one cell,
// relaxes that cell's neighbors, and increments the step counter.
// Stale frontier entries are drained silently within the same call, so
// a true return always means visible progress.
//
// Returns false without acting once the search is Complete, and false
// when the frontier drains before the goal (terminal, no path).
func (s *GraphSearch) Step() bool {
	// 1) Terminal guard: completed searches ignore further requests.
	if s.status == StatusComplete {
		s.note(s.steps, StepDone, "step ignored: search already complete")
		return false
	}
	s.status = StatusRunning

	for {
		// 2) An empty frontier with the goal still open means no path.
		if s.frontier.IsEmpty() {
			s.status = StatusComplete
			s.found = false
			s.note(s.steps, StepNoPath, "frontier exhausted; goal unreachable")
			return false
		}

		// 3) Pop the next snapshot and re-read the authoritative record.
		popped := s.frontier.Next()
		cur := s.nodes.At(popped.Pos)

		// 4) Skip stale duplicates left behind by lazy re-prioritization.
		if cur.State == Closed {
			s.noteAt(s.steps, StepSkip, cur.Pos, "skip stale frontier entry for "+cur.Pos.String())
			continue
		}

		// 5) Close the cell; its record is final from here on.
		cur.State = Closed
		s.nodes[cur.Pos] = cur
		s.openCount--
		s.closedCount++
		s.noteAt(s.steps, StepExpand, cur.Pos,
			fmt.Sprintf("close %s (g=%d, h=%d)", cur.Pos, cur.G, cur.H))

		// 6) Goal dequeued: the run is complete and successful.
		if cur.Pos == s.end {
			s.found = true
			s.status = StatusComplete
			s.noteAt(s.steps, StepGoal, cur.Pos, "goal reached at "+cur.Pos.String())
			s.steps++
			return true
		}

		// 7) Relax neighbors (may short-circuit on touching the goal).
		s.expand(cur)
		s.steps++
		return true
	}
}

// expand scans cur's neighbors in the fixed offset order and relaxes
// each according to the mode. Touching the goal short-circuits: the
// engine completes immediately and remaining neighbors are not scanned.
func (s *GraphSearch) expand(cur Cell) {
	var (
		off grid.Point
		np  grid.Point
		nb  Cell
		tg  int
	)
	for _, off = range s.offsets {
		np = cur.Pos.Add(off)

		// 1) Discard candidates outside the grid or inside walls.
		if !grid.InBounds(np, s.size) {
			continue
		}
		nb = s.nodes.At(np)
		if !nb.Walkable {
			continue
		}

		// 2) Closed cells are final; never reopen.
		if nb.State == Closed {
			continue
		}

		// 3) Level-order relaxation: first touch wins, no cost compare.
		if s.mode.levelOrder() {
			if nb.State != Unvisited {
				continue
			}
			if s.depthLimit > 0 && cur.Depth+1 > s.depthLimit {
				continue
			}
			nb.Parent, nb.HasParent = cur.Pos, true
			nb.Depth = cur.Depth + 1
			nb.State = Open
			s.nodes[np] = nb
			s.openCount++
			s.frontier.Add(nb, 0)
			s.noteAt(s.steps, StepRelax, np,
				fmt.Sprintf("open %s (depth=%d)", np, nb.Depth))
			if np == s.end {
				s.finish(np)
				return
			}
			continue
		}

		// 4) Cost-aware relaxation: candidate g via this move.
		tg = cur.G + grid.StepCost(cur.Pos, np) + nb.CellCost

		switch {
		case nb.State == Unvisited:
			// First discovery; depth limit applies here only.
			if s.depthLimit > 0 && cur.Depth+1 > s.depthLimit {
				continue
			}
			nb.G = tg
			nb.H = s.estimate(np)
			nb.Parent, nb.HasParent = cur.Pos, true
			nb.Depth = cur.Depth + 1
			nb.State = Open
			s.nodes[np] = nb
			s.openCount++
			s.frontier.Add(nb, s.priority(nb))
			s.noteAt(s.steps, StepRelax, np,
				fmt.Sprintf("open %s (g=%d, h=%d)", np, nb.G, nb.H))

		case tg < nb.G:
			// Cheaper route to an Open cell: rewrite and re-push.
			nb.G = tg
			nb.Parent, nb.HasParent = cur.Pos, true
			nb.Depth = cur.Depth + 1
			s.nodes[np] = nb
			s.frontier.Add(nb, s.priority(nb))
			s.noteAt(s.steps, StepRelax, np,
				fmt.Sprintf("improve %s (g=%d)", np, nb.G))

		default:
			// No improvement; leave the record alone.
			continue
		}

		if np == s.end {
			s.finish(np)
			return
		}
	}
}

// finish marks a successful completion triggered by a relaxation
// touching the goal.
func (s *GraphSearch) finish(p grid.Point) {
	s.found = true
	s.status = StatusComplete
	s.noteAt(s.steps, StepGoal, p, "goal reached at "+p.String())
}

// Run drives Step until the search terminates and reports whether the
// goal was reached. Safe to call on a Complete engine (no-op).
// Complexity: O(N·d·log N) with the heap frontier, N = W×H.
func (s *GraphSearch) Run() bool {
	for s.Step() {
	}
	return s.found
}

// Path reconstructs the found route by walking parent links back from
// the goal, then reversing, so the result reads start → goal. Returns
// nil when the goal was not reached or is absent from the node map.
// A cycle guard and missing-parent tolerance keep corrupted maps from
// hanging the walk; the truncated prefix is returned instead.
// Complexity: O(L) for path length L.
func (s *GraphSearch) Path() []Cell {
	if !s.found {
		return nil
	}
	goal, ok := s.nodes[s.end]
	if !ok {
		return nil
	}

	// 1) Collect goal → start following parent links.
	rev := make([]Cell, 0, goal.Depth+1)
	seen := make(map[grid.Point]bool, goal.Depth+1)
	cur := goal
	for {
		if seen[cur.Pos] {
			break
		}
		seen[cur.Pos] = true
		rev = append(rev, cur)
		if cur.Pos == s.start || !cur.HasParent {
			break
		}
		parent, ok := s.nodes[cur.Parent]
		if !ok {
			break
		}
		cur = parent
	}

	// 2) Reverse in place to read start → goal.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// priority computes the frontier ordering key for c under the current
// mode. Level-order modes always return 0.
func (s *GraphSearch) priority(c Cell) int {
	switch s.mode {
	case UniformCost:
		return c.G
	case GreedyBestFirst:
		return c.H
	case AStar:
		return c.G + c.H
	case WeightedAStar:
		return c.G + int(math.Round(s.weight*float64(c.H)))
	default:
		return 0
	}
}

// estimate returns h for p toward end, or 0 when the mode or heuristic
// disables estimation. The heuristic was validated at construction, so
// Distance cannot fail here.
func (s *GraphSearch) estimate(p grid.Point) int {
	if s.mode.levelOrder() || s.heuristic == grid.HeuristicNone {
		return 0
	}
	h, _ := grid.Distance(s.heuristic, p, s.end)
	return h
}

// note records a narration entry with no cell attached.
func (s *GraphSearch) note(step int, k StepKind, msg string) {
	if s.log == nil {
		return
	}
	s.log.Append(step, Entry{Message: msg, Kind: k})
}

// noteAt records a narration entry tied to a cell.
func (s *GraphSearch) noteAt(step int, k StepKind, p grid.Point, msg string) {
	if s.log == nil {
		return
	}
	s.log.Append(step, Entry{Message: msg, At: p, HasPoint: true, Kind: k})
}

// Status reports the engine lifecycle state.
func (s *GraphSearch) Status() Status { return s.status }

// Found reports whether the goal was reached.
func (s *GraphSearch) Found() bool { return s.found }

// Steps returns the number of productive steps taken so far.
func (s *GraphSearch) Steps() int { return s.steps }

// OpenCount returns the number of cells currently Open.
func (s *GraphSearch) OpenCount() int { return s.openCount }

// ClosedCount returns the number of cells Closed so far.
func (s *GraphSearch) ClosedCount() int { return s.closedCount }

// Nodes exposes the live node map bound at Init.
func (s *GraphSearch) Nodes() NodeMap { return s.nodes }

// Log returns the narration log, or nil unless WithStepLog was set.
func (s *GraphSearch) Log() *StepLog { return s.log }
