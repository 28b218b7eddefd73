// Package search also ships FlowField, the goal-outward engine. It
// seeds the end cell instead of the start and propagates accumulated
// cost until the frontier drains, so every reached cell ends up with a
// parent pointing one hop toward the goal. Many agents can then route
// along the same field without re-searching.
package search

import (
	"fmt"

	"github.com/katalvlaran/pathlab/grid"
)

// FlowField propagates cost outward from the goal over every reachable
// cell. Unlike GraphSearch it never stops early: reaching the origin
// only flips the success flag, and propagation continues until the
// frontier is empty so the whole field is routable.
type FlowField struct {
	conn     grid.Connectivity
	frontier Frontier
	offsets  []grid.Point

	size  grid.Point
	start grid.Point // the origin the field must reach for success
	end   grid.Point // the goal the field radiates from
	nodes NodeMap

	depthLimit int
	log        *StepLog

	status      Status
	found       bool
	openCount   int
	closedCount int
	steps       int
}

// NewFlowField returns a goal-outward engine with no run bound yet.
// The default wiring (via New) uses a FIFO frontier, which expands the
// field hop-layer by hop-layer; a heap frontier yields strict
// lowest-cost-first wavefronts on weighted terrain.
//
// Returns grid.ErrUnknownConnectivity or ErrNilFrontier on invalid input.
func NewFlowField(conn grid.Connectivity, f Frontier) (*FlowField, error) {
	if !conn.Valid() {
		return nil, fmt.Errorf("%w: %d", grid.ErrUnknownConnectivity, int(conn))
	}
	if f == nil {
		return nil, ErrNilFrontier
	}
	return &FlowField{
		conn:     conn,
		frontier: f,
		offsets:  grid.Offsets(conn),
	}, nil
}

// Init binds a run: the field will radiate from end, and success means
// start is reached. All prior state is discarded exactly as in
// GraphSearch.Init; Weight has no effect here, DepthLimit bounds the
// field radius in hops from the goal.
//
// Returns ErrOptionViolation, ErrNilNodes, ErrEmptyGrid or ErrOutOfBounds.
// Complexity: O(|nodes|) for the scrub, O(1) otherwise.
func (f *FlowField) Init(size, start, end grid.Point, nodes NodeMap, opts ...RunOption) error {
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
	f.size, f.start, f.end = size, start, end
	f.nodes = nodes
	f.depthLimit = cfg.DepthLimit

	// 4) Reset all transient state from any previous run.
	f.frontier.Reset()
	f.log = nil
	if cfg.Record {
		f.log = NewStepLog()
	}
	f.status = StatusNotStarted
	f.found = false
	f.openCount, f.closedCount, f.steps = 0, 0, 0

	// 5) Scrub search residue out of the node map, keeping terrain.
	var p grid.Point
	var c Cell
	for p, c = range f.nodes {
		c.State = Unvisited
		c.G, c.H, c.Depth = 0, 0, 0
		c.Parent, c.HasParent = grid.Point{}, false
		f.nodes[p] = c
	}

	// 6) Seed the goal: the field radiates outward from cost 0 here.
	seed := f.nodes.At(f.end)
	seed.G, seed.H = 0, 0
	seed.Depth = 0
	seed.Parent, seed.HasParent = grid.Point{}, false
	seed.State = Open
	f.nodes[f.end] = seed
	f.openCount = 1

	// 7) Push the seed and narrate it under the pseudo-step index.
	f.frontier.Add(seed, 0)
	f.noteAt(SeedStep, StepInit, f.end,
		fmt.Sprintf("seed flow field at goal %s", f.end))

	return nil
}

// Step closes one cell of the wavefront and relaxes its neighbors.
// Closing the origin flips the success flag but does not terminate:
// the field keeps growing until the frontier drains, so that every
// reachable cell gets a next hop.
//
// Returns false once the field is fully propagated.
func (f *FlowField) Step() bool {
	// 1) Terminal guard: a drained field ignores further requests.
	if f.status == StatusComplete {
		f.note(f.steps, StepDone, "step ignored: flow field already complete")
		return false
	}
	f.status = StatusRunning

	for {
		// 2) Frontier drained: propagation is complete. Success was
		//    decided when (and if) the origin closed.
		if f.frontier.IsEmpty() {
			f.status = StatusComplete
			if f.found {
				f.note(f.steps, StepDone, "flow field complete; origin routable")
			} else {
				f.note(f.steps, StepNoPath, "flow field complete; origin unreachable")
			}
			return false
		}

		// 3) Pop the next snapshot and re-read the authoritative record.
		popped := f.frontier.Next()
		cur := f.nodes.At(popped.Pos)

		// 4) Skip stale duplicates left behind by cost improvements.
		if cur.State == Closed {
			f.noteAt(f.steps, StepSkip, cur.Pos, "skip stale frontier entry for "+cur.Pos.String())
			continue
		}

		// 5) Close the cell; its cost and next hop are final.
		cur.State = Closed
		f.nodes[cur.Pos] = cur
		f.openCount--
		f.closedCount++
		f.noteAt(f.steps, StepExpand, cur.Pos,
			fmt.Sprintf("close %s (cost=%d)", cur.Pos, cur.G))

		// 6) The origin just became routable: success, but keep going.
		if cur.Pos == f.start && (cur.HasParent || f.start == f.end) {
			f.found = true
			f.noteAt(f.steps, StepGoal, cur.Pos, "flow reached the origin at "+cur.Pos.String())
		}

		// 7) Relax neighbors outward.
		f.spread(cur)
		f.steps++
		return true
	}
}

// spread relaxes cur's neighbors in the fixed offset order. Parents
// point back at cur, i.e. one hop closer to the goal.
func (f *FlowField) spread(cur Cell) {
	var (
		off grid.Point
		np  grid.Point
		nb  Cell
		tg  int
	)
	for _, off = range f.offsets {
		np = cur.Pos.Add(off)

		// 1) Discard candidates outside the grid or inside walls.
		if !grid.InBounds(np, f.size) {
			continue
		}
		nb = f.nodes.At(np)
		if !nb.Walkable {
			continue
		}

		// 2) Closed cells are final; never reopen.
		if nb.State == Closed {
			continue
		}

		// 3) Candidate cost flowing through cur.
		tg = cur.G + grid.StepCost(cur.Pos, np) + nb.CellCost

		switch {
		case nb.State == Unvisited:
			if f.depthLimit > 0 && cur.Depth+1 > f.depthLimit {
				continue
			}
			nb.G = tg
			nb.Parent, nb.HasParent = cur.Pos, true
			nb.Depth = cur.Depth + 1
			nb.State = Open
			f.nodes[np] = nb
			f.openCount++
			f.frontier.Add(nb, tg)
			f.noteAt(f.steps, StepRelax, np,
				fmt.Sprintf("open %s (cost=%d)", np, nb.G))

		case tg < nb.G:
			nb.G = tg
			nb.Parent, nb.HasParent = cur.Pos, true
			nb.Depth = cur.Depth + 1
			f.nodes[np] = nb
			f.frontier.Add(nb, tg)
			f.noteAt(f.steps, StepRelax, np,
				fmt.Sprintf("improve %s (cost=%d)", np, nb.G))
		}
	}
}

// Run propagates the whole field and reports whether the origin became
// routable. Safe to call on a Complete engine (no-op).
// Complexity: O(N·d) with the FIFO frontier, N = W×H.
func (f *FlowField) Run() bool {
	for f.Step() {
	}
	return f.found
}

// Path walks the field from the origin toward the goal following parent
// links. No reversal is needed: parents already point goal-ward, so the
// walk reads start → goal directly. Returns nil when the origin never
// became routable. The same cycle guard and missing-parent tolerance as
// GraphSearch.Path apply.
// Complexity: O(L) for path length L.
func (f *FlowField) Path() []Cell {
	if !f.found {
		return nil
	}
	cur, ok := f.nodes[f.start]
	if !ok {
		return nil
	}

	out := make([]Cell, 0, cur.Depth+1)
	seen := make(map[grid.Point]bool, cur.Depth+1)
	for {
		if seen[cur.Pos] {
			break
		}
		seen[cur.Pos] = true
		out = append(out, cur)
		if cur.Pos == f.end || !cur.HasParent {
			break
		}
		next, ok := f.nodes[cur.Parent]
		if !ok {
			break
		}
		cur = next
	}

	return out
}

// NextHop returns the neighbor one move closer to the goal from p.
// The second result is false when p was never reached or is the goal
// itself (the goal has no parent).
func (f *FlowField) NextHop(p grid.Point) (grid.Point, bool) {
	c, ok := f.nodes[p]
	if !ok || !c.HasParent {
		return grid.Point{}, false
	}
	return c.Parent, true
}

// CostAt returns the finalized cost-to-goal at p. The second result is
// false while p is not yet Closed (its cost may still improve).
func (f *FlowField) CostAt(p grid.Point) (int, bool) {
	c, ok := f.nodes[p]
	if !ok || c.State != Closed {
		return 0, false
	}
	return c.G, true
}

// note records a narration entry with no cell attached.
func (f *FlowField) note(step int, k StepKind, msg string) {
	if f.log == nil {
		return
	}
	f.log.Append(step, Entry{Message: msg, Kind: k})
}

// noteAt records a narration entry tied to a cell.
func (f *FlowField) noteAt(step int, k StepKind, p grid.Point, msg string) {
	if f.log == nil {
		return
	}
	f.log.Append(step, Entry{Message: msg, At: p, HasPoint: true, Kind: k})
}

// Status reports the engine lifecycle state.
func (f *FlowField) Status() Status { return f.status }

// Found reports whether the origin became routable.
func (f *FlowField) Found() bool { return f.found }

// Steps returns the number of productive steps taken so far.
func (f *FlowField) Steps() int { return f.steps }

// OpenCount returns the number of cells currently Open.
func (f *FlowField) OpenCount() int { return f.openCount }

// ClosedCount returns the number of cells Closed so far.
func (f *FlowField) ClosedCount() int { return f.closedCount }

// Nodes exposes the live node map bound at Init.
func (f *FlowField) Nodes() NodeMap { return f.nodes }

// Log returns the narration log, or nil unless WithStepLog was set.
func (f *FlowField) Log() *StepLog { return f.log }
