// Package search implements incremental pathfinding over rectangular
// grids: one generalized engine covering BFS, DFS, Dijkstra, Greedy
// best-first, A* and Weighted A*, plus a goal-outward FlowField variant.
//
// What
//
//   - Cell: the per-cell search record (parent link, g/h costs, depth,
//     walkability, lifecycle state) stored in a sparse NodeMap.
//   - Frontier: the pending-cell container. Three implementations ship:
//     FIFO queue, LIFO stack and a priority min-heap with stable
//     insertion-order tie-breaking. Swapping the frontier reshapes the
//     expansion order without touching the engine.
//   - GraphSearch: the start-to-goal engine. All six strategies share
//     one loop and differ only in the priority assigned to a cell:
//     BFS/DFS 0, Dijkstra g, Greedy h, A* g+h, Weighted A* g+round(w·h).
//   - FlowField: seeds the goal instead of the start and propagates cost
//     outward until the frontier drains, leaving every reached cell with
//     a parent pointer toward the goal (a steepest-descent routing table).
//   - StepLog: optional per-step narration (seeded entries live at
//     SeedStep) for replay UIs and post-mortems.
//
// Why
//
//   - One engine means one set of invariants to trust: a cell moves
//     Unvisited → Open → Closed and never back, g never increases while
//     a cell is Open, and Closed cells are final.
//   - Step-at-a-time execution lets callers scrub, pause and replay a
//     search instead of only observing its result.
//
// Determinism
//
//	Neighbors are scanned in the fixed grid.Offsets order, the heap
//	frontier breaks priority ties by insertion order, and all costs are
//	×10 fixed-point integers. Identical inputs replay identically.
//
// Lazy re-prioritization
//
//	When a cheaper route to an Open cell is found, the engine rewrites
//	the cell in the NodeMap and pushes a duplicate frontier entry rather
//	than re-keying the old one. Stale entries are recognized on pop
//	(their cell is already Closed) and skipped without consuming a step.
//
// Complexity (N = W×H cells, d ∈ {4, 8})
//
//   - Time:  O(N·d·log N) with the heap frontier, O(N·d) with queue/stack.
//   - Memory: O(N) for the node map plus frontier entries.
//
// Usage
//
//	eng, err := search.New(search.AStar, grid.Octile, grid.Conn8)
//	if err != nil { ... }
//	nodes := search.NewNodeMap()
//	nodes.Block(grid.Pt(1, 1))
//	if err := eng.Init(grid.Pt(8, 8), grid.Pt(0, 0), grid.Pt(7, 7), nodes); err != nil { ... }
//	for eng.Step() {
//	}
//	if eng.Found() {
//	    cells := eng.Path() // start → goal
//	}
//
// Errors
//
//   - ErrUnsupportedMode          if a Mode is unknown or rejected by the constructor.
//   - ErrNilFrontier              if a nil Frontier is supplied.
//   - ErrNilNodes                 if Init receives a nil NodeMap.
//   - ErrEmptyGrid                if the grid size is not positive in both axes.
//   - ErrOutOfBounds              if start or end lies outside the grid.
//   - ErrOptionViolation          if an invalid RunOption is supplied.
//   - grid.ErrUnknownHeuristic    if the heuristic is out of range.
//   - grid.ErrUnknownConnectivity if the connectivity is out of range.
package search
