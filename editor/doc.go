// Package editor provides the mutable grid document behind pathlab's
// interactive surfaces: obstacles, terrain costs and endpoints, with
// the editing rules enforced in one place.
//
// What
//
//   - Grid: dimensions, start/end endpoints and a sparse override map;
//     untouched cells are implicitly walkable with zero extra cost.
//   - Cell edits: Toggle, Block, Unblock and SetCost, all validated
//     against bounds and the endpoint reservation.
//   - Document edits: SetStart/SetEnd, Resize with clamping, ClearAll,
//     and seeded ScatterObstacles that never strands the goal.
//   - Snapshot/FromSnapshot: the bridge to the session layer; exports
//     deep-copy, so a running session never sees later edits.
//
// Why
//
//   - Sessions consume immutable snapshots; something must own the
//     mutation rules. Keeping them here means the TUI and the CLI
//     cannot disagree about what a legal edit is.
//   - The override map stays pruned: an edit that restores a cell to
//     its untouched state removes the entry, so snapshots and saved
//     scenarios list exactly the cells a user changed.
//
// Determinism
//
//	ScatterObstacles draws from a generator seeded by the caller, so
//	equal seeds over equal documents reproduce equal layouts.
//
// Complexity
//
//   - Cell edits are O(1); Resize and Snapshot are O(|overrides|).
//   - ScatterObstacles is O(k·N) for k placed obstacles on N cells,
//     paying one reachability probe per tentative placement.
//
// Usage
//
//	g, err := editor.New(8, 8)
//	if err != nil { ... }
//	_ = g.Block(grid.Pt(3, 3))
//	_ = g.SetCost(grid.Pt(4, 4), 30)
//	sess, err := session.New(g.Snapshot())
//
// Errors
//
//   - ErrBadDimensions   if a size has no room for two distinct endpoints.
//   - ErrOutOfBounds     if a coordinate misses the grid.
//   - ErrReservedCell    if an obstacle edit hits an endpoint cell.
//   - ErrEndpointOverlap if start and end would coincide.
//   - ErrNegativeCost    if a terrain cost is negative.
//   - ErrBadDensity      if a scatter density falls outside [0, 1).
package editor
