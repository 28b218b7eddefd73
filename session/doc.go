// Package session orchestrates searches for interactive front-ends:
// it owns the current grid snapshot and algorithm configuration, runs
// the engine, and exposes replay controls (seek, scrub, step) over a
// recorded re-execution.
//
// What
//
//   - Snapshot: the immutable grid description a session consumes
//     (size, endpoints, sparse walkability/cost overrides).
//   - Config: algorithm mode, heuristic, connectivity, weight and depth
//     limit, adjustable one knob at a time via Set*.
//   - Session: on every grid or configuration change it re-runs the
//     search once to completion on a throwaway node map (learning the
//     outcome, total step count, path cost and timing), then replays a
//     recording engine forward to the previously displayed position.
//
// Why
//
//   - Searches here are milliseconds even on large grids, so instant
//     full re-runs buy perfect scrubbing with no incremental-update
//     bookkeeping: the replay engine IS the visualization state.
//   - Seeking backward is just re-Init plus forward steps; identical
//     inputs replay identically, so a scrub position is reproducible.
//
// Replay rules
//
//   - SeekTo clamps into [0, TotalSteps]; StepBy is relative seeking.
//   - Configuration and grid changes preserve the displayed fraction
//     of progress (a half-scrubbed search stays half-scrubbed).
//   - FlowFieldSearch always replays to completion on rebuilds: every
//     cell's flow matters, not just the path cells.
//
// Usage
//
//	snap := session.Snapshot{Size: grid.Pt(8, 8), Start: grid.Pt(0, 0), End: grid.Pt(7, 7)}
//	sess, err := session.New(snap, session.WithMode(search.AStar))
//	if err != nil { ... }
//	fmt.Println(sess.Found(), sess.TotalSteps(), sess.PathCost())
//	_ = sess.SeekTo(sess.TotalSteps() / 2) // scrub to the middle
//
// Errors
//
//	New, Set* and Apply surface the engine's own sentinels unchanged:
//	search.ErrUnsupportedMode, search.ErrOutOfBounds, search.ErrEmptyGrid,
//	search.ErrOptionViolation, grid.ErrUnknownHeuristic,
//	grid.ErrUnknownConnectivity. A failed change leaves the session on
//	its previous working state.
package session
