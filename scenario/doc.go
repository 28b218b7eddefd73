// Package scenario persists pathlab maps and algorithm settings as
// small YAML documents, so a board built interactively can be saved,
// shared and re-run byte-for-byte.
//
// What
//
//   - Scenario: the document schema; dimensions, endpoints, optional
//     algorithm settings, wall cells and terrain costs.
//   - Parse/Load: strict decoding (unknown keys are rejected, so typos
//     in hand-written files surface immediately).
//   - Validate: bounds, endpoint and cost rules, plus the algorithm
//     name strings.
//   - Snapshot/Config: the bridge into the session layer.
//   - FromSession, Marshal, Save: the way back out; cells are sorted,
//     so saving the same state twice produces identical bytes.
//
// Why
//
//   - Interactive sessions are throwaway by design; scenarios are the
//     durable complement. Keeping the schema dumb (coordinate lists,
//     lowercase names) makes files hand-editable and diff-friendly.
//
// Format
//
//	name: Weighted demo
//	width: 8
//	height: 6
//	start: [0, 0]
//	end: [7, 5]
//	mode: astar
//	heuristic: octile
//	connectivity: 8-way
//	walls:
//	    - [3, 1]
//	    - [3, 2]
//	costs:
//	    - at: [5, 4]
//	      cost: 30
//
// Errors
//
//   - ErrBadScenario    if the YAML itself cannot be decoded.
//   - ErrBadCoordinate  if a coordinate is not an [x, y] pair.
//   - ErrBadDimensions  if the grid cannot hold two distinct endpoints.
//   - ErrOutOfBounds    if an endpoint, wall or cost cell misses the grid.
//   - ErrEndpointOverlap, ErrReservedCell, ErrNegativeCost for rule violations.
//   - Unknown mode, heuristic or connectivity names surface the
//     corresponding search and grid sentinels unchanged.
package scenario
