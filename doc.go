// Package pathlab is your in-terminal playground for building, exploring,
// and replaying grid searches — from core frontier primitives to flow
// fields, scripted scenarios and a live TUI.
//
// 🚀 What is pathlab?
//
//	A small, deterministic toolkit that brings together:
//		• Grid primitives: points, 4/8-connectivity, fixed-point move costs
//		• Heuristics: Manhattan, Chebyshev, Octile, Euclidean (×10 integer scale)
//		• One engine, six strategies: BFS, DFS, Dijkstra, Greedy, A*, Weighted A*
//		• Flow fields: goal-outward propagation with per-cell next hops
//		• Replay sessions: step counters, scrubbing, instant re-runs on edits
//		• Scenarios: YAML grids you can load, generate and share
//
// ✨ Why choose pathlab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – integer costs, fixed neighbor order, stable tie-breaks
//   - Inspectable – every step leaves a narrated log entry you can scrub to
//   - Extensible – plug your own Frontier to reshape expansion order
//
// Under the hood, everything is organized under six subpackages:
//
//	grid/     — coordinates, connectivity, step costs & heuristic estimates
//	search/   — Cell records, Frontier implementations, GraphSearch & FlowField
//	session/  — orchestration: throwaway runs, recorded replays, seek & scrub
//	editor/   — mutable grid editing with connectivity-preserving scatter
//	scenario/ — YAML load/save of grids plus algorithm configuration
//	tui/      — Bubble Tea front-end: paint walls, scrub steps, watch the wave
//
// plus the pathlab binary under cmd/pathlab (run, gen and tui commands).
//
// Quick ASCII example:
//
//	    S · · █
//	    · █ · ·
//	    · █ ◆ E
//
//	a 4×3 grid mid-search: S/E are the endpoints, █ walls, ◆ the path head.
//
// Next up: jump point search, hierarchical grids and beyond. Dive into
// README.md for full examples and a feature matrix.
//
//	go get github.com/katalvlaran/pathlab
package pathlab
