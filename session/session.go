// Package session implements the orchestration layer between grid
// editors, configuration surfaces and the search engines.
//
// Notes on implementation choices:
//
//   - Every change runs the search twice: a throwaway run to learn the
//     outcome (found, total steps, cost, wall time), then a recording
//     replay stepped forward to the display position. Single-stepping
//     a finished search is cheap; bookkeeping partial invalidation of
//     an incremental one is not.
//   - All rebuild results are staged in locals and committed at the
//     end, so a failing reconfiguration leaves the previous session
//     state fully intact.
package session

import (
	"math"
	"time"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// Session owns one grid snapshot plus one algorithm configuration and
// keeps a replay engine positioned at the current scrub step. It is
// not safe for concurrent use; drive it from one goroutine.
type Session struct {
	cfg  Config
	snap Snapshot

	engine search.Searcher // recording replay engine, positioned at current

	total    int           // productive steps of the complete run
	found    bool          // outcome of the complete run
	pathCost int           // total path cost of the complete run (0 when not found)
	elapsed  time.Duration // wall time of the complete run

	current int // replay position in [0, total]
}

// New builds a session over snap, applies opts to DefaultConfig, runs
// the search and positions the replay at the final step, so a fresh
// session displays the finished search.
//
// Errors propagate unchanged from the engine constructor and Init.
func New(snap Snapshot, opts ...Option) (*Session, error) {
	cfg := DefaultConfig()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	s := &Session{cfg: cfg, snap: cloneSnapshot(snap)}
	if err := s.rebuild(1.0); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuild re-runs the search for the current cfg and snap, then replays
// to ratio·total steps (FlowFieldSearch always replays fully). Nothing
// is committed until every stage succeeds.
func (s *Session) rebuild(ratio float64) error {
	// 1) Fresh engine for the configuration.
	eng, err := search.New(s.cfg.Mode, s.cfg.Heuristic, s.cfg.Conn)
	if err != nil {
		return err
	}

	// 2) Throwaway run: outcome, total step count, path cost, timing.
	begin := time.Now()
	if err = eng.Init(s.snap.Size, s.snap.Start, s.snap.End, s.buildNodes(), s.runOpts(false)...); err != nil {
		return err
	}
	found := eng.Run()
	elapsed := time.Since(begin)
	total := eng.Steps()
	cost := s.measureCost(eng, found)

	// 3) Recording replay, stepped forward to the display position.
	target := int(math.Round(ratio * float64(total)))
	if s.cfg.Mode == search.FlowFieldSearch {
		// Partial flow fields route nothing; always show the full field.
		target = total
	}
	if err = eng.Init(s.snap.Size, s.snap.Start, s.snap.End, s.buildNodes(), s.runOpts(true)...); err != nil {
		return err
	}
	current := advance(eng, target, total)

	// 4) Commit.
	s.engine = eng
	s.found = found
	s.total = total
	s.pathCost = cost
	s.elapsed = elapsed
	s.current = current

	return nil
}

// advance steps eng forward to target. When target is the final step
// and the engine has not terminated on its own, one extra call drains
// it so terminal narration (no-path and field-complete notes) lands in
// the log and the engine reports Complete.
func advance(eng search.Searcher, target, total int) int {
	for eng.Steps() < target && eng.Step() {
	}
	if target == total && eng.Status() != search.StatusComplete {
		eng.Step()
	}
	return eng.Steps()
}

// runOpts assembles the engine options for the current configuration.
func (s *Session) runOpts(record bool) []search.RunOption {
	opts := []search.RunOption{
		search.WithWeight(s.cfg.Weight),
		search.WithDepthLimit(s.cfg.DepthLimit),
	}
	if record {
		opts = append(opts, search.WithStepLog())
	}
	return opts
}

// buildNodes materializes a fresh node map from the snapshot overrides.
// Keys outside the grid are dropped, which makes stale overrides after
// a resize harmless.
func (s *Session) buildNodes() search.NodeMap {
	nodes := search.NewNodeMap()
	for p, o := range s.snap.Overrides {
		if !grid.InBounds(p, s.snap.Size) {
			continue
		}
		nodes[p] = search.Cell{Pos: p, Walkable: o.Walkable, CellCost: o.Cost}
	}
	return nodes
}

// measureCost computes the total path cost of a completed run.
// Level-order modes never fill g, so their cost is the sum of per-move
// step costs along the path; cost-aware modes read the goal's final f;
// the flow field reads the origin's. Unsuccessful runs cost 0.
func (s *Session) measureCost(eng search.Searcher, found bool) int {
	if !found {
		return 0
	}
	switch s.cfg.Mode {
	case search.BreadthFirst, search.DepthFirst:
		cost := 0
		path := eng.Path()
		for i := 1; i < len(path); i++ {
			cost += grid.StepCost(path[i-1].Pos, path[i].Pos)
		}
		return cost
	case search.FlowFieldSearch:
		return eng.Nodes().At(s.snap.Start).F()
	default:
		return eng.Nodes().At(s.snap.End).F()
	}
}

// reconfigure swaps in next, rebuilds at the preserved display ratio,
// and rolls the configuration back if anything fails.
func (s *Session) reconfigure(next Config) error {
	prev := s.cfg
	s.cfg = next
	if err := s.rebuild(s.displayRatio()); err != nil {
		s.cfg = prev
		return err
	}
	return nil
}

// displayRatio is the scrubbed fraction of the complete run.
func (s *Session) displayRatio() float64 {
	if s.total <= 0 {
		return 1.0
	}
	return float64(s.current) / float64(s.total)
}

//----------------------------------------------------------------------------//
// Replay controls
//----------------------------------------------------------------------------//

// SeekTo positions the replay at the given step, clamped into
// [0, TotalSteps]. Seeking backward restarts the recording replay and
// steps forward; seeking forward just steps. Seeking to the current
// position is a no-op.
func (s *Session) SeekTo(step int) error {
	if step < 0 {
		step = 0
	}
	if step > s.total {
		step = s.total
	}
	if step == s.current {
		return nil
	}

	if step < s.current {
		if err := s.engine.Init(s.snap.Size, s.snap.Start, s.snap.End, s.buildNodes(), s.runOpts(true)...); err != nil {
			return err
		}
		s.current = 0
	}
	s.current = advance(s.engine, step, s.total)

	return nil
}

// StepBy moves the replay by delta steps (negative rewinds), with the
// same clamping as SeekTo.
func (s *Session) StepBy(delta int) error {
	return s.SeekTo(s.current + delta)
}

//----------------------------------------------------------------------------//
// Reconfiguration
//----------------------------------------------------------------------------//

// SetMode switches the strategy, preserving the displayed progress ratio.
func (s *Session) SetMode(m search.Mode) error {
	next := s.cfg
	next.Mode = m
	return s.reconfigure(next)
}

// SetHeuristic switches the distance estimate.
func (s *Session) SetHeuristic(h grid.Heuristic) error {
	next := s.cfg
	next.Heuristic = h
	return s.reconfigure(next)
}

// SetConnectivity switches between 4- and 8-way neighborhoods.
func (s *Session) SetConnectivity(conn grid.Connectivity) error {
	next := s.cfg
	next.Conn = conn
	return s.reconfigure(next)
}

// SetWeight adjusts the WeightedAStar heuristic scale.
func (s *Session) SetWeight(w float64) error {
	next := s.cfg
	next.Weight = w
	return s.reconfigure(next)
}

// SetDepthLimit adjusts the exploration bound; 0 disables it.
func (s *Session) SetDepthLimit(d int) error {
	next := s.cfg
	next.DepthLimit = d
	return s.reconfigure(next)
}

// Apply swaps in a new grid snapshot (edits, resizes, endpoint moves)
// and rebuilds, preserving the displayed progress ratio. On failure the
// previous snapshot stays active.
func (s *Session) Apply(snap Snapshot) error {
	prev := s.snap
	s.snap = cloneSnapshot(snap)
	if err := s.rebuild(s.displayRatio()); err != nil {
		s.snap = prev
		return err
	}
	return nil
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// Config returns the active algorithm configuration.
func (s *Session) Config() Config { return s.cfg }

// Snapshot returns a deep copy of the active grid snapshot.
func (s *Session) Snapshot() Snapshot { return cloneSnapshot(s.snap) }

// Found reports whether the complete run reached the goal.
func (s *Session) Found() bool { return s.found }

// TotalSteps returns the productive step count of the complete run.
func (s *Session) TotalSteps() int { return s.total }

// CurrentStep returns the replay position in [0, TotalSteps].
func (s *Session) CurrentStep() int { return s.current }

// Elapsed returns the wall time of the complete (non-recording) run.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// PathCost returns the total cost of the found path, 0 when not found.
func (s *Session) PathCost() int { return s.pathCost }

// Path returns the path as visible at the current replay position:
// nil until the replay has reached a successful completion.
func (s *Session) Path() []search.Cell { return s.engine.Path() }

// Nodes exposes the replay engine's live node map for rendering.
func (s *Session) Nodes() search.NodeMap { return s.engine.Nodes() }

// Log returns the replay's narration log. The pointer changes whenever
// the replay restarts (rebuilds and backward seeks).
func (s *Session) Log() *search.StepLog { return s.engine.Log() }

// Counters returns the replay engine's live open and closed cell counts.
func (s *Session) Counters() (open, closed int) {
	return s.engine.OpenCount(), s.engine.ClosedCount()
}
