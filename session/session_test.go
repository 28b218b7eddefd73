package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
	"github.com/katalvlaran/pathlab/session"
)

// square returns an all-walkable side×side snapshot with the usual
// corner-to-corner endpoints.
func square(side int) session.Snapshot {
	return session.Snapshot{
		Size:  grid.Pt(side, side),
		Start: grid.Pt(0, 0),
		End:   grid.Pt(side-1, side-1),
	}
}

// block marks the given cells unwalkable on snap and returns it.
func block(snap session.Snapshot, pts ...grid.Point) session.Snapshot {
	if snap.Overrides == nil {
		snap.Overrides = make(map[grid.Point]session.Override, len(pts))
	}
	for _, p := range pts {
		snap.Overrides[p] = session.Override{Walkable: false}
	}
	return snap
}

// newBFS builds a plain breadth-first session over snap.
func newBFS(t *testing.T, snap session.Snapshot) *session.Session {
	t.Helper()
	s, err := session.New(snap,
		session.WithMode(search.BreadthFirst),
		session.WithHeuristic(grid.HeuristicNone),
		session.WithConnectivity(grid.Conn4),
	)
	require.NoError(t, err)
	return s
}

// pathPoints projects path cells onto their coordinates.
func pathPoints(cells []search.Cell) []grid.Point {
	out := make([]grid.Point, 0, len(cells))
	for _, c := range cells {
		out = append(out, c.Pos)
	}
	return out
}

func TestNew_DefaultFinishesAtFinalStep(t *testing.T) {
	s, err := session.New(square(3))
	require.NoError(t, err)

	assert.True(t, s.Found())
	assert.Equal(t, 2, s.TotalSteps())
	assert.Equal(t, s.TotalSteps(), s.CurrentStep())
	assert.Equal(t, 28, s.PathCost(), "two diagonal moves")

	want := []grid.Point{grid.Pt(0, 0), grid.Pt(1, 1), grid.Pt(2, 2)}
	assert.Equal(t, want, pathPoints(s.Path()))

	open, closed := s.Counters()
	assert.Equal(t, 5, open)
	assert.Equal(t, 2, closed)
	assert.GreaterOrEqual(t, s.Elapsed(), time.Duration(0))
}

func TestNew_AppliesOptions(t *testing.T) {
	s, err := session.New(square(4),
		session.WithMode(search.WeightedAStar),
		session.WithHeuristic(grid.Manhattan),
		session.WithConnectivity(grid.Conn4),
		session.WithWeight(2.5),
		session.WithDepthLimit(6),
	)
	require.NoError(t, err)

	cfg := s.Config()
	assert.Equal(t, search.WeightedAStar, cfg.Mode)
	assert.Equal(t, grid.Manhattan, cfg.Heuristic)
	assert.Equal(t, grid.Conn4, cfg.Conn)
	assert.Equal(t, 2.5, cfg.Weight)
	assert.Equal(t, 6, cfg.DepthLimit)
	assert.True(t, s.Found())
}

func TestNew_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		opts []session.Option
		want error
	}{
		{
			name: "empty grid",
			snap: session.Snapshot{},
			want: search.ErrEmptyGrid,
		},
		{
			name: "start out of bounds",
			snap: session.Snapshot{Size: grid.Pt(3, 3), Start: grid.Pt(7, 0), End: grid.Pt(2, 2)},
			want: search.ErrOutOfBounds,
		},
		{
			name: "unknown mode",
			snap: square(3),
			opts: []session.Option{session.WithMode(search.Mode(42))},
			want: search.ErrUnsupportedMode,
		},
		{
			name: "unknown heuristic",
			snap: square(3),
			opts: []session.Option{session.WithHeuristic(grid.Heuristic(9))},
			want: grid.ErrUnknownHeuristic,
		},
		{
			name: "negative weight",
			snap: square(3),
			opts: []session.Option{session.WithWeight(-0.5)},
			want: search.ErrOptionViolation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := session.New(tc.snap, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("New() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSeekTo_ScrubsBothDirections(t *testing.T) {
	s := newBFS(t, square(3))

	require.Equal(t, 7, s.TotalSteps())
	require.Equal(t, 7, s.CurrentStep())

	// Forward seeks clamp at the final step.
	require.NoError(t, s.SeekTo(99))
	assert.Equal(t, 7, s.CurrentStep())

	// Backward seeks replay the recording deterministically.
	require.NoError(t, s.SeekTo(3))
	assert.Equal(t, 3, s.CurrentStep())
	open, closed := s.Counters()
	assert.Equal(t, 3, open)
	assert.Equal(t, 3, closed)
	assert.Nil(t, s.Path(), "path stays hidden until the goal closes")

	// Forward again restores the full picture.
	require.NoError(t, s.SeekTo(7))
	want := []grid.Point{grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(2, 0), grid.Pt(2, 1), grid.Pt(2, 2)}
	assert.Equal(t, want, pathPoints(s.Path()))

	// Backward clamp lands on the seed-only state with a fresh log.
	require.NoError(t, s.SeekTo(-4))
	assert.Equal(t, 0, s.CurrentStep())
	open, closed = s.Counters()
	assert.Equal(t, 1, open)
	assert.Equal(t, 0, closed)
	require.NotNil(t, s.Log())
	assert.Equal(t, 1, s.Log().Len())
	seed := s.Log().Entries(search.SeedStep)
	require.Len(t, seed, 1)
	assert.Equal(t, search.StepInit, seed[0].Kind)
}

func TestStepBy_MovesRelative(t *testing.T) {
	s := newBFS(t, square(3))

	require.NoError(t, s.StepBy(-2))
	assert.Equal(t, 5, s.CurrentStep())

	require.NoError(t, s.StepBy(1))
	assert.Equal(t, 6, s.CurrentStep())

	require.NoError(t, s.StepBy(-99))
	assert.Equal(t, 0, s.CurrentStep())

	require.NoError(t, s.StepBy(2))
	assert.Equal(t, 2, s.CurrentStep())
	open, closed := s.Counters()
	assert.Equal(t, 3, open)
	assert.Equal(t, 2, closed)
}

func TestSetMode_KeepsProgressRatio(t *testing.T) {
	s := newBFS(t, square(3))
	require.NoError(t, s.SeekTo(3))

	require.NoError(t, s.SetMode(search.UniformCost))

	assert.Equal(t, search.UniformCost, s.Config().Mode)
	assert.Equal(t, 7, s.TotalSteps())
	assert.Equal(t, 3, s.CurrentStep(), "3/7 through BFS stays 3/7 through Dijkstra")
	assert.True(t, s.Found(), "outcome reflects the complete run, not the scrub position")
	assert.Equal(t, 40, s.PathCost())
}

func TestReconfigure_FailureRollsBack(t *testing.T) {
	s := newBFS(t, square(3))
	require.NoError(t, s.SeekTo(4))

	err := s.SetMode(search.Mode(77))
	require.ErrorIs(t, err, search.ErrUnsupportedMode)
	assert.Equal(t, search.BreadthFirst, s.Config().Mode)
	assert.Equal(t, 7, s.TotalSteps())
	assert.Equal(t, 4, s.CurrentStep())

	err = s.SetWeight(-2)
	require.ErrorIs(t, err, search.ErrOptionViolation)
	assert.Equal(t, 1.0, s.Config().Weight)
	assert.Equal(t, 4, s.CurrentStep())
}

func TestSetHeuristicAndConnectivity(t *testing.T) {
	s, err := session.New(square(3))
	require.NoError(t, err)

	require.NoError(t, s.SetConnectivity(grid.Conn4))
	assert.Equal(t, grid.Conn4, s.Config().Conn)
	assert.True(t, s.Found())
	assert.Equal(t, 40, s.PathCost(), "without diagonals the best route is four straight moves")

	require.NoError(t, s.SetHeuristic(grid.Manhattan))
	assert.Equal(t, grid.Manhattan, s.Config().Heuristic)
	assert.True(t, s.Found())
	assert.Equal(t, 40, s.PathCost())
}

func TestApply_RebuildsOverNewTerrain(t *testing.T) {
	s, err := session.New(square(3))
	require.NoError(t, err)
	require.Equal(t, 28, s.PathCost())

	require.NoError(t, s.Apply(block(square(3), grid.Pt(1, 1))))

	assert.True(t, s.Found())
	assert.Equal(t, 4, s.TotalSteps())
	assert.Equal(t, 4, s.CurrentStep(), "fully scrubbed sessions stay fully scrubbed")
	assert.Equal(t, 34, s.PathCost())
	want := []grid.Point{grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(2, 1), grid.Pt(2, 2)}
	assert.Equal(t, want, pathPoints(s.Path()))
}

func TestApply_FailureKeepsPreviousTerrain(t *testing.T) {
	s, err := session.New(square(3))
	require.NoError(t, err)

	bad := square(3)
	bad.Start = grid.Pt(9, 9)
	err = s.Apply(bad)
	require.ErrorIs(t, err, search.ErrOutOfBounds)

	assert.Equal(t, grid.Pt(0, 0), s.Snapshot().Start)
	assert.Equal(t, 2, s.TotalSteps())
	assert.True(t, s.Found())
}

func TestNoPath_SurfacesTerminalNarration(t *testing.T) {
	wall := block(square(3), grid.Pt(1, 0), grid.Pt(1, 1), grid.Pt(1, 2))
	s := newBFS(t, wall)

	assert.False(t, s.Found())
	assert.Equal(t, 0, s.PathCost())
	assert.Nil(t, s.Path())
	require.Equal(t, 3, s.TotalSteps())
	assert.Equal(t, 3, s.CurrentStep())

	entries := s.Log().Entries(3)
	require.NotEmpty(t, entries)
	assert.Equal(t, search.StepNoPath, entries[len(entries)-1].Kind)
}

func TestFlowFieldSession_AlwaysRebuildsToFullField(t *testing.T) {
	s, err := session.New(square(3),
		session.WithMode(search.FlowFieldSearch),
		session.WithConnectivity(grid.Conn4),
	)
	require.NoError(t, err)

	require.Equal(t, 9, s.TotalSteps(), "one step per reachable cell")
	assert.Equal(t, 9, s.CurrentStep())
	assert.True(t, s.Found())
	assert.Equal(t, 40, s.PathCost())
	want := []grid.Point{grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(2, 0), grid.Pt(2, 1), grid.Pt(2, 2)}
	assert.Equal(t, want, pathPoints(s.Path()))

	// Manual scrubbing may show a partial wavefront.
	require.NoError(t, s.SeekTo(4))
	assert.Equal(t, 4, s.CurrentStep())

	// Any rebuild snaps back to the full field; partial fields route nothing.
	require.NoError(t, s.Apply(square(3)))
	assert.Equal(t, 9, s.CurrentStep())
}

func TestSetDepthLimit_LiftingRestoresReach(t *testing.T) {
	corridor := session.Snapshot{Size: grid.Pt(4, 1), Start: grid.Pt(0, 0), End: grid.Pt(3, 0)}
	s, err := session.New(corridor,
		session.WithMode(search.BreadthFirst),
		session.WithHeuristic(grid.HeuristicNone),
		session.WithConnectivity(grid.Conn4),
		session.WithDepthLimit(2),
	)
	require.NoError(t, err)

	assert.False(t, s.Found())
	assert.Equal(t, 3, s.TotalSteps())

	require.NoError(t, s.SetDepthLimit(0))
	assert.Equal(t, 0, s.Config().DepthLimit)
	assert.True(t, s.Found())
	assert.Equal(t, 3, s.TotalSteps())
	assert.Equal(t, 30, s.PathCost())
}

func TestSnapshot_CloneIsolation(t *testing.T) {
	snap := block(square(3), grid.Pt(1, 1))
	s, err := session.New(snap)
	require.NoError(t, err)
	require.Equal(t, 4, s.TotalSteps())

	// Mutations to the caller's snapshot after New must not leak in.
	snap.Overrides[grid.Pt(1, 0)] = session.Override{Walkable: false}
	require.NoError(t, s.SeekTo(0))
	require.NoError(t, s.SeekTo(4))
	want := []grid.Point{grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(2, 1), grid.Pt(2, 2)}
	assert.Equal(t, want, pathPoints(s.Path()))

	// Mutations to an exported copy must not leak either.
	out := s.Snapshot()
	out.Overrides[grid.Pt(0, 1)] = session.Override{Walkable: false}
	if _, leaked := s.Snapshot().Overrides[grid.Pt(0, 1)]; leaked {
		t.Fatal("Snapshot() copies must not share the overrides map")
	}
}

// TestReplay_DeterministicAcrossSessions builds two sessions over the
// same terrain and scrubs one back and forth before comparing: totals,
// costs, paths and exported snapshots must not diverge anywhere.
func TestReplay_DeterministicAcrossSessions(t *testing.T) {
	snap := block(square(4), grid.Pt(1, 1), grid.Pt(2, 1))

	first, err := session.New(snap)
	require.NoError(t, err)
	second, err := session.New(snap)
	require.NoError(t, err)

	require.NoError(t, second.SeekTo(0))
	require.NoError(t, second.SeekTo(second.TotalSteps()))

	assert.Equal(t, first.TotalSteps(), second.TotalSteps())
	assert.Equal(t, first.PathCost(), second.PathCost())
	if diff := cmp.Diff(first.Path(), second.Path()); diff != "" {
		t.Errorf("paths diverged (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Snapshot(), second.Snapshot()); diff != "" {
		t.Errorf("snapshots diverged (-first +second):\n%s", diff)
	}
}
