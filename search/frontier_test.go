package search_test

import (
	"testing"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// cellAt builds a minimal cell for frontier ordering tests.
func cellAt(x, y int) search.Cell {
	return search.Cell{Pos: grid.Pt(x, y), Walkable: true}
}

//----------------------------------------------------------------------------//
// Ordering Tests
//----------------------------------------------------------------------------//

// TestQueueFrontier_FIFO verifies insertion-order draining.
func TestQueueFrontier_FIFO(t *testing.T) {
	f := search.NewQueueFrontier()
	f.Add(cellAt(0, 0), 9)
	f.Add(cellAt(1, 0), 1)
	f.Add(cellAt(2, 0), 5)

	want := []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	for i, w := range want {
		if got := f.Next().Pos; got != w {
			t.Errorf("pop %d = %v; want %v", i, got, w)
		}
	}
	if !f.IsEmpty() {
		t.Error("frontier not empty after draining")
	}
}

// TestStackFrontier_LIFO verifies newest-first draining.
func TestStackFrontier_LIFO(t *testing.T) {
	f := search.NewStackFrontier()
	f.Add(cellAt(0, 0), 9)
	f.Add(cellAt(1, 0), 1)
	f.Add(cellAt(2, 0), 5)

	want := []grid.Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	for i, w := range want {
		if got := f.Next().Pos; got != w {
			t.Errorf("pop %d = %v; want %v", i, got, w)
		}
	}
}

// TestHeapFrontier_PriorityOrder verifies ascending-priority draining
// with insertion order breaking ties.
func TestHeapFrontier_PriorityOrder(t *testing.T) {
	f := search.NewHeapFrontier()
	f.Add(cellAt(0, 0), 5) // tie, inserted first
	f.Add(cellAt(1, 0), 3)
	f.Add(cellAt(2, 0), 5) // tie, inserted later
	f.Add(cellAt(3, 0), 1)

	want := []grid.Point{{X: 3, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 0}}
	for i, w := range want {
		if got := f.Next().Pos; got != w {
			t.Errorf("pop %d = %v; want %v", i, got, w)
		}
	}
}

//----------------------------------------------------------------------------//
// Contract Tests
//----------------------------------------------------------------------------//

// TestFrontier_ResetAndLen exercises Reset, IsEmpty and Len across all
// three implementations.
func TestFrontier_ResetAndLen(t *testing.T) {
	cases := []struct {
		name string
		f    search.Frontier
	}{
		{"Queue", search.NewQueueFrontier()},
		{"Stack", search.NewStackFrontier()},
		{"Heap", search.NewHeapFrontier()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.f.IsEmpty() || tc.f.Len() != 0 {
				t.Fatalf("fresh frontier not empty: Len=%d", tc.f.Len())
			}
			tc.f.Add(cellAt(0, 0), 2)
			tc.f.Add(cellAt(1, 1), 1)
			if tc.f.IsEmpty() || tc.f.Len() != 2 {
				t.Fatalf("after two adds: IsEmpty=%v Len=%d", tc.f.IsEmpty(), tc.f.Len())
			}
			tc.f.Reset()
			if !tc.f.IsEmpty() || tc.f.Len() != 0 {
				t.Fatalf("after Reset: IsEmpty=%v Len=%d", tc.f.IsEmpty(), tc.f.Len())
			}
		})
	}
}

// TestFrontier_NextPanicsWhenEmpty pins the documented logic-error panic.
func TestFrontier_NextPanicsWhenEmpty(t *testing.T) {
	cases := []struct {
		name string
		f    search.Frontier
	}{
		{"Queue", search.NewQueueFrontier()},
		{"Stack", search.NewStackFrontier()},
		{"Heap", search.NewHeapFrontier()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Next on empty frontier did not panic")
				}
			}()
			tc.f.Next()
		})
	}
}

// TestHeapFrontier_SnapshotSemantics verifies that stored cells are
// value snapshots: mutating the caller's copy after Add must not change
// what Next returns.
func TestHeapFrontier_SnapshotSemantics(t *testing.T) {
	f := search.NewHeapFrontier()
	c := cellAt(4, 2)
	c.G = 7
	f.Add(c, 7)
	c.G = 999

	got := f.Next()
	if got.G != 7 {
		t.Errorf("stored cell mutated after Add: G=%d; want 7", got.G)
	}
}
