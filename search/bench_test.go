package search_test

import (
	"testing"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// benchRun drives one Init+Run on a size×size grid, corner to corner.
// The node map is reused across iterations; Init's scrub restores it.
func benchRun(b *testing.B, mode search.Mode, h grid.Heuristic, conn grid.Connectivity, size int) {
	b.Helper()
	eng, err := search.New(mode, h, conn)
	if err != nil {
		b.Fatal(err)
	}
	dim := grid.Pt(size, size)
	start, end := grid.Pt(0, 0), grid.Pt(size-1, size-1)
	nodes := search.NewNodeMap()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = eng.Init(dim, start, end, nodes); err != nil {
			b.Fatal(err)
		}
		if !eng.Run() {
			b.Fatal("expected a path on an empty grid")
		}
	}
}

// BenchmarkAStar_Empty64 measures informed search end to end.
func BenchmarkAStar_Empty64(b *testing.B) {
	benchRun(b, search.AStar, grid.Octile, grid.Conn8, 64)
}

// BenchmarkUniformCost_Empty64 measures the uninformed heap baseline.
func BenchmarkUniformCost_Empty64(b *testing.B) {
	benchRun(b, search.UniformCost, grid.HeuristicNone, grid.Conn8, 64)
}

// BenchmarkBreadthFirst_Empty64 measures the FIFO fast path.
func BenchmarkBreadthFirst_Empty64(b *testing.B) {
	benchRun(b, search.BreadthFirst, grid.HeuristicNone, grid.Conn4, 64)
}

// BenchmarkFlowField_Empty64 measures full-field propagation, which
// closes every cell regardless of where the origin sits.
func BenchmarkFlowField_Empty64(b *testing.B) {
	benchRun(b, search.FlowFieldSearch, grid.HeuristicNone, grid.Conn8, 64)
}
