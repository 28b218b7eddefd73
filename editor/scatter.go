// Package editor: seeded random obstacle layouts.
package editor

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
	"github.com/katalvlaran/pathlab/session"
)

// ScatterObstacles replaces the current obstacles with a random layout
// covering up to density of the editable cells (endpoints excluded).
// Equal seeds over equal documents reproduce equal layouts. A tentative
// placement that would cut the start from the end is reverted, so the
// document stays solvable; fewer than the requested obstacles may land
// on crowded grids. Terrain costs are left untouched.
//
// Reachability is probed with a 4-way breadth-first run, and a 4-way
// route is also an 8-way route, so the guarantee holds under either
// connectivity.
//
// Returns ErrBadDensity when density falls outside [0, 1).
func (g *Grid) ScatterObstacles(density float64, seed int64) error {
	if density < 0 || density >= 1 {
		return fmt.Errorf("%w: %g", ErrBadDensity, density)
	}
	probe, err := search.New(search.BreadthFirst, grid.HeuristicNone, grid.Conn4)
	if err != nil {
		return err
	}

	// 1) Drop existing obstacles, keeping costs.
	var p grid.Point
	var o session.Override
	for p, o = range g.cells {
		if !o.Walkable {
			o.Walkable = true
			g.put(p, o)
		}
	}

	// 2) Collect the candidate cells in row order, then shuffle them
	//    with the seeded generator.
	candidates := make([]grid.Point, 0, g.size.X*g.size.Y-2)
	for y := 0; y < g.size.Y; y++ {
		for x := 0; x < g.size.X; x++ {
			p = grid.Pt(x, y)
			if p == g.start || p == g.end {
				continue
			}
			candidates = append(candidates, p)
		}
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	// 3) Greedily block shuffled cells, reverting any block that would
	//    strand the goal.
	target := int(density * float64(len(candidates)))
	blocked := 0
	for _, p = range candidates {
		if blocked == target {
			break
		}
		o = g.at(p)
		o.Walkable = false
		g.put(p, o)
		if g.connected(probe) {
			blocked++
			continue
		}
		o.Walkable = true
		g.put(p, o)
	}

	return nil
}

// connected reports whether the end is still reachable from the start
// over walkable cells.
func (g *Grid) connected(probe search.Searcher) bool {
	nodes := search.NewNodeMap()
	for p, o := range g.cells {
		nodes[p] = search.Cell{Pos: p, Walkable: o.Walkable, CellCost: o.Cost}
	}
	if err := probe.Init(g.size, g.start, g.end, nodes); err != nil {
		return false
	}
	return probe.Run()
}
