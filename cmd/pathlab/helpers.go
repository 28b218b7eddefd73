package main

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/scenario"
	"github.com/katalvlaran/pathlab/search"
	"github.com/katalvlaran/pathlab/session"
)

//go:embed demo.yaml
var demoYAML []byte

// loadScenario resolves the optional positional argument; without one
// the built-in demo board is used.
func loadScenario(args []string) (*scenario.Scenario, error) {
	if len(args) == 0 {
		return scenario.Parse(demoYAML)
	}
	return scenario.Load(args[0])
}

// boardView is the read surface the renderer needs. Both a replay
// session and a bare engine satisfy it.
type boardView interface {
	Nodes() search.NodeMap
	Path() []search.Cell
}

// nodesFromSnapshot expands sparse overrides into engine terrain,
// dropping out-of-bounds keys.
func nodesFromSnapshot(snap session.Snapshot) search.NodeMap {
	nodes := search.NewNodeMap()
	for p, o := range snap.Overrides {
		if !grid.InBounds(p, snap.Size) {
			continue
		}
		nodes[p] = search.Cell{Pos: p, Walkable: o.Walkable, CellCost: o.Cost}
	}
	return nodes
}

// cellChar picks the ASCII rendering for one cell. Endpoints win over
// everything, then walls, the path, and the search state; untouched
// terrain shows its cost tens digit.
func cellChar(v boardView, snap session.Snapshot, p grid.Point, onPath map[grid.Point]bool) byte {
	switch {
	case p == snap.Start:
		return 'S'
	case p == snap.End:
		return 'E'
	}
	o, known := snap.Overrides[p]
	if known && !o.Walkable {
		return '#'
	}
	if onPath[p] {
		return '*'
	}
	switch v.Nodes().At(p).State {
	case search.Open:
		return 'o'
	case search.Closed:
		return '.'
	}
	if d := o.Cost / 10; d >= 1 && d <= 9 {
		return byte('0' + d)
	}
	return ' '
}

// renderBoard draws the current search state as a framed ASCII board.
func renderBoard(snap session.Snapshot, v boardView) string {
	onPath := make(map[grid.Point]bool, 16)
	for _, c := range v.Path() {
		onPath[c.Pos] = true
	}

	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", snap.Size.X) + "+\n")
	for y := 0; y < snap.Size.Y; y++ {
		b.WriteByte('|')
		for x := 0; x < snap.Size.X; x++ {
			b.WriteByte(cellChar(v, snap, grid.Pt(x, y), onPath))
		}
		b.WriteString("|\n")
	}
	b.WriteString("+" + strings.Repeat("-", snap.Size.X) + "+\n")
	return b.String()
}

// writeNarration prints the recorded step log, one line per entry.
func writeNarration(w io.Writer, lg *search.StepLog) {
	if lg == nil {
		return
	}
	for _, step := range lg.Steps() {
		for _, e := range lg.Entries(step) {
			if step == search.SeedStep {
				fmt.Fprintf(w, "[init] %s\n", e.Message)
				continue
			}
			fmt.Fprintf(w, "[%4d] %s\n", step, e.Message)
		}
	}
}
