package scenario_test

import (
	"fmt"

	"github.com/katalvlaran/pathlab/scenario"
	"github.com/katalvlaran/pathlab/session"
)

// ExampleParse loads a document and runs it end to end.
func ExampleParse() {
	doc := []byte(`width: 4
height: 3
start: [0, 0]
end: [3, 2]
mode: bfs
heuristic: none
connectivity: 4-way
walls:
    - [1, 1]
`)

	sc, err := scenario.Parse(doc)
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	snap, err := sc.Snapshot()
	if err != nil {
		fmt.Println("snapshot:", err)
		return
	}
	cfg, err := sc.Config()
	if err != nil {
		fmt.Println("config:", err)
		return
	}

	s, err := session.New(snap, session.WithConfig(cfg))
	if err != nil {
		fmt.Println("session:", err)
		return
	}
	fmt.Printf("%s: found=%v cost=%d\n", cfg.Mode, s.Found(), s.PathCost())
	// Output:
	// bfs: found=true cost=50
}
