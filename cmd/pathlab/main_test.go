package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/scenario"
	"github.com/katalvlaran/pathlab/session"
)

func TestDemoScenario_IsValidAndSolvable(t *testing.T) {
	sc, err := scenario.Parse(demoYAML)
	if err != nil {
		t.Fatalf("parse demo: %v", err)
	}
	if err := sc.Validate(); err != nil {
		t.Fatalf("validate demo: %v", err)
	}
	if sc.Name != "demo" {
		t.Fatalf("demo name = %q", sc.Name)
	}

	snap, err := sc.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	cfg, err := sc.Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	sess, err := session.New(snap, session.WithConfig(cfg))
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if !sess.Found() {
		t.Fatal("demo board must be solvable")
	}
	if sess.PathCost() <= 0 {
		t.Fatalf("demo path cost = %d", sess.PathCost())
	}
}

func TestRenderBoard_FinalState(t *testing.T) {
	snap := session.Snapshot{
		Size:  grid.Pt(3, 3),
		Start: grid.Pt(0, 0),
		End:   grid.Pt(2, 2),
		Overrides: map[grid.Point]session.Override{
			grid.Pt(1, 1): {Walkable: false},
		},
	}
	sess, err := session.New(snap)
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	want := "+---+\n" +
		"|S*o|\n" +
		"|.#*|\n" +
		"|ooE|\n" +
		"+---+\n"
	if got := renderBoard(sess.Snapshot(), sess); got != want {
		t.Fatalf("board mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderBoard_ShowsCostDigitsBeforeTheRunTouchesThem(t *testing.T) {
	snap := session.Snapshot{
		Size:  grid.Pt(3, 3),
		Start: grid.Pt(0, 0),
		End:   grid.Pt(2, 2),
		Overrides: map[grid.Point]session.Override{
			grid.Pt(0, 2): {Walkable: true, Cost: 30},
		},
	}
	sess, err := session.New(snap)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if err := sess.SeekTo(0); err != nil {
		t.Fatalf("seek: %v", err)
	}

	want := "+---+\n" +
		"|S  |\n" +
		"|   |\n" +
		"|3 E|\n" +
		"+---+\n"
	if got := renderBoard(sess.Snapshot(), sess); got != want {
		t.Fatalf("board mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestLoadScenario_FallsBackToDemo(t *testing.T) {
	sc, err := loadScenario(nil)
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	if sc.Name != "demo" {
		t.Fatalf("default scenario = %q, want demo", sc.Name)
	}

	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, demoYAML, 0o644); err != nil {
		t.Fatal(err)
	}
	sc, err = loadScenario([]string{path})
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if sc.Width != 12 || sc.Height != 8 {
		t.Fatalf("loaded %dx%d, want 12x8", sc.Width, sc.Height)
	}

	if _, err := loadScenario([]string{filepath.Join(t.TempDir(), "gone.yaml")}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestWriteNarration_PrintsSeedAndSteps(t *testing.T) {
	snap := session.Snapshot{Size: grid.Pt(3, 3), Start: grid.Pt(0, 0), End: grid.Pt(2, 2)}
	sess, err := session.New(snap)
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	var b strings.Builder
	writeNarration(&b, sess.Log())
	out := b.String()
	if !strings.Contains(out, "[init]") {
		t.Fatalf("narration misses the seed line:\n%s", out)
	}
	if !strings.Contains(out, "[   0]") {
		t.Fatalf("narration misses step 0:\n%s", out)
	}
}

func TestNodesFromSnapshot_DropsOutOfBoundsKeys(t *testing.T) {
	snap := session.Snapshot{
		Size:  grid.Pt(3, 3),
		Start: grid.Pt(0, 0),
		End:   grid.Pt(2, 2),
		Overrides: map[grid.Point]session.Override{
			grid.Pt(1, 1): {Walkable: false},
			grid.Pt(2, 0): {Walkable: true, Cost: 40},
			grid.Pt(9, 9): {Walkable: false},
		},
	}
	nodes := nodesFromSnapshot(snap)
	if len(nodes) != 2 {
		t.Fatalf("len(nodes) = %d, want 2", len(nodes))
	}
	if nodes[grid.Pt(1, 1)].Walkable {
		t.Fatal("wall override lost")
	}
	if got := nodes[grid.Pt(2, 0)].CellCost; got != 40 {
		t.Fatalf("cost override = %d, want 40", got)
	}
}

func TestRunCommand_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, demoYAML, 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut strings.Builder
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"run", path, "--explain"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(out.String(), "S") || !strings.Contains(out.String(), "E") {
		t.Fatalf("board misses endpoints:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "[init]") {
		t.Fatalf("narration missing with --explain:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "found=true") {
		t.Fatalf("summary misses found=true:\n%s", errOut.String())
	}
}

func TestGenCommand_WritesDeterministicScenario(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	pathA := filepath.Join(dirA, "board.yaml")
	pathB := filepath.Join(dirB, "board.yaml")

	for _, p := range []string{pathA, pathB} {
		var out, errOut strings.Builder
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&errOut)
		rootCmd.SetArgs([]string{"gen",
			"--width", "8", "--height", "6",
			"--density", "0.2", "--seed", "5",
			"--out", p,
		})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}
	}

	a, err := os.ReadFile(pathA)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Fatalf("same seed produced different scenarios:\n%s\n----\n%s", a, b)
	}

	sc, err := scenario.Load(pathA)
	if err != nil {
		t.Fatalf("load generated: %v", err)
	}
	if err := sc.Validate(); err != nil {
		t.Fatalf("generated scenario invalid: %v", err)
	}
	snap, err := sc.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	sess, err := session.New(snap)
	if err != nil {
		t.Fatal(err)
	}
	if !sess.Found() {
		t.Fatal("generated board must stay solvable")
	}
}
