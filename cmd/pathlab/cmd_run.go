package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/scenario"
	"github.com/katalvlaran/pathlab/search"
	"github.com/katalvlaran/pathlab/session"
)

var runFlags struct {
	steps    int
	maxSteps int
	explain  bool
	noBoard  bool
}

var runCmd = &cobra.Command{
	Use:   "run [scenario.yaml]",
	Short: "Run a scenario once and print the board and summary",
	Long: `Runs the scenario's search to completion, draws the final board as
ASCII, and logs a summary. Without an argument the built-in demo board
is used. --steps freezes the replay mid-run to inspect the frontier;
--max-steps aborts a runaway search after a fixed step budget.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.IntVar(&runFlags.steps, "steps", 0, "Freeze the replay after N steps (0 = run to completion)")
	f.IntVar(&runFlags.maxSteps, "max-steps", 0, "Abort the search after N steps (0 = unbounded)")
	f.BoolVar(&runFlags.explain, "explain", false, "Print the step-by-step narration")
	f.BoolVar(&runFlags.noBoard, "no-board", false, "Skip the ASCII board")
}

func runRun(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	sc, err := loadScenario(args)
	if err != nil {
		return err
	}
	snap, err := sc.Snapshot()
	if err != nil {
		return err
	}
	cfg, err := sc.Config()
	if err != nil {
		return err
	}
	if runFlags.maxSteps > 0 {
		return runBounded(cmd, log, sc, snap, cfg)
	}

	sess, err := session.New(snap, session.WithConfig(cfg))
	if err != nil {
		return err
	}
	if runFlags.steps > 0 && runFlags.steps < sess.TotalSteps() {
		if err := sess.SeekTo(runFlags.steps); err != nil {
			return fmt.Errorf("seek: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if !runFlags.noBoard {
		fmt.Fprint(out, renderBoard(sess.Snapshot(), sess))
	}
	if runFlags.explain {
		writeNarration(out, sess.Log())
	}

	open, closed := sess.Counters()
	log.Info("run finished",
		slog.String("scenario", sc.Name),
		slog.String("mode", cfg.Mode.String()),
		slog.String("heuristic", cfg.Heuristic.String()),
		slog.String("moves", cfg.Conn.String()),
		slog.Bool("found", sess.Found()),
		slog.Int("step", sess.CurrentStep()),
		slog.Int("total", sess.TotalSteps()),
		slog.Int("open", open),
		slog.Int("closed", closed),
		slog.Int("cost", sess.PathCost()),
		slog.Duration("elapsed", sess.Elapsed()))
	return nil
}

// runBounded drives a bare engine under a hard step budget instead of
// the replay session, so a pathological board cannot stall the CLI.
func runBounded(cmd *cobra.Command, log *slog.Logger, sc *scenario.Scenario, snap session.Snapshot, cfg session.Config) error {
	eng, err := search.New(cfg.Mode, cfg.Heuristic, cfg.Conn)
	if err != nil {
		return err
	}
	opts := []search.RunOption{
		search.WithWeight(cfg.Weight),
		search.WithDepthLimit(cfg.DepthLimit),
	}
	if runFlags.explain {
		opts = append(opts, search.WithStepLog())
	}
	if err := eng.Init(snap.Size, snap.Start, snap.End, nodesFromSnapshot(snap), opts...); err != nil {
		return err
	}

	begin := time.Now()
	for i := 0; i < runFlags.maxSteps && eng.Status() != search.StatusComplete; i++ {
		eng.Step()
	}
	elapsed := time.Since(begin)

	out := cmd.OutOrStdout()
	if !runFlags.noBoard {
		fmt.Fprint(out, renderBoard(snap, eng))
	}
	if runFlags.explain {
		writeNarration(out, eng.Log())
	}

	if eng.Status() != search.StatusComplete {
		log.Warn("step budget exhausted before the search finished",
			slog.Int("max_steps", runFlags.maxSteps))
	}
	log.Info("run finished",
		slog.String("scenario", sc.Name),
		slog.String("mode", cfg.Mode.String()),
		slog.Bool("found", eng.Found()),
		slog.Int("steps", eng.Steps()),
		slog.Int("open", eng.OpenCount()),
		slog.Int("closed", eng.ClosedCount()),
		slog.Duration("elapsed", elapsed))
	return nil
}
