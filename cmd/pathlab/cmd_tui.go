package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/editor"
	"github.com/katalvlaran/pathlab/session"
	"github.com/katalvlaran/pathlab/tui"
)

var tuiFlags struct {
	width  int
	height int
}

var tuiCmd = &cobra.Command{
	Use:   "tui [scenario.yaml]",
	Short: "Open the interactive lab",
	Long: `Opens the full-screen editor and replay. With a scenario argument the
board and configuration come from the file; otherwise an empty board of
the requested size starts under the default configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTui,
}

func init() {
	f := tuiCmd.Flags()
	f.IntVar(&tuiFlags.width, "width", 16, "Board width for an empty start")
	f.IntVar(&tuiFlags.height, "height", 10, "Board height for an empty start")
}

func runTui(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		doc, err := editor.New(tuiFlags.width, tuiFlags.height)
		if err != nil {
			return err
		}
		return tui.Run(doc, session.DefaultConfig())
	}

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
	doc, err := editor.FromSnapshot(snap)
	if err != nil {
		return err
	}
	return tui.Run(doc, cfg)
}
