// pathlab is the command line entry: run scenarios to completion,
// generate random boards, and open the interactive lab.
//
// Usage:
//
//	pathlab run [scenario.yaml] [--steps N] [--explain]
//	pathlab tui [scenario.yaml] [--width N --height N]
//	pathlab gen --width N --height N [--density D --seed S --out file]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pathlab",
	Short: "Interactive grid pathfinding laboratory",
	Long: "Pathlab runs classic grid searches (BFS, DFS, Dijkstra, Greedy, A*,\n" +
		"Weighted A*, flow fields) step by step, on boards described by small\n" +
		"YAML scenarios or edited live in the terminal.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
