package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/softskills-arcade/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults <game>",
	Short: "Print a game's default config YAML",
	Long: `Prints the embedded default configuration for a game. Save it,
edit it and pass it back with --config, or place it under
~/.arcade/configs/ to make it the new default.

Examples:
  arcade defaults maze > maze.yaml
  arcade play maze --config maze.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runDefaults,
}

func runDefaults(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no config for game %q\n", args[0])
		os.Exit(1)
	}
	_, _ = os.Stdout.Write(data)
}
