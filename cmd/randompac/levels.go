package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/randompac/internal/config"
	"github.com/vovakirdan/randompac/internal/games/randompac/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [path]",
	Short: "Validate a level file or list a level directory",
	Long: `Without arguments, list the built-in board and every valid level in the
configured level directory. With a file, validate it and print its summary.
With a directory, list the valid levels it contains.

Level files are YAML (.yaml, .yml) or the editor's JSON matrix (.json).

Examples:
  randompac levels
  randompac levels ./levels/cross.yaml
  randompac levels ./levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := config.LoadRandomPac(flagConfig)
		if err != nil {
			newLogger("randompac").Warn("using default config", "error", err)
		}
		path = config.ExpandHome(cfg.Levels.Dir)
		printLevel(levels.ClassicLevel())
	}

	info, err := os.Stat(path)
	if err != nil {
		if len(args) == 0 && os.IsNotExist(err) {
			return // No custom level directory yet
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loader := levels.NewLoader(path)
	if !info.IsDir() {
		level, err := loader.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printLevel(level)
		return
	}

	all, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 && len(args) == 1 {
		fmt.Printf("No valid levels in %s\n", path)
		return
	}
	for _, level := range all {
		printLevel(level)
	}
}

func printLevel(l levels.Level) {
	g := l.Board.Grid
	source := l.FilePath
	if source == "" {
		source = "built-in"
	}
	fmt.Printf("%-12s %-20s %2dx%-2d  %3d pellets  %d ghosts  %s\n",
		l.ID, l.Name, g.Width(), g.Height(), g.Remaining(), len(l.Board.Ghosts), source)
}
