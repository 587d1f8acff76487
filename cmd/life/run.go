package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
)

// runFlags are the grid and pacing overrides shared by play and step.
type runFlags struct {
	width          int
	height         int
	delay          time.Duration
	stopWhenStable bool
	skipWhitespace bool
}

func (f *runFlags) register(fs *pflag.FlagSet, withDelay bool) {
	fs.IntVar(&f.width, "width", 0, "Grid width in cells (default from config)")
	fs.IntVar(&f.height, "height", 0, "Grid height in cells (default from config)")
	if withDelay {
		fs.DurationVar(&f.delay, "delay", 0, "Initial pause between generations, e.g. 300ms")
	}
	fs.BoolVar(&f.stopWhenStable, "stop-when-stable", false, "Stop once a generation changes nothing")
	fs.BoolVar(&f.skipWhitespace, "skip-whitespace", false, "Ignore whitespace (including newlines) in the pattern")
}

// apply copies flags the user set onto cfg. Unset flags keep file values.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Grid.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Grid.Height = f.height
	}
	if flags.Changed("delay") {
		cfg.Delay.Initial = f.delay
	}
	if flags.Changed("stop-when-stable") {
		cfg.Simulation.StopWhenStable = f.stopWhenStable
	}
	if flags.Changed("skip-whitespace") {
		cfg.Loader.SkipWhitespace = f.skipWhitespace
	}
}

// loadPattern reads the pattern named by args, or stdin when args is empty
// or "-". It returns the grid and a description of where it came from.
func loadPattern(cmd *cobra.Command, args []string, cfg config.Config) (*life.Grid, string, error) {
	loader := cfg.PatternLoader()

	if len(args) == 0 || args[0] == "-" {
		grid, err := loader.Load(cmd.InOrStdin())
		if err != nil {
			return nil, "", err
		}
		return grid, "stdin", nil
	}

	grid, err := loader.LoadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("cannot load pattern: %w", err)
	}
	return grid, args[0], nil
}
