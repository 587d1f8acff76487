package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/sim"
)

var (
	flagGenerations int
	flagGlyphs      bool
	stepFlags       runFlags
)

var stepCmd = &cobra.Command{
	Use:   "step [pattern]",
	Short: "Advance a pattern without a terminal and print it",
	Long: `Load a pattern, advance it a number of generations as fast as
possible and print the resulting grid ('O' alive, '.' dead).

Examples:
  life step -n 4 glider.txt
  life step -n 1000 --stop-when-stable < soup.txt
  life step -n 10 --glyphs --width 20 --height 10 -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStep,
}

func init() {
	stepCmd.Flags().IntVarP(&flagGenerations, "generations", "n", 1, "Generations to advance")
	stepCmd.Flags().BoolVar(&flagGlyphs, "glyphs", false, "Print with the configured render glyphs")
	stepFlags.register(stepCmd.Flags(), false)
}

func runStep(cmd *cobra.Command, args []string) error {
	cfg := appConfig
	stepFlags.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flagGenerations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", flagGenerations)
	}

	grid, source, err := loadPattern(cmd, args, cfg)
	if err != nil {
		return err
	}

	s := sim.Initialize(grid, cfg.SimConfig())
	for s.Running() && s.Generation() < flagGenerations {
		s.Tick(sim.NopDisplay{}, sim.NopClock{})
	}

	out := s.Grid().String()
	if flagGlyphs {
		rc := cfg.RuntimeConfig()
		out = s.Grid().Format(rc.AliveGlyph, rc.DeadGlyph)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	logger.Debug("step finished",
		"pattern", source,
		"generations", s.Generation(),
		"population", s.Grid().Population(),
		"reason", s.StopReason())
	return nil
}
