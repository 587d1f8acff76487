package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/sim"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagUI        string
	flagNoHistory bool
	playFlags     runFlags
)

var playCmd = &cobra.Command{
	Use:   "play [pattern]",
	Short: "Run a pattern interactively",
	Long: `Load a pattern and run it until you quit.

The pattern comes from the named file, or from stdin when no file (or "-")
is given. When stdin is a pipe, keys are read from the terminal instead.

Controls:
  a/A      - Faster (shorter pause between generations)
  z/Z      - Slower
  Space    - Quit
  Ctrl+C   - Abort

Examples:
  life play glider.txt
  life play --ui tcell --delay 500ms glider.txt
  cat rpentomino.txt | life play --width 120 --height 40
  life play --stop-when-stable --skip-whitespace drawing.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagUI, "ui", tui.FrontendID, "Frontend to use (see 'life list')")
	playCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this run")
	playFlags.register(playCmd.Flags(), true)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagUI) {
		return fmt.Errorf("unknown frontend %q (run 'life list' to see frontends)", flagUI)
	}

	cfg := appConfig
	playFlags.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	frontend, err := registry.Create(flagUI)
	if err != nil {
		return err
	}

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	if stdinTTY && (len(args) == 0 || args[0] == "-") {
		logger.Info("reading pattern from the terminal, finish with Ctrl+D")
	}

	grid, source, err := loadPattern(cmd, args, cfg)
	if err != nil {
		return err
	}

	rc := cfg.RuntimeConfig()
	rc.InputTTY = !stdinTTY
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
		rows := cfg.Grid.Height
		if rc.StatusBar {
			rows++
		}
		if cfg.Grid.Width > w || rows > h {
			logger.Warn("grid is larger than the terminal, the frame will be clipped",
				"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
				"terminal", fmt.Sprintf("%dx%d", w, h))
		}
	}

	s := sim.Initialize(grid, cfg.SimConfig())
	logger.Info("starting run",
		"ui", frontend.ID(),
		"pattern", source,
		"grid", fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
		"population", grid.Population(),
		"delay", s.Delay())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	runErr := frontend.Run(ctx, s, rc)
	elapsed := time.Since(start)

	sum := s.Summary()
	logger.Info("run finished",
		"reason", sum.Reason,
		"generations", sum.Generations,
		"population", sum.FinalPopulation,
		"delay", sum.FinalDelay,
		"elapsed", elapsed.Round(time.Millisecond))

	if runErr != nil {
		return fmt.Errorf("%s frontend: %w", frontend.ID(), runErr)
	}

	recordRun(frontend.ID(), cfg, sum, elapsed)
	return nil
}

// recordRun saves the run summary. Failures are logged, never fatal.
func recordRun(frontendID string, cfg config.Config, sum sim.Summary, elapsed time.Duration) {
	if !cfg.History.Enabled || flagNoHistory {
		return
	}

	store, err := storage.Open(historyPath())
	if err != nil {
		logger.Warn("could not open history database", "err", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		Frontend:          frontendID,
		Width:             cfg.Grid.Width,
		Height:            cfg.Grid.Height,
		Generations:       sum.Generations,
		InitialPopulation: sum.InitialPopulation,
		FinalPopulation:   sum.FinalPopulation,
		FinalDelay:        sum.FinalDelay,
		StopReason:        string(sum.Reason),
		Duration:          elapsed,
	})
	if err != nil {
		logger.Warn("could not record run", "err", err)
		return
	}
	logger.Debug("run recorded", "id", id)
}
