package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagLimit     int
	flagHistoryUI string
	flagStats     bool
	flagBrowse    bool
	flagClear     bool
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded runs",
	Long: `Display recent runs, newest first, or the details of one run. A run
can be named by the short ID shown in the list.

Examples:
  life history
  life history --ui tcell --limit 5
  life history --stats
  life history --browse
  life history 3f2b8c1e`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().StringVar(&flagHistoryUI, "ui", "", "Only runs from this frontend")
	historyCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregate statistics")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse runs interactively")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded runs (filtered by --ui)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(historyPath())
	if err != nil {
		return fmt.Errorf("cannot open history database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case len(args) == 1:
		return showRun(cmd, store, args[0])

	case flagClear:
		if err := store.ClearRuns(flagHistoryUI); err != nil {
			return err
		}
		fmt.Fprintln(out, "History cleared.")
		return nil

	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}

	runs, err := store.RecentRuns(flagHistoryUI, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Recent runs")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'life play <pattern>' to start one!")
		return nil
	}

	fmt.Fprintf(out, "  %-8s  %-16s  %-5s  %-7s  %8s  %-9s  %7s  %s\n",
		"ID", "Date", "UI", "Size", "Gens", "Pop", "Delay", "Stop")
	fmt.Fprintf(out, "  %-8s  %-16s  %-5s  %-7s  %8s  %-9s  %7s  %s\n",
		"--", "----", "--", "----", "----", "---", "-----", "----")

	for _, r := range runs {
		fmt.Fprintf(out, "  %-8s  %-16s  %-5s  %-7s  %8d  %-9s  %7s  %s\n",
			storage.ShortID(r.ID),
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Frontend,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Generations,
			fmt.Sprintf("%d>%d", r.InitialPopulation, r.FinalPopulation),
			r.FinalDelay,
			r.StopReason)
	}

	if flagStats {
		stats, err := store.Stats(flagHistoryUI)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Best: %d gens  Average: %.1f gens  Stable: %d\n",
			stats.Runs, stats.MaxGenerations, stats.AvgGenerations, stats.StableRuns)
	}
	return nil
}

func showRun(cmd *cobra.Command, store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with id %q", id)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s\n\n", r.ID)
	fmt.Fprintf(out, "  Date:        %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "  Frontend:    %s\n", r.Frontend)
	fmt.Fprintf(out, "  Grid:        %dx%d\n", r.Width, r.Height)
	fmt.Fprintf(out, "  Generations: %d\n", r.Generations)
	fmt.Fprintf(out, "  Population:  %d -> %d\n", r.InitialPopulation, r.FinalPopulation)
	fmt.Fprintf(out, "  Final delay: %v\n", r.FinalDelay)
	fmt.Fprintf(out, "  Stopped:     %s\n", r.StopReason)
	fmt.Fprintf(out, "  Duration:    %v\n", r.Duration)
	return nil
}
