// life runs Conway's Game of Life on a wrapping grid in the terminal.
//
// Usage:
//
//	life play [pattern]      - Run a pattern interactively
//	life step -n <gens>      - Advance a pattern headlessly and print it
//	life list                - List available frontends
//	life history             - Show recorded runs
//	life config              - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.life/config.yaml, ./configs/life.yaml)
//	--db <path>         - History database (default: from config, ~/.life/history.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/logging"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-life/internal/platform/terminal"
	_ "github.com/vovakirdan/tui-life/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Set up by the root command before any subcommand runs.
	appConfig config.Config
	logger    = log.NewWithOptions(os.Stderr, log.Options{Prefix: "life"})
	logCloser io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `Life runs Conway's Game of Life on a grid whose edges wrap around.

A pattern is read from a file or stdin: '1' or '*' is a live cell, any
other character a dead one, filled row by row.

Available commands:
  play     - Run a pattern interactively
  step     - Advance a pattern without a terminal and print it
  list     - Show available frontends
  history  - View recorded runs
  config   - Print the default configuration

Examples:
  life play glider.txt
  cat acorn.txt | life play --ui tcell
  life step -n 100 < glider.txt
  life history --stats`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads configuration and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg

	level := cfg.Logging.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}

	if flagLogFile != "" {
		l, closer, err := logging.OpenFile(level, flagLogFile)
		if err != nil {
			return err
		}
		logger, logCloser = l, closer
	} else {
		logger = logging.New(level, cmd.ErrOrStderr())
	}

	logger.Debug("configuration loaded", "source", source)
	return nil
}

func teardown(*cobra.Command, []string) error {
	if logCloser != nil {
		err := logCloser.Close()
		logCloser = nil
		return err
	}
	return nil
}

// historyPath returns the database path: --db wins over the config file.
func historyPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return appConfig.History.Path
}
