// Package config provides YAML-based configuration loading for tui-life.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/pattern"
	"github.com/vovakirdan/tui-life/internal/sim"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all tui-life settings.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Delay      DelayConfig      `yaml:"delay"`
	Loader     LoaderConfig     `yaml:"loader"`
	Simulation SimulationConfig `yaml:"simulation"`
	Render     RenderConfig     `yaml:"render"`
	Logging    LoggingConfig    `yaml:"logging"`
	History    HistoryConfig    `yaml:"history"`
}

// GridConfig defines the field dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DelayConfig defines tick pacing.
type DelayConfig struct {
	Initial time.Duration `yaml:"initial"`
	Min     time.Duration `yaml:"min"`
	Max     time.Duration `yaml:"max"`
	Step    time.Duration `yaml:"step"`
}

// LoaderConfig controls how patterns are read.
type LoaderConfig struct {
	SkipWhitespace bool `yaml:"skip_whitespace"`
}

// SimulationConfig controls termination.
type SimulationConfig struct {
	StopWhenStable bool `yaml:"stop_when_stable"`
}

// RenderConfig controls glyphs and colors.
type RenderConfig struct {
	AliveGlyph string `yaml:"alive_glyph"`
	DeadGlyph  string `yaml:"dead_glyph"`
	AliveColor string `yaml:"alive_color"`
	StatusBar  bool   `yaml:"status_bar"`
}

// LoggingConfig sets log verbosity: "debug", "info", "warn" or "error".
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// HistoryConfig controls the run history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if err := c.SimConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if utf8.RuneCountInString(c.Render.AliveGlyph) != 1 {
		return fmt.Errorf("%w: alive_glyph must be one character, got %q", ErrInvalid, c.Render.AliveGlyph)
	}
	if utf8.RuneCountInString(c.Render.DeadGlyph) != 1 {
		return fmt.Errorf("%w: dead_glyph must be one character, got %q", ErrInvalid, c.Render.DeadGlyph)
	}
	if _, ok := core.ParseColor(c.Render.AliveColor); !ok {
		return fmt.Errorf("%w: unknown alive_color %q", ErrInvalid, c.Render.AliveColor)
	}
	return nil
}

// SimConfig converts the delay and termination settings.
func (c Config) SimConfig() sim.Config {
	return sim.Config{
		DelayInit:      c.Delay.Initial,
		DelayMin:       c.Delay.Min,
		DelayMax:       c.Delay.Max,
		DelayStep:      c.Delay.Step,
		StopWhenStable: c.Simulation.StopWhenStable,
	}
}

// PatternLoader builds a loader sized to the grid.
func (c Config) PatternLoader() *pattern.Loader {
	return &pattern.Loader{
		Width:          c.Grid.Width,
		Height:         c.Grid.Height,
		SkipWhitespace: c.Loader.SkipWhitespace,
	}
}

// RuntimeConfig converts the render settings for frontends.
// Call Validate first; invalid glyphs and colors fall back to defaults.
func (c Config) RuntimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if r, _ := utf8.DecodeRuneInString(c.Render.AliveGlyph); r != utf8.RuneError {
		rc.AliveGlyph = r
	}
	if r, _ := utf8.DecodeRuneInString(c.Render.DeadGlyph); r != utf8.RuneError {
		rc.DeadGlyph = r
	}
	if color, ok := core.ParseColor(c.Render.AliveColor); ok {
		rc.AliveColor = color
	}
	rc.StatusBar = c.Render.StatusBar
	return rc
}
