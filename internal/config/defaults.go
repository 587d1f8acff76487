package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/sim"
)

//go:embed defaults/life.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  life.DefaultWidth,
			Height: life.DefaultHeight,
		},
		Delay: DelayConfig{
			Initial: sim.DefaultDelayInit,
			Min:     sim.DefaultDelayMin,
			Max:     sim.DefaultDelayMax,
			Step:    sim.DefaultDelayStep,
		},
		Render: RenderConfig{
			AliveGlyph: "O",
			DeadGlyph:  " ",
			AliveColor: "default",
			StatusBar:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "~/.life/history.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
