// Package terminal provides a tcell frontend that runs the simulation loop
// directly: draw, advance, sleep, then read at most one pending key.
package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/sim"
)

// FrontendID is the registry ID of the tcell frontend.
const FrontendID = "tcell"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Display is a sim.Display backed by a tcell.Screen.
type Display struct {
	screen    tcell.Screen
	cfg       core.RuntimeConfig
	alive     tcell.Style
	dead      tcell.Style
	interrupt func()

	// status, when set, supplies the text drawn below the grid on Flush.
	status func() string
	rows   int
}

// New wraps an initialized screen. interrupt is called when Ctrl+C is read
// and may be nil.
func New(screen tcell.Screen, cfg core.RuntimeConfig, interrupt func()) *Display {
	alive := tcell.StyleDefault
	if code := cfg.AliveColor.ANSI(); code >= 0 {
		alive = alive.Foreground(tcell.PaletteColor(code))
	}
	return &Display{
		screen:    screen,
		cfg:       cfg,
		alive:     alive,
		dead:      tcell.StyleDefault,
		interrupt: interrupt,
	}
}

// Clear blanks the frame.
func (d *Display) Clear() {
	d.screen.Clear()
	d.rows = 0
}

// DrawCell puts one glyph at (col, row). Cells outside the terminal are dropped.
func (d *Display) DrawCell(row, col int, alive bool) {
	if alive {
		d.screen.SetContent(col, row, d.cfg.AliveGlyph, nil, d.alive)
	} else {
		d.screen.SetContent(col, row, d.cfg.DeadGlyph, nil, d.dead)
	}
	d.rows = max(d.rows, row+1)
}

// Flush draws the status line, if any, and shows the frame.
func (d *Display) Flush() {
	if d.status != nil {
		style := tcell.StyleDefault.Bold(true)
		for i, r := range []rune(d.status()) {
			d.screen.SetContent(i, d.rows, r, nil, style)
		}
	}
	d.screen.Show()
}

// PollKey drains pending events up to the first character key. Ctrl+C
// triggers the interrupt; resizes repaint; other keys are dropped.
// It consumes one character key per tick, not one event per tick.
func (d *Display) PollKey() (rune, bool) {
	for d.screen.HasPendingEvent() {
		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				return ev.Rune(), true
			case tcell.KeyCtrlC:
				if d.interrupt != nil {
					d.interrupt()
				}
				return 0, false
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
	return 0, false
}

// Frontend runs the simulation on a tcell screen.
type Frontend struct{}

func (Frontend) ID() string    { return FrontendID }
func (Frontend) Title() string { return "tcell (direct draw, poll loop)" }

// Run opens the terminal, runs s until it stops and restores the terminal.
func (Frontend) Run(ctx context.Context, s *sim.Simulation, cfg core.RuntimeConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	return run(ctx, screen, s, cfg, sim.SystemClock{})
}

// run drives s on an initialized screen.
func run(ctx context.Context, screen tcell.Screen, s *sim.Simulation, cfg core.RuntimeConfig, clock sim.Clock) error {
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d := New(screen, cfg, cancel)
	if cfg.StatusBar {
		d.status = func() string {
			return fmt.Sprintf("gen %d  pop %d  delay %v  a faster  z slower  space quit",
				s.Generation(), s.Grid().Population(), s.Delay())
		}
	}
	return s.Run(ctx, d, clock)
}
