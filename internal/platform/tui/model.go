package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/sim"
)

// maxPendingKeys bounds the typed-ahead keys waiting for a tick.
const maxPendingKeys = 64

// frame is the sim.Display behind the Bubble Tea model. Drawing goes to a
// screen buffer that View renders; keys queue until the simulation polls.
type frame struct {
	screen  *core.Screen
	cfg     core.RuntimeConfig
	pending []rune

	// Status of the generation last drawn.
	generation int
	population int
}

func newFrame(w, h int, cfg core.RuntimeConfig) *frame {
	return &frame{
		screen: core.NewScreen(w, h),
		cfg:    cfg,
	}
}

func (f *frame) Clear() { f.screen.Clear() }

func (f *frame) DrawCell(row, col int, alive bool) {
	if alive {
		f.screen.SetCell(col, row, core.Cell{Rune: f.cfg.AliveGlyph, Color: f.cfg.AliveColor})
		return
	}
	f.screen.SetCell(col, row, core.Cell{Rune: f.cfg.DeadGlyph})
}

// Flush is a no-op: Bubble Tea repaints from View after every update.
func (f *frame) Flush() {}

func (f *frame) PollKey() (rune, bool) {
	if len(f.pending) == 0 {
		return 0, false
	}
	r := f.pending[0]
	f.pending = f.pending[1:]
	return r, true
}

func (f *frame) push(r rune) {
	if len(f.pending) >= maxPendingKeys {
		return
	}
	f.pending = append(f.pending, r)
}

// Model is the Bubble Tea model for running a simulation.
type Model struct {
	sim      *sim.Simulation
	frame    *frame
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given simulation.
func NewModel(s *sim.Simulation, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	g := s.Grid()
	return Model{
		sim:    s,
		frame:  newFrame(g.Width(), g.Height(), cfg),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Simulation returns the simulation the model drives.
func (m Model) Simulation() *sim.Simulation { return m.sim }

// Init draws the first generation and schedules the first tick.
func (m Model) Init() tea.Cmd {
	return m.step()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues a keystroke for the next poll. Ctrl+C stops at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.sim.Stop(sim.StopInterrupted)
		m.quitting = true
		return m, tea.Quit
	}

	for _, r := range keyRunes(msg) {
		m.frame.push(r)
	}
	return m, nil
}

// handleTick finishes the current tick by polling input, then starts the
// next one unless the simulation stopped.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.sim.Poll(m.frame)
	if !m.sim.Running() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, m.step()
}

// step renders the current generation, advances the grid and schedules the
// tick that ends after the current delay.
func (m Model) step() tea.Cmd {
	m.frame.generation = m.sim.Generation()
	m.frame.population = m.sim.Grid().Population()
	m.sim.Render(m.frame)
	m.sim.Advance()
	return tickCmd(m.sim.Delay())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.frame.screen))

	if m.config.StatusBar {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusLine()))
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}

	return b.String()
}

func (m Model) statusLine() string {
	return fmt.Sprintf("gen %d  pop %d  delay %v",
		m.frame.generation, m.frame.population, m.sim.Delay())
}

// Run starts the Bubble Tea program for s and blocks until it stops.
func Run(ctx context.Context, s *sim.Simulation, cfg core.RuntimeConfig) error {
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if cfg.InputTTY {
		opts = append(opts, tea.WithInputTTY())
	}

	p := tea.NewProgram(NewModel(s, cfg), opts...)

	_, err := p.Run()
	if ctx.Err() != nil {
		s.Stop(sim.StopInterrupted)
		return nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	// The program can also end on a signal before the model saw a stop.
	s.Stop(sim.StopInterrupted)
	return nil
}
