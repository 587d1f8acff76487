// Package sim drives a Game of Life grid through time: it renders each
// generation to a Display, advances the grid, paces ticks with a Clock and
// interprets one keystroke per tick.
//
// Everything runs on a single goroutine. The Simulation owns both grid
// buffers and swaps their roles every tick.
package sim

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// ErrNilDisplay is returned by Run when no display is supplied.
var ErrNilDisplay = errors.New("sim: nil display")

// State is the run state of a simulation.
type State int

const (
	StateRunning State = iota
	StateStopped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// StopReason records why a simulation left the running state.
type StopReason string

const (
	StopNone        StopReason = ""
	StopQuit        StopReason = "quit"        // space bar
	StopStable      StopReason = "stable"      // no cell changed in the last generation
	StopInterrupted StopReason = "interrupted" // context cancelled or Ctrl+C in a frontend
)

// Simulation is the mutable state of one run.
type Simulation struct {
	cfg        Config
	cur        *life.Grid
	spare      *life.Grid
	delay      time.Duration
	state      State
	reason     StopReason
	generation int
	changed    bool
	advanced   bool
	initialPop int
}

// Initialize creates a running simulation from a loaded pattern.
// The simulation works on a copy, so grid is left untouched.
func Initialize(grid *life.Grid, cfg Config) *Simulation {
	return &Simulation{
		cfg:        cfg,
		cur:        grid.Clone(),
		spare:      life.NewGrid(grid.Width(), grid.Height()),
		delay:      core.Clamp(cfg.DelayInit, cfg.DelayMin, cfg.DelayMax),
		state:      StateRunning,
		initialPop: grid.Population(),
	}
}

// Grid returns the current generation. Callers must not keep it across a tick.
func (s *Simulation) Grid() *life.Grid { return s.cur }

// Delay returns the current pause between ticks.
func (s *Simulation) Delay() time.Duration { return s.delay }

// Running reports whether the simulation is still in the running state.
func (s *Simulation) Running() bool { return s.state == StateRunning }

// StopReason returns why the simulation stopped, or StopNone while running.
func (s *Simulation) StopReason() StopReason { return s.reason }

// Generation returns how many generations have been computed.
func (s *Simulation) Generation() int { return s.generation }

// Stop moves the simulation to the stopped state. Stopping is final: the
// first reason wins.
func (s *Simulation) Stop(reason StopReason) {
	if s.state == StateStopped {
		return
	}
	s.state = StateStopped
	s.reason = reason
}

// Render draws the current generation as a full frame.
func (s *Simulation) Render(d Display) {
	d.Clear()
	for row := range s.cur.Height() {
		for col := range s.cur.Width() {
			d.DrawCell(row, col, s.cur.Alive(row, col))
		}
	}
	d.Flush()
}

// Advance computes the next generation into the spare buffer and swaps
// buffers. It reports whether any cell changed.
func (s *Simulation) Advance() bool {
	s.changed = life.AdvanceInto(s.spare, s.cur)
	s.cur, s.spare = s.spare, s.cur
	s.generation++
	s.advanced = true
	return s.changed
}

// HandleKey interprets a single keystroke and returns the resulting action.
// Keys are ignored once the simulation has stopped.
func (s *Simulation) HandleKey(key rune) core.Action {
	if s.state == StateStopped {
		return core.ActionNone
	}

	action := core.ActionForKey(key)
	switch action {
	case core.ActionSpeedUp:
		s.delay = core.Clamp(s.delay-s.cfg.DelayStep, s.cfg.DelayMin, s.cfg.DelayMax)
	case core.ActionSlowDown:
		s.delay = core.Clamp(s.delay+s.cfg.DelayStep, s.cfg.DelayMin, s.cfg.DelayMax)
	case core.ActionQuit:
		s.Stop(StopQuit)
	}
	return action
}

// Poll takes at most one pending key from the display, applies it and then
// checks the stable-state condition when it is enabled.
func (s *Simulation) Poll(d Display) {
	if key, ok := d.PollKey(); ok {
		s.HandleKey(key)
	}
	if s.cfg.StopWhenStable && s.advanced && !s.changed {
		s.Stop(StopStable)
	}
}

// Tick runs one full iteration: render, advance, sleep, poll.
// It returns whether the simulation is still running.
func (s *Simulation) Tick(d Display, c Clock) bool {
	s.Render(d)
	s.Advance()
	c.Sleep(s.delay)
	s.Poll(d)
	return s.Running()
}

// Run ticks until the simulation stops. A cancelled context stops the run
// with StopInterrupted at the next tick boundary.
func (s *Simulation) Run(ctx context.Context, d Display, c Clock) error {
	if d == nil {
		return ErrNilDisplay
	}
	if c == nil {
		c = SystemClock{}
	}

	for s.Running() {
		if ctx.Err() != nil {
			s.Stop(StopInterrupted)
			break
		}
		s.Tick(d, c)
	}
	return nil
}

// Summary is a snapshot of a run's outcome.
type Summary struct {
	Generations       int
	InitialPopulation int
	FinalPopulation   int
	FinalDelay        time.Duration
	State             State
	Reason            StopReason
}

// Summary returns the current outcome of the run.
func (s *Simulation) Summary() Summary {
	return Summary{
		Generations:       s.generation,
		InitialPopulation: s.initialPop,
		FinalPopulation:   s.cur.Population(),
		FinalDelay:        s.delay,
		State:             s.state,
		Reason:            s.reason,
	}
}
