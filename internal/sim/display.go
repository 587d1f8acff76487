package sim

import "time"

// Display is the drawing and input surface the loop renders to.
// Terminal setup and teardown belong to the implementation, not to the loop.
type Display interface {
	// Clear blanks the frame.
	Clear()
	// DrawCell draws one grid cell in its live or dead glyph.
	DrawCell(row, col int, alive bool)
	// Flush commits the frame to the terminal.
	Flush()
	// PollKey returns the next pending keystroke without blocking.
	// ok is false when no key is waiting.
	PollKey() (key rune, ok bool)
}

// Clock paces the loop. Sleep is the loop's only suspension point.
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock sleeps on the wall clock.
type SystemClock struct{}

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// NopClock returns immediately; used for headless runs.
type NopClock struct{}

// Sleep does nothing.
func (NopClock) Sleep(time.Duration) {}

// NopDisplay draws nothing and never reports a key.
type NopDisplay struct{}

func (NopDisplay) Clear()                  {}
func (NopDisplay) DrawCell(int, int, bool) {}
func (NopDisplay) Flush()                  {}
func (NopDisplay) PollKey() (rune, bool)   { return 0, false }
