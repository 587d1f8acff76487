package core

// RuntimeConfig contains configuration passed to frontends when a run starts.
// Frontends use it to lay out the frame and pick glyphs and colors.
type RuntimeConfig struct {
	ScreenW    int   // Terminal width in characters
	ScreenH    int   // Terminal height in characters
	AliveGlyph rune  // Glyph drawn for a live cell
	DeadGlyph  rune  // Glyph drawn for a dead cell
	AliveColor Color // Foreground color of live cells
	StatusBar  bool  // Draw the status line below the grid
	InputTTY   bool  // Read keys from the controlling tty instead of stdin
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		AliveGlyph: 'O',
		DeadGlyph:  ' ',
		AliveColor: ColorDefault,
		StatusBar:  true,
	}
}
