// Package pattern reads initial Game of Life fields from character streams.
//
// Parsing is deliberately lenient: the loader consumes exactly width*height
// characters in row-major order, '1' and '*' become live cells, every other
// character becomes a dead cell, and a stream that ends early leaves the
// remaining cells dead.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Loader reads patterns for a grid of fixed dimensions.
type Loader struct {
	Width  int
	Height int

	// SkipWhitespace drops spaces and line breaks instead of treating them
	// as dead cells, so a pattern can be laid out as text rows.
	SkipWhitespace bool
}

// NewLoader creates a loader in raw mode, where every character is a cell.
func NewLoader(width, height int) *Loader {
	return &Loader{Width: width, Height: height}
}

// IsAlive reports whether a pattern character marks a live cell.
func IsAlive(ch rune) bool {
	return ch == '1' || ch == '*'
}

// Load reads one grid from r. End of stream is not an error; only a failing
// reader is.
func (l *Loader) Load(r io.Reader) (*life.Grid, error) {
	g := life.NewGrid(l.Width, l.Height)
	br := bufio.NewReader(r)

	for row := range g.Height() {
		for col := range g.Width() {
			ch, err := l.next(br)
			if errors.Is(err, io.EOF) {
				return g, nil
			}
			if err != nil {
				return g, fmt.Errorf("pattern: read cell (%d, %d): %w", row, col, err)
			}
			g.Set(row, col, IsAlive(ch))
		}
	}
	return g, nil
}

// LoadFile reads one grid from the named file.
func (l *Loader) LoadFile(path string) (*life.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pattern: open %s: %w", path, err)
	}
	defer f.Close()

	return l.Load(f)
}

// next returns the next character that occupies a cell.
func (l *Loader) next(br *bufio.Reader) (rune, error) {
	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			return 0, err
		}
		if l.SkipWhitespace && unicode.IsSpace(ch) {
			continue
		}
		return ch, nil
	}
}
