// Package life implements the Conway's Game of Life grid model on a torus.
// It is pure data and pure functions: no I/O, no timing, no terminal.
package life

import "strings"

// Default grid dimensions, matching a classic 80x25 text terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 25
)

// Grid is a fixed-size two-dimensional field of cells.
// Cells are stored in row-major order: index = row*W + col.
// Every cell has exactly 8 neighbours because rows and columns wrap around.
type Grid struct {
	w, h  int
	cells []bool
}

// NewGrid allocates an all-dead grid. Dimensions below 1 are raised to 1.
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Grid{w: width, h: height, cells: make([]bool, width*height)}
}

// FromRows builds a grid from text rows, treating 'O', '1' and '*' as alive.
// The grid is as wide as the longest row; short rows are padded with dead cells.
func FromRows(rows ...string) *Grid {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	g := NewGrid(width, len(rows))
	for row, r := range rows {
		for col := 0; col < len(r); col++ {
			switch r[col] {
			case 'O', '1', '*':
				g.Set(row, col, true)
			}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Wrap maps i+delta onto [0, size) so that indices past either edge land on
// the opposite edge.
func Wrap(i, delta, size int) int {
	return ((i+delta)%size + size) % size
}

func (g *Grid) index(row, col int) int {
	return Wrap(row, 0, g.h)*g.w + Wrap(col, 0, g.w)
}

// Alive reports whether the cell at (row, col) is alive.
// Coordinates outside the grid wrap around.
func (g *Grid) Alive(row, col int) bool {
	return g.cells[g.index(row, col)]
}

// Set changes the state of the cell at (row, col).
// Coordinates outside the grid wrap around.
func (g *Grid) Set(row, col int, alive bool) {
	g.cells[g.index(row, col)] = alive
}

// NeighborCount returns how many of the 8 wrapped neighbours of (row, col)
// are alive.
//
// On a grid with a dimension of 1 or 2 several of the 8 offsets resolve to
// the same physical cell, which is then counted once per offset. A lone live
// cell on a 1x1 grid therefore sees 8 neighbours.
func (g *Grid) NeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := Wrap(row, dr, g.h)
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.cells[r*g.w+Wrap(col, dc, g.w)] {
				count++
			}
		}
	}
	return count
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Format renders the grid as text rows using the given glyphs.
func (g *Grid) Format(alive, dead rune) string {
	var sb strings.Builder
	sb.Grow((g.w + 1) * g.h)
	for row := range g.h {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range g.w {
			if g.cells[row*g.w+col] {
				sb.WriteRune(alive)
			} else {
				sb.WriteRune(dead)
			}
		}
	}
	return sb.String()
}

// String renders the grid with 'O' for live and '.' for dead cells.
func (g *Grid) String() string {
	return g.Format('O', '.')
}
