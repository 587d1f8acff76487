package life

// NextState applies Conway's rule to a single cell: a live cell survives with
// 2 or 3 neighbours, a dead cell is born with exactly 3.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Advance computes the next generation without touching current.
// The second result reports whether any cell changed state.
func Advance(current *Grid) (*Grid, bool) {
	next := NewGrid(current.w, current.h)
	changed := AdvanceInto(next, current)
	return next, changed
}

// AdvanceInto writes the generation following src into dst and reports
// whether any cell changed. dst must have the same dimensions as src and
// must not be the same grid; it panics otherwise.
func AdvanceInto(dst, src *Grid) bool {
	if dst == src {
		panic("life: AdvanceInto called with aliased grids")
	}
	if dst.w != src.w || dst.h != src.h {
		panic("life: AdvanceInto called with mismatched dimensions")
	}

	changed := false
	for row := range src.h {
		for col := range src.w {
			i := row*src.w + col
			alive := src.cells[i]
			next := NextState(alive, src.NeighborCount(row, col))
			dst.cells[i] = next
			if next != alive {
				changed = true
			}
		}
	}
	return changed
}
