package life

import "testing"

func fill(g *Grid) {
	for row := range g.Height() {
		for col := range g.Width() {
			g.Set(row, col, true)
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.Width() != 1 || g.Height() != 1 {
		t.Errorf("NewGrid(0, -3) = %dx%d, expected 1x1", g.Width(), g.Height())
	}
	if g.Population() != 0 {
		t.Errorf("new grid should be empty, got population %d", g.Population())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		i, delta, size, expected int
	}{
		{0, -1, 80, 79},
		{79, 1, 80, 0},
		{10, 0, 80, 10},
		{24, 1, 25, 0},
		{0, -1, 1, 0},
		{-7, 0, 5, 3},
		{12, 0, 5, 2},
	}

	for _, tc := range tests {
		if got := Wrap(tc.i, tc.delta, tc.size); got != tc.expected {
			t.Errorf("Wrap(%d, %d, %d) = %d, expected %d", tc.i, tc.delta, tc.size, got, tc.expected)
		}
	}
}

func TestSetAndAliveWrap(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(-1, -1, true)

	if !g.Alive(2, 3) {
		t.Error("Set(-1, -1) should land on the bottom-right cell")
	}
	if !g.Alive(5, 7) {
		t.Error("Alive(5, 7) should wrap to (2, 3)")
	}
}

func TestNeighborCountAllAlive(t *testing.T) {
	sizes := []struct{ w, h int }{{3, 3}, {80, 25}, {5, 4}}

	for _, sz := range sizes {
		g := NewGrid(sz.w, sz.h)
		fill(g)
		for row := range g.Height() {
			for col := range g.Width() {
				if n := g.NeighborCount(row, col); n != 8 {
					t.Fatalf("%dx%d all alive: NeighborCount(%d, %d) = %d, expected 8", sz.w, sz.h, row, col, n)
				}
			}
		}
	}
}

func TestNeighborCountWrapsEdges(t *testing.T) {
	g := NewGrid(10, 6)
	// Corner cell touches the three other corners through the torus.
	g.Set(0, 9, true)
	g.Set(5, 0, true)
	g.Set(5, 9, true)

	if n := g.NeighborCount(0, 0); n != 3 {
		t.Errorf("NeighborCount(0, 0) = %d, expected 3", n)
	}
	if n := g.NeighborCount(2, 5); n != 0 {
		t.Errorf("NeighborCount(2, 5) = %d, expected 0", n)
	}
}

func TestNeighborCountExcludesSelf(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(2, 2, true)

	if n := g.NeighborCount(2, 2); n != 0 {
		t.Errorf("lone cell should have 0 neighbours, got %d", n)
	}
	if n := g.NeighborCount(1, 1); n != 1 {
		t.Errorf("diagonal neighbour should count 1, got %d", n)
	}
}

func TestNeighborCountSmallGrids(t *testing.T) {
	// 1x1: all 8 offsets resolve to the cell itself.
	one := NewGrid(1, 1)
	one.Set(0, 0, true)
	if n := one.NeighborCount(0, 0); n != 8 {
		t.Errorf("1x1 alive: NeighborCount = %d, expected 8", n)
	}

	// 2x2: the diagonal cell is reached through four different offsets.
	two := NewGrid(2, 2)
	two.Set(0, 0, true)
	if n := two.NeighborCount(1, 1); n != 4 {
		t.Errorf("2x2: NeighborCount(1, 1) = %d, expected 4", n)
	}
	if n := two.NeighborCount(0, 0); n != 0 {
		t.Errorf("2x2: NeighborCount(0, 0) = %d, expected 0", n)
	}
}

func TestFromRowsAndString(t *testing.T) {
	g := FromRows(
		".O.",
		"*1",
		"",
	)

	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("FromRows dims = %dx%d, expected 3x3", g.Width(), g.Height())
	}
	if g.Population() != 3 {
		t.Errorf("Population() = %d, expected 3", g.Population())
	}

	expected := ".O.\nOO.\n..."
	if got := g.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if got := g.Format('#', ' '); got != " # \n## \n   " {
		t.Errorf("Format() = %q", got)
	}
}

func TestClone(t *testing.T) {
	g := FromRows("O..", ".O.")
	c := g.Clone()

	if !equalGrids(g, c) {
		t.Fatal("clone should equal original")
	}

	c.Set(0, 0, false)
	if equalGrids(g, c) {
		t.Error("modifying clone should not affect original")
	}
	if !g.Alive(0, 0) {
		t.Error("original cell changed through clone")
	}

	if equalGrids(g, NewGrid(3, 3)) {
		t.Error("grids with different dimensions should not be equal")
	}
	if equalGrids(g, nil) {
		t.Error("grid should not equal nil")
	}
}


// equalGrids reports whether both grids have the same dimensions and cell states.
func equalGrids(a, b *Grid) bool {
	if a == nil || b == nil || a.w != b.w || a.h != b.h {
		return false
	}
	for i, alive := range a.cells {
		if b.cells[i] != alive {
			return false
		}
	}
	return true
}
