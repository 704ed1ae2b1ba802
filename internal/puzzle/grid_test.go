package puzzle

import "testing"

// gridFromRows builds a grid from ASCII rows: '.' is empty, color chars as
// in Color.Char ('R', 'Y', 'G', 'B', 'P', '*').
func gridFromRows(t *testing.T, w, h int, rows map[int]string) *Grid {
	t.Helper()
	g := NewGrid(w, h)
	for y, row := range rows {
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			color, ok := ParseColor(string(ch))
			if !ok {
				t.Fatalf("bad grid char %q at (%d,%d)", ch, x, y)
			}
			if !g.Place(C(x, y), color) {
				t.Fatalf("cannot place %q at (%d,%d)", ch, x, y)
			}
		}
	}
	return g
}

func TestGridPlaceGet(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)

	if !g.Place(C(2, 5), ColorGreen) {
		t.Fatal("Place on empty valid cell should succeed")
	}
	cell := g.Get(C(2, 5))
	if !cell.Filled || cell.Color != ColorGreen {
		t.Errorf("Get(2,5) = %+v, expected filled green", cell)
	}

	// Placing into an occupied cell never overwrites
	if g.Place(C(2, 5), ColorRed) {
		t.Error("Place on occupied cell should fail")
	}
	if g.Get(C(2, 5)).Color != ColorGreen {
		t.Error("failed Place must not mutate the cell")
	}
}

func TestGridPlaceOutOfBounds(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)

	tests := []struct {
		name string
		pos  Coord
	}{
		{"negative x", C(-1, 0)},
		{"negative y", C(0, -1)},
		{"x at width", C(DefaultWidth, 0)},
		{"y at height", C(0, DefaultHeight)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if g.Place(tc.pos, ColorRed) {
				t.Errorf("Place(%v) should fail", tc.pos)
			}
			if g.FilledCount() != 0 {
				t.Error("out-of-bounds Place must not mutate the grid")
			}
			if cell := g.Get(tc.pos); cell.Filled {
				t.Errorf("Get(%v) should be empty", tc.pos)
			}
		})
	}
}

func TestGridRemove(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	g.Place(C(1, 1), ColorBlue)

	if !g.Remove(C(1, 1)) {
		t.Fatal("Remove on valid cell should succeed")
	}
	if !g.IsEmpty(C(1, 1)) {
		t.Error("cell should be empty after Remove")
	}

	if g.Remove(C(-1, 0)) {
		t.Error("Remove out of bounds should fail")
	}
	if g.Remove(C(0, DefaultHeight)) {
		t.Error("Remove out of bounds should fail")
	}
}

func TestGridIsEmpty(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	g.Place(C(3, 3), ColorPurple)

	if g.IsEmpty(C(3, 3)) {
		t.Error("occupied cell should not be empty")
	}
	if !g.IsEmpty(C(0, 0)) {
		t.Error("untouched cell should be empty")
	}
	// Invalid positions are not placeable, so they report not-empty
	if g.IsEmpty(C(-1, 0)) || g.IsEmpty(C(0, -1)) {
		t.Error("out-of-bounds IsEmpty should be false")
	}
}

func TestGridHighestOccupied(t *testing.T) {
	g := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		7:  "R.....",
		9:  "R.B...",
		11: "R.B.Y.",
	})

	tests := []struct {
		name string
		col  int
		want int
	}{
		{"stacked column", 0, 7},
		{"empty column", 1, DefaultHeight},
		{"partial column", 2, 9},
		{"single bottom pebble", 4, 11},
		{"negative column", -1, -1},
		{"column at width", DefaultWidth, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.HighestOccupied(tc.col); got != tc.want {
				t.Errorf("HighestOccupied(%d) = %d, want %d", tc.col, got, tc.want)
			}
		})
	}
}

func TestGridReset(t *testing.T) {
	g := NewGrid(4, 4)
	g.Place(C(0, 0), ColorRed)
	g.Place(C(3, 3), ColorGlow)

	g.Reset()

	if g.FilledCount() != 0 {
		t.Errorf("FilledCount after Reset = %d, want 0", g.FilledCount())
	}
}

func TestGridCloneEqual(t *testing.T) {
	g := gridFromRows(t, 4, 4, map[int]string{
		3: "RG*B",
	})

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone should equal the original")
	}

	clone.Remove(C(0, 3))
	if g.Equal(clone) {
		t.Error("mutating the clone must not affect the original")
	}
	if !g.Get(C(0, 3)).Filled {
		t.Error("original grid changed through clone")
	}

	other := NewGrid(5, 4)
	if g.Equal(other) {
		t.Error("grids with different dimensions are never equal")
	}
}
