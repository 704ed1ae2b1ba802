package puzzle

import "testing"

func TestApplyGravitySingleColumn(t *testing.T) {
	// Cells at rows 2, 5, 9 compact to rows 9, 10, 11 in the same order
	g := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		2: "R.....",
		5: "G.....",
		9: "B.....",
	})

	moves := ApplyGravity(g)

	if len(moves) != 3 {
		t.Fatalf("got %d moves, want 3", len(moves))
	}

	wantCells := []struct {
		pos   Coord
		color Color
	}{
		{C(0, 9), ColorRed},
		{C(0, 10), ColorGreen},
		{C(0, 11), ColorBlue},
	}
	for _, wc := range wantCells {
		cell := g.Get(wc.pos)
		if !cell.Filled || cell.Color != wc.color {
			t.Errorf("cell at %v = %+v, want %v", wc.pos, cell, wc.color)
		}
	}
	for y := 0; y < 9; y++ {
		if g.Get(C(0, y)).Filled {
			t.Errorf("row %d should be empty after compaction", y)
		}
	}

	// Bottom-up scan emits the lowest cell's move first
	first := moves[0]
	if first.From != C(0, 9) || first.To != C(0, 11) || first.Color != ColorBlue {
		t.Errorf("first move = %+v, want blue (0,9)->(0,11)", first)
	}
}

func TestApplyGravityNoOps(t *testing.T) {
	t.Run("empty column", func(t *testing.T) {
		g := NewGrid(DefaultWidth, DefaultHeight)
		if moves := ApplyGravity(g); len(moves) != 0 {
			t.Errorf("empty grid: got %d moves, want 0", len(moves))
		}
	})

	t.Run("full column", func(t *testing.T) {
		g := NewGrid(DefaultWidth, DefaultHeight)
		for y := 0; y < DefaultHeight; y++ {
			g.Place(C(0, y), ColorRed)
		}
		before := g.Clone()

		if moves := ApplyGravity(g); len(moves) != 0 {
			t.Errorf("full column: got %d moves, want 0", len(moves))
		}
		if !g.Equal(before) {
			t.Error("full column must be unchanged")
		}
	})

	t.Run("already settled", func(t *testing.T) {
		g := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
			10: "R.....",
			11: "RG....",
		})
		before := g.Clone()

		if moves := ApplyGravity(g); len(moves) != 0 {
			t.Errorf("settled grid: got %d moves, want 0", len(moves))
		}
		if !g.Equal(before) {
			t.Error("settled grid must be unchanged")
		}
	})
}

func TestApplyGravityColumnsIndependent(t *testing.T) {
	g := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		0: "R....Y",
		5: "..G...",
		8: "R.....",
	})

	moves := ApplyGravity(g)

	if len(moves) != 4 {
		t.Fatalf("got %d moves, want 4", len(moves))
	}

	// Column 0 keeps its top-to-bottom order
	if g.Get(C(0, 10)).Color != ColorRed || g.Get(C(0, 11)).Color != ColorRed {
		t.Error("column 0 cells should stack at rows 10 and 11")
	}
	if g.Get(C(2, 11)).Color != ColorGreen {
		t.Error("column 2 cell should land at row 11")
	}
	if g.Get(C(5, 11)).Color != ColorYellow {
		t.Error("column 5 cell should land at row 11")
	}
}
