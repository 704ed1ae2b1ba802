package puzzle

// Move records a single cell relocation performed by gravity.
// The presentation layer uses these to animate falls; the engine itself
// never reads them back.
type Move struct {
	From  Coord
	To    Coord
	Color Color
}

// ApplyGravity compacts every column downward in place. For each column a
// write pointer starts at the bottom row; each occupied cell found scanning
// upward is relocated to the write row, preserving the column's top-to-bottom
// order. A Move record is emitted only when a cell actually changes row.
// Columns are independent, so their processing order is irrelevant.
func ApplyGravity(g *Grid) []Move {
	var moves []Move

	for x := 0; x < g.W; x++ {
		writeRow := g.H - 1
		for y := g.H - 1; y >= 0; y-- {
			cell := g.Get(C(x, y))
			if !cell.Filled {
				continue
			}
			if y != writeRow {
				g.Remove(C(x, y))
				g.Place(C(x, writeRow), cell.Color)
				moves = append(moves, Move{
					From:  C(x, y),
					To:    C(x, writeRow),
					Color: cell.Color,
				})
			}
			writeRow--
		}
	}

	return moves
}
