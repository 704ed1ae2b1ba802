// Package puzzle implements the deterministic falling-pebble simulation:
// board state, flood-fill match detection, gravity compaction, the falling
// piece state machine and the chain-reaction loop. The package is UI-agnostic;
// all randomness is injected so a seed fully determines a run.
package puzzle

// Default board dimensions.
const (
	DefaultWidth  = 6
	DefaultHeight = 12
)

// Grid represents the settled board state as a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x.
// Every access is bounds-checked; out-of-bounds reads are defined as empty
// and out-of-bounds writes are rejected, never a panic.
type Grid struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	cells []Cell // Flat array of cells, length W*H
}

// NewGrid creates a new all-empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		cells: make([]Cell, w*h),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Reset clears every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty()
	}
}

// Get returns the cell at the given coordinate.
// Returns an empty cell if out of bounds.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Empty()
	}
	return g.cells[g.index(c)]
}

// Place puts a pebble of the given color at the coordinate.
// It succeeds only if the coordinate is valid and the cell is empty;
// otherwise it returns false without mutating anything. A cell is never
// overwritten.
func (g *Grid) Place(c Coord, color Color) bool {
	if !g.InBounds(c) {
		return false
	}
	i := g.index(c)
	if g.cells[i].Filled {
		return false
	}
	g.cells[i] = Pebble(color)
	return true
}

// Remove clears the cell at the given coordinate.
// Returns false for out-of-bounds coordinates; clearing an already-empty
// valid cell succeeds.
func (g *Grid) Remove(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	g.cells[g.index(c)] = Empty()
	return true
}

// IsEmpty returns true if the cell at the coordinate is empty.
// Out-of-bounds coordinates report false: they are not placeable.
func (g *Grid) IsEmpty(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return !g.cells[g.index(c)].Filled
}

// HighestOccupied returns the row index of the topmost pebble in a column.
// Returns H if the column is empty and -1 if the column index is invalid.
func (g *Grid) HighestOccupied(col int) int {
	if col < 0 || col >= g.W {
		return -1
	}
	for y := 0; y < g.H; y++ {
		if g.cells[y*g.W+col].Filled {
			return y
		}
	}
	return g.H
}

// FilledCount returns the number of filled cells in the grid.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
