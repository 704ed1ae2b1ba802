package puzzle

import "math"

// PieceState tracks the falling piece lifecycle.
// Falling -> Dropping is one-way; Landed is terminal.
type PieceState int

const (
	PieceFalling PieceState = iota
	PieceDropping
	PieceLanded
)

// String returns the string representation of a piece state.
func (s PieceState) String() string {
	switch s {
	case PieceFalling:
		return "falling"
	case PieceDropping:
		return "dropping"
	case PieceLanded:
		return "landed"
	default:
		return "unknown"
	}
}

// RotationDir selects the rotation sense.
type RotationDir int

const (
	RotateCW RotationDir = iota
	RotateCCW
)

// landingProximity is how close (in rows) the interpolated position must get
// to the supported position before the piece locks.
const landingProximity = 0.25

// slideSpeed is the horizontal glide rate in cells per second. Column
// occupancy is always integer-exact; the glide only smooths rendering.
const slideSpeed = 24.0

// wallKickShifts are the pivot shifts tried, in order, when a rotation's
// direct target is blocked.
var wallKickShifts = [3]Coord{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}}

// Piece is the player-controlled pair of falling cells: a pivot cell and a
// side cell offset one step from it. The pivot column is integer-exact at
// all times; the vertical position is fractional so the presentation layer
// can interpolate. A Piece exists only while falling; on landing its two
// cells are committed into the Grid and the Piece is discarded.
type Piece struct {
	pivotColor Color
	sideColor  Color

	col    int     // Pivot column, integer-cell exact
	x      float64 // Smoothed horizontal position, glides toward col
	y      float64 // Pivot vertical position in rows, fractional
	orient Dir     // Side cell's unit offset from the pivot
	state  PieceState
}

// NewPiece spawns a piece at the top of the given column with the side cell
// above the pivot. The side cell starts off-grid at row -1, which is fine:
// off-grid cells are simply not committed if the piece locks immediately.
func NewPiece(pivot, side Color, spawnCol int) *Piece {
	return &Piece{
		pivotColor: pivot,
		sideColor:  side,
		col:        spawnCol,
		x:          float64(spawnCol),
		y:          0,
		orient:     DirUp,
		state:      PieceFalling,
	}
}

// State returns the current lifecycle state.
func (p *Piece) State() PieceState {
	return p.state
}

// Colors returns the pivot and side colors.
func (p *Piece) Colors() (pivot, side Color) {
	return p.pivotColor, p.sideColor
}

// Orientation returns the side cell's offset direction from the pivot.
func (p *Piece) Orientation() Dir {
	return p.orient
}

// X returns the smoothed horizontal pivot position for rendering.
func (p *Piece) X() float64 {
	return p.x
}

// Y returns the fractional vertical pivot position for rendering.
func (p *Piece) Y() float64 {
	return p.y
}

// Pivot returns the pivot cell's grid-snapped position.
func (p *Piece) Pivot() Coord {
	return C(p.col, snapRow(p.y))
}

// Side returns the side cell's grid-snapped position.
func (p *Piece) Side() Coord {
	return p.Pivot().Step(p.orient)
}

// snapRow rounds a fractional row to the nearest grid row.
func snapRow(y float64) int {
	return int(math.Floor(y + 0.5))
}

// canOccupy reports whether a piece cell may pass through the coordinate.
// Columns must be in range; rows above the grid are free space, rows below
// are not, and in-grid cells must be empty.
func canOccupy(g *Grid, c Coord) bool {
	if c.X < 0 || c.X >= g.W {
		return false
	}
	if c.Y >= g.H {
		return false
	}
	if c.Y < 0 {
		return true
	}
	return g.IsEmpty(c)
}

// fits checks both piece cells against the grid for a candidate pivot column
// and fractional pivot row. While between rows the piece spans two rows, so
// both are checked.
func (p *Piece) fits(g *Grid, col int, y float64) bool {
	dx, dy := p.orient.Delta()
	rows := []int{int(math.Floor(y))}
	if y != math.Floor(y) {
		rows = append(rows, int(math.Floor(y))+1)
	}
	for _, row := range rows {
		if !canOccupy(g, C(col, row)) {
			return false
		}
		if !canOccupy(g, C(col+dx, row+dy)) {
			return false
		}
	}
	return true
}

// Move shifts the piece one column left or right. It succeeds only if both
// cells' target positions are free; otherwise the piece stays put and Move
// returns false. Directions other than left/right are rejected.
func (p *Piece) Move(g *Grid, d Dir) bool {
	if p.state == PieceLanded {
		return false
	}
	if d != DirLeft && d != DirRight {
		return false
	}
	dx, _ := d.Delta()
	target := p.col + dx
	if !p.fits(g, target, p.y) {
		return false
	}
	p.col = target
	return true
}

// Rotate turns the side cell 90 degrees around the pivot. If the direct
// target is blocked it tries the wall-kick shifts in their fixed order,
// accepting the first pivot shift under which both cells fit. If none fits
// the rotation fails and the piece keeps its prior orientation and position.
func (p *Piece) Rotate(g *Grid, rd RotationDir) bool {
	if p.state == PieceLanded {
		return false
	}

	dx, dy := p.orient.Delta()
	var ndx, ndy int
	if rd == RotateCW {
		ndx, ndy = RotatedCW(dx, dy)
	} else {
		ndx, ndy = RotatedCCW(dx, dy)
	}
	newOrient, ok := dirFromDelta(ndx, ndy)
	if !ok {
		return false
	}

	rotated := *p
	rotated.orient = newOrient

	// Direct placement first, then the kick shifts.
	if rotated.fits(g, p.col, p.y) {
		p.orient = newOrient
		return true
	}
	for _, shift := range wallKickShifts {
		col := p.col + shift.X
		y := p.y + float64(shift.Y)
		if rotated.fits(g, col, y) {
			p.orient = newOrient
			p.col = col
			p.x = float64(col)
			p.y = y
			return true
		}
	}
	return false
}

// Drop switches the piece to fast-fall. The transition is one-way and does
// not change horizontal behavior or collision rules.
func (p *Piece) Drop() {
	if p.state == PieceFalling {
		p.state = PieceDropping
	}
}

// supportY returns the lowest pivot row the piece can occupy in its current
// column and orientation: for each cell, the row just above its column's
// stack (or the bottom row for an empty column), translated back to pivot
// space. The smaller of the two wins: landing of either cell lands both.
func (p *Piece) supportY(g *Grid) float64 {
	dx, dy := p.orient.Delta()

	pivotFloor := g.HighestOccupied(p.col) - 1
	sideFloor := g.HighestOccupied(p.col+dx) - 1 - dy

	floor := pivotFloor
	if sideFloor < floor {
		floor = sideFloor
	}
	return float64(floor)
}

// Advance moves the piece down by rate*dt and glides the smoothed horizontal
// position toward the current column. It returns true when the piece has
// landed: either a cell reached the bottom row or came within the landing
// proximity of an occupied cell below it. On landing the piece snaps to the
// supported position and transitions to the terminal Landed state.
func (p *Piece) Advance(g *Grid, dt, fallSpeed, dropSpeed float64) bool {
	if p.state == PieceLanded {
		return true
	}

	rate := fallSpeed
	if p.state == PieceDropping {
		rate = dropSpeed
	}
	p.y += rate * dt

	// Glide x toward the integer column for rendering only.
	target := float64(p.col)
	diff := target - p.x
	maxStep := slideSpeed * dt
	if math.Abs(diff) <= maxStep {
		p.x = target
	} else if diff > 0 {
		p.x += maxStep
	} else {
		p.x -= maxStep
	}

	support := p.supportY(g)
	if p.y+landingProximity >= support {
		p.y = support
		p.x = target
		p.state = PieceLanded
		return true
	}
	return false
}

// Commit transfers the piece's two cells into the grid at their snapped
// positions. Cells that ended up off-grid (a side cell still above row 0)
// are silently skipped; this is the sole path by which new pebbles enter
// the grid. Returns the coordinates that were actually placed.
func (p *Piece) Commit(g *Grid) []PlacedCell {
	placed := make([]PlacedCell, 0, 2)
	pivot := p.Pivot()
	side := p.Side()
	if g.Place(pivot, p.pivotColor) {
		placed = append(placed, PlacedCell{Pos: pivot, Color: p.pivotColor})
	}
	if g.Place(side, p.sideColor) {
		placed = append(placed, PlacedCell{Pos: side, Color: p.sideColor})
	}
	p.state = PieceLanded
	return placed
}

// PlacedCell records one committed piece cell.
type PlacedCell struct {
	Pos   Coord
	Color Color
}

// dirFromDelta maps a unit offset back to a direction.
func dirFromDelta(dx, dy int) (Dir, bool) {
	switch {
	case dx == 0 && dy == -1:
		return DirUp, true
	case dx == 1 && dy == 0:
		return DirRight, true
	case dx == 0 && dy == 1:
		return DirDown, true
	case dx == -1 && dy == 0:
		return DirLeft, true
	default:
		return DirUp, false
	}
}
