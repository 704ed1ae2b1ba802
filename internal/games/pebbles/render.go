package pebbles

import (
	"fmt"
	"math"

	"github.com/dmitriylogunov/pebbleharmony/internal/core"
	"github.com/dmitriylogunov/pebbleharmony/internal/puzzle"
)

// Cells draw two columns wide so the board is roughly square in a terminal.
const cellWidth = 2

const (
	pebbleRune = '●'
	glowRune   = '◆'
	flashRune  = '✦'
)

// colorFor maps engine colors to screen colors.
func colorFor(c puzzle.Color) core.Color {
	switch c {
	case puzzle.ColorRed:
		return core.ColorBrightRed
	case puzzle.ColorYellow:
		return core.ColorBrightYellow
	case puzzle.ColorGreen:
		return core.ColorBrightGreen
	case puzzle.ColorBlue:
		return core.ColorBrightBlue
	case puzzle.ColorPurple:
		return core.ColorBrightMagenta
	case puzzle.ColorGlow:
		return core.ColorBrightWhite
	default:
		return core.ColorDefault
	}
}

// runeFor returns the board rune for a pebble color.
func runeFor(c puzzle.Color) rune {
	if c == puzzle.ColorGlow {
		return glowRune
	}
	return pebbleRune
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small. Please enlarge.")
		return
	}

	grid := g.session.Grid()
	boardW := grid.W * cellWidth
	boardH := grid.H

	offX := (dst.Width() - boardW - 16) / 2
	offY := (dst.Height() - boardH) / 2
	if offX < 1 {
		offX = 1
	}
	if offY < 1 {
		offY = 1
	}

	dst.DrawBox(core.NewRect(offX-1, offY-1, boardW+2, boardH+2))

	// Settled pebbles
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			cell := grid.Get(puzzle.C(x, y))
			if !cell.Filled {
				continue
			}
			dst.SetColored(offX+x*cellWidth, offY+y, runeFor(cell.Color), colorFor(cell.Color))
		}
	}

	// Flash recently cleared cells
	if g.flashTicks > 0 && g.flashTicks%4 < 2 {
		for _, c := range g.flashCells {
			dst.SetColored(offX+c.X*cellWidth, offY+c.Y, flashRune, core.ColorBrightWhite)
		}
	}

	g.renderPiece(dst, offX, offY)
	g.renderHUD(dst, offX+boardW+3, offY)

	switch {
	case g.session.Over():
		dst.DrawTextCentered(offY+boardH/2, "  GAME OVER  ")
		dst.DrawTextCentered(offY+boardH/2+1, " R: restart  Q: quit ")
	case g.paused:
		dst.DrawTextCentered(offY+boardH/2, "  PAUSED  ")
	}
}

// renderPiece draws the falling pair at its interpolated position.
func (g *Game) renderPiece(dst *core.Screen, offX, offY int) {
	piece := g.session.Piece()
	if piece == nil || g.session.Over() {
		return
	}

	px := int(math.Round(piece.X() * cellWidth))
	py := int(math.Round(piece.Y()))
	dx, dy := piece.Orientation().Delta()
	pivotColor, sideColor := piece.Colors()

	if py >= 0 {
		dst.SetColored(offX+px, offY+py, runeFor(pivotColor), colorFor(pivotColor))
	}
	if py+dy >= 0 {
		dst.SetColored(offX+px+dx*cellWidth, offY+py+dy, runeFor(sideColor), colorFor(sideColor))
	}
}

// renderHUD draws score, next piece preview and the chain banner.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "PEBBLE HARMONY")
	dst.DrawText(x, y+2, fmt.Sprintf("Score %d", g.session.Score()))

	nextPivot, nextSide := g.session.NextPair()
	dst.DrawText(x, y+4, "Next")
	dst.SetColored(x+5, y+4, runeFor(nextSide), colorFor(nextSide))
	dst.SetColored(x+5, y+5, runeFor(nextPivot), colorFor(nextPivot))

	if g.flashTicks > 0 && g.chainLength > 1 {
		dst.DrawTextColored(x, y+7, fmt.Sprintf("CHAIN x%d!", g.chainLength), core.ColorBrightYellow)
	}

	dst.DrawText(x, y+9, "←/→ move")
	dst.DrawText(x, y+10, "z/x rotate")
	dst.DrawText(x, y+11, "space drop")
}
