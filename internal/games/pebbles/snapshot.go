package pebbles

import (
	"strings"

	"github.com/dmitriylogunov/pebbleharmony/internal/puzzle"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick  uint64
	Score int
	Board []string // One ASCII row per grid row, '.' for empty cells
	State GameStateType

	// Active piece, zeroed when no piece is falling
	HasPiece   bool
	PieceState string
	PivotX     int
	PivotY     int
	Orient     string
	PivotColor string
	SideColor  string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.Over():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:  g.tick,
		Score: g.session.Score(),
		Board: boardRows(g.session.Grid()),
		State: state,
	}

	if piece := g.session.Piece(); piece != nil {
		pivotColor, sideColor := piece.Colors()
		snap.HasPiece = true
		snap.PieceState = piece.State().String()
		snap.PivotX = piece.Pivot().X
		snap.PivotY = piece.Pivot().Y
		snap.Orient = piece.Orientation().String()
		snap.PivotColor = pivotColor.String()
		snap.SideColor = sideColor.String()
	}

	return snap
}

// boardRows renders the grid as ASCII rows using Color.Char.
func boardRows(g *puzzle.Grid) []string {
	rows := make([]string, 0, g.H)
	for y := 0; y < g.H; y++ {
		var sb strings.Builder
		sb.Grow(g.W)
		for x := 0; x < g.W; x++ {
			cell := g.Get(puzzle.C(x, y))
			if cell.Filled {
				sb.WriteRune(cell.Color.Char())
			} else {
				sb.WriteRune('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}
