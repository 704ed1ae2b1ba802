package puzzle

import "math/rand"

// Settings holds the tunable parameters of a session.
type Settings struct {
	Width          int
	Height         int
	MatchThreshold int
	PebbleValue    int     // Points per removed pebble
	ChainBonus     int     // Points per cleared group
	SpawnColumns   [2]int  // Columns tested for game over; pieces spawn in the first
	GlowChance     float64 // Probability a generated pebble is glow
	FallSpeed      float64 // Cells per second while falling
	DropSpeed      float64 // Cells per second after Drop
}

// DefaultSettings returns the reference game parameters.
func DefaultSettings() Settings {
	return Settings{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		MatchThreshold: DefaultMatchThreshold,
		PebbleValue:    10,
		ChainBonus:     50,
		SpawnColumns:   [2]int{2, 3},
		GlowChance:     0.04,
		FallSpeed:      2.5,
		DropSpeed:      18,
	}
}

// ChainStep describes one match/gravity iteration of a chain reaction.
type ChainStep struct {
	Groups      []MatchGroup
	Removed     int // Cells removed this step
	ScoreGained int
	Moves       []Move // Gravity moves that followed the removal
}

// ChainResult describes a full chain reaction run to quiescence.
type ChainResult struct {
	Steps []ChainStep
	Score int // Total score gained across all steps
}

// Length returns the number of chain steps (0 when the landing matched nothing).
func (r ChainResult) Length() int {
	return len(r.Steps)
}

// ResolveChains runs the match/remove/gravity cycle on the grid until no
// group reaches the threshold. Each iteration removes every matched cell,
// scores removed*PebbleValue + groups*ChainBonus, compacts the columns and
// re-checks, modeling cascades caused by compaction.
func ResolveChains(g *Grid, s Settings) ChainResult {
	var result ChainResult

	for {
		groups := FindMatches(g, s.MatchThreshold)
		if len(groups) == 0 {
			return result
		}

		removed := 0
		for _, group := range groups {
			for _, c := range group.Cells {
				g.Remove(c)
			}
			removed += group.Size()
		}
		gained := removed*s.PebbleValue + len(groups)*s.ChainBonus
		moves := ApplyGravity(g)

		result.Steps = append(result.Steps, ChainStep{
			Groups:      groups,
			Removed:     removed,
			ScoreGained: gained,
			Moves:       moves,
		})
		result.Score += gained
	}
}

// Session is the chain controller: it owns the grid for its lifetime, drives
// the active piece, commits landings, resolves chains and tracks score and
// game over. Exactly one piece is active at a time and the whole cycle is
// synchronous; observers receive descriptive events for presentation pacing.
type Session struct {
	cfg   Settings
	grid  *Grid
	piece *Piece
	gen   *Generator

	nextPivot Color
	nextSide  Color

	score int
	over  bool
	obs   Observer
}

// NewSession creates a session with an empty grid and spawns the first piece.
// The random source drives piece colors only.
func NewSession(cfg Settings, rng *rand.Rand) *Session {
	s := &Session{
		cfg:  cfg,
		grid: NewGrid(cfg.Width, cfg.Height),
		gen:  NewGenerator(rng, cfg.GlowChance),
	}
	s.nextPivot, s.nextSide = s.gen.NextPair()
	s.spawn()
	return s
}

// SetObserver registers the event observer. A nil observer disables
// notifications.
func (s *Session) SetObserver(o Observer) {
	s.obs = o
}

func (s *Session) emit(e Event) {
	if s.obs != nil {
		s.obs.Notify(e)
	}
}

// spawn promotes the preview pair to the active piece and draws a new
// preview. Callers must have checked the game-over condition first.
func (s *Session) spawn() {
	s.piece = NewPiece(s.nextPivot, s.nextSide, s.cfg.SpawnColumns[0])
	s.nextPivot, s.nextSide = s.gen.NextPair()
}

// Advance moves the simulation forward by dt seconds. When the active piece
// lands it is committed, chains are resolved to quiescence and either the
// next piece spawns or the session ends. The returned ChainResult is non-nil
// only for the tick on which a landing occurred.
func (s *Session) Advance(dt float64) *ChainResult {
	if s.over || s.piece == nil {
		return nil
	}

	if !s.piece.Advance(s.grid, dt, s.cfg.FallSpeed, s.cfg.DropSpeed) {
		return nil
	}

	placed := s.piece.Commit(s.grid)
	s.piece = nil
	s.emit(PieceLandedEvent{Cells: placed})

	chain := ResolveChains(s.grid, s.cfg)
	for _, step := range chain.Steps {
		s.emit(MatchesClearedEvent{
			Groups:      step.Groups,
			Pebbles:     step.Removed,
			ScoreGained: step.ScoreGained,
		})
		s.emit(GravityAppliedEvent{Moves: step.Moves})
	}
	s.score += chain.Score

	if s.spawnBlocked() {
		s.over = true
		s.emit(GameOverEvent{Score: s.score})
	} else {
		s.spawn()
	}
	return &chain
}

// spawnBlocked reports whether either spawn column is occupied at row 0.
func (s *Session) spawnBlocked() bool {
	for _, col := range s.cfg.SpawnColumns {
		if s.grid.Get(C(col, 0)).Filled {
			return true
		}
	}
	return false
}

// Move shifts the active piece left or right. Returns false if there is no
// active piece or the move is blocked.
func (s *Session) Move(d Dir) bool {
	if s.over || s.piece == nil {
		return false
	}
	return s.piece.Move(s.grid, d)
}

// Rotate rotates the active piece, wall-kicking if needed.
func (s *Session) Rotate(rd RotationDir) bool {
	if s.over || s.piece == nil {
		return false
	}
	return s.piece.Rotate(s.grid, rd)
}

// Drop switches the active piece to fast-fall.
func (s *Session) Drop() {
	if s.over || s.piece == nil {
		return
	}
	s.piece.Drop()
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.score
}

// Over reports whether the session has reached game over.
func (s *Session) Over() bool {
	return s.over
}

// Grid exposes the settled board for read-only queries and rendering.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Piece returns the active piece, or nil between landing and next spawn
// (and after game over).
func (s *Session) Piece() *Piece {
	return s.piece
}

// NextPair returns the preview colors for the upcoming piece.
func (s *Session) NextPair() (pivot, side Color) {
	return s.nextPivot, s.nextSide
}

// IsCellEmpty reports whether a grid cell is empty. Out-of-bounds is false.
func (s *Session) IsCellEmpty(c Coord) bool {
	return s.grid.IsEmpty(c)
}

// HighestOccupied returns the topmost occupied row of a column, Height for
// an empty column and -1 for an invalid one.
func (s *Session) HighestOccupied(col int) int {
	return s.grid.HighestOccupied(col)
}

// Settings returns the session parameters.
func (s *Session) Settings() Settings {
	return s.cfg
}

// SetFallSpeed adjusts the falling rate, in cells per second. The platform
// uses this for difficulty progression; collision and landing rules are
// unaffected.
func (s *Session) SetFallSpeed(cellsPerSecond float64) {
	if cellsPerSecond > 0 {
		s.cfg.FallSpeed = cellsPerSecond
	}
}
