// Package pebbles adapts the puzzle engine to the platform Game interface.
// All simulation rules live in internal/puzzle; this package maps input
// actions onto the session, paces presentation effects and renders.
package pebbles

import (
	"math/rand"

	"github.com/dmitriylogunov/pebbleharmony/internal/config"
	"github.com/dmitriylogunov/pebbleharmony/internal/core"
	"github.com/dmitriylogunov/pebbleharmony/internal/puzzle"
	"github.com/dmitriylogunov/pebbleharmony/internal/registry"
)

// flashDuration is how many ticks cleared cells keep flashing on screen.
const flashDuration = 18

// Game implements the Pebble Harmony falling-block puzzle.
type Game struct {
	cfg     config.PebblesConfig
	diff    *config.DifficultyManager
	session *puzzle.Session
	rng     *rand.Rand
	tick    uint64
	dt      float64 // Seconds per tick

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused        bool
	tooSmall      bool
	moveProcessed bool // Prevent multiple lateral moves per tick

	// Presentation pacing, never fed back into the simulation
	flashTicks  int
	flashCells  []puzzle.Coord
	chainLength int
	maxChain    int
}

// Package-level variables for config/difficulty (set by the CLI before creation)
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Pebble Harmony game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pebbles", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pebbles"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pebble Harmony"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadPebbles(configPath)
	if err != nil {
		loaded = config.DefaultPebblesConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPebblesPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded
	g.diff = config.NewDifficultyManager(loaded.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.moveProcessed = false
	g.flashTicks = 0
	g.flashCells = nil
	g.chainLength = 0
	g.maxChain = 0

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.session = puzzle.NewSession(g.settings(), g.rng)
	g.checkScreenSize()
}

// settings translates the YAML config into engine parameters.
func (g *Game) settings() puzzle.Settings {
	s := puzzle.DefaultSettings()
	if g.cfg.Board.Width > 0 {
		s.Width = g.cfg.Board.Width
	}
	if g.cfg.Board.Height > 0 {
		s.Height = g.cfg.Board.Height
	}
	if g.cfg.Board.MatchThreshold > 0 {
		s.MatchThreshold = g.cfg.Board.MatchThreshold
	}
	if g.cfg.Physics.FallSpeed > 0 {
		s.FallSpeed = g.cfg.Physics.FallSpeed
	}
	if g.cfg.Physics.DropSpeed > 0 {
		s.DropSpeed = g.cfg.Physics.DropSpeed
	}
	if g.cfg.Scoring.PebbleValue > 0 {
		s.PebbleValue = g.cfg.Scoring.PebbleValue
	}
	if g.cfg.Scoring.ChainBonus > 0 {
		s.ChainBonus = g.cfg.Scoring.ChainBonus
	}
	s.SpawnColumns = g.cfg.Pieces.SpawnColumns
	s.GlowChance = g.cfg.Pieces.GlowChance
	return s
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board (2 cells per column plus frame) and HUD sidebar
	minW := g.session.Grid().W*2 + 18
	minH := g.session.Grid().H + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if g.session.Over() {
		// Restart is handled by the platform
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	// Difficulty scales the fall rate with score
	base := g.cfg.Physics.FallSpeed
	if base <= 0 {
		base = puzzle.DefaultSettings().FallSpeed
	}
	g.session.SetFallSpeed(g.diff.FallSpeed(base, g.session.Score(), int(g.tick)))

	if chain := g.session.Advance(g.dt); chain != nil && chain.Length() > 0 {
		g.flashTicks = flashDuration
		g.flashCells = g.flashCells[:0]
		for _, step := range chain.Steps {
			for _, group := range step.Groups {
				g.flashCells = append(g.flashCells, group.Cells...)
			}
		}
		g.chainLength = chain.Length()
		if g.chainLength > g.maxChain {
			g.maxChain = g.chainLength
		}
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies this tick's actions to the active piece.
func (g *Game) handleInput(in core.InputFrame) {
	if !g.moveProcessed {
		switch {
		case in.Has(core.ActionLeft):
			g.session.Move(puzzle.DirLeft)
			g.moveProcessed = true
		case in.Has(core.ActionRight):
			g.session.Move(puzzle.DirRight)
			g.moveProcessed = true
		}
	}

	switch {
	case in.Has(core.ActionRotateCW):
		g.session.Rotate(puzzle.RotateCW)
	case in.Has(core.ActionRotateCCW):
		g.session.Rotate(puzzle.RotateCCW)
	}

	if in.Has(core.ActionDrop) {
		g.session.Drop()
	}
}

// MaxChain returns the longest cascade reached since the last Reset.
func (g *Game) MaxChain() int {
	return g.maxChain
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Over(),
		Paused:   g.paused || g.tooSmall,
	}
}
