package puzzle

// Event is a notification emitted by a Session for the presentation layer.
// Events are descriptive: the simulation result never depends on whether or
// when an observer consumes them.
type Event interface {
	event()
}

// PieceLandedEvent is emitted when a piece commits its cells into the grid.
type PieceLandedEvent struct {
	Cells []PlacedCell
}

func (PieceLandedEvent) event() {}

// MatchesClearedEvent is emitted for each chain step that removed groups.
type MatchesClearedEvent struct {
	Groups      []MatchGroup
	Pebbles     int // Total cells removed this step
	ScoreGained int
}

func (MatchesClearedEvent) event() {}

// GravityAppliedEvent is emitted after compaction, carrying the cell moves
// for fall animation.
type GravityAppliedEvent struct {
	Moves []Move
}

func (GravityAppliedEvent) event() {}

// GameOverEvent is emitted once when a spawn column is blocked.
type GameOverEvent struct {
	Score int
}

func (GameOverEvent) event() {}

// Observer receives session events.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Notify calls the underlying function.
func (f ObserverFunc) Notify(e Event) {
	f(e)
}
