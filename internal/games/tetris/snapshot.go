package tetris

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Score      int
	Speed      int
	Multiplier int
	Lines      int
	Filled     int
	Piece      Piece
	Live       bool
	Next       Kind
	Over       bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	p, live := e.Active()
	grid := e.Grid()
	return Snapshot{
		Score:      e.Score(),
		Speed:      e.Speed(),
		Multiplier: e.Multiplier(),
		Lines:      e.Lines(),
		Filled:     grid.Filled(),
		Piece:      p,
		Live:       live,
		Next:       e.Next(),
		Over:       e.Over(),
	}
}
