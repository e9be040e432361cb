package flappy

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Steps    int
	Score    int
	Height   float64
	Velocity float64
	Section  int
	Pipes    [Slots]int
	Seed     int
	Over     bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	return Snapshot{
		Steps:    e.Steps(),
		Score:    e.Score(),
		Height:   e.Height(),
		Velocity: e.Velocity(),
		Section:  e.Section(),
		Pipes:    e.Pipes(),
		Seed:     g.lcg.State(),
		Over:     e.Over(),
	}
}
