package snake

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Moves      int
	Score      int
	Length     int
	HeadX      int
	HeadY      int
	Heading    Direction
	AppleX     int
	AppleY     int
	AnimalX    int
	AnimalY    int
	Timer      int
	TillAnimal int
	Over       bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	head, apple, animal := e.Head(), e.Apple(), e.Animal()
	return Snapshot{
		Moves:      e.Moves(),
		Score:      e.Score(),
		Length:     len(e.Segments()),
		HeadX:      head.X,
		HeadY:      head.Y,
		Heading:    e.Heading(),
		AppleX:     apple.X,
		AppleY:     apple.Y,
		AnimalX:    animal.X,
		AnimalY:    animal.Y,
		Timer:      e.AnimalTimer(),
		TillAnimal: e.ApplesTillAnimal(),
		Over:       e.Over(),
	}
}
