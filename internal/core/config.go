package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// StepsEvery converts an engine step period in milliseconds into a number of
// platform ticks at the configured tick rate. The result is never below 1.
func (c RuntimeConfig) StepsEvery(periodMs int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	n := (periodMs*rate + 500) / 1000
	if n < 1 {
		return 1
	}
	return n
}

// Outcome is the result of one engine step.
type Outcome int

const (
	OutcomeContinue  Outcome = iota // round keeps going
	OutcomeRoundOver                // collision or failed spawn ended the round
)

func (o Outcome) String() string {
	if o == OutcomeRoundOver {
		return "round-over"
	}
	return "continue"
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score        int  // Current score
	HighScore    int  // Best score seen by this game instance
	NewHighScore bool // The finished round beat the previous best
	GameOver     bool // Whether the round has ended
	Paused       bool // Whether the game is paused
	Waiting      bool // Start screen is shown, no round in progress yet
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Stepped bool // The engine advanced during this tick
}
