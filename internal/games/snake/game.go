// Package snake implements Snake on a wrapping 20×10 board: apples grow the
// snake, and every few apples a bonus animal appears for a limited time.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/handheld-arcade/internal/config"
	"github.com/vovakirdan/handheld-arcade/internal/core"
	"github.com/vovakirdan/handheld-arcade/internal/registry"
)

// Package-level config selection, set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts the engine to the console: start screen, step timing,
// pause and the best score.
type Game struct {
	cfg     config.SnakeConfig
	dm      *config.DifficultyManager
	runtime core.RuntimeConfig
	rng     *rand.Rand
	engine  *Engine
	round   core.Round
	display *core.Bitmap
}

// New creates a Snake game. Call Reset before stepping it.
func New() *Game {
	return &Game{display: core.NewBitmap()}
}

func init() {
	registry.Register("snake", 0, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset loads the config and shows the start screen of a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.cfg = loadConfig()
	g.dm = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.newRound()
}

func (g *Game) newRound() {
	g.engine = NewEngine(rulesFrom(g.cfg.Rules), g.rng)
	g.round.Begin(g.runtime.StepsEvery(g.dm.Period(g.cfg.Timing.StepMs, 0, 0)))
}

func loadConfig() config.SnakeConfig {
	cfg, err := config.Shared().Snake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	return cfg
}

func rulesFrom(r config.SnakeRules) Rules {
	return Rules{
		AppleReward:      r.AppleReward,
		AnimalEvery:      r.AnimalEvery,
		FirstAnimalAfter: r.FirstAnimalAfter,
		AnimalLifetime:   r.AnimalLifetime,
	}
}

// Step advances one platform tick and the engine whenever the divider fires.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	frame, tick := g.round.Advance(in)
	switch tick {
	case core.TickRestart:
		g.newRound()
		return core.StepResult{State: g.State()}
	case core.TickIdle:
		return core.StepResult{State: g.State()}
	}

	if g.engine.Step(frame) == core.OutcomeRoundOver {
		g.round.Finish(g.engine.Score())
	} else {
		g.round.SetEvery(g.runtime.StepsEvery(
			g.dm.Period(g.cfg.Timing.StepMs, g.engine.Score(), g.engine.Moves())))
	}
	return core.StepResult{State: g.State(), Stepped: true}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.round.State(g.engine.Score())
}

// Display returns the panel drawn by the last Render.
func (g *Game) Display() *core.Bitmap { return g.display }

// SetHighScore seeds the best score.
func (g *Game) SetHighScore(score int) { g.round.SetHigh(score) }

// Engine exposes the running engine for inspection.
func (g *Game) Engine() *Engine { return g.engine }
