// Package tetris implements a falling-block puzzle on a 10×20 board with
// nine piece shapes, combo scoring and five speed levels.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/handheld-arcade/internal/config"
	"github.com/vovakirdan/handheld-arcade/internal/core"
	"github.com/vovakirdan/handheld-arcade/internal/registry"
)

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

// Game adapts the engine to the console.
type Game struct {
	cfg     config.TetrisConfig
	rules   Rules
	runtime core.RuntimeConfig
	rng     *rand.Rand
	engine  *Engine
	round   core.Round
	display *core.Bitmap
}

// New creates a Tetris game. Call Reset before stepping it.
func New() *Game {
	return &Game{display: core.NewBitmap()}
}

func init() {
	registry.Register("tetris", 1, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset loads the config and shows the start screen of a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.cfg = loadConfig()
	g.rules = rulesFrom(g.cfg)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.newRound()
}

func (g *Game) newRound() {
	g.engine = NewEngine(g.rules, g.rng)
	g.round.Begin(g.runtime.StepsEvery(g.cfg.Timing.StepMs))
}

func loadConfig() config.TetrisConfig {
	cfg, err := config.Shared().Tetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	return cfg
}

// rulesFrom maps the config onto engine rules. The difficulty level picks
// the start speed and progression can be switched off by the fixed preset.
func rulesFrom(cfg config.TetrisConfig) Rules {
	dm := config.NewDifficultyManager(cfg.Difficulty)
	r := Rules{
		StartSpeed:  cfg.Rules.StartSpeed,
		MaxSpeed:    cfg.Rules.MaxSpeed,
		Thresholds:  cfg.Rules.SpeedThresholds,
		Progression: dm.IsEnabled(),
	}
	if dm.IsEnabled() {
		r.StartSpeed = max(r.StartSpeed, dm.StartLevel(cfg.Rules.StartSpeed, cfg.Rules.MaxSpeed))
	}
	copy(r.Awards[:], cfg.Rules.LineAwards)
	return r
}

// Step advances one platform tick.
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
