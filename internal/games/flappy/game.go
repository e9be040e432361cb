// Package flappy implements a side-scrolling bird that flaps through gaps
// in pipes placed by a tiny linear congruential generator.
package flappy

import (
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
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	dm      *config.DifficultyManager
	phys    Physics
	medals  Medals
	lcg     *LCG
	engine  *Engine
	round   core.Round
	display *core.Bitmap
}

// New creates a Flappy game. Call Reset before stepping it.
func New() *Game {
	return &Game{display: core.NewBitmap()}
}

func init() {
	registry.Register("flappy", 2, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name.
func (g *Game) Title() string { return "Flappy" }

// Reset loads the config, reseeds the pipe generator and shows the start screen.
// Later rounds of the same game continue the generator sequence.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.cfg = loadConfig()
	g.dm = config.NewDifficultyManager(g.cfg.Difficulty)
	g.phys = Physics{
		Gravity:      g.cfg.Physics.Gravity,
		LiftVelocity: g.cfg.Physics.LiftVelocity,
		DeltaT:       g.cfg.Physics.DeltaT,
		PipeSpeed:    g.cfg.Physics.PipeSpeed,
	}
	g.medals = Medals{
		Bronze: g.cfg.Medals.Bronze,
		Silver: g.cfg.Medals.Silver,
		Gold:   g.cfg.Medals.Gold,
	}

	seed := int64(g.cfg.Pipes.Seed)
	if g.cfg.Pipes.SeedFromRuntime {
		seed = cfg.Seed
	}
	g.lcg = NewLCG(seed)
	g.newRound()
}

func (g *Game) newRound() {
	g.engine = NewEngine(g.phys, g.lcg)
	g.engine.SetPipeSpeed(g.dm.Speed(g.phys.PipeSpeed, 0, 0))
	g.round.Begin(g.runtime.StepsEvery(g.cfg.Timing.StepMs))
}

func loadConfig() config.FlappyConfig {
	cfg, err := config.Shared().Flappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	return cfg
}

// Step advances one platform tick. Only Up flaps.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	frame, tick := g.round.Advance(in)
	switch tick {
	case core.TickRestart:
		g.newRound()
		return core.StepResult{State: g.State()}
	case core.TickIdle:
		return core.StepResult{State: g.State()}
	}

	if g.engine.Step(frame.Has(core.ActionUp)) == core.OutcomeRoundOver {
		g.round.Finish(g.engine.Score())
	} else {
		g.engine.SetPipeSpeed(g.dm.Speed(g.phys.PipeSpeed, g.engine.Score(), g.engine.Steps()))
	}
	return core.StepResult{State: g.State(), Stepped: true}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.round.State(g.engine.Score())
}

// Medal returns the award for the current score.
func (g *Game) Medal() Medal {
	return g.medals.Award(g.engine.Score())
}

// Display returns the panel drawn by the last Render.
func (g *Game) Display() *core.Bitmap { return g.display }

// SetHighScore seeds the best score.
func (g *Game) SetHighScore(score int) { g.round.SetHigh(score) }

// Engine exposes the running engine for inspection.
func (g *Game) Engine() *Engine { return g.engine }

// Generator exposes the pipe generator shared by every round.
func (g *Game) Generator() *LCG { return g.lcg }
