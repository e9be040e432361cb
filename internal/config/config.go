// Package config provides YAML-based game configuration loading, difficulty
// presets, and hot reload for the arcade console.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Rules      SnakeRules       `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeRules defines scoring and food spawning for Snake.
type SnakeRules struct {
	AppleReward      int `yaml:"apple_reward"`
	AnimalEvery      int `yaml:"animal_every"`       // apples between animals
	FirstAnimalAfter int `yaml:"first_animal_after"` // apples before the first animal
	AnimalLifetime   int `yaml:"animal_lifetime"`    // moves an animal stays on the grid
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Rules      TetrisRules      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisRules defines speed progression and line awards for Tetris.
type TetrisRules struct {
	StartSpeed      int   `yaml:"start_speed"`
	MaxSpeed        int   `yaml:"max_speed"`
	SpeedThresholds []int `yaml:"speed_thresholds"` // score needed to leave speed 1, 2, ...
	LineAwards      []int `yaml:"line_awards"`      // base award for a run of 1, 2, 3, 4 rows
}

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Medals     FlappyMedals     `yaml:"medals"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines the bird's integration constants.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	LiftVelocity float64 `yaml:"lift_velocity"`
	DeltaT       float64 `yaml:"delta_t"`
	PipeSpeed    float64 `yaml:"pipe_speed"`
}

// FlappyPipes defines pipe generation.
type FlappyPipes struct {
	Seed            int  `yaml:"seed"`              // LCG start value
	SeedFromRuntime bool `yaml:"seed_from_runtime"` // derive the LCG start from --seed
}

// FlappyMedals holds the score needed for each medal.
type FlappyMedals struct {
	Bronze int `yaml:"bronze"`
	Silver int `yaml:"silver"`
	Gold   int `yaml:"gold"`
}

// TimingConfig sets how often the engine steps.
type TimingConfig struct {
	StepMs int `yaml:"step_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/steps at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the Snake configuration for values the engine cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Timing.StepMs <= 0:
		return fmt.Errorf("%w: snake timing.step_ms must be positive", ErrInvalid)
	case c.Rules.AnimalEvery <= 0 || c.Rules.FirstAnimalAfter <= 0:
		return fmt.Errorf("%w: snake animal counters must be positive", ErrInvalid)
	case c.Rules.AnimalLifetime <= 0:
		return fmt.Errorf("%w: snake rules.animal_lifetime must be positive", ErrInvalid)
	}
	return nil
}

// Validate checks the Tetris configuration.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Timing.StepMs <= 0:
		return fmt.Errorf("%w: tetris timing.step_ms must be positive", ErrInvalid)
	case c.Rules.StartSpeed < 1 || c.Rules.StartSpeed > c.Rules.MaxSpeed:
		return fmt.Errorf("%w: tetris start_speed %d outside 1..%d", ErrInvalid, c.Rules.StartSpeed, c.Rules.MaxSpeed)
	case len(c.Rules.SpeedThresholds) < c.Rules.MaxSpeed-1:
		return fmt.Errorf("%w: tetris needs %d speed thresholds, got %d", ErrInvalid, c.Rules.MaxSpeed-1, len(c.Rules.SpeedThresholds))
	case len(c.Rules.LineAwards) != 4:
		return fmt.Errorf("%w: tetris line_awards must have 4 entries", ErrInvalid)
	}
	return nil
}

// Validate checks the Flappy configuration.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Timing.StepMs <= 0:
		return fmt.Errorf("%w: flappy timing.step_ms must be positive", ErrInvalid)
	case c.Physics.DeltaT <= 0 || c.Physics.PipeSpeed <= 0:
		return fmt.Errorf("%w: flappy delta_t and pipe_speed must be positive", ErrInvalid)
	case c.Medals.Bronze > c.Medals.Silver || c.Medals.Silver > c.Medals.Gold:
		return fmt.Errorf("%w: flappy medals must be ascending", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string keeps the file's settings.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty block according to a preset.
// The empty preset leaves it untouched.
func ApplyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
