package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Timing: TimingConfig{StepMs: 50},
		Rules: SnakeRules{
			AppleReward:      7,
			AnimalEvery:      5,
			FirstAnimalAfter: 4,
			AnimalLifetime:   20,
		},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "score", MaxAt: 350},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultTetrisConfig returns the built-in Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{StepMs: 60},
		Rules: TetrisRules{
			StartSpeed:      1,
			MaxSpeed:        5,
			SpeedThresholds: []int{2000, 4000, 10000, 20000},
			LineAwards:      []int{100, 300, 600, 1000},
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 20000},
		},
	}
}

// DefaultFlappyConfig returns the built-in Flappy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Timing: TimingConfig{StepMs: 40},
		Physics: FlappyPhysics{
			Gravity:      19.6,
			LiftVelocity: 12,
			DeltaT:       0.3,
			PipeSpeed:    7,
		},
		Medals: FlappyMedals{Bronze: 10, Silver: 20, Gold: 50},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "score", MaxAt: 100},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}
