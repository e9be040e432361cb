package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/steps.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/steps.
func (d *DifficultyManager) Level(score int, steps int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(steps) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales base by the current level: base at level 0,
// base * (1 + speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, score int, steps int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(score, steps)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Period shortens a step period in milliseconds as the game speeds up.
// It never returns less than 1.
func (d *DifficultyManager) Period(baseMs int, score int, steps int) int {
	speed := d.Speed(1.0, score, steps)
	if speed <= 0 {
		return baseMs
	}
	return max(1, int(math.Round(float64(baseMs)/speed)))
}

// StartLevel maps the initial level onto an integer range [lo, hi].
func (d *DifficultyManager) StartLevel(lo, hi int) int {
	return lo + int(math.Round(d.initialLevel*float64(hi-lo)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
