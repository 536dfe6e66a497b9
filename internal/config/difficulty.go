package config

import "math"

// DifficultyManager derives obstacle field parameters from the difficulty level.
// The level is fixed for a run: obstacle velocities are set at spawn and
// never change afterwards.
type DifficultyManager struct {
	cfg   DifficultyConfig
	level float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		level: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetLevel overrides the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetLevel(level float64) {
	d.level = clampF(level, 0.0, 1.0)
}

// Level returns the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level() float64 {
	return d.level
}

// SpeedScale returns the factor applied to every obstacle velocity.
func (d *DifficultyManager) SpeedScale() float64 {
	// Speed increases from base to base * (1 + speedMultiplier)
	return 1.0 + d.level*d.cfg.Scaling.SpeedMultiplier
}

// Spacing returns the obstacle spacing for the current level, never below floor.
func (d *DifficultyManager) Spacing(baseSpacing, floor float64) float64 {
	result := baseSpacing - d.level*d.cfg.Scaling.SpacingReduction
	if result < floor {
		result = math.Min(floor, baseSpacing)
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
