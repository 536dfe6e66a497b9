// Package config provides YAML/TOML game configuration loading and
// difficulty management for the runner.
package config

import (
	"errors"
	"fmt"
)

// DasherConfig contains all configuration for the Dasher runner.
type DasherConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Finish     FinishConfig     `yaml:"finish" toml:"finish"`
	Scene      SceneConfig      `yaml:"scene" toml:"scene"`
	Collision  CollisionConfig  `yaml:"collision" toml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the logical render surface and tick pacing.
type WorldConfig struct {
	Width    int     `yaml:"width" toml:"width"`         // Logical pixels
	Height   int     `yaml:"height" toml:"height"`       // Logical pixels
	TickRate int     `yaml:"tick_rate" toml:"tick_rate"` // Ticks per second
	MaxDelta float64 `yaml:"max_delta" toml:"max_delta"` // Longest accepted tick, seconds
}

// PhysicsConfig defines gravity and jump strength in px/s units.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`           // px/s², positive = down
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"` // px/s, negative = up
}

// PlayerConfig defines the player sprite sheet geometry.
type PlayerConfig struct {
	FrameWidth  float64 `yaml:"frame_width" toml:"frame_width"`
	FrameHeight float64 `yaml:"frame_height" toml:"frame_height"`
	Frames      int     `yaml:"frames" toml:"frames"`         // Frames in the run cycle
	FrameRate   float64 `yaml:"frame_rate" toml:"frame_rate"` // Frames per second
}

// ObstacleConfig defines the obstacle field layout and ramp.
type ObstacleConfig struct {
	Count         int     `yaml:"count" toml:"count"`
	BaseOffset    float64 `yaml:"base_offset" toml:"base_offset"` // x of the first obstacle
	Spacing       float64 `yaml:"spacing" toml:"spacing"`
	MinSpacing    float64 `yaml:"min_spacing" toml:"min_spacing"`     // floor when difficulty shrinks spacing
	BaseVelocity  float64 `yaml:"base_velocity" toml:"base_velocity"` // px/s, negative = left
	VelocityStep  float64 `yaml:"velocity_step" toml:"velocity_step"`
	FrameWidth    float64 `yaml:"frame_width" toml:"frame_width"`
	FrameHeight   float64 `yaml:"frame_height" toml:"frame_height"`
	Frames        int     `yaml:"frames" toml:"frames"`
	BaseFrameRate float64 `yaml:"base_frame_rate" toml:"base_frame_rate"`
	FrameRateStep float64 `yaml:"frame_rate_step" toml:"frame_rate_step"`
}

// FinishConfig defines the finish line.
type FinishConfig struct {
	// Pacer is the index of the obstacle whose velocity moves the finish line.
	// Negative values count from the end (-2 = second to last).
	Pacer        int     `yaml:"pacer" toml:"pacer"`
	MarkerHeight float64 `yaml:"marker_height" toml:"marker_height"`
}

// SceneConfig lists the parallax layers, back to front.
type SceneConfig struct {
	Scale  float64       `yaml:"scale" toml:"scale"` // Draw scale of background textures
	Layers []LayerConfig `yaml:"layers" toml:"layers"`
}

// LayerConfig defines one parallax layer.
type LayerConfig struct {
	Name  string  `yaml:"name" toml:"name"`
	Width float64 `yaml:"width" toml:"width"` // Unscaled texture width
	Rate  float64 `yaml:"rate" toml:"rate"`   // px/s scrolled left
}

// CollisionConfig defines the hitbox rules.
type CollisionConfig struct {
	Padding float64 `yaml:"padding" toml:"padding"` // Obstacle hitbox inset on every side
	// LegacyOffset adds each entity's position to its hitbox a second time,
	// reproducing the classic runner's collision geometry.
	LegacyOffset bool `yaml:"legacy_offset" toml:"legacy_offset"`
}

// DifficultyConfig defines how the preset level scales the obstacle field.
type DifficultyConfig struct {
	InitialLevel float64       `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling" toml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`   // Added to speed at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction" toml:"spacing_reduction"` // Spacing removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset.
// The empty string means "use the config's own level".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DasherConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// PacerIndex resolves Finish.Pacer against the obstacle count.
// Out-of-range values are clamped so a single-obstacle field still has a pacer.
func (c DasherConfig) PacerIndex() int {
	n := c.Obstacles.Count
	idx := c.Finish.Pacer
	if idx < 0 {
		idx += n
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// GroundY returns the y-position at which a sprite of the given height
// stands on the bottom of the world.
func (c DasherConfig) GroundY(spriteHeight float64) float64 {
	return float64(c.World.Height) - spriteHeight
}

// Validate checks the preconditions the simulation relies on.
func (c DasherConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.World.TickRate))
	}
	if c.Physics.Gravity < 0 {
		errs = append(errs, fmt.Errorf("gravity must not be negative, got %v", c.Physics.Gravity))
	}
	if c.Player.FrameWidth <= 0 || c.Player.FrameHeight <= 0 {
		errs = append(errs, errors.New("player frame size must be positive"))
	}
	if c.Player.Frames < 1 || c.Player.FrameRate <= 0 {
		errs = append(errs, errors.New("player needs at least one frame and a positive frame_rate"))
	}
	if c.Obstacles.Count < 1 {
		errs = append(errs, errors.New("obstacles.count must be at least 1 (the finish line follows the last obstacle)"))
	}
	if c.Obstacles.FrameWidth <= 0 || c.Obstacles.FrameHeight <= 0 {
		errs = append(errs, errors.New("obstacle frame size must be positive"))
	}
	if c.Obstacles.Frames < 1 || c.Obstacles.BaseFrameRate <= 0 || c.Obstacles.FrameRateStep < 0 {
		errs = append(errs, errors.New("obstacles need at least one frame and positive frame rates"))
	}
	if c.Collision.Padding < 0 {
		errs = append(errs, fmt.Errorf("collision.padding must not be negative, got %v", c.Collision.Padding))
	}
	for i, l := range c.Scene.Layers {
		if l.Width <= 0 {
			errs = append(errs, fmt.Errorf("scene.layers[%d] (%s): width must be positive", i, l.Name))
		}
		if l.Rate < 0 {
			errs = append(errs, fmt.Errorf("scene.layers[%d] (%s): rate must not be negative, got %v", i, l.Name, l.Rate))
		}
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
