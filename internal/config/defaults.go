package config

import (
	_ "embed"
)

//go:embed defaults/dasher.yaml
var defaultDasherYAML []byte

// DefaultDasherConfig returns the default Dasher configuration.
// Mirrors defaults/dasher.yaml and backs it up if the embed cannot be parsed.
func DefaultDasherConfig() DasherConfig {
	return DasherConfig{
		World: WorldConfig{
			Width:    512,
			Height:   380,
			TickRate: 60,
			MaxDelta: 0.25,
		},
		Physics: PhysicsConfig{
			Gravity:     1000,
			JumpImpulse: -600,
		},
		Player: PlayerConfig{
			FrameWidth:  128,
			FrameHeight: 128,
			Frames:      6,
			FrameRate:   8,
		},
		Obstacles: ObstacleConfig{
			Count:         12,
			BaseOffset:    1024,
			Spacing:       600,
			MinSpacing:    300,
			BaseVelocity:  -200,
			VelocityStep:  -10,
			FrameWidth:    100,
			FrameHeight:   100,
			Frames:        8,
			BaseFrameRate: 12,
			FrameRateStep: 2,
		},
		Finish: FinishConfig{
			Pacer:        -2,
			MarkerHeight: 50,
		},
		Scene: SceneConfig{
			Scale: 2,
			Layers: []LayerConfig{
				{Name: "far", Width: 256, Rate: 20},
				{Name: "mid", Width: 256, Rate: 40},
				{Name: "near", Width: 352, Rate: 80},
			},
		},
		Collision: CollisionConfig{
			Padding: 20,
		},
		Difficulty: DifficultyConfig{
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				SpacingReduction: 200,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDasherYAML
}
