package config

import (
	"math"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *DasherConfig)
		errMsg string
	}{
		{"defaults", func(*DasherConfig) {}, ""},
		{"zero obstacles", func(c *DasherConfig) { c.Obstacles.Count = 0 }, "obstacles.count"},
		{"one obstacle", func(c *DasherConfig) { c.Obstacles.Count = 1 }, ""},
		{"flat world", func(c *DasherConfig) { c.World.Height = 0 }, "world size"},
		{"no tick rate", func(c *DasherConfig) { c.World.TickRate = 0 }, "tick_rate"},
		{"upward gravity", func(c *DasherConfig) { c.Physics.Gravity = -1 }, "gravity"},
		{"player without frames", func(c *DasherConfig) { c.Player.Frames = 0 }, "player needs"},
		{"negative padding", func(c *DasherConfig) { c.Collision.Padding = -5 }, "collision.padding"},
		{"empty layer", func(c *DasherConfig) { c.Scene.Layers[1].Width = 0 }, "scene.layers[1]"},
		{"layer scrolling right", func(c *DasherConfig) { c.Scene.Layers[2].Rate = -80 }, "scene.layers[2] (near): rate"},
		{"still layer", func(c *DasherConfig) { c.Scene.Layers[0].Rate = 0 }, ""},
		{"level above hard", func(c *DasherConfig) { c.Difficulty.InitialLevel = 1.5 }, "initial_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDasherConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected an error mentioning %q", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not mention %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultDasherConfig()
	cfg.Obstacles.Count = 0
	cfg.Collision.Padding = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"config: invalid", "obstacles.count", "collision.padding"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", ""} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown presets should be rejected")
	}
}

func TestGroundY(t *testing.T) {
	cfg := DefaultDasherConfig()
	if got := cfg.GroundY(cfg.Player.FrameHeight); math.Abs(got-float64(cfg.World.Height)+cfg.Player.FrameHeight) > 1e-9 {
		t.Errorf("GroundY() = %v, expected world height minus sprite height", got)
	}
}
