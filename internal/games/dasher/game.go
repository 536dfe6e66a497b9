// Package dasher implements a side-scrolling runner: the player jumps over a
// fixed field of animated obstacles while parallax layers scroll, until a
// collision loses the run or the finish line passes the player and wins it.
package dasher

import (
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/registry"
)

// Game implements the runner's state machine. Status starts Running and
// moves once to Won or Lost; after that Step changes nothing.
type Game struct {
	cfg       config.DasherConfig
	fixed     bool // cfg was supplied by the caller, skip loading on Reset
	classic   bool // force the doubled-offset hitboxes
	preset    config.DifficultyPreset
	runtime   core.RuntimeConfig
	collision CollisionOptions

	player  Player
	groundY float64 // Player y when standing
	field   *ObstacleField
	scene   *Scene

	status  core.Status
	paused  bool
	score   int
	elapsed float64
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a runner that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewClassic creates a runner that checks collisions with the doubled
// position offset of the original game.
func NewClassic() *Game {
	return &Game{classic: true}
}

// NewWithConfig creates a runner with a fixed config and resets it.
// The config must have passed Validate.
func NewWithConfig(cfg config.DasherConfig, runtime core.RuntimeConfig) *Game {
	g := &Game{cfg: cfg, fixed: true}
	g.Reset(runtime)
	return g
}

// SetDifficulty overrides the package-wide preset for this game only.
// Takes effect on the next Reset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.classic {
		return "dasher-classic"
	}
	return "dasher"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Dasher (classic hitboxes)"
	}
	return "Dasher"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.LoadDasher(configPath)
		if err != nil {
			cfg = config.DefaultDasherConfig()
		}
		preset := difficultyPreset
		if g.preset != "" {
			preset = g.preset
		}
		config.ApplyPreset(&cfg, preset)
		g.cfg = cfg
	}

	g.collision = CollisionOptions{
		Padding:      g.cfg.Collision.Padding,
		LegacyOffset: g.cfg.Collision.LegacyOffset || g.classic,
	}

	pc := g.cfg.Player
	g.groundY = g.cfg.GroundY(pc.FrameHeight)
	start := core.Vec2{
		X: float64(g.cfg.World.Width)/2 - pc.FrameWidth/2,
		Y: g.groundY,
	}
	g.player = Player{Frame: NewFrame(pc.FrameWidth, pc.FrameHeight, start, pc.FrameRate)}

	field, err := NewObstacleField(g.cfg, config.NewDifficultyManager(g.cfg.Difficulty))
	if err != nil {
		// Only reachable with an unvalidated config; fall back to the defaults.
		g.cfg = config.DefaultDasherConfig()
		g.Reset(runtime)
		return
	}
	g.field = field
	g.scene = NewScene(g.cfg.Scene)

	g.status = core.StatusRunning
	g.paused = false
	g.score = 0
	g.elapsed = 0
}

// Step advances the run by one tick of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.status.Terminal() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt = sanitizeDelta(dt)
	g.elapsed += dt
	var events []core.Event

	g.scene.Scroll(dt)

	g.player.ApplyGravity(g.groundY, g.cfg.Physics.Gravity, dt)
	airborne := !g.player.Grounded(g.groundY)
	if in.Has(core.ActionJump) && g.player.ApplyJump(g.groundY, g.cfg.Physics.JumpImpulse) {
		events = append(events, core.EventJump)
	}

	g.field.Move(dt)
	g.field.AdvanceFinish(dt)
	g.player.Integrate(dt)

	// No run cycle in the air
	if airborne {
		g.player.Frame.Reset()
	} else {
		g.player.Frame = Advance(g.player.Frame, dt, g.cfg.Player.Frames-1)
	}
	g.field.Animate(dt)

	g.score = g.field.Passed(g.player.Pos.X)

	if Detect(g.player, g.field.Obstacles(), g.collision) {
		g.status = core.StatusLost
		events = append(events, core.EventCrash)
	} else if g.player.Pos.X > g.field.FinishX() {
		g.status = core.StatusWon
		events = append(events, core.EventFinish)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Status:   g.status,
		GameOver: g.status.Terminal(),
		Paused:   g.paused,
		Elapsed:  g.elapsed,
	}
}

// ShowsWorld reports whether a frame should draw the scene.
// Finished runs show only their status message.
func (g *Game) ShowsWorld() bool {
	return !g.status.Terminal()
}

// Config returns the config the current run was built from.
func (g *Game) Config() config.DasherConfig {
	return g.cfg
}

// Player returns the player sprite state.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns the obstacle sprite states.
func (g *Game) Obstacles() []Obstacle {
	return g.field.Obstacles()
}

// FinishX returns the finish line's x-coordinate.
func (g *Game) FinishX() float64 {
	return g.field.FinishX()
}

// Scene returns the parallax scroll state.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Register the game with the registry
func init() {
	registry.Register("dasher", func() registry.Game {
		return New()
	})
	registry.Register("dasher-classic", func() registry.Game {
		return NewClassic()
	})
}
