package dasher

import (
	"fmt"

	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
)

// Obstacle is one animated nebula moving left at a constant speed.
type Obstacle struct {
	Frame
	VelX     float64 // px/s, set at spawn
	MaxFrame int     // Last cell of the animation cycle
}

// ObstacleField holds the fixed set of obstacles and the finish line that
// trails them. Obstacles are never recycled: a run ends at the finish line.
type ObstacleField struct {
	obstacles []Obstacle
	finishX   float64
	pacer     int // Obstacle whose velocity moves the finish line
}

// NewObstacleField spawns the obstacles off-screen to the right, staggered by
// the (difficulty-adjusted) spacing, each faster and quicker-animated than the
// one before it.
func NewObstacleField(cfg config.DasherConfig, diff *config.DifficultyManager) (*ObstacleField, error) {
	oc := cfg.Obstacles
	if oc.Count < 1 {
		return nil, fmt.Errorf("dasher: obstacle field needs at least one obstacle, got %d", oc.Count)
	}

	spacing := diff.Spacing(oc.Spacing, oc.MinSpacing)
	speed := diff.SpeedScale()
	groundY := cfg.GroundY(oc.FrameHeight)

	f := &ObstacleField{
		obstacles: make([]Obstacle, oc.Count),
		pacer:     cfg.PacerIndex(),
	}
	for i := range f.obstacles {
		pos := core.Vec2{X: oc.BaseOffset + float64(i)*spacing, Y: groundY}
		fps := oc.BaseFrameRate + float64(i)*oc.FrameRateStep
		f.obstacles[i] = Obstacle{
			Frame:    NewFrame(oc.FrameWidth, oc.FrameHeight, pos, fps),
			VelX:     (oc.BaseVelocity + float64(i)*oc.VelocityStep) * speed,
			MaxFrame: oc.Frames - 1,
		}
	}

	f.finishX = f.obstacles[len(f.obstacles)-1].Pos.X
	return f, nil
}

// Move advances every obstacle by its velocity.
func (f *ObstacleField) Move(dt float64) {
	dt = sanitizeDelta(dt)
	for i := range f.obstacles {
		f.obstacles[i].Pos.X += f.obstacles[i].VelX * dt
	}
}

// AdvanceFinish moves the finish line at the pacer obstacle's velocity.
func (f *ObstacleField) AdvanceFinish(dt float64) {
	f.finishX += f.obstacles[f.pacer].VelX * sanitizeDelta(dt)
}

// Animate advances every obstacle's animation independently.
func (f *ObstacleField) Animate(dt float64) {
	for i := range f.obstacles {
		o := &f.obstacles[i]
		o.Frame = Advance(o.Frame, dt, o.MaxFrame)
	}
}

// Passed counts the obstacles whose right edge is left of x.
func (f *ObstacleField) Passed(x float64) int {
	n := 0
	for _, o := range f.obstacles {
		if o.Bounds().Right() < x {
			n++
		}
	}
	return n
}

// Obstacles returns the current obstacles.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// FinishX returns the finish line's x-coordinate.
func (f *ObstacleField) FinishX() float64 {
	return f.finishX
}
