package dasher

import (
	"math"

	"github.com/vovakirdan/dasher/internal/core"
)

// Frame is the animation state of one sprite: which cell of its sheet is
// shown, where it is drawn, and how long the current cell has been up.
// Invariant: Source.X == Index * Source.W.
type Frame struct {
	Source   core.RectF // Cell of the sprite sheet being shown
	Pos      core.Vec2  // Top-left corner in the world
	Index    int        // Current cell, 0..maxIndex
	Duration float64    // Seconds each cell stays up
	Elapsed  float64    // Seconds the current cell has been up
}

// NewFrame creates a frame at cell 0 for a sheet of w x h cells played at fps.
func NewFrame(w, h float64, pos core.Vec2, fps float64) Frame {
	return Frame{
		Source:   core.NewRectF(0, 0, w, h),
		Pos:      pos,
		Duration: 1.0 / fps,
	}
}

// Bounds returns the world-space box covered by the sprite.
func (f Frame) Bounds() core.RectF {
	return core.NewRectF(f.Pos.X, f.Pos.Y, f.Source.W, f.Source.H)
}

// Reset shows cell 0 and restarts its timer.
func (f *Frame) Reset() {
	f.Index = 0
	f.Elapsed = 0
	f.Source.X = 0
}

// Advance accumulates dt and moves to the next cell once the current one has
// been up for Duration, wrapping to 0 after maxIndex. It does not touch Pos.
func Advance(f Frame, dt float64, maxIndex int) Frame {
	f.Elapsed += sanitizeDelta(dt)
	if f.Elapsed >= f.Duration {
		f.Elapsed = 0
		f.Index++
		if f.Index > maxIndex {
			f.Index = 0
		}
		f.Source.X = float64(f.Index) * f.Source.W
	}
	return f
}

// sanitizeDelta maps negative and NaN tick lengths to 0.
func sanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return dt
}
