package dasher

import (
	"math"
	"testing"

	"github.com/vovakirdan/dasher/internal/core"
)

func TestAdvanceCyclesBackToStart(t *testing.T) {
	for _, maxIndex := range []int{0, 5, 7} {
		for start := 0; start <= maxIndex; start++ {
			f := NewFrame(100, 100, core.Vec2{}, 10)
			f.Index = start
			f.Source.X = float64(start) * f.Source.W

			for i := 0; i <= maxIndex; i++ {
				f = Advance(f, f.Duration, maxIndex)
				if f.Source.X != float64(f.Index)*f.Source.W {
					t.Fatalf("max=%d start=%d: Source.X = %v with Index %d", maxIndex, start, f.Source.X, f.Index)
				}
				if f.Index < 0 || f.Index > maxIndex {
					t.Fatalf("max=%d: Index %d out of range", maxIndex, f.Index)
				}
			}

			if f.Index != start {
				t.Errorf("max=%d start=%d: after %d periods Index = %d", maxIndex, start, maxIndex+1, f.Index)
			}
		}
	}
}

func TestAdvanceAccumulates(t *testing.T) {
	f := NewFrame(50, 50, core.Vec2{}, 10) // 0.1s per cell

	f = Advance(f, 0.04, 3)
	f = Advance(f, 0.04, 3)
	if f.Index != 0 {
		t.Fatalf("0.08s should not advance a 0.1s cell, Index = %d", f.Index)
	}

	f = Advance(f, 0.04, 3)
	if f.Index != 1 || f.Source.X != 50 {
		t.Errorf("0.12s should advance one cell, got Index %d Source.X %v", f.Index, f.Source.X)
	}
	if f.Elapsed != 0 {
		t.Errorf("Elapsed should reset to 0, got %v", f.Elapsed)
	}
}

func TestAdvanceIgnoresBadDelta(t *testing.T) {
	f := NewFrame(50, 50, core.Vec2{X: 3, Y: 4}, 10)
	f.Elapsed = 0.05

	for _, dt := range []float64{0, -1, math.NaN()} {
		got := Advance(f, dt, 3)
		if got != f {
			t.Errorf("Advance(dt=%v) changed the frame: %+v", dt, got)
		}
	}
}

func TestFrameReset(t *testing.T) {
	f := NewFrame(40, 40, core.Vec2{}, 8)
	f = Advance(f, f.Duration, 5)
	f.Elapsed = 0.01

	f.Reset()
	if f.Index != 0 || f.Source.X != 0 || f.Elapsed != 0 {
		t.Errorf("Reset() left %+v", f)
	}
}
