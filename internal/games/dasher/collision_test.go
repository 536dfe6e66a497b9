package dasher

import (
	"testing"

	"github.com/vovakirdan/dasher/internal/core"
)

// Player at the default start: (192, 252), 128x128.
func testPlayer() Player {
	return Player{Frame: NewFrame(128, 128, core.Vec2{X: 192, Y: 252}, 8)}
}

func obstacleAt(x, y float64) Obstacle {
	return Obstacle{Frame: NewFrame(100, 100, core.Vec2{X: x, Y: y}, 12), VelX: -200, MaxFrame: 7}
}

func TestDetectFullOverlap(t *testing.T) {
	p := testPlayer()
	o := Obstacle{Frame: p.Frame}

	if !Detect(p, []Obstacle{o}, CollisionOptions{}) {
		t.Error("identical boxes at the same place must collide")
	}
}

func TestDetectBoundaries(t *testing.T) {
	opts := CollisionOptions{Padding: 20}
	p := testPlayer()

	tests := []struct {
		name     string
		o        Obstacle
		expected bool
	}{
		{"overlapping", obstacleAt(200, 280), true},
		{"padded box right of player", obstacleAt(300, 280), false},
		{"padded box left of player", obstacleAt(112, 280), false},
		{"padded box above player", obstacleAt(200, 172), false},
		{"padded box below player", obstacleAt(200, 360), false},
		{"padding forgives a graze", obstacleAt(305, 280), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(p, []Obstacle{tc.o}, opts); got != tc.expected {
				pb, ob := Hitboxes(p, tc.o, opts)
				t.Errorf("Detect() = %v, expected %v (player %+v, obstacle %+v)", got, tc.expected, pb, ob)
			}
		})
	}
}

func TestDetectAnyObstacle(t *testing.T) {
	p := testPlayer()
	opts := CollisionOptions{Padding: 20}

	obs := []Obstacle{obstacleAt(2000, 280), obstacleAt(-500, 280), obstacleAt(200, 280)}
	if !Detect(p, obs, opts) {
		t.Error("the third obstacle overlaps and should be detected")
	}
	if Detect(p, obs[:2], opts) {
		t.Error("far obstacles should not collide")
	}
	if Detect(p, nil, opts) {
		t.Error("no obstacles, no collision")
	}
}

// The corrected geometry is the default; the classic doubled
// offset stays available and disagrees with it for this obstacle.
func TestDetectLegacyOffsetDoublesPosition(t *testing.T) {
	p := testPlayer()
	o := obstacleAt(280, 280)

	if !Detect(p, []Obstacle{o}, CollisionOptions{Padding: 20}) {
		t.Error("corrected geometry: obstacle at x=280 overlaps the player")
	}
	if Detect(p, []Obstacle{o}, CollisionOptions{Padding: 20, LegacyOffset: true}) {
		t.Error("legacy geometry: doubled offsets should separate the boxes")
	}

	pb, ob := Hitboxes(p, o, CollisionOptions{Padding: 20, LegacyOffset: true})
	if pb.X != 384 || pb.Y != 504 {
		t.Errorf("legacy player box at (%v, %v), expected (384, 504)", pb.X, pb.Y)
	}
	if ob.X != 580 || ob.Y != 580 {
		t.Errorf("legacy obstacle box at (%v, %v), expected (580, 580)", ob.X, ob.Y)
	}

	// Still collides when both are close to the origin of the doubling
	if !Detect(p, []Obstacle{obstacleAt(200, 280)}, CollisionOptions{Padding: 20, LegacyOffset: true}) {
		t.Error("legacy geometry: obstacle at x=200 should still collide")
	}
}
