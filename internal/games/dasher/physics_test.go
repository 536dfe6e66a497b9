package dasher

import (
	"testing"

	"github.com/vovakirdan/dasher/internal/core"
)

const testGround = 252.0

func groundedPlayer() Player {
	return Player{Frame: NewFrame(128, 128, core.Vec2{X: 192, Y: testGround}, 8)}
}

func TestGroundedClamp(t *testing.T) {
	p := groundedPlayer()

	p.ApplyGravity(testGround, 1000, 1.0/60)
	p.Integrate(1.0 / 60)

	if p.VelY != 0 {
		t.Errorf("VelY = %v, expected 0 while grounded", p.VelY)
	}
	if p.Pos.Y != testGround {
		t.Errorf("Pos.Y = %v, expected %v", p.Pos.Y, testGround)
	}
}

func TestLandingSnapsToGround(t *testing.T) {
	p := groundedPlayer()
	p.Pos.Y = testGround + 7.5
	p.VelY = 420

	p.ApplyGravity(testGround, 1000, 1.0/60)
	if p.VelY != 0 || p.Pos.Y != testGround {
		t.Errorf("landing should zero velocity and snap, got VelY %v Pos.Y %v", p.VelY, p.Pos.Y)
	}
}

func TestGravityAccumulatesInAir(t *testing.T) {
	p := groundedPlayer()
	p.Pos.Y = testGround - 50

	p.ApplyGravity(testGround, 1000, 0.5)
	if p.VelY != 500 {
		t.Errorf("VelY = %v, expected 500", p.VelY)
	}

	p.Integrate(0.1)
	if p.Pos.Y != testGround-50+50 {
		t.Errorf("Pos.Y = %v, expected %v", p.Pos.Y, testGround)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	p := groundedPlayer()
	p.ApplyGravity(testGround, 1000, 1.0/60)

	if !p.ApplyJump(testGround, -600) {
		t.Fatal("jump from the ground should be accepted")
	}
	if p.VelY != -600 {
		t.Errorf("VelY = %v, expected -600", p.VelY)
	}

	p.Integrate(1.0 / 60)
	if p.Grounded(testGround) {
		t.Fatal("player should have left the ground")
	}

	vel := p.VelY
	if p.ApplyJump(testGround, -600) {
		t.Error("jump while airborne should be rejected")
	}
	if p.VelY != vel {
		t.Errorf("rejected jump changed VelY from %v to %v", vel, p.VelY)
	}
}
