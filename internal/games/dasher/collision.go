package dasher

import "github.com/vovakirdan/dasher/internal/core"

// CollisionOptions controls hitbox construction.
type CollisionOptions struct {
	// Padding shrinks obstacle hitboxes on every side so grazing the sprite
	// art does not end the run.
	Padding float64
	// LegacyOffset adds each entity's position to its hitbox a second time.
	// Off by default; the dasher-classic variant turns it on.
	LegacyOffset bool
}

// Hitboxes returns the player's and the obstacle's collision boxes.
func Hitboxes(p Player, o Obstacle, opts CollisionOptions) (player, obstacle core.RectF) {
	player = p.Bounds()
	obstacle = o.Bounds().Inset(opts.Padding)
	if opts.LegacyOffset {
		player = player.Translate(p.Pos.X, p.Pos.Y)
		obstacle = obstacle.Translate(o.Pos.X, o.Pos.Y)
	}
	return player, obstacle
}

// Detect reports whether the player overlaps any obstacle.
// It stops at the first hit.
func Detect(p Player, obstacles []Obstacle, opts CollisionOptions) bool {
	for _, o := range obstacles {
		pb, ob := Hitboxes(p, o, opts)
		if pb.Intersects(ob) {
			return true
		}
	}
	return false
}
