package game

// Ball bundles everything that must move together when balls are split or
// deleted: position, direction and trail. Velocity is a direction; the
// per-tick speed multiplier scales it.
type Ball struct {
	Pos   Vec2
	Vel   Vec2
	Trail TrailHistory
}

// NewBall returns a ball at pos heading along vel with a trail seeded for
// the given window.
func NewBall(pos, vel Vec2, window float64) Ball {
	b := Ball{Pos: pos, Vel: vel}
	b.Trail.Seed(pos, window)
	return b
}

// mirrored is a copy of b flying with its y velocity flipped. The trail is
// duplicated, not shared.
func (b Ball) mirrored() Ball {
	return Ball{
		Pos:   b.Pos,
		Vel:   Vec2{X: b.Vel.X, Y: -b.Vel.Y},
		Trail: b.Trail.Clone(),
	}
}
