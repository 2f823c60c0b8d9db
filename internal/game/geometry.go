package game

// Geometry holds every mutable size in the court. Scoring shrinks it a
// step at a time; Shrink/Expand blocks snap it to a preset.
type Geometry struct {
	Court       Vec2    // half-extent
	Paddle      Vec2    // half-extent
	Ball        Vec2    // half-extent
	Block       Vec2    // half-extent
	PaddleX     float64 // |x| of both paddle centres
	TrailWindow float64 // seconds
}

// PaddleYRange is the legal interval for a paddle centre.
func (g Geometry) PaddleYRange() (lo, hi float64) {
	return -g.Court.Y + g.Paddle.Y, g.Court.Y - g.Paddle.Y
}

// CanShrink reports whether the court is still above the shrink floor.
func (g Geometry) CanShrink() bool {
	return g.Court.X > ShrinkFloorX && g.Court.Y > ShrinkFloorY
}

// ShrinkStep applies one shrink-on-score step. Callers check CanShrink
// first. Every size is floored at SmallPreset so rounding in the
// repeated subtraction can never leave the court under its floor.
func (g *Geometry) ShrinkStep() {
	floor := SmallPreset
	g.Court = maxVec(g.Court.Sub(Vec2{X: ShrinkCourtX, Y: ShrinkCourtY}), floor.Court)
	g.Paddle = maxVec(g.Paddle.Sub(Vec2{X: ShrinkPaddleX, Y: ShrinkPaddleY}), floor.Paddle)
	g.Ball = maxVec(g.Ball.Sub(Vec2{X: ShrinkBall, Y: ShrinkBall}), floor.Ball)
	g.PaddleX = max(g.PaddleX-ShrinkPaddleShift, floor.PaddleX)
	g.TrailWindow = max(g.TrailWindow-ShrinkTrail, floor.TrailWindow)
}

func maxVec(a, b Vec2) Vec2 {
	return Vec2{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
}

// ApplyPreset resets everything except the block size.
func (g *Geometry) ApplyPreset(p Geometry) {
	block := g.Block
	*g = p
	g.Block = block
}
