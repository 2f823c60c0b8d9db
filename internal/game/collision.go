package game

// RectF is an axis-aligned rectangle in court space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

// RectAround builds the rectangle with the given centre and half-extent.
func RectAround(center, half Vec2) RectF {
	return RectF{
		X0: center.X - half.X, Y0: center.Y - half.Y,
		X1: center.X + half.X, Y1: center.Y + half.Y,
	}
}

// Overlap returns the intersection of r and o. The result is empty
// (X0 > X1 or Y0 > Y1) when they do not touch.
func (r RectF) Overlap(o RectF) RectF {
	return RectF{
		X0: max(r.X0, o.X0), Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1), Y1: min(r.Y1, o.Y1),
	}
}

func (r RectF) Empty() bool { return r.X0 > r.X1 || r.Y0 > r.Y1 }

func (r RectF) Width() float64 { return r.X1 - r.X0 }

func (r RectF) Height() float64 { return r.Y1 - r.Y0 }

// bounceBall resolves one ball against a fixed obstacle. It reports
// whether they overlapped.
func bounceBall(b *Ball, obj, objHalf, ballHalf Vec2) bool {
	ov := RectAround(obj, objHalf).Overlap(RectAround(b.Pos, ballHalf))
	if ov.Empty() {
		return false
	}

	if ov.Width() > ov.Height() {
		// Wider overlap in x: bounce in y.
		if b.Pos.Y > obj.Y {
			b.Pos.Y = obj.Y + objHalf.Y + ballHalf.Y
			b.Vel.Y = absF(b.Vel.Y)
		} else {
			b.Pos.Y = obj.Y - objHalf.Y - ballHalf.Y
			b.Vel.Y = -absF(b.Vel.Y)
		}
		return true
	}

	if b.Pos.X > obj.X {
		b.Pos.X = obj.X + objHalf.X + ballHalf.X
		b.Vel.X = absF(b.Vel.X)
	} else {
		b.Pos.X = obj.X - objHalf.X - ballHalf.X
		b.Vel.X = -absF(b.Vel.X)
	}
	// Spin: steer y velocity by where the ball met the obstacle.
	off := (b.Pos.Y - obj.Y) / (objHalf.Y + ballHalf.Y)
	b.Vel.Y = mix(b.Vel.Y, off, SpinBlend)
	return true
}

// ResolveBalls bounces every overlapping ball off the obstacle centred at
// obj and reports whether any ball hit it.
func ResolveBalls(obj, objHalf, ballHalf Vec2, balls []Ball) bool {
	hit := false
	for i := range balls {
		if bounceBall(&balls[i], obj, objHalf, ballHalf) {
			hit = true
		}
	}
	return hit
}
