package game

import "math"

// FloatsPerVertex is the DrawList vertex layout: x, y, r, g, b, a.
const FloatsPerVertex = 6

// DrawList accumulates solid rectangles as triangle vertices in court
// space, ready for a single streaming upload.
type DrawList struct {
	Verts []float32
}

func (d *DrawList) Reset() { d.Verts = d.Verts[:0] }

// VertexCount is the number of vertices recorded.
func (d *DrawList) VertexCount() int { return len(d.Verts) / FloatsPerVertex }

// Rect appends a rectangle as two CCW triangles.
func (d *DrawList) Rect(center, half Vec2, c RGBA) {
	r, g, b, a := c.Floats()
	x0, y0 := float32(center.X-half.X), float32(center.Y-half.Y)
	x1, y1 := float32(center.X+half.X), float32(center.Y+half.Y)
	d.Verts = append(d.Verts,
		x0, y0, r, g, b, a,
		x1, y0, r, g, b, a,
		x1, y1, r, g, b, a,

		x0, y0, r, g, b, a,
		x1, y1, r, g, b, a,
		x0, y1, r, g, b, a,
	)
}

// trailColor picks the gradient colour for a trail step; step runs from
// TrailSteps (oldest) down to 1 (newest).
func trailColor(step int) RGBA {
	colors := Palette.Trail
	c := float64(step-1) / float64(TrailSteps-1) * float64(len(colors))
	ci := int(math.Floor(c))
	cf := c - float64(ci)
	if ci < 0 {
		ci, cf = 0, 0
	}
	if ci > len(colors)-2 {
		ci, cf = len(colors)-2, 1
	}
	return lerpRGBA(colors[ci], colors[ci+1], cf)
}

// trail draws TrailSteps stamps from oldest to newest. A cursor walks the
// samples forward with the stamp age; stamps older than the history
// extrapolate along the first interval, and drawing stops once no sample
// is young enough to bracket the stamp.
func (d *DrawList) trail(samples []TrailSample, g Geometry) {
	if len(samples) < 2 {
		return
	}
	ti := 1
	for step := TrailSteps; step > 0; step-- {
		age := float64(step) / float64(TrailSteps) * g.TrailWindow
		for ti < len(samples) && samples[ti].Age > age {
			ti++
		}
		if ti == len(samples) {
			break
		}
		d.Rect(lerpSample(samples[ti-1], samples[ti], age), g.Ball, trailColor(step))
	}
}

// BuildDrawList records the whole court, back to front: trails, walls,
// paddles, balls, blocks, score pips.
func BuildDrawList(s *Simulation, d *DrawList) {
	d.Reset()
	g := s.Geom

	for i := range s.Balls {
		d.trail(s.Balls[i].Trail.Samples, g)
	}

	fg := Palette.Foreground
	wallH := Vec2{X: WallRadius, Y: g.Court.Y + 2*WallRadius}
	wallV := Vec2{X: g.Court.X, Y: WallRadius}
	d.Rect(Vec2{X: -g.Court.X - WallRadius}, wallH, fg)
	d.Rect(Vec2{X: g.Court.X + WallRadius}, wallH, fg)
	d.Rect(Vec2{Y: -g.Court.Y - WallRadius}, wallV, fg)
	d.Rect(Vec2{Y: g.Court.Y + WallRadius}, wallV, fg)

	d.Rect(s.LeftPaddle, g.Paddle, Palette.Left)
	d.Rect(s.RightPaddle, g.Paddle, Palette.Right)

	for i := range s.Balls {
		d.Rect(s.Balls[i].Pos, g.Ball, fg)
	}

	for _, b := range s.Blocks {
		d.Rect(b.Pos, g.Block, b.Kind.Color())
	}

	pip := Vec2{X: ScoreRadius, Y: ScoreRadius}
	pipY := g.Court.Y + 2*WallRadius + 2*ScoreRadius
	for i := 0; i < s.Score.Left; i++ {
		x := -g.Court.X + (2+3*float64(i))*ScoreRadius
		d.Rect(Vec2{X: x, Y: pipY}, pip, Palette.Left)
	}
	for i := 0; i < s.Score.Right; i++ {
		x := g.Court.X - (2+3*float64(i))*ScoreRadius
		d.Rect(Vec2{X: x, Y: pipY}, pip, Palette.Right)
	}
}
