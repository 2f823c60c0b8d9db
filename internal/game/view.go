package game

// CourtView is the affine map between court space and clip space. It is
// refit every frame so the whole court, its walls and the score row fill
// the viewport without stretching.
type CourtView struct {
	Scale  float64 // clip units per court unit along y
	Aspect float64 // viewport width / height
	Center Vec2    // court point shown at the clip origin
}

// FitCourt fits the scene around g into a fbW x fbH viewport.
func FitCourt(g Geometry, fbW, fbH int) CourtView {
	sceneMin := Vec2{
		X: -g.Court.X - 2*WallRadius - ViewPadding,
		Y: -g.Court.Y - 2*WallRadius - ViewPadding,
	}
	sceneMax := Vec2{
		X: g.Court.X + 2*WallRadius + ViewPadding,
		Y: g.Court.Y + 2*WallRadius + 3*ScoreRadius + ViewPadding,
	}

	aspect := 1.0
	if fbW > 0 && fbH > 0 {
		aspect = float64(fbW) / float64(fbH)
	}
	scale := min(
		2*aspect/(sceneMax.X-sceneMin.X),
		2/(sceneMax.Y-sceneMin.Y),
	)
	return CourtView{
		Scale:  scale,
		Aspect: aspect,
		Center: sceneMin.Add(sceneMax).Scale(0.5),
	}
}

func (v CourtView) ToClip(p Vec2) Vec2 {
	return Vec2{
		X: (p.X - v.Center.X) * v.Scale / v.Aspect,
		Y: (p.Y - v.Center.Y) * v.Scale,
	}
}

func (v CourtView) ToCourt(clip Vec2) Vec2 {
	return Vec2{
		X: clip.X*v.Aspect/v.Scale + v.Center.X,
		Y: clip.Y/v.Scale + v.Center.Y,
	}
}

// Matrix is the court-to-clip transform as a column-major mat4.
func (v CourtView) Matrix() [16]float32 {
	sx := float32(v.Scale / v.Aspect)
	sy := float32(v.Scale)
	return [16]float32{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, 1, 0,
		-float32(v.Center.X) * sx, -float32(v.Center.Y) * sy, 0, 1,
	}
}

// WindowToClip converts a window pixel (top-left origin, +y down) to clip
// space ([-1,1] square, +y up), sampling the pixel centre.
func WindowToClip(px, py float64, winW, winH int) Vec2 {
	if winW <= 0 || winH <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: (px+0.5)/float64(winW)*2 - 1,
		Y: (py+0.5)/float64(winH)*-2 + 1,
	}
}
