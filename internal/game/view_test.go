package game

import (
	"math"
	"testing"
)

func TestCourtViewRoundTrip(t *testing.T) {
	for _, vp := range [][2]int{{1280, 720}, {800, 600}, {600, 900}, {0, 0}} {
		v := FitCourt(LargePreset, vp[0], vp[1])
		for _, p := range []Vec2{{0, 0}, {7, 5}, {-6.5, 2.3}, {3.1, -4.9}} {
			got := v.ToCourt(v.ToClip(p))
			if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
				t.Errorf("%dx%d: round trip %v -> %v", vp[0], vp[1], p, got)
			}
		}
	}
}

func TestCourtViewFitsScene(t *testing.T) {
	for _, vp := range [][2]int{{1280, 720}, {600, 900}} {
		v := FitCourt(LargePreset, vp[0], vp[1])
		c := LargePreset.Court
		corners := []Vec2{
			{-c.X - 2*WallRadius, -c.Y - 2*WallRadius},
			{c.X + 2*WallRadius, c.Y + 2*WallRadius + 3*ScoreRadius},
		}
		for _, p := range corners {
			clip := v.ToClip(p)
			if math.Abs(clip.X) > 1 || math.Abs(clip.Y) > 1 {
				t.Errorf("%dx%d: corner %v maps outside clip space: %v", vp[0], vp[1], p, clip)
			}
		}
	}
}

func TestCourtViewMatrixMatchesToClip(t *testing.T) {
	v := FitCourt(SmallPreset, 1024, 768)
	m := v.Matrix()
	p := V2(1.25, -0.75)
	x := float64(m[0])*p.X + float64(m[4])*p.Y + float64(m[12])
	y := float64(m[1])*p.X + float64(m[5])*p.Y + float64(m[13])
	want := v.ToClip(p)
	if math.Abs(x-want.X) > 1e-5 || math.Abs(y-want.Y) > 1e-5 {
		t.Errorf("matrix maps %v to (%.5f,%.5f), ToClip gives %v", p, x, y, want)
	}
}

func TestWindowToClip(t *testing.T) {
	got := WindowToClip(0, 0, 100, 100)
	if !near(got.X, -0.99) || !near(got.Y, 0.99) {
		t.Errorf("top-left pixel = %v, want (-0.99, 0.99)", got)
	}
	got = WindowToClip(99, 99, 100, 100)
	if !near(got.X, 0.99) || !near(got.Y, -0.99) {
		t.Errorf("bottom-right pixel = %v", got)
	}
	if WindowToClip(5, 5, 0, 10) != (Vec2{}) {
		t.Errorf("degenerate window should map to the origin")
	}
}
