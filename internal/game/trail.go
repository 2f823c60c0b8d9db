package game

// TrailSample is a past ball position and how long ago it was recorded.
type TrailSample struct {
	Pos Vec2
	Age float64 // seconds
}

// TrailHistory is a ball's recent path, oldest sample first.
type TrailHistory struct {
	Samples []TrailSample
}

// Seed resets the history as if the ball had been sitting at pos for the
// whole window.
func (h *TrailHistory) Seed(pos Vec2, window float64) {
	h.Samples = append(h.Samples[:0],
		TrailSample{Pos: pos, Age: window},
		TrailSample{Pos: pos, Age: 0},
	)
}

// Advance ages every sample, records pos as the newest one and trims the
// front. The oldest sample is only dropped once the one after it is also
// past the window, so an interpolation anchor always brackets the window
// edge.
func (h *TrailHistory) Advance(pos Vec2, elapsed, window float64) {
	for i := range h.Samples {
		h.Samples[i].Age += elapsed
	}
	h.Samples = append(h.Samples, TrailSample{Pos: pos})

	drop := 0
	for len(h.Samples)-drop >= 2 && h.Samples[drop+1].Age > window {
		drop++
	}
	if drop > 0 {
		n := copy(h.Samples, h.Samples[drop:])
		h.Samples = h.Samples[:n]
	}
}

// Len returns the number of recorded samples.
func (h *TrailHistory) Len() int { return len(h.Samples) }

// At returns the interpolated position the ball had age seconds ago.
// It reports false when the history does not reach back that far.
func (h *TrailHistory) At(age float64) (Vec2, bool) {
	n := len(h.Samples)
	if n == 0 {
		return Vec2{}, false
	}
	if n == 1 {
		s := h.Samples[0]
		return s.Pos, age <= s.Age
	}
	for i := 1; i < n; i++ {
		b := h.Samples[i]
		if b.Age > age {
			continue
		}
		a := h.Samples[i-1]
		if a.Age < age {
			return Vec2{}, false
		}
		return lerpSample(a, b, age), true
	}
	return Vec2{}, false
}

// lerpSample places age on the line through a and b, extrapolating when
// age falls outside them.
func lerpSample(a, b TrailSample, age float64) Vec2 {
	if a.Age-b.Age <= 0 {
		return b.Pos
	}
	t := (age - a.Age) / (b.Age - a.Age)
	return a.Pos.Add(b.Pos.Sub(a.Pos).Scale(t))
}

// Clone returns an independent copy.
func (h TrailHistory) Clone() TrailHistory {
	out := TrailHistory{Samples: make([]TrailSample, len(h.Samples))}
	copy(out.Samples, h.Samples)
	return out
}
