package game

// AI steers the right paddle toward the first ball plus a jitter offset
// that is re-rolled every half second or so.
type AI struct {
	Offset float64
	Timer  float64
}

// Update advances the re-roll timer and returns the paddle's new y.
// With no balls in play the paddle holds still.
func (ai *AI) Update(elapsed, paddleY float64, balls []Ball, r *Rand) float64 {
	ai.Timer -= elapsed
	if ai.Timer < elapsed {
		ai.Timer = r.RangeF(AITimerMin, AITimerMax)
		ai.Offset = r.RangeF(-AIOffsetRange, AIOffsetRange)
	}
	if len(balls) == 0 {
		return paddleY
	}
	target := balls[0].Pos.Y + ai.Offset
	return approach(paddleY, target, AIPaddleRate*elapsed)
}
