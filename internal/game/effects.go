package game

// applyEffect runs a struck block's effect. It reports whether the effect
// cleared every block, in which case the caller must stop scanning.
func (s *Simulation) applyEffect(kind BlockKind) bool {
	switch kind {
	case BlockRegular:
	case BlockSplit:
		s.splitBalls()
	case BlockDelete:
		s.deleteBalls()
	case BlockLeftScore:
		s.addPoint(SideLeft, s.LeftPaddle)
	case BlockRightScore:
		s.addPoint(SideRight, s.RightPaddle)
	case BlockShrink:
		s.resetGeometry(SmallPreset)
		return true
	case BlockExpand:
		s.resetGeometry(LargePreset)
		return true
	}
	return false
}

// splitBalls doubles the ball set. Each copy follows its original and
// flies with y mirrored.
func (s *Simulation) splitBalls() {
	out := make([]Ball, 0, 2*len(s.Balls))
	for _, b := range s.Balls {
		out = append(out, b, b.mirrored())
	}
	s.Balls = out
}

// deleteBalls drops the newest half of the balls, rounding down, so a
// lone ball always survives.
func (s *Simulation) deleteBalls() {
	n := s.BallCount()
	keep := n - n/2
	clear(s.Balls[keep:])
	s.Balls = s.Balls[:keep]
}

// resetGeometry snaps the court to a preset, recentres both paddles and
// clears the board.
func (s *Simulation) resetGeometry(p Geometry) {
	s.Geom.ApplyPreset(p)
	s.LeftPaddle = Vec2{X: -s.Geom.PaddleX}
	s.RightPaddle = Vec2{X: s.Geom.PaddleX}
	s.clearBlocks()
}
