package game

import (
	"reflect"
	"testing"
)

func TestSplitDuplicatesMirrored(t *testing.T) {
	s := newTestSim(t)
	s.Balls = []Ball{NewBall(V2(1, 1), V2(-1, 0.5), 1.3)}
	s.Balls[0].Trail.Advance(V2(1.1, 1.1), 0.1, 1.3)
	before := s.Balls[0].Trail.Clone()

	s.applyEffect(BlockSplit)

	if len(s.Balls) != 2 {
		t.Fatalf("balls = %d, want 2", len(s.Balls))
	}
	a, b := s.Balls[0], s.Balls[1]
	if b.Vel.Y != -a.Vel.Y || b.Vel.X != a.Vel.X {
		t.Errorf("copy vel = %v, original %v; want y mirrored", b.Vel, a.Vel)
	}
	if a.Pos != b.Pos {
		t.Errorf("copy spawned at %v, original at %v", b.Pos, a.Pos)
	}
	if !reflect.DeepEqual(a.Trail, before) || !reflect.DeepEqual(b.Trail, before) {
		t.Errorf("trails changed by split")
	}

	s.Balls[1].Trail.Samples[0].Pos = V2(9, 9)
	if s.Balls[0].Trail.Samples[0].Pos == V2(9, 9) {
		t.Errorf("split trails share storage")
	}
}

func TestSplitKeepsOriginalsInPlace(t *testing.T) {
	s := newTestSim(t)
	s.Balls = []Ball{
		NewBall(V2(0, 0), V2(1, 0.2), 1),
		NewBall(V2(2, 2), V2(-1, -0.3), 1),
	}
	s.applyEffect(BlockSplit)

	if len(s.Balls) != 4 {
		t.Fatalf("balls = %d, want 4", len(s.Balls))
	}
	if s.Balls[0].Vel != V2(1, 0.2) || s.Balls[2].Vel != V2(-1, -0.3) {
		t.Errorf("originals moved: %v %v", s.Balls[0].Vel, s.Balls[2].Vel)
	}
	if s.Balls[1].Vel != V2(1, -0.2) || s.Balls[3].Vel != V2(-1, 0.3) {
		t.Errorf("copies: %v %v", s.Balls[1].Vel, s.Balls[3].Vel)
	}
}

func TestDeleteDropsNewestHalf(t *testing.T) {
	for _, tc := range []struct{ n, want int }{{1, 1}, {2, 1}, {3, 2}, {4, 2}, {7, 4}} {
		s := newTestSim(t)
		s.Balls = s.Balls[:0]
		for i := 0; i < tc.n; i++ {
			s.Balls = append(s.Balls, NewBall(V2(float64(i), 0), V2(1, 0), 1))
		}
		s.applyEffect(BlockDelete)
		if len(s.Balls) != tc.want {
			t.Errorf("delete on %d balls left %d, want %d", tc.n, len(s.Balls), tc.want)
			continue
		}
		for i, b := range s.Balls {
			if b.Pos.X != float64(i) {
				t.Errorf("n=%d: ball %d is %v; oldest balls should survive", tc.n, i, b.Pos)
			}
		}
	}
}

func TestScoreBlocks(t *testing.T) {
	s := newTestSim(t)
	geom := s.Geom
	if s.applyEffect(BlockLeftScore) || s.applyEffect(BlockRightScore) || s.applyEffect(BlockRightScore) {
		t.Fatalf("score blocks must not clear the board")
	}
	if s.Score != (Score{Left: 1, Right: 2}) {
		t.Errorf("score = %+v", s.Score)
	}
	if s.Geom != geom {
		t.Errorf("score blocks changed geometry")
	}
}

func TestShrinkAndExpandPresets(t *testing.T) {
	s := newTestSim(t)
	s.Blocks = []Block{{Pos: V2(1, 1)}, {Pos: V2(-1, 2), Kind: BlockSplit}}
	s.LeftPaddle.Y, s.RightPaddle.Y = 2, -2

	if !s.applyEffect(BlockShrink) {
		t.Fatalf("shrink should report a cleared board")
	}
	if len(s.Blocks) != 0 {
		t.Errorf("blocks left after shrink: %v", s.Blocks)
	}
	if s.Geom.Court != SmallPreset.Court || s.Geom.TrailWindow != SmallPreset.TrailWindow {
		t.Errorf("geometry = %+v, want SmallPreset", s.Geom)
	}
	if s.LeftPaddle != V2(-3.25, 0) || s.RightPaddle != V2(3.25, 0) {
		t.Errorf("paddles = %v %v", s.LeftPaddle, s.RightPaddle)
	}

	s.Blocks = append(s.Blocks, Block{Pos: V2(0, 1)})
	if !s.applyEffect(BlockExpand) {
		t.Fatalf("expand should report a cleared board")
	}
	if s.Geom != LargePreset || len(s.Blocks) != 0 {
		t.Errorf("after expand geom=%+v blocks=%v", s.Geom, s.Blocks)
	}
	if s.LeftPaddle != V2(-6.5, 0) || s.RightPaddle != V2(6.5, 0) {
		t.Errorf("paddles = %v %v", s.LeftPaddle, s.RightPaddle)
	}
}

func TestBlockScanRemovesOnlyStruck(t *testing.T) {
	s := newTestSim(t)
	s.Balls = []Ball{
		NewBall(V2(0, 0), V2(1, 0), 1),
		NewBall(V2(-3, -3), V2(1, 0), 1),
	}
	s.Blocks = []Block{
		{Pos: V2(0, 0), Kind: BlockRegular},
		{Pos: V2(3, 3), Kind: BlockSplit},
		{Pos: V2(-3, -3), Kind: BlockLeftScore},
		{Pos: V2(3, -3), Kind: BlockDelete},
	}

	s.collideBlocks()

	want := []Block{{Pos: V2(3, 3), Kind: BlockSplit}, {Pos: V2(3, -3), Kind: BlockDelete}}
	if !reflect.DeepEqual(s.Blocks, want) {
		t.Errorf("blocks = %+v, want %+v", s.Blocks, want)
	}
	if s.Score.Left != 1 {
		t.Errorf("left score = %d; the second struck block was skipped", s.Score.Left)
	}
}

func TestBlockStruckByTwoBallsFiresOnce(t *testing.T) {
	s := newTestSim(t)
	s.Balls = []Ball{
		NewBall(V2(0.1, 0), V2(-1, 0), 1),
		NewBall(V2(-0.1, 0.05), V2(1, 0), 1),
	}
	s.Blocks = []Block{{Pos: V2(0, 0), Kind: BlockRightScore}}

	s.collideBlocks()

	if s.Score.Right != 1 {
		t.Errorf("right score = %d, want exactly 1", s.Score.Right)
	}
	if len(s.Blocks) != 0 {
		t.Errorf("block survived: %+v", s.Blocks)
	}
}

func TestShrinkMidScanClearsPending(t *testing.T) {
	s := newTestSim(t)
	s.Balls = []Ball{
		NewBall(V2(0, 0), V2(1, 0), 1),
		NewBall(V2(-2, -2), V2(1, 0), 1),
	}
	s.Blocks = []Block{
		{Pos: V2(5, 4), Kind: BlockRegular},
		{Pos: V2(0, 0), Kind: BlockShrink},
		{Pos: V2(-2, -2), Kind: BlockLeftScore},
		{Pos: V2(2, 2), Kind: BlockRegular},
	}

	s.collideBlocks()

	if len(s.Blocks) != 0 {
		t.Errorf("blocks = %+v, want none after shrink", s.Blocks)
	}
	if s.Score.Left != 0 {
		t.Errorf("a block cleared by shrink still fired")
	}
	if s.Geom.Court != SmallPreset.Court {
		t.Errorf("court = %v", s.Geom.Court)
	}
}
