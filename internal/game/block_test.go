package game

import (
	"math"
	"testing"
)

func TestBucketMappingSkewsRegular(t *testing.T) {
	counts := make(map[BlockKind]int)
	for b := 0; b < SpawnBuckets; b++ {
		counts[kindForBucket(b)]++
	}
	if counts[BlockRegular] != 4 {
		t.Errorf("regular buckets = %d, want 4 of %d", counts[BlockRegular], SpawnBuckets)
	}
	for k := BlockSplit; k < BlockKindCount; k++ {
		if counts[k] != 1 {
			t.Errorf("%s buckets = %d, want 1", k, counts[k])
		}
	}
	want := []BlockKind{BlockSplit, BlockDelete, BlockLeftScore, BlockRightScore, BlockShrink, BlockExpand}
	for i, k := range want {
		if got := kindForBucket(i + 1); got != k {
			t.Errorf("bucket %d = %s, want %s", i+1, got, k)
		}
	}
}

func TestSpawnerFiresOnFourthSecond(t *testing.T) {
	s := NewBlockSpawner(3.0)
	r := NewRand(7)
	court := LargePreset.Court

	for tick := 1; tick <= 4; tick++ {
		_, ok := s.Update(1.0, court, r)
		if tick < 4 && ok {
			t.Fatalf("spawned early at tick %d", tick)
		}
		if tick == 4 && !ok {
			t.Fatalf("no spawn at tick 4 (acc=%.2f)", s.Accumulated())
		}
	}
	if !near(s.Accumulated(), 1.0) {
		t.Errorf("residual = %.3f, want 1.0 (overshoot kept)", s.Accumulated())
	}
}

func TestSpawnPositionsAreQuantized(t *testing.T) {
	s := NewBlockSpawner(0.5)
	r := NewRand(12345)
	court := V2(7, 5)

	seen := make(map[BlockKind]int)
	for i := 0; i < 2000; i++ {
		b, ok := s.Update(1.0, court, r)
		if !ok {
			t.Fatalf("update %d: expected a spawn every call", i)
		}
		seen[b.Kind]++
		for _, axis := range []struct{ v, half float64 }{{b.Pos.X, court.X}, {b.Pos.Y, court.Y}} {
			step := (axis.v + 0.8*axis.half) / (axis.half / 5)
			if math.Abs(step-math.Round(step)) > 1e-9 || step < -1e-9 || step > SpawnSteps-1+1e-9 {
				t.Fatalf("block at %v is off the spawn grid (step %.4f)", b.Pos, step)
			}
			if math.Abs(axis.v) >= axis.half {
				t.Fatalf("block at %v outside the court", b.Pos)
			}
		}
	}
	for k := BlockRegular; k < BlockKindCount; k++ {
		if seen[k] == 0 {
			t.Errorf("kind %s never spawned in 2000 draws", k)
		}
	}
	if seen[BlockRegular] < seen[BlockSplit]*2 {
		t.Errorf("regular=%d split=%d; regular should be about 4x as common", seen[BlockRegular], seen[BlockSplit])
	}
}

func TestSpawnCoordRange(t *testing.T) {
	if got := spawnCoord(0, 5); !near(got, -4) {
		t.Errorf("step 0 = %.3f, want -4", got)
	}
	if got := spawnCoord(SpawnSteps-1, 5); !near(got, 3) {
		t.Errorf("step 7 = %.3f, want 3", got)
	}
}

func TestBlockKindColorsAndNames(t *testing.T) {
	names := make(map[string]bool)
	for k := BlockRegular; k < BlockKindCount; k++ {
		names[k.String()] = true
	}
	if len(names) != int(BlockKindCount) {
		t.Errorf("block kind names are not unique: %v", names)
	}
	if BlockRegular.Color() != Palette.Foreground {
		t.Errorf("regular colour = %+v", BlockRegular.Color())
	}
	if BlockLeftScore.Color() != Palette.Left || BlockRightScore.Color() != Palette.Right {
		t.Errorf("score blocks should use the paddle colours")
	}
	if BlockKind(99).String() != "BlockKind(99)" {
		t.Errorf("unknown kind name = %q", BlockKind(99).String())
	}
}
