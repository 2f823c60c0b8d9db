package game

import "fmt"

type BlockKind int

const (
	BlockRegular    BlockKind = iota // cosmetic
	BlockSplit                       // duplicate every ball
	BlockDelete                      // drop the newest half of the balls
	BlockLeftScore                   // point for the left side
	BlockRightScore                  // point for the right side
	BlockShrink                      // snap to SmallPreset
	BlockExpand                      // snap to LargePreset

	BlockKindCount // must stay last
)

func (k BlockKind) String() string {
	switch k {
	case BlockRegular:
		return "regular"
	case BlockSplit:
		return "split"
	case BlockDelete:
		return "delete"
	case BlockLeftScore:
		return "left-score"
	case BlockRightScore:
		return "right-score"
	case BlockShrink:
		return "shrink"
	case BlockExpand:
		return "expand"
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

// Color is the block's fill colour.
func (k BlockKind) Color() RGBA {
	switch k {
	case BlockSplit:
		return Palette.BlockSplit
	case BlockDelete:
		return Palette.BlockDelete
	case BlockLeftScore:
		return Palette.Left
	case BlockRightScore:
		return Palette.Right
	case BlockShrink:
		return Palette.BlockShrink
	case BlockExpand:
		return Palette.BlockExpand
	}
	return Palette.Foreground
}

// Block is a power block sitting in the court until a ball strikes it.
type Block struct {
	Pos  Vec2
	Kind BlockKind
}

// kindForBucket maps a spawn bucket in [0, SpawnBuckets) to a kind.
// Buckets 1-6 are the special kinds in declaration order; 0 and 7-9 all
// fall to regular, so regular blocks show up 40% of the time.
func kindForBucket(bucket int) BlockKind {
	switch bucket {
	case 1:
		return BlockSplit
	case 2:
		return BlockDelete
	case 3:
		return BlockLeftScore
	case 4:
		return BlockRightScore
	case 5:
		return BlockShrink
	case 6:
		return BlockExpand
	}
	return BlockRegular
}

// spawnCoord maps a step in [0, SpawnSteps) onto the inner part of the
// court along one axis.
func spawnCoord(step int, half float64) float64 {
	return float64(step)*(half/5.0) - 4.0/5.0*half
}

// BlockSpawner drops a block into the court every Interval seconds.
type BlockSpawner struct {
	Interval float64
	acc      float64
}

func NewBlockSpawner(interval float64) *BlockSpawner {
	if interval <= 0 {
		interval = DefaultSpawnInterval
	}
	return &BlockSpawner{Interval: interval}
}

// Accumulated is the time carried toward the next spawn.
func (s *BlockSpawner) Accumulated() float64 { return s.acc }

// Update advances the spawn clock. When the clock passes Interval it
// keeps the overshoot and returns a new block placed inside court.
func (s *BlockSpawner) Update(elapsed float64, court Vec2, r *Rand) (Block, bool) {
	s.acc += elapsed
	if s.acc <= s.Interval {
		return Block{}, false
	}
	s.acc -= s.Interval

	kind := kindForBucket(r.Intn(SpawnBuckets))
	x := spawnCoord(r.Intn(SpawnSteps), court.X)
	y := spawnCoord(r.Intn(SpawnSteps), court.Y)
	return Block{Pos: Vec2{X: x, Y: y}, Kind: kind}, true
}
