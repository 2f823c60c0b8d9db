package game

// Court presets. LargePreset is also the opening geometry.
var (
	LargePreset = Geometry{
		Court:       Vec2{X: 7.0, Y: 5.0},
		Paddle:      Vec2{X: 0.2, Y: 1.0},
		Ball:        Vec2{X: 0.2, Y: 0.2},
		Block:       Vec2{X: 0.2, Y: 0.2},
		PaddleX:     6.5,
		TrailWindow: 1.3,
	}
	SmallPreset = Geometry{
		Court:       Vec2{X: 3.5, Y: 2.5},
		Paddle:      Vec2{X: 0.1, Y: 0.5},
		Ball:        Vec2{X: 0.1, Y: 0.1},
		Block:       Vec2{X: 0.2, Y: 0.2},
		PaddleX:     3.25,
		TrailWindow: 0.65,
	}
)

// Shrink-on-score steps and floor.
const (
	ShrinkFloorX = 3.5
	ShrinkFloorY = 2.5

	ShrinkCourtX  = 0.7
	ShrinkCourtY  = 0.5
	ShrinkPaddleX = 0.02
	ShrinkPaddleY = 0.1
	ShrinkBall    = 0.02
	ShrinkTrail   = 0.13

	// Both paddles move inward by this much per step, which lands them on
	// SmallPreset's positions at the floor.
	ShrinkPaddleShift = 0.65
)

// Ball speed.
const (
	BaseSpeed     = 4.0
	SpeedDoubling = 4.0 // points per doubling
	MaxSpeed      = 10.0
)

// AI paddle.
const (
	AIPaddleRate  = 2.0 // units/s
	AITimerMin    = 0.5
	AITimerMax    = 1.0
	AIOffsetRange = 1.25
)

// Block spawning.
const (
	DefaultSpawnInterval = 3.0
	SpawnSteps           = 8  // quantized positions per axis
	SpawnBuckets         = 10 // kind buckets; see kindForBucket
)

// Spin blend applied on horizontal bounces.
const SpinBlend = 0.75

// Rendering constants shared with the desktop layer.
const (
	WallRadius  = 0.05
	ViewPadding = 0.14
	ScoreRadius = 0.1
	TrailSteps  = 20
)
