package game

import "math"

// Side identifies a paddle and the player behind it.
type Side int

const (
	SideLeft  Side = iota // human, pointer controlled
	SideRight             // AI
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Score is the point tally. Both counters only ever go up.
type Score struct {
	Left, Right int
}

func (s Score) Total() int { return s.Left + s.Right }

// Config seeds a new Simulation.
type Config struct {
	Seed          uint64
	SpawnInterval float64 // seconds between spawned blocks; <= 0 means DefaultSpawnInterval
	InitialBlocks []Block
	Events        *EventBus // optional
}

// DefaultConfig is the standard opening: a single expand block sitting on
// the serve spot.
func DefaultConfig(seed uint64) Config {
	return Config{
		Seed:          seed,
		SpawnInterval: DefaultSpawnInterval,
		InitialBlocks: []Block{{Pos: Vec2{}, Kind: BlockExpand}},
	}
}

// Simulation is the whole court. Tick mutates it in place; renderers read
// its exported fields between ticks.
type Simulation struct {
	Geom        Geometry
	LeftPaddle  Vec2
	RightPaddle Vec2
	Balls       []Ball
	Blocks      []Block
	Score       Score

	AI      AI
	Spawner *BlockSpawner
	Events  *EventBus

	rng   *Rand
	speed float64
}

// New builds a court at LargePreset with one ball at the centre heading
// toward the human paddle.
func New(cfg Config) *Simulation {
	g := LargePreset
	s := &Simulation{
		Geom:        g,
		LeftPaddle:  Vec2{X: -g.PaddleX},
		RightPaddle: Vec2{X: g.PaddleX},
		Spawner:     NewBlockSpawner(cfg.SpawnInterval),
		Events:      cfg.Events,
		rng:         NewRand(cfg.Seed),
		speed:       SpeedMultiplier(0, 0),
	}
	s.Balls = append(s.Balls, NewBall(Vec2{}, Vec2{X: -1}, g.TrailWindow))
	s.Blocks = append(s.Blocks, cfg.InitialBlocks...)
	return s
}

// uncappedSpeed doubles every SpeedDoubling points.
func uncappedSpeed(left, right int) float64 {
	return BaseSpeed * math.Pow(2, float64(left+right)/SpeedDoubling)
}

// SpeedMultiplier scales ball directions into velocities. It is capped so
// balls cannot tunnel through paddles.
func SpeedMultiplier(left, right int) float64 {
	return min(uncappedSpeed(left, right), MaxSpeed)
}

// BallCount is the number of balls in play.
func (s *Simulation) BallCount() int { return len(s.Balls) }

// Speed is the multiplier used by the most recent tick.
func (s *Simulation) Speed() float64 { return s.speed }

// SetLeftPaddleY moves the human paddle, already mapped to court space.
func (s *Simulation) SetLeftPaddleY(y float64) {
	if math.IsNaN(y) {
		return
	}
	s.LeftPaddle.Y = y
	s.clampPaddles()
}

// Tick advances the court by elapsed seconds. Negative or NaN elapsed is
// treated as zero.
func (s *Simulation) Tick(elapsed float64) {
	if !(elapsed > 0) {
		elapsed = 0
	}

	if b, ok := s.Spawner.Update(elapsed, s.Geom.Court, s.rng); ok {
		s.Blocks = append(s.Blocks, b)
		s.Events.Emit(Event{Type: EventBlockSpawned, X: b.Pos.X, Y: b.Pos.Y, Data: int(b.Kind)})
	}

	s.RightPaddle.Y = s.AI.Update(elapsed, s.RightPaddle.Y, s.Balls, s.rng)
	s.clampPaddles()

	s.speed = SpeedMultiplier(s.Score.Left, s.Score.Right)
	step := elapsed * s.speed
	for i := range s.Balls {
		b := &s.Balls[i]
		b.Pos = b.Pos.Add(b.Vel.Scale(step))
	}

	if ResolveBalls(s.LeftPaddle, s.Geom.Paddle, s.Geom.Ball, s.Balls) {
		s.Events.Emit(Event{Type: EventPaddleHit, X: s.LeftPaddle.X, Y: s.LeftPaddle.Y, Data: int(SideLeft)})
	}
	if ResolveBalls(s.RightPaddle, s.Geom.Paddle, s.Geom.Ball, s.Balls) {
		s.Events.Emit(Event{Type: EventPaddleHit, X: s.RightPaddle.X, Y: s.RightPaddle.Y, Data: int(SideRight)})
	}

	s.collideBlocks()
	s.collideWalls()

	for i := range s.Balls {
		b := &s.Balls[i]
		b.Trail.Advance(b.Pos, elapsed, s.Geom.TrailWindow)
	}
}

func (s *Simulation) clampPaddles() {
	lo, hi := s.Geom.PaddleYRange()
	s.LeftPaddle.Y = clampF(s.LeftPaddle.Y, lo, hi)
	s.RightPaddle.Y = clampF(s.RightPaddle.Y, lo, hi)
}

// collideBlocks tests every block against the balls. Struck blocks fire
// their effect and are compacted out in place; an effect that wipes the
// board ends the scan.
func (s *Simulation) collideBlocks() {
	blocks := s.Blocks
	kept := blocks[:0]
	for _, b := range blocks {
		if !ResolveBalls(b.Pos, s.Geom.Block, s.Geom.Ball, s.Balls) {
			kept = append(kept, b)
			continue
		}
		s.Events.Emit(Event{Type: EventBlockHit, X: b.Pos.X, Y: b.Pos.Y, Data: int(b.Kind)})
		if s.applyEffect(b.Kind) {
			return
		}
	}
	s.Blocks = kept
}

func (s *Simulation) collideWalls() {
	for i := range s.Balls {
		b := &s.Balls[i]

		if top := s.Geom.Court.Y - s.Geom.Ball.Y; b.Pos.Y > top {
			b.Pos.Y = top
			if b.Vel.Y > 0 {
				b.Vel.Y = -b.Vel.Y
				s.Events.Emit(Event{Type: EventWallBounce, X: b.Pos.X, Y: b.Pos.Y})
			}
		}
		if bottom := -s.Geom.Court.Y + s.Geom.Ball.Y; b.Pos.Y < bottom {
			b.Pos.Y = bottom
			if b.Vel.Y < 0 {
				b.Vel.Y = -b.Vel.Y
				s.Events.Emit(Event{Type: EventWallBounce, X: b.Pos.X, Y: b.Pos.Y})
			}
		}

		// Bounds are re-read after each score since scoring can shrink the
		// court mid-loop.
		// A ball exactly on the goal line still scores while it is
		// heading out.
		if right := s.Geom.Court.X - s.Geom.Ball.X; b.Pos.X >= right {
			b.Pos.X = right
			if b.Vel.X > 0 {
				b.Vel.X = -b.Vel.X
				s.scored(SideLeft, b.Pos)
			}
		}
		if left := -s.Geom.Court.X + s.Geom.Ball.X; b.Pos.X <= left {
			b.Pos.X = left
			if b.Vel.X < 0 {
				b.Vel.X = -b.Vel.X
				s.scored(SideRight, b.Pos)
			}
		}
	}
}

// scored awards a point and, while the court is above its floor, shrinks
// everything one step and clears the blocks.
func (s *Simulation) scored(side Side, at Vec2) {
	s.addPoint(side, at)
	if !s.Geom.CanShrink() {
		return
	}
	s.Geom.ShrinkStep()
	s.LeftPaddle.X = -s.Geom.PaddleX
	s.RightPaddle.X = s.Geom.PaddleX
	s.clampPaddles()
	s.clearBlocks()
	s.Events.Emit(Event{Type: EventCourtShrink, X: s.Geom.Court.X, Y: s.Geom.Court.Y})
}

func (s *Simulation) addPoint(side Side, at Vec2) {
	if side == SideLeft {
		s.Score.Left++
	} else {
		s.Score.Right++
	}
	s.Events.Emit(Event{Type: EventScore, X: at.X, Y: at.Y, Data: int(side)})
}

func (s *Simulation) clearBlocks() {
	s.Blocks = s.Blocks[:0]
}
