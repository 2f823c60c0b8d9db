package game

import "math"

const (
	MaxParticles      = 512
	particleDrag      = 3.0
	particleHalf      = 0.035
	particlesPerBurst = 12
)

// Particle is a cosmetic spark. Sparks never touch simulation state.
type Particle struct {
	Pos, Vel Vec2
	Life     float64
	MaxLife  float64
	Col      RGBA
}

// ParticleSystem is a fixed-capacity spark pool fed from simulation
// events. It has its own generator so the simulation's random stream is
// left alone.
type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// SpawnBurst throws count sparks out of pos in every direction.
func (ps *ParticleSystem) SpawnBurst(pos Vec2, col RGBA, count int) {
	r := ps.rng
	for range count {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(1.5, 4.5)
		ps.Add(Particle{
			Pos:     pos,
			Vel:     Vec2{X: math.Cos(ang) * spd, Y: math.Sin(ang) * spd},
			MaxLife: r.RangeF(0.25, 0.6),
			Col:     col,
		})
	}
}

// Subscribe bursts sparks in the struck block's colour on every hit.
func (ps *ParticleSystem) Subscribe(bus *EventBus) {
	bus.Subscribe(EventBlockHit, func(e Event) {
		ps.SpawnBurst(Vec2{X: e.X, Y: e.Y}, BlockKind(e.Data).Color(), particlesPerBurst)
	})
}

// Update ages and moves the sparks, compacting dead ones out in place.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	decay := math.Exp(-particleDrag * dt)
	alive := ps.P[:0]
	for _, p := range ps.P {
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel = p.Vel.Scale(decay)
		alive = append(alive, p)
	}
	clear(ps.P[len(alive):])
	ps.P = alive
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// Draw appends the sparks to d, fading and shrinking them with age.
func (ps *ParticleSystem) Draw(d *DrawList) {
	for _, p := range ps.P {
		t := clampF(p.Life/p.MaxLife, 0, 1)
		col := p.Col
		col.A = uint8(float64(col.A) * (1 - t))
		if col.A == 0 {
			continue
		}
		h := particleHalf * (1 - 0.5*t)
		d.Rect(p.Pos, Vec2{X: h, Y: h}, col)
	}
}
