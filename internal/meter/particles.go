package meter

import (
	"math"
	"math/rand"

	"breathalyzer.klederson.com/internal/config"
)

// Tint is the colour family of a particle.
type Tint int

const (
	TintYellow Tint = iota
	TintOrange
	TintRed
)

// Particle palette thresholds, independent of the status bands.
const (
	particleOrangeAt = 1.0
	particleRedAt    = 2.0
)

// ParticleTint picks the spray colour for a reading.
func ParticleTint(v float64) Tint {
	switch {
	case v < particleOrangeAt:
		return TintYellow
	case v < particleRedAt:
		return TintOrange
	default:
		return TintRed
	}
}

// Particle is a single decaying dot. Coordinates are on the virtual canvas.
type Particle struct {
	X, Y       float64
	VelX, VelY float64
	Tint       Tint
	Life       int
	Size       float64
}

// Alive reports whether the particle still occupies its slot.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// update ages the particle by one tick and reports whether it survives.
func (p *Particle) update() bool {
	p.X += p.VelX
	p.Y += p.VelY
	p.Life -= config.ParticleDecay
	p.Size = math.Max(config.ParticleMinSize, p.Size-config.ParticleShrink)
	return p.Life > 0
}

// Field is a fixed-capacity particle arena. Dead slots are kept on a free
// list and reused by later spawns, so the field never allocates after
// construction.
type Field struct {
	slots  []Particle
	free   []int
	active int
	rng    *rand.Rand
}

// NewField creates an arena with the given capacity.
func NewField(capacity int, rng *rand.Rand) *Field {
	f := &Field{
		slots: make([]Particle, capacity),
		free:  make([]int, capacity),
		rng:   rng,
	}
	// Lowest index on top so slots fill from the front.
	for i := range f.free {
		f.free[i] = capacity - 1 - i
	}
	return f
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return f.active
}

// Cap returns the arena size.
func (f *Field) Cap() int {
	return len(f.slots)
}

// Spawn emits the particles for one tick at the given reading. Spawns that
// do not fit in the arena are dropped. Returns how many were placed.
func (f *Field) Spawn(phase Phase, v float64) int {
	if phase != PhaseReading || v <= config.ParticleThreshold {
		return 0
	}

	n := int(v * 3)
	tint := ParticleTint(v)
	placed := 0
	for i := 0; i < n; i++ {
		if len(f.free) == 0 {
			break
		}
		idx := f.free[len(f.free)-1]
		f.free = f.free[:len(f.free)-1]

		f.slots[idx] = f.newParticle(tint)
		f.active++
		placed++
	}
	return placed
}

func (f *Field) newParticle(tint Tint) Particle {
	x := config.GaugeCenterX + f.rng.Intn(2*config.ParticleJitterX+1) - config.ParticleJitterX
	y := config.GaugeCenterY + f.rng.Intn(2*config.ParticleJitterY+1) - config.ParticleJitterY
	return Particle{
		X:    float64(x),
		Y:    float64(y),
		VelX: (f.rng.Float64()*2 - 1) * config.ParticleSpeed,
		VelY: (-2 + f.rng.Float64()*1.5) * config.ParticleSpeed,
		Tint: tint,
		Life: config.ParticleLife,
		Size: float64(2 + f.rng.Intn(4)),
	}
}

// Update ages every live particle and frees the slots that expire.
func (f *Field) Update() {
	for i := range f.slots {
		p := &f.slots[i]
		if !p.Alive() {
			continue
		}
		if !p.update() {
			f.free = append(f.free, i)
			f.active--
		}
	}
}

// Each calls fn for every live particle.
func (f *Field) Each(fn func(p Particle)) {
	for i := range f.slots {
		if f.slots[i].Alive() {
			fn(f.slots[i])
		}
	}
}

// Reset frees every slot.
func (f *Field) Reset() {
	f.free = f.free[:0]
	for i := len(f.slots) - 1; i >= 0; i-- {
		f.slots[i] = Particle{}
		f.free = append(f.free, i)
	}
	f.active = 0
}
