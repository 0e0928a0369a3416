package meter

import (
	"math/rand"
	"time"

	"breathalyzer.klederson.com/internal/config"
	"breathalyzer.klederson.com/internal/sensor"
)

// Trigger is the edge-triggered start signal. Consume returns true at most
// once per accepted press.
type Trigger interface {
	Consume() bool
}

// Meter bundles the state machine, the animation trackers and the particle
// field, and advances them together once per tick.
type Meter struct {
	machine   *Machine
	anim      *Animation
	particles *Field
	trigger   Trigger
}

// New creates a meter reading from target and started by trigger.
// A nil rng seeds one from the clock.
func New(target *sensor.Cell, trigger Trigger, rng *rand.Rand) *Meter {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Meter{
		machine:   NewMachine(DefaultTable()),
		anim:      NewAnimation(target),
		particles: NewField(config.ParticleCapacity, rng),
		trigger:   trigger,
	}
}

// Step runs one tick: state machine, animation, then particles.
// Presses that arrive outside Waiting are consumed and dropped.
func (m *Meter) Step() (Change, bool) {
	pressed := m.trigger.Consume()
	ch, changed := m.machine.Step(pressed, m.anim)

	phase := m.machine.Phase()
	m.anim.Update(phase)
	m.particles.Spawn(phase, m.anim.Current)
	m.particles.Update()
	return ch, changed
}

// Phase returns the active phase.
func (m *Meter) Phase() Phase {
	return m.machine.Phase()
}

// Machine exposes the state machine for timers.
func (m *Meter) Machine() *Machine {
	return m.machine
}

// Animation exposes the trackers for rendering.
func (m *Meter) Animation() *Animation {
	return m.anim
}

// Particles exposes the particle arena for rendering.
func (m *Meter) Particles() *Field {
	return m.particles
}

// StatusValue is the value the status band is computed from: the live
// reading, or the high-water mark once the result is shown.
func (m *Meter) StatusValue() float64 {
	if m.machine.Phase() == PhaseResult {
		return m.anim.MaxReached
	}
	return m.anim.Current
}

// Band classifies StatusValue.
func (m *Meter) Band() Band {
	return Classify(m.StatusValue())
}

// StatusText is the headline shown above the dial.
func (m *Meter) StatusText() string {
	if m.machine.Phase() == PhaseResult {
		return Classify(m.anim.MaxReached).Label()
	}
	return ReadingLabel
}

// Nudge moves the target by delta, clamped to [0, MaxValue].
// Only honoured while reading.
func (m *Meter) Nudge(delta float64) bool {
	if m.machine.Phase() != PhaseReading {
		return false
	}
	v := m.anim.Target.Load() + delta
	if v < 0 {
		v = 0
	}
	if v > config.MaxValue {
		v = config.MaxValue
	}
	m.anim.Target.Store(v)
	return true
}

// ResetReading zeros the target, the smoothed value and the high-water mark.
func (m *Meter) ResetReading() {
	m.anim.Target.Store(0)
	m.anim.Current = 0
	m.anim.MaxReached = 0
}
