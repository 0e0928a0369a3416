package meter

import (
	"math"

	"breathalyzer.klederson.com/internal/config"
	"breathalyzer.klederson.com/internal/sensor"
)

// Animation holds the smoothed trackers the renderer draws from.
// Angles are in degrees, 180 = left end of the dial, 0 = right end.
type Animation struct {
	Current     float64
	Target      *sensor.Cell // Latest raw reading, written by the input source
	MaxReached  float64
	NeedleAngle float64
	TargetAngle float64

	PulseTime    float64
	WaitingPulse float64

	GlowIntensity int
	glowDir       int

	ResultScale float64
	ResultGlow  float64
}

// NewAnimation returns the resting state: needle parked at the left end.
func NewAnimation(target *sensor.Cell) *Animation {
	return &Animation{
		Target:      target,
		NeedleAngle: 180,
		TargetAngle: 180,
		glowDir:     1,
		ResultScale: 1,
	}
}

// Update advances every tracker one tick for the given phase.
func (a *Animation) Update(phase Phase) {
	switch phase {
	case PhaseReading:
		a.Current += (a.Target.Load() - a.Current) * config.ValueSmoothing
		if a.Current > a.MaxReached {
			a.MaxReached = a.Current
		}
	case PhaseResult:
		a.Current = a.MaxReached
	}

	a.TargetAngle = ValueToAngle(a.Current)
	a.NeedleAngle += (a.TargetAngle - a.NeedleAngle) * config.NeedleSmoothing

	if phase == PhaseResult {
		a.ResultScale = 1 + 0.3*math.Abs(math.Sin(a.PulseTime*3))
		a.ResultGlow = 50 + 80*math.Abs(math.Sin(a.PulseTime*4))
	} else {
		a.ResultScale = 1
		a.ResultGlow = 0
	}

	a.PulseTime += config.PulseStep
	a.WaitingPulse += config.WaitingPulseStep

	a.GlowIntensity += a.glowDir * config.GlowStep
	if a.GlowIntensity >= config.GlowMax {
		a.GlowIntensity = config.GlowMax
		a.glowDir = -1
	} else if a.GlowIntensity <= 0 {
		a.GlowIntensity = 0
		a.glowDir = 1
	}
}

// DisplayAngle is the needle angle clamped to the visible upper half.
func (a *Animation) DisplayAngle() float64 {
	return ClampAngle(a.NeedleAngle)
}

// ValueToAngle maps [0, MaxValue] onto [180°, 0°].
func ValueToAngle(v float64) float64 {
	return 180 - (v/config.MaxValue)*180
}

// ClampAngle limits an angle to [0, 180].
func ClampAngle(deg float64) float64 {
	return math.Max(0, math.Min(180, deg))
}
