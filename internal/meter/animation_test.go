package meter

import (
	"math"
	"math/rand"
	"testing"

	"breathalyzer.klederson.com/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationConverges(t *testing.T) {
	for _, v := range []float64{0.3, 1.0, 2.0, 2.5} {
		cell := sensor.NewCell()
		cell.Store(v)
		a := NewAnimation(cell)

		for i := 0; i < 80; i++ {
			a.Update(PhaseReading)
		}
		assert.InDelta(t, v, a.Current, 1e-3, "current for target %.1f", v)
		assert.InDelta(t, a.Current, a.MaxReached, 1e-12)

		for i := 0; i < 80; i++ {
			a.Update(PhaseReading)
		}
		assert.InDelta(t, ValueToAngle(v), a.NeedleAngle, 1e-3, "needle for target %.1f", v)
	}
}

func TestAnimationSmoothingStep(t *testing.T) {
	cell := sensor.NewCell()
	cell.Store(2.0)
	a := NewAnimation(cell)

	a.Update(PhaseReading)
	assert.InDelta(t, 0.2, a.Current, 1e-12)
	assert.InDelta(t, 180-0.2/2.5*180, a.TargetAngle, 1e-9)
	assert.InDelta(t, 180+(a.TargetAngle-180)*0.15, a.NeedleAngle, 1e-9)
}

func TestAnimationMaxIsMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cell := sensor.NewCell()
	a := NewAnimation(cell)

	prev := 0.0
	for i := 0; i < 600; i++ {
		cell.Store(rng.Float64() * 2.5)
		a.Update(PhaseReading)
		require.GreaterOrEqual(t, a.MaxReached, prev)
		require.GreaterOrEqual(t, a.MaxReached, a.Current)
		prev = a.MaxReached
	}
}

func TestAnimationResultHoldsMax(t *testing.T) {
	cell := sensor.NewCell()
	cell.Store(0.1)
	a := NewAnimation(cell)
	a.MaxReached = 1.8

	a.Update(PhaseResult)
	assert.Equal(t, 1.8, a.Current)
	assert.Equal(t, 1.8, a.MaxReached, "result ignores the live target")
}

func TestAnimationNeedleClamp(t *testing.T) {
	a := NewAnimation(sensor.NewCell())

	a.NeedleAngle = -12
	assert.Equal(t, 0.0, a.DisplayAngle())

	a.NeedleAngle = 195
	assert.Equal(t, 180.0, a.DisplayAngle())

	a.NeedleAngle = 42
	assert.Equal(t, 42.0, a.DisplayAngle())

	rng := rand.New(rand.NewSource(3))
	cell := sensor.NewCell()
	b := NewAnimation(cell)
	for i := 0; i < 500; i++ {
		cell.Store(rng.Float64() * 2.5)
		b.Update(PhaseReading)
		d := b.DisplayAngle()
		require.True(t, d >= 0 && d <= 180, "display angle %f", d)
	}
}

func TestAnimationGlowBounces(t *testing.T) {
	a := NewAnimation(sensor.NewCell())

	for i := 0; i < 20; i++ {
		a.Update(PhaseWaiting)
	}
	assert.Equal(t, 100, a.GlowIntensity)

	a.Update(PhaseWaiting)
	assert.Equal(t, 95, a.GlowIntensity)

	for i := 0; i < 19; i++ {
		a.Update(PhaseWaiting)
	}
	assert.Equal(t, 0, a.GlowIntensity)

	a.Update(PhaseWaiting)
	assert.Equal(t, 5, a.GlowIntensity)

	for i := 0; i < 1000; i++ {
		a.Update(PhaseReading)
		require.True(t, a.GlowIntensity >= 0 && a.GlowIntensity <= 100)
	}
}

func TestAnimationResultPulse(t *testing.T) {
	a := NewAnimation(sensor.NewCell())
	a.PulseTime = 0.5

	a.Update(PhaseResult)
	assert.InDelta(t, 1+0.3*math.Abs(math.Sin(1.5)), a.ResultScale, 1e-12)
	assert.InDelta(t, 50+80*math.Abs(math.Sin(2.0)), a.ResultGlow, 1e-12)
	assert.InDelta(t, 0.6, a.PulseTime, 1e-12)

	a.Update(PhaseWaiting)
	assert.Equal(t, 1.0, a.ResultScale)
	assert.Zero(t, a.ResultGlow)
}

func TestAnimationPulseClocks(t *testing.T) {
	a := NewAnimation(sensor.NewCell())
	for i := 0; i < 10; i++ {
		a.Update(PhaseWaiting)
	}
	assert.InDelta(t, 1.0, a.PulseTime, 1e-9)
	assert.InDelta(t, 0.5, a.WaitingPulse, 1e-9)
}

func TestValueToAngle(t *testing.T) {
	assert.Equal(t, 180.0, ValueToAngle(0))
	assert.Equal(t, 90.0, ValueToAngle(1.25))
	assert.Equal(t, 0.0, ValueToAngle(2.5))
}
