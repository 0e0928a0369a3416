package gauge

import "breathalyzer.klederson.com/internal/config"

// glowTrailDeg is how far either side of the needle the arc lights up.
const glowTrailDeg = 45.0

// Glow lights the dial arc around the needle. Its strength breathes with
// the animation's glow intensity.
type Glow struct {
	Angle     float64 // Needle angle in degrees
	Intensity int     // [0, GlowMax]
}

// Strength returns the overall glow level in [0, 1], following the arc
// alpha of 50 + intensity out of 150.
func (g Glow) Strength() float64 {
	return float64(50+g.Intensity) / float64(50+config.GlowMax)
}

// At returns the glow [0, 1] for a cell at the given dial angle.
// Returns 0 outside the trail.
func (g Glow) At(cellAngle float64) float64 {
	diff := AngleDiff(g.Angle, cellAngle)
	if diff > glowTrailDeg {
		return 0
	}
	// Linear falloff: full at the needle, nothing at the trail end
	return (1.0 - diff/glowTrailDeg) * g.Strength()
}
