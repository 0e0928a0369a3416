package gauge

import (
	"breathalyzer.klederson.com/internal/meter"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Neon palette used for status-driven elements.
var (
	ColorNeonGreen  = lipgloss.Color("#39FF14")
	ColorNeonYellow = lipgloss.Color("#FFFF10")
	ColorOrange     = lipgloss.Color("#FFA500")
	ColorNeonRed    = lipgloss.Color("#FF1010")
	ColorDarkGray   = lipgloss.Color("#282828")
	ColorWhite      = lipgloss.Color("#FFFFFF")
	ColorBlack      = lipgloss.Color("#000000")

	// Plain colours for the scale ticks
	colorTickGreen  = lipgloss.Color("#00FF00")
	colorTickYellow = lipgloss.Color("#FFFF00")
	colorTickRed    = lipgloss.Color("#FF0000")
)

// BandColor returns the status colour for a band.
func BandColor(b meter.Band) lipgloss.Color {
	switch b {
	case meter.BandCaution:
		return ColorNeonYellow
	case meter.BandImpaired:
		return ColorOrange
	case meter.BandDanger:
		return ColorNeonRed
	default:
		return ColorNeonGreen
	}
}

// TickColor returns the scale mark colour for a band.
func TickColor(b meter.Band) lipgloss.Color {
	switch b {
	case meter.BandCaution:
		return colorTickYellow
	case meter.BandImpaired:
		return ColorOrange
	case meter.BandDanger:
		return colorTickRed
	default:
		return colorTickGreen
	}
}

// TintColor returns the particle colour.
func TintColor(t meter.Tint) lipgloss.Color {
	switch t {
	case meter.TintOrange:
		return ColorOrange
	case meter.TintRed:
		return ColorNeonRed
	default:
		return ColorNeonYellow
	}
}

// Blend mixes two colours, t = 0 gives a, t = 1 gives b.
func Blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	ca, err := colorful.Hex(string(a))
	if err != nil {
		return b
	}
	cb, err := colorful.Hex(string(b))
	if err != nil {
		return a
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(ca.BlendRgb(cb, t).Clamped().Hex())
}
