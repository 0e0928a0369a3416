package gauge

import (
	"strings"
	"testing"

	"breathalyzer.klederson.com/internal/config"
	"breathalyzer.klederson.com/internal/meter"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainRows(t *testing.T, s string) [][]rune {
	t.Helper()
	lines := strings.Split(ansi.Strip(s), "\n")
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
	}
	return rows
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(40, 12)
	assert.Equal(t, 20, l.CenterX)
	assert.Equal(t, 10, l.CenterY)
	assert.Equal(t, 18.0, l.Radius)

	tall := NewLayout(40, 40)
	assert.Equal(t, 18.0, tall.Radius, "width bound")
}

func TestRenderTooSmall(t *testing.T) {
	assert.Empty(t, Render(10, 20, Frame{}))
	assert.Empty(t, Render(40, 5, Frame{}))
}

func TestRenderNeedleUp(t *testing.T) {
	rows := plainRows(t, Render(40, 12, Frame{Needle: 90, Glow: 50}))
	require.Len(t, rows, 12)
	for _, r := range rows {
		require.Len(t, r, 40)
	}

	assert.Equal(t, 'O', rows[10][20], "hub")
	assert.Equal(t, '^', rows[3][20], "needle tip")
	assert.Equal(t, '|', rows[5][20], "needle shaft")
}

func TestRenderNeedleClamped(t *testing.T) {
	rows := plainRows(t, Render(40, 12, Frame{Needle: -30}))
	assert.Equal(t, '>', rows[10][34], "below the dial draws at the right stop")

	rows = plainRows(t, Render(40, 12, Frame{Needle: 210}))
	assert.Equal(t, '<', rows[10][6], "past the left stop draws at the left stop")
}

func TestRenderScaleLabels(t *testing.T) {
	out := ansi.Strip(Render(60, 16, Frame{Needle: 90}))
	for _, label := range []string{"0.0", "0.5", "1.0", "1.5", "2.0", "2.5"} {
		assert.Contains(t, out, label)
	}
}

func TestRenderParticles(t *testing.T) {
	f := Frame{
		Needle: 180,
		Particles: []meter.Particle{
			{X: config.GaugeCenterX + 125, Y: config.GaugeCenterY - 60, Life: 200, Size: 5, Tint: meter.TintRed},
		},
	}
	rows := plainRows(t, Render(40, 12, f))
	// 125 px right and 60 px up on an 18-column dial.
	assert.Equal(t, 'o', rows[8][29])
}

func TestBlend(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#000000"), Blend(ColorBlack, ColorWhite, 0))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend(ColorBlack, ColorWhite, 1))
	assert.Equal(t, lipgloss.Color("#808080"), Blend(ColorBlack, ColorWhite, 0.5))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend(ColorBlack, ColorWhite, 3), "t is clamped")
}

func TestBandColor(t *testing.T) {
	assert.Equal(t, ColorNeonGreen, BandColor(meter.BandSober))
	assert.Equal(t, ColorNeonYellow, BandColor(meter.BandCaution))
	assert.Equal(t, ColorOrange, BandColor(meter.BandImpaired))
	assert.Equal(t, ColorNeonRed, BandColor(meter.BandDanger))
}
