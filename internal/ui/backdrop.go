package ui

import (
	"math"
	"strings"

	"breathalyzer.klederson.com/internal/gauge"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Backdrop is the vertical background gradient. Row colours are computed
// once per size and reused every frame until the terminal is resized.
type Backdrop struct {
	width, height int
	rows          []lipgloss.Color
	builds        int
}

// Rows returns the gradient for the given size, rebuilding only on resize.
func (b *Backdrop) Rows(width, height int) []lipgloss.Color {
	if width == b.width && height == b.height && b.rows != nil {
		return b.rows
	}
	b.width, b.height = width, height
	b.rows = make([]lipgloss.Color, height)
	for y := range b.rows {
		ratio := float64(y) / float64(height)
		c := colorful.Color{
			R: (20 + ratio*20) / 255,
			G: (25 + ratio*25) / 255,
			B: (40 + ratio*30) / 255,
		}
		b.rows[y] = lipgloss.Color(c.Hex())
	}
	b.builds++
	return b.rows
}

// Builds returns how many times the gradient has been computed.
func (b *Backdrop) Builds() int {
	return b.builds
}

// Pulse tints every row toward tint by alpha in [0, 1]. The cached rows
// are left untouched.
func Pulse(rows []lipgloss.Color, tint lipgloss.Color, alpha float64) []lipgloss.Color {
	if alpha <= 0 {
		return rows
	}
	out := make([]lipgloss.Color, len(rows))
	for i, c := range rows {
		out[i] = gauge.Blend(c, tint, alpha)
	}
	return out
}

// PulseAlpha is the overlay strength for the background pulse:
// |sin(pulse)| * 30 out of 255.
func PulseAlpha(pulseTime float64) float64 {
	return math.Abs(math.Sin(pulseTime)) * 30 / 255
}

// Paint centres each line on its background row and pads the screen to
// height lines.
func Paint(lines []string, width int, rows []lipgloss.Color) string {
	out := make([]string, len(rows))
	for i, bg := range rows {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], width, "")
		}
		out[i] = lipgloss.NewStyle().
			Background(bg).
			Width(width).
			Align(lipgloss.Center).
			Render(line)
	}
	return strings.Join(out, "\n")
}

// Stack appends a multi-line block to lines.
func Stack(lines []string, block string) []string {
	return append(lines, strings.Split(block, "\n")...)
}

// Center returns lines vertically centred in height.
func Center(lines []string, height int) []string {
	top := (height - len(lines)) / 2
	if top <= 0 {
		return lines
	}
	return append(make([]string, top), lines...)
}
