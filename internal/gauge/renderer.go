package gauge

import (
	"fmt"
	"math"
	"strings"

	"breathalyzer.klederson.com/internal/config"
	"breathalyzer.klederson.com/internal/meter"
	"github.com/charmbracelet/lipgloss"
)

// Proportions of the dial, taken from a 250 px reference radius.
const (
	tickInner   = 210.0 / 250.0
	tickOuter   = 235.0 / 250.0
	labelRadius = 190.0 / 250.0
	needleLen   = 200.0 / 250.0
	tickCount   = 10 // intervals; 11 marks from 0 to MaxValue
)

// Frame is everything the dial needs for one draw.
type Frame struct {
	Needle    float64 // Needle angle in degrees, clamped on draw
	Band      meter.Band
	Glow      int
	Particles []meter.Particle
}

type cell struct {
	ch    rune
	color lipgloss.Color
	bold  bool
}

type grid struct {
	w, h  int
	cells [][]cell
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]cell, h)}
	for r := range g.cells {
		g.cells[r] = make([]cell, w)
	}
	return g
}

func (g *grid) set(col, row int, ch rune, color lipgloss.Color, bold bool) {
	if col < 0 || col >= g.w || row < 0 || row >= g.h {
		return
	}
	g.cells[row][col] = cell{ch: ch, color: color, bold: bold}
}

func (g *grid) empty(col, row int) bool {
	if col < 0 || col >= g.w || row < 0 || row >= g.h {
		return false
	}
	return g.cells[row][col].ch == 0
}

func (g *grid) text(col, row int, s string, color lipgloss.Color) {
	for i, r := range []rune(s) {
		g.set(col+i, row, r, color, false)
	}
}

// Layout holds the dial placement for a panel of the given size.
type Layout struct {
	CenterX, CenterY int
	Radius           float64
}

// NewLayout places the hub at the bottom centre and fits the half dial.
func NewLayout(width, height int) Layout {
	cx := width / 2
	cy := height - 2
	radius := math.Min(float64(cx-2), float64(cy-1)/AspectRatio)
	if radius < 4 {
		radius = 4
	}
	return Layout{CenterX: cx, CenterY: cy, Radius: radius}
}

// Render produces the half-moon dial with scale, glow, particles and needle
// as a styled string. It only reads f.
func Render(width, height int, f Frame) string {
	if width < 12 || height < 6 {
		return ""
	}

	l := NewLayout(width, height)
	g := newGrid(width, height)
	glow := Glow{Angle: meter.ClampAngle(f.Needle), Intensity: f.Glow}
	status := BandColor(f.Band)

	drawArc(g, l, glow, status)
	drawScale(g, l)
	drawParticles(g, l, f.Particles)
	drawNeedle(g, l, meter.ClampAngle(f.Needle), status)

	return g.String()
}

func drawArc(g *grid, l Layout, glow Glow, status lipgloss.Color) {
	for row := 0; row <= l.CenterY && row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			dist := CellDistance(col, row, l.CenterX, l.CenterY)
			if math.Abs(dist-l.Radius) >= 0.8 {
				continue
			}
			angle := CellAngle(col, row, l.CenterX, l.CenterY)
			if !UpperHalf(angle) {
				continue
			}
			color := Blend(ColorDarkGray, status, glow.At(angle))
			g.set(col, row, arcChar(angle), color, false)
		}
	}

	// Close the half moon along the diameter.
	r := int(math.Round(l.Radius))
	for i := 0; i < 2; i++ {
		g.set(l.CenterX-r+i, l.CenterY, '=', ColorDarkGray, false)
		g.set(l.CenterX+r-i, l.CenterY, '=', ColorDarkGray, false)
	}
}

func drawScale(g *grid, l Layout) {
	for i := 0; i <= tickCount; i++ {
		angle := TickAngle(i, tickCount)
		value := float64(i) * config.MaxValue / tickCount
		color := TickColor(meter.Classify(value))

		for rr := l.Radius * tickInner; rr <= l.Radius*tickOuter; rr += 0.5 {
			col, row := PolarToCell(angle, rr, l.CenterX, l.CenterY)
			g.set(col, row, shaftChar(angle), color, true)
		}

		if i%2 == 0 {
			label := fmt.Sprintf("%.1f", value)
			col, row := PolarToCell(angle, l.Radius*labelRadius, l.CenterX, l.CenterY)
			g.text(col-len(label)/2, row, label, ColorWhite)
		}
	}
}

func drawParticles(g *grid, l Layout, particles []meter.Particle) {
	for _, p := range particles {
		col, row := CanvasToCell(p.X, p.Y, l.Radius, l.CenterX, l.CenterY)
		if !g.empty(col, row) {
			continue
		}
		fade := float64(p.Life) / float64(config.ParticleLife)
		color := Blend(ColorBlack, TintColor(p.Tint), fade)
		g.set(col, row, particleChar(p.Size), color, false)
	}
}

func drawNeedle(g *grid, l Layout, angle float64, status lipgloss.Color) {
	length := l.Radius * needleLen
	steps := int(length * 2)
	if steps < 2 {
		steps = 2
	}
	for s := 1; s < steps; s++ {
		col, row := PolarToCell(angle, length*float64(s)/float64(steps), l.CenterX, l.CenterY)
		g.set(col, row, shaftChar(angle), status, true)
	}
	col, row := PolarToCell(angle, length, l.CenterX, l.CenterY)
	g.set(col, row, arrowTip(angle), ColorWhite, true)

	g.set(l.CenterX-1, l.CenterY, '(', status, true)
	g.set(l.CenterX, l.CenterY, 'O', ColorWhite, true)
	g.set(l.CenterX+1, l.CenterY, ')', status, true)
}

// String renders the grid, one styled rune per cell.
func (g *grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			c := g.cells[row][col]
			if c.ch == 0 {
				sb.WriteByte(' ')
				continue
			}
			sty := lipgloss.NewStyle().Foreground(c.color).Bold(c.bold)
			sb.WriteString(sty.Render(string(c.ch)))
		}
		if row < g.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// sector maps a dial angle onto one of four line directions:
// 0 horizontal, 1 rising, 2 vertical, 3 falling.
func sector(deg float64) int {
	return int(math.Round(math.Mod(deg+360, 180)/45)) % 4
}

// arcChar returns the character for the arc outline, which runs
// perpendicular to the radius.
func arcChar(deg float64) rune {
	switch sector(deg) {
	case 0:
		return '|'
	case 1:
		return '\\'
	case 2:
		return '-'
	default:
		return '/'
	}
}

// shaftChar returns the line character along a radius at the given angle.
func shaftChar(deg float64) rune {
	switch sector(deg) {
	case 0:
		return '-'
	case 1:
		return '/'
	case 2:
		return '|'
	default:
		return '\\'
	}
}

// arrowTip returns the arrowhead character pointing along the angle.
func arrowTip(deg float64) rune {
	switch {
	case deg < 22.5:
		return '>'
	case deg < 67.5:
		return '/'
	case deg < 112.5:
		return '^'
	case deg < 157.5:
		return '\\'
	default:
		return '<'
	}
}

func particleChar(size float64) rune {
	switch {
	case size >= 4:
		return 'o'
	case size >= 2.5:
		return '*'
	default:
		return '.'
	}
}
