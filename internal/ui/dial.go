package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"breathalyzer.klederson.com/internal/config"
	"breathalyzer.klederson.com/internal/gauge"
	"breathalyzer.klederson.com/internal/meter"
	"github.com/charmbracelet/lipgloss"
)

const (
	dialTitle     = "ETILOMETRO DIGITALE"
	unitText      = "‰ BAC"
	demoLevelHint = "MODALITÀ DEMO - Usa frecce SU/GIÙ per testare"
	minGaugeH     = 6
)

// DialView carries what the reading and result screens show.
type DialView struct {
	Phase       meter.Phase
	Status      string
	Band        meter.Band
	Value       float64 // Live reading, or the high-water mark on the result
	Remaining   float64
	Gauge       gauge.Frame
	ResultScale float64
	ResultGlow  float64
	Level       float64 // Eased [0, 1] fill of the result bar
	History     []float64
	ManualLevel bool
}

// optionalLine is a line below the readout that may be left out on short
// screens. Lower rank goes first.
type optionalLine struct {
	text string
	rank int
}

// RenderDial renders the reading and result screens: status headline,
// half-moon gauge and digital readout. The gauge gets the height the other
// lines leave. Below minGaugeH, optional lines are dropped lowest rank first,
// and if that is still not enough the gauge is left out.
func RenderDial(width, height int, v DialView, rows []lipgloss.Color) string {
	color := gauge.BandColor(v.Band)

	header := []string{
		StyleTitle.Render(dialTitle),
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(v.Status),
		"",
	}
	var footer []string
	footer = append(footer, StyleText.Render(TimerText(v.Phase, v.Remaining)))
	footer = Stack(footer, renderReadout(v, color))
	footer = append(footer, StyleText.Render(unitText))

	barW := width/2 - 4
	if barW < 10 {
		barW = 10
	}
	var extras []optionalLine
	if v.Phase == meter.PhaseResult {
		extras = append(extras, optionalLine{renderLevelBar(v.Level, barW, color), 2})
		if len(v.History) > 0 {
			extras = append(extras, optionalLine{StyleHint.Render(renderSparkline(v.History, barW)), 1})
		}
	}
	if v.ManualLevel {
		extras = append(extras, optionalLine{StyleHint.Render(demoLevelHint), 3})
	}

	avail := height - len(header) - len(footer)
	n := len(extras)
	for n > 0 && avail-n < minGaugeH {
		n--
	}
	gaugeH := avail - n
	if gaugeH < minGaugeH {
		gaugeH = 0
		n = min(len(extras), max(avail, 0))
	}

	lines := header
	if gaugeH > 0 {
		gaugeW := min(width-4, gaugeH*4+4)
		lines = Stack(lines, gauge.Render(gaugeW, gaugeH, v.Gauge))
	}
	lines = append(lines, footer...)
	lines = append(lines, keepRanked(extras, n)...)

	return Paint(lines, width, rows)
}

// keepRanked returns the n highest-ranked lines in their original order.
func keepRanked(extras []optionalLine, n int) []string {
	if n <= 0 {
		return nil
	}
	ranks := make([]int, len(extras))
	for i, e := range extras {
		ranks[i] = e.rank
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	cutoff := ranks[min(n, len(ranks))-1]

	out := make([]string, 0, n)
	for _, e := range extras {
		if e.rank >= cutoff {
			out = append(out, e.text)
		}
	}
	return out
}

// TimerText is the countdown shown above the readout.
func TimerText(phase meter.Phase, remaining float64) string {
	if phase == meter.PhaseResult {
		return fmt.Sprintf("Nuovo test in: %.1fs", remaining)
	}
	return fmt.Sprintf("Tempo: %.1fs", remaining)
}

// FormatValue formats a reading the way the readout shows it.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func renderReadout(v DialView, color lipgloss.Color) string {
	digits := lipgloss.NewStyle().
		Foreground(color).
		Background(gauge.ColorBlack).
		Bold(true).
		Render(SevenSegment(FormatValue(v.Value)))

	if v.Phase != meter.PhaseResult {
		return StyleReadout.BorderForeground(color).Render(digits)
	}

	// The result box breathes: wider with the scale pulse, brighter with
	// the glow pulse.
	pad := 5 + int(math.Round((v.ResultScale-1)*10))
	glow := 0.0
	if v.ResultGlow > 0 {
		glow = (v.ResultGlow - 50) / 80
	}
	border := gauge.Blend(color, ColorWhite, glow*0.6)
	return StyleResultReadout.
		Padding(1, pad).
		BorderForeground(border).
		Render(digits)
}

// renderLevelBar draws the result as a filled bar of the full scale.
func renderLevelBar(ratio float64, width int, color lipgloss.Color) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))

	filledPart := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("|", filled))
	emptyPart := lipgloss.NewStyle().Foreground(ColorDimGray).Render(strings.Repeat("-", width-filled))
	return StyleHint.Render("[") + filledPart + emptyPart + StyleHint.Render("]")
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	// Scaled to the full dial.
	start := 0
	if len(values) > width {
		start = len(values) - width
	}

	buf := make([]byte, 0, len(values)-start)
	for i := start; i < len(values); i++ {
		idx := int(values[i] / config.MaxValue * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		buf = append(buf, chars[idx])
	}
	return string(buf)
}
