package ui

import (
	"math"

	"breathalyzer.klederson.com/internal/config"
	"breathalyzer.klederson.com/internal/gauge"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	promptText     = "PREMI IL PULSANTE PER INIZIARE"
	demoButtonHint = "MODALITÀ DEMO - Premi SPAZIO per simulare il pulsante"
	hueSpeed       = 0.05
)

// PromptColors returns the cycling prompt colour and its pulse alpha in
// [0, 1] for the given waiting pulse.
func PromptColors(pulse float64) (lipgloss.Color, float64) {
	hue := math.Mod(pulse*hueSpeed, 1) * 360
	c := colorful.Hsv(hue, 1, 1)
	alpha := (128 + 127*math.Abs(math.Sin(pulse))) / 255
	return lipgloss.Color(c.Hex()), alpha
}

// RenderWaiting renders the attract screen with the pulsing start prompt.
func RenderWaiting(width, height int, pulse float64, manualButton bool, rows []lipgloss.Color) string {
	cycle, alpha := PromptColors(pulse)
	fill := gauge.Blend(gauge.ColorBlack, cycle, alpha*0.6)

	prompt := StylePromptBox.
		Background(fill).
		Render(lipgloss.NewStyle().Background(fill).Foreground(ColorWhite).Bold(true).Render(promptText))

	var lines []string
	lines = append(lines, "", StyleTitle.Render(config.Title), "", "")
	lines = Stack(lines, prompt)
	if manualButton {
		lines = append(lines, "", "", StyleHint.Render(demoButtonHint))
	}

	return Paint(Center(lines, height), width, rows)
}
