package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Instructions are the steps shown before the reading starts.
var Instructions = []string{
	"1. Mettiti a 10-15cm dal buco",
	"2. Soffia per circa 5 secondi",
	"3. Aspetta che appaia il risultato finale",
	"",
	"",
	"-- Questo è un gioco, non è preciso --",
}

// RenderInstructions renders the instruction box and the countdown.
func RenderInstructions(width, height int, remaining float64, rows []lipgloss.Color) string {
	body := make([]string, 0, len(Instructions)*2)
	for i, line := range Instructions {
		if i > 0 {
			body = append(body, "")
		}
		body = append(body, line)
	}
	text := lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorBoxFill).
		Align(lipgloss.Center).
		Render(strings.Join(body, "\n"))

	var lines []string
	lines = append(lines, StyleTitle.Render("ISTRUZIONI PER L'USO"), "")
	lines = Stack(lines, StyleInstructionBox.Render(text))
	lines = append(lines, "", StyleCountdown.Render(CountdownText(remaining)))

	return Paint(Center(lines, height), width, rows)
}

// CountdownText is the instructions timer line.
func CountdownText(remaining float64) string {
	return fmt.Sprintf("Il test inizierà tra: %.1fs", remaining)
}
