package ui

import (
	"fmt"
	"strings"
	"time"

	"breathalyzer.klederson.com/internal/meter"
	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the bottom bar reports.
type StatusInfo struct {
	Source    string        // "" when manual
	Button    string        // "" when keyboard
	Phase     meter.Phase
	Remaining float64
	Target    float64
	Samples   uint64        // Accepted input lines
	Age       time.Duration // Since the last accepted line
	Particles int
	Capacity  int
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s StatusInfo) string {
	source := StyleStatusLive.Render("[" + s.Source + "]")
	if s.Source == "" {
		source = StyleStatusManual.Render("[MANUAL]")
	}
	button := StyleStatusLive.Render("[" + s.Button + "]")
	if s.Button == "" {
		button = StyleStatusManual.Render("[KEYBOARD]")
	}

	in := fmt.Sprintf("%.2f", s.Target)
	if s.Samples > 0 {
		in += fmt.Sprintf(" (#%d, %.1fs ago)", s.Samples, s.Age.Seconds())
	}
	info := fmt.Sprintf(" Phase: %s  T-%.1fs  In: %s  Particles: %d/%d",
		s.Phase, s.Remaining, in, s.Particles, s.Capacity)

	content := source + StyleStatusBar.Padding(0).Render(" ") + button + StyleStatusBar.Padding(0).Render(info)

	gap := width - lipgloss.Width(content) - 2
	if gap < 0 {
		gap = 0
	}
	padding := StyleStatusBar.Padding(0).Render(strings.Repeat(" ", gap))

	return StyleStatusBar.Width(width).Render(content + padding)
}
