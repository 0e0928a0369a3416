package ui

import (
	"fmt"
	"strings"

	"breathalyzer.klederson.com/internal/config"
	"breathalyzer.klederson.com/internal/meter"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar. Manual keys are only listed when
// they do something.
func RenderMenuBar(width int, phase meter.Phase, manualButton, manualLevel bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	type key struct{ key, label string }
	var keys []key
	if manualButton {
		keys = append(keys, key{"SPACE", " start"})
	}
	if manualLevel {
		keys = append(keys, key{"UP/DN", " level"}, key{"R", "eset"})
	}
	keys = append(keys, key{"Q", "uit"})

	menu := ""
	for _, k := range keys {
		menu += StyleMenuLabel.Render("  ") + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	right := StyleStatusLive.Render(strings.ToUpper(phase.String())) + StyleMenuLabel.Render(" ")

	left := StyleMenuKey.Render(title) + menu

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
	}
	padding := StyleMenuLabel.Render(strings.Repeat(" ", gap))

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
