package ui

import (
	"breathalyzer.klederson.com/internal/gauge"
	"github.com/charmbracelet/lipgloss"
)

// Arcade palette
var (
	ColorWhite     = gauge.ColorWhite
	ColorLightGray = lipgloss.Color("#C8C8C8")
	ColorDimGray   = lipgloss.Color("#6E6E78")
	ColorBoxFill   = lipgloss.Color("#1E1E3C")
	ColorBar       = lipgloss.Color("#141928")
	ColorNeonGreen = gauge.ColorNeonGreen
	ColorYellow    = gauge.ColorNeonYellow
	ColorWarning   = gauge.ColorOrange
	ColorError     = gauge.ColorNeonRed
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorWhite).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorNeonGreen).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorLightGray)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorLightGray).
			Padding(0, 1)

	StyleStatusLive = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorNeonGreen).
			Bold(true)

	StyleStatusManual = lipgloss.NewStyle().
				Background(ColorBar).
				Foreground(ColorWarning).
				Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	StyleText = lipgloss.NewStyle().
			Foreground(ColorWhite)

	StyleHint = lipgloss.NewStyle().
			Foreground(ColorLightGray)

	StyleCountdown = lipgloss.NewStyle().
			Foreground(ColorNeonGreen).
			Bold(true)

	StyleInstructionBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorYellow).
				Background(ColorBoxFill).
				Padding(1, 4)

	StylePromptBox = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorNeonGreen).
			Padding(1, 5)

	StyleReadout = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Background(gauge.ColorBlack).
			Padding(0, 3)

	StyleResultReadout = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				Background(gauge.ColorBlack).
				Padding(1, 5)
)
