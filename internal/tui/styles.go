package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor; the background flag follows the effective
// theme rather than terminal detection.
var (
	colorText   = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	headerDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	artStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Width(6).
			Foreground(colorDim)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	intervalStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(lipgloss.AdaptiveColor{Light: "254", Dark: "236"})

	errorBarStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	startupOnStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	startupOffStyle = lipgloss.NewStyle().Foreground(colorYellow)

	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)
