package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorOrange  = lipgloss.Color("#FFB86C")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")
	colorPanel   = lipgloss.Color("#44475A")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	numStyle      = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	headerStyle   = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite)
	helpStyle     = lipgloss.NewStyle().Foreground(colorGray)
	dimStyle      = lipgloss.NewStyle().Foreground(colorGray)
	italicStyle   = lipgloss.NewStyle().Foreground(colorGray).Italic(true)
	insightStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	labelStyle    = lipgloss.NewStyle().Foreground(colorOrange).Bold(true)
	focusStyle    = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)
