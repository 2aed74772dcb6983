package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	colorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	colorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	colorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

var (
	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			PaddingRight(2).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorBorder)

	groupStyle       = lipgloss.NewStyle().PaddingLeft(1)
	dateStyle        = lipgloss.NewStyle().PaddingLeft(3)
	activeGroupStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)

	headerStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	countStyle     = lipgloss.NewStyle().Foreground(colorBlue)
	itemStyle      = lipgloss.NewStyle().PaddingLeft(2)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	completedStyle = lipgloss.NewStyle().Foreground(colorGray).Strikethrough(true)

	formStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue)

	alertStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(colorGray)
)

const sidebarWidth = 24
