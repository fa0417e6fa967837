package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for command output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a94a6"))
	idStyle      = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Underline(true)
)

// statusStyle picks the style for a check or module status.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "ok", "initialized", "loaded", "checked", "fixed":
		return okStyle
	case "skipped":
		return warnStyle
	default:
		return failStyle
	}
}
