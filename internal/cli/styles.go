package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/skilltrack/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	fullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	partialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	labelStyle = lipgloss.NewStyle().
			Width(22).
			Foreground(lipgloss.Color("245"))
)

// levelMark renders a completion level as a checkbox.
func levelMark(level models.CompletionLevel) string {
	switch level {
	case models.CompletionFull:
		return fullStyle.Render("[x]")
	case models.CompletionPartial:
		return partialStyle.Render("[~]")
	default:
		return "[ ]"
	}
}

// cellMark renders one heat map square.
func cellMark(level models.CompletionLevel, inRange, future bool) string {
	switch {
	case future:
		return mutedStyle.Render(" ")
	case !inRange:
		return mutedStyle.Render("·")
	case level == models.CompletionFull:
		return fullStyle.Render("█")
	case level == models.CompletionPartial:
		return partialStyle.Render("▒")
	default:
		return mutedStyle.Render("░")
	}
}
