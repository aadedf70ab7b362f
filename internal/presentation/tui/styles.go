package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kyriakid1s/portfolio/pkg/runner"
	"github.com/kyriakid1s/portfolio/pkg/session"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3f3f46"))

	headerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#27272a")).
			Foreground(lipgloss.Color("#a1a1aa")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#18181b")).
			Foreground(lipgloss.Color("#71717a")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(runner.ColorCommand))

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")).
			Padding(0, 1)

	activeSuggestionStyle = suggestionStyle.
				Background(lipgloss.Color("#3f3f46")).
				Foreground(lipgloss.Color("#fafafa"))

	lineStyles = map[session.Style]lipgloss.Style{
		session.StyleCommand: lipgloss.NewStyle().Foreground(lipgloss.Color(runner.ColorCommand)),
		session.StyleResult:  lipgloss.NewStyle().Foreground(lipgloss.Color(runner.ColorResult)),
		session.StyleError:   lipgloss.NewStyle().Foreground(lipgloss.Color(runner.ColorError)),
	}
)
