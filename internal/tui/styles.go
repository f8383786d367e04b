package tui

import "github.com/charmbracelet/lipgloss"

// themeName values stored under the "theme" preference key.
const (
	themeDark  = "dark"
	themeLight = "light"
)

type themeStyles struct {
	app       lipgloss.Style
	title     lipgloss.Style
	help      lipgloss.Style
	userMsg   lipgloss.Style
	botMsg    lipgloss.Style
	status    lipgloss.Style
	overlay   lipgloss.Style
	highlight lipgloss.Style
}

func stylesFor(theme string) themeStyles {
	accent := lipgloss.Color("205")
	secondary := lipgloss.Color("39")
	if theme == themeLight {
		accent = lipgloss.Color("125")
		secondary = lipgloss.Color("25")
	}

	return themeStyles{
		app:       lipgloss.NewStyle().Padding(1, 2),
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:      lipgloss.NewStyle().Faint(true),
		userMsg:   lipgloss.NewStyle().Foreground(secondary).Bold(true),
		botMsg:    lipgloss.NewStyle(),
		status:    lipgloss.NewStyle().Faint(true).Italic(true),
		overlay:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		highlight: lipgloss.NewStyle().Foreground(accent),
	}
}
