package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorLicorice = lipgloss.Color("#2B1B17")
	colorCandy    = lipgloss.Color("#E4507A")
	colorMint     = lipgloss.Color("#3FB68B")
	colorMuted    = lipgloss.Color("245")
)

// Styles groups the lipgloss styles of the browser.
type Styles struct {
	Title    lipgloss.Style
	Steps    lipgloss.Style
	Search   lipgloss.Style
	Panel    lipgloss.Style
	Group    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Section  lipgloss.Style
	Product  lipgloss.Style
	Price    lipgloss.Style
	Help     lipgloss.Style
	Empty    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(colorCandy).Padding(0, 1),
		Steps:    lipgloss.NewStyle().Foreground(colorMuted),
		Search:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorCandy).Padding(0, 1),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMint).Padding(0, 1),
		Group:    lipgloss.NewStyle().Bold(true).Foreground(colorMint),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(colorCandy),
		Selected: lipgloss.NewStyle().Foreground(colorCandy),
		Section:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorLicorice).MarginTop(1),
		Product:  lipgloss.NewStyle().PaddingLeft(2),
		Price:    lipgloss.NewStyle().Foreground(colorMuted),
		Help:     lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
		Empty:    lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
	}
}
