package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, with crimson as the team accent for running clocks.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Crimson  = lipgloss.Color("#c90016")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(0, 1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Green)

	// Clock is the stopwatch readout; ClockRunning replaces it while a timer
	// is active.
	Clock = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true).
		Padding(0, 2).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(Surface1)

	ClockRunning = Clock.Foreground(Peach).BorderForeground(Crimson)

	FieldLabel   = lipgloss.NewStyle().Foreground(Subtext0).Width(18)
	FieldValue   = lipgloss.NewStyle().Foreground(Text)
	FieldFocused = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
)
