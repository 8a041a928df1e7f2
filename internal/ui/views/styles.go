package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	HighlightBg  lipgloss.Style
	Checked      lipgloss.Style
	CardID       lipgloss.Style
	CardLogin    lipgloss.Style
	CardURL      lipgloss.Style
	ErrorBox     lipgloss.Style
	StatusError  lipgloss.Style
	StatusLoad   lipgloss.Style
	StatusOK     lipgloss.Style
	Selection    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Checked:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		CardID:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		CardLogin:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		CardURL:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoad:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Selection:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}

// AccountTypeColor returns the color used for an account type label
func AccountTypeColor(accountType string) string {
	switch accountType {
	case "Organization":
		return "51" // cyan
	case "Bot":
		return "214" // yellow
	default:
		return "252"
	}
}
