package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/reveal"
)

// Brand colors
var (
	Primary     = lipgloss.Color("#6c5ce7")
	Accent      = lipgloss.Color("#ffd700")
	Muted       = lipgloss.Color("#8a8a8a")
	Destructive = lipgloss.Color("#dc3545")
	Success     = lipgloss.Color("#28a745")
	Info        = lipgloss.Color("#17a2b8")
)

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
	ErrorStyle = lipgloss.NewStyle().Foreground(Destructive)
	HelpStyle  = lipgloss.NewStyle().Foreground(Muted).Italic(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// FlashStyle replaces CardStyle while a hit is playing
	FlashStyle = CardStyle.BorderForeground(Destructive).Foreground(Destructive)

	DamageStyle  = lipgloss.NewStyle().Bold(true).Foreground(Destructive)
	VictoryStyle = lipgloss.NewStyle().Bold(true).Foreground(Accent)
)

// RarityColor is the lead color of a rarity's palette
func RarityColor(r entities.Rarity) lipgloss.Color {
	return lipgloss.Color(reveal.Palette(r)[0])
}

// RarityStyle renders reward names in their rarity color
func RarityStyle(r entities.Rarity) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(RarityColor(r))
}
