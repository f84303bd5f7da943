package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/duetask/internal/due"
)

// Color palette
var (
	// Urgency tier colors
	TierGreenColor  = lipgloss.Color("#27D629")
	TierYellowColor = lipgloss.Color("#DBD825")
	TierRedColor    = lipgloss.Color("#E62215")

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Surface   = lipgloss.Color("#16213e")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	TaskListStyle = lipgloss.NewStyle().
			Padding(1, 2)

	TaskItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TaskItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	CountdownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// TierStyle returns the label style for an urgency tier. TierNone renders in
// the default foreground.
func TierStyle(tier due.Tier) lipgloss.Style {
	switch tier {
	case due.TierGreen:
		return lipgloss.NewStyle().Foreground(TierGreenColor)
	case due.TierYellow:
		return lipgloss.NewStyle().Foreground(TierYellowColor)
	case due.TierRed:
		return lipgloss.NewStyle().Foreground(TierRedColor)
	default:
		return lipgloss.NewStyle()
	}
}
