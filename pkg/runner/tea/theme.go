package teaui

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/keepsake/pkg/mood"
)

// Theme centralizes Lip Gloss styles for the UI, derived from the active
// mood so every surface (tabs, chat, calendar) follows the switcher.
type Theme struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Bubble      lipgloss.Style
	BubbleFocus lipgloss.Style
	Time        lipgloss.Style
	Heart       lipgloss.Style
	Day         lipgloss.Style
	DayMemory   lipgloss.Style
	DayToday    lipgloss.Style
	DaySelected lipgloss.Style
}

func themeFor(m mood.Mood) Theme {
	var accent, soft color.Color
	switch m {
	case mood.Night:
		accent, soft = lipgloss.Color("61"), lipgloss.Color("103")
	case mood.Sunny:
		accent, soft = lipgloss.Color("220"), lipgloss.Color("180")
	default: // love
		accent, soft = lipgloss.Color("212"), lipgloss.Color("218")
	}

	return Theme{
		Title:       lipgloss.NewStyle().Foreground(accent).Bold(true),
		Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		TabActive:   lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Bubble:      lipgloss.NewStyle().Foreground(soft),
		BubbleFocus: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Time:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Heart:       lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		Day:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		DayMemory:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		DayToday:    lipgloss.NewStyle().Underline(true),
		DaySelected: lipgloss.NewStyle().Reverse(true),
	}
}
