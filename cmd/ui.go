package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/luisfpatrocinio/patro/internal/settings"
)

// styles is the console style set, built once from the settings palette.
type styles struct {
	header  lipgloss.Style
	accent  lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(p settings.Palette) styles {
	return styles{
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Header)).
			Bold(true),
		accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),
		warn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),
		fail: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)),
		dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")).
			Italic(true),
	}
}
