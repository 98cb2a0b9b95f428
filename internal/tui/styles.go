package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/poemette/internal/reader"
)

var (
	amberDeepColor  = lipgloss.Color("#78350f")
	amberColor      = lipgloss.Color("#d97706")
	amberLightColor = lipgloss.Color("#fde68a")
	parchmentColor  = lipgloss.Color("#fdf6e3")
	inkColor        = lipgloss.Color("#1f2937")
	mutedColor      = lipgloss.Color("244")
	backdropColor   = lipgloss.Color("#1c1917")
)

var (
	sidebarHeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(amberDeepColor).Background(amberLightColor)
	sidebarLabelStyle     = lipgloss.NewStyle().Bold(true).Foreground(amberColor)
	switcherStyle         = lipgloss.NewStyle().Foreground(amberColor)
	switcherActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(amberColor)
	cardAuthorStyle       = lipgloss.NewStyle().Foreground(mutedColor)
	cardSelectedStyle     = lipgloss.NewStyle().Foreground(amberDeepColor).Background(amberLightColor)
	cursorStyle           = lipgloss.NewStyle().Bold(true).Foreground(amberColor)
	sidebarFooterStyle    = lipgloss.NewStyle().Foreground(amberColor).Faint(true)
	dividerStyle          = lipgloss.NewStyle().Foreground(amberLightColor)
	authorStyle           = lipgloss.NewStyle().Italic(true).Foreground(mutedColor)
	ruleStyle             = lipgloss.NewStyle().Foreground(amberColor).Faint(true)
	yearStyle             = lipgloss.NewStyle().Foreground(mutedColor)
	helperStyle           = lipgloss.NewStyle().Foreground(mutedColor)
	infoStyle             = lipgloss.NewStyle().Foreground(amberColor)
	placeholderIconStyle  = lipgloss.NewStyle().Foreground(amberColor)
	placeholderTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(inkColor)
	narrowHeaderStyle     = lipgloss.NewStyle().Bold(true).Foreground(amberDeepColor)
	menuButtonStyle       = lipgloss.NewStyle().Bold(true).Foreground(parchmentColor).Background(amberColor)
	backdropStyle         = lipgloss.NewStyle().Background(backdropColor).Faint(true)
)

// typographyStyles maps a preset onto terminal attributes for the title and body.
// Terminals cannot switch font families, so each family gets its own emphasis.
func typographyStyles(mode reader.FontMode) (title, body lipgloss.Style) {
	base := lipgloss.NewStyle().Foreground(amberDeepColor)
	switch mode {
	case reader.FontSerif:
		return base.Bold(true), lipgloss.NewStyle().Foreground(inkColor)
	case reader.FontAllura:
		return base.Bold(true).Italic(true).Underline(true), lipgloss.NewStyle().Foreground(inkColor).Italic(true).Faint(true)
	default:
		return base.Bold(true).Italic(true), lipgloss.NewStyle().Foreground(inkColor).Italic(true)
	}
}
