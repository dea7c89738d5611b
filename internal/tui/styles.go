// Package tui implements the interactive carbon calculator on Bubble Tea.
//
// AppModel owns the navigation state, the habits draft and the terminal
// size, and delegates rendering to one view function per screen.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette. ANSI 256 codes keep the look stable across terminal themes.
const (
	ColorHeader    = lipgloss.Color("42")  // green
	ColorAccent    = lipgloss.Color("35")  // teal
	ColorLabel     = lipgloss.Color("245") // grey
	ColorValue     = lipgloss.Color("255") // white
	ColorMuted     = lipgloss.Color("240")
	ColorBorder    = lipgloss.Color("238")
	ColorHighlight = lipgloss.Color("229")
	ColorOK        = lipgloss.Color("40")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
	ColorInfo      = lipgloss.Color("33")
)

// Comparison bar fills.
const (
	barAverage = "#94A3B8"
	barBelow   = "#10B981"
	barAbove   = "#EF4444"
)

// Shared styles.
//
//nolint:gochecknoglobals // Lip Gloss styles are immutable values shared by every view.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)

	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)

	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	InfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)

	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	OKStyle = lipgloss.NewStyle().Foreground(ColorOK)

	SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FocusedCardStyle = CardStyle.BorderForeground(ColorAccent)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorHeader).
			Padding(1, 2) //nolint:mnd // Vertical and horizontal padding.
)

// Icons used across screens.
const (
	IconLeaf       = "🌱"
	IconPhone      = "📱"
	IconBolt       = "⚡"
	IconGlobe      = "🌍"
	IconImage      = "🖼"
	IconCheck      = "✓"
	IconBullet     = "•"
	IconPointer    = "›"
	IconArrowLeft  = "◀"
	IconArrowRight = "▶"
)

// DisableColor strips color from every subsequent render.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
