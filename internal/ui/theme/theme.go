package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, introspective, high contrast on dark terminals
var (
	Primary   = lipgloss.Color("#7C9CF5") // Periwinkle
	Secondary = lipgloss.Color("#34D399") // Emerald
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Warning   = lipgloss.Color("#FB923C") // Orange
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#E2E8F0") // Light Slate
	TextDim   = lipgloss.Color("#64748B") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Near Black
	BgCard    = lipgloss.Color("#1A2234") // Dark Blue-Gray
	Border    = lipgloss.Color("#2D3A52") // Muted Blue
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Positive = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Negative = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Caution = lipgloss.NewStyle().
		Foreground(Warning)
)

// Components
var (
	GaugeFilled = lipgloss.NewStyle().
			Background(Secondary)

	GaugeEmpty = lipgloss.NewStyle().
			Background(Border)

	TypeCode = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)
