package ui

import "github.com/charmbracelet/lipgloss"

// Fairground palette
var (
	ColorGold       = lipgloss.Color("#FFD23F")
	ColorAmber      = lipgloss.Color("#F4A259")
	ColorCream      = lipgloss.Color("#F5F1E3")
	ColorMuted      = lipgloss.Color("#8C8A80")
	ColorDim        = lipgloss.Color("#4A4840")
	ColorBarBg      = lipgloss.Color("#2B1D0E")
	ColorBorderNorm = lipgloss.Color("#B5838D")
	ColorBorderHot  = lipgloss.Color("#FFD23F")
	ColorError      = lipgloss.Color("#FF3300")
	ColorWinner     = lipgloss.Color("#7CFC00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorGold).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorCream)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorCream).
			Padding(0, 1)

	StyleStatusSpinning = lipgloss.NewStyle().
				Foreground(ColorGold).
				Bold(true)

	StyleStatusIdle = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderHot)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true).
			Padding(0, 1)

	StyleEntryName = lipgloss.NewStyle().
			Foreground(ColorCream).
			Bold(true)

	StyleEntryWeight = lipgloss.NewStyle().
				Foreground(ColorMuted)

	StyleWinner = lipgloss.NewStyle().
			Foreground(ColorWinner).
			Bold(true)

	StyleInputActive = lipgloss.NewStyle().
				Foreground(ColorGold).
				Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// black text on gold = unmissable cursor row
	StyleCursorRow = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorGold).
			Bold(true)
)
