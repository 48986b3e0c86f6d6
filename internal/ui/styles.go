package ui

import "github.com/charmbracelet/lipgloss"

// Treasure palette
var (
	ColorGold     = lipgloss.Color("#FFD75F")
	ColorAmber    = lipgloss.Color("#D7AF5F")
	ColorMidGold  = lipgloss.Color("#AF8700")
	ColorDimGold  = lipgloss.Color("#585123")
	ColorCollect  = lipgloss.Color("#5FFF87")
	ColorLocked   = lipgloss.Color("#FF5F5F")
	ColorWarning  = lipgloss.Color("#FFAF00")
	ColorBarBg    = lipgloss.Color("#262115")
	ColorCursorBg = lipgloss.Color("#3A3114")
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
			Foreground(ColorAmber)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorAmber).
			Padding(0, 1)

	StyleStatusHunting = lipgloss.NewStyle().
				Foreground(ColorCollect).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMidGold)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true).
			Padding(0, 1)

	StyleCoinValue = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	StyleCoinMeta = lipgloss.NewStyle().
			Foreground(ColorMidGold)

	StyleTargetMark = lipgloss.NewStyle().
			Foreground(ColorCollect).
			Bold(true)

	StyleLockedMark = lipgloss.NewStyle().
			Foreground(ColorLocked).
			Bold(true)

	StyleZoneCollect = lipgloss.NewStyle().
				Foreground(ColorCollect).
				Bold(true)

	StyleZoneNear = lipgloss.NewStyle().
			Foreground(ColorAmber)

	StyleZoneFar = lipgloss.NewStyle().
			Foreground(ColorDimGold)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGold)

	StyleCursorLine = lipgloss.NewStyle().
			Background(ColorCursorBg)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorMidGold)
)
