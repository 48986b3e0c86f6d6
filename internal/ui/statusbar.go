package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo carries the fields shown in the bottom status bar.
type StatusInfo struct {
	Hunting   bool
	Balance   string
	Collected int
	Remaining int
	FindLimit string
	Notice    string
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	state := ""
	if info.Hunting {
		state = StyleStatusHunting.Render("[HUNTING]")
	} else {
		state = StyleStatusPaused.Render("[PAUSED]")
	}

	stats := fmt.Sprintf(" Wallet: %s  Found: %d  Left: %d  Limit: %s",
		info.Balance, info.Collected, info.Remaining, info.FindLimit)

	left := state + StyleStatusBar.Foreground(ColorAmber).Render(stats)
	right := ""
	if info.Notice != "" {
		right = StyleMenuLabel.Render(info.Notice) + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
