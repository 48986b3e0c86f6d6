package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coinhunt.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, tierName string, hunting bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"SPACE", " collect"},
		{"ENTER", " pin"},
		{"U", "npin"},
		{"H", "unt/pause"},
		{"+/-", " limit"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	state := ""
	if hunting {
		state = StyleStatusHunting.Render("HUNTING")
	} else {
		state = StyleStatusPaused.Render("PAUSED")
	}

	tier := StyleMenuLabel.Render(fmt.Sprintf("Tier: %s", tierName))

	left := StyleMenuKey.Render(title) + menu
	right := state + "  " + tier + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
