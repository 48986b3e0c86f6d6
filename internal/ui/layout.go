package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the radar panel and the side column horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, radarPanel, sideColumn, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, radarPanel, sideColumn)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
