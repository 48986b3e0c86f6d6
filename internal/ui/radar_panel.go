package ui

// RenderRadarPanel frames the radar plot and its legend in a panel
// border. The plot itself is rendered by the radar package to avoid an
// import cycle.
func RenderRadarPanel(width, height int, plot, legend string) string {
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(plot + "\n" + legend)
}
