package ui

// RenderWheelPanel wraps wheel content with a styled border. The border lights
// up while the wheel is spinning.
// The actual wheel rendering is done externally to avoid import cycles.
func RenderWheelPanel(width, height int, wheelContent, legend string, spinning bool) string {
	content := wheelContent + "\n" + legend
	sty := StylePanelBorder
	if spinning {
		sty = StylePanelActive
	}
	return sty.Width(width - 2).Height(height - 2).Render(content)
}
