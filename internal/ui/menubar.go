package ui

import (
	"fmt"
	"strings"

	"srboli-wheel/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, strategy string, spinning bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"SPC", " spin"},
		{"A", "dd"},
		{"I", "mport"},
		{"D", "elete"},
		{"C", "lear"},
		{"Q", "uit"},
	}

	var menu strings.Builder
	for _, k := range keys {
		menu.WriteString("  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label))
	}

	status := StyleStatusIdle.Render("READY")
	if spinning {
		status = StyleStatusSpinning.Render("SPINNING")
	}
	mode := StyleMenuLabel.Render("Pick: " + strategy)

	left := StyleMenuKey.Render(title) + menu.String()
	right := status + "  " + mode + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
