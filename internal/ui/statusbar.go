package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: the last message on the left,
// wheel counters on the right.
func RenderStatusBar(width int, message string, isErr bool, entries int, rotationDeg float64) string {
	msg := StyleStatusIdle.Render(message)
	if isErr {
		msg = StyleStatusError.Render(message)
	}

	info := StyleStatusBar.Foreground(ColorMuted).
		Render(fmt.Sprintf("Entries: %d  Rotation: %ddeg", entries, int(rotationDeg)))

	gap := width - lipgloss.Width(msg) - lipgloss.Width(info) - 2
	if gap < 1 {
		gap = 1
	}
	return StyleStatusBar.Width(width).Render(msg + strings.Repeat(" ", gap) + info)
}
