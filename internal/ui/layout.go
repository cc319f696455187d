package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the wheel panel and entry list horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, wheelPanel, entryList, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, wheelPanel, entryList)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
