package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns the footer help renderer with the shared palette.
func newHelpModel(width int) help.Model {
	h := help.New()
	h.Width = width
	h.ShortSeparator = " | "
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return h
}

// RenderKeyHelp produces the one-line main-view key summary.
// full lists every binding instead of the navigation subset.
func RenderKeyHelp(keys keyMap, width int, full bool) string {
	h := newHelpModel(width)
	if !full {
		return h.ShortHelpView(keys.ShortHelp())
	}
	var all []key.Binding
	for _, group := range keys.FullHelp() {
		all = append(all, group...)
	}
	return h.ShortHelpView(all)
}
