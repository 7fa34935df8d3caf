package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wgtui/internal/ui/textutil"
)

// Panel is a bordered body region that can hold focus.
type Panel struct {
	ID     Focus
	Title  string
	Bounds Rect
}

// Inner returns the content size left inside the panel border.
func (p Panel) Inner() Size {
	return Size{
		W: max(p.Bounds.W-Styles.PanelFocused.GetHorizontalFrameSize(), 0),
		H: max(p.Bounds.H-Styles.PanelFocused.GetVerticalFrameSize(), 0),
	}
}

// ContentRows is the number of rows left under the title.
func (p Panel) ContentRows() int {
	return max(p.Inner().H-1, 0)
}

// Render draws content inside the panel border with the title on the first row.
// content is clipped to the panel so the body never grows past its bounds.
func (p Panel) Render(content string, focused bool) string {
	if p.Bounds.Empty() {
		return ""
	}
	style := Styles.PanelBlurred
	if focused {
		style = Styles.PanelFocused
	}
	inner := p.Inner()
	lines := []string{Styles.PanelTitle.Render(textutil.Truncate(p.Title, inner.W))}
	if content != "" {
		lines = append(lines, strings.Split(content, "\n")...)
	}
	lines = clipLines(lines, inner.W, inner.H)
	return style.
		Width(inner.W).
		Height(inner.H).
		Render(strings.Join(lines, "\n"))
}

// clipLines keeps at most h lines, each cut to w cells.
func clipLines(lines []string, w, h int) []string {
	if len(lines) > h {
		lines = lines[:h]
	}
	out := make([]string, len(lines))
	for i, ln := range lines {
		if lipgloss.Width(ln) > w {
			ln = cutANSI(ln, 0, w)
		}
		out[i] = ln
	}
	return out
}
