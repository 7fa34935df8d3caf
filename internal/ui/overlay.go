package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// cutANSI returns the cells [left, right) of s, keeping escape sequences intact.
func cutANSI(s string, left, right int) string {
	return ansi.Cut(s, left, right)
}

// placeOverlay paints fg over bg with its top-left corner at r.X, r.Y.
// Rows of bg outside r are left untouched.
func placeOverlay(bg, fg string, r Rect, width int) string {
	if r.Empty() {
		return bg
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	for i := 0; i < len(fgLines) && i < r.H; i++ {
		y := r.Y + i
		if y < 0 || y >= len(bgLines) {
			continue
		}
		line := bgLines[y]
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		fgLine := fgLines[i]
		if w := ansi.StringWidth(fgLine); w < r.W {
			fgLine += strings.Repeat(" ", r.W-w)
		} else if w > r.W {
			fgLine = ansi.Cut(fgLine, 0, r.W)
		}
		bgLines[y] = ansi.Cut(line, 0, r.X) + fgLine + ansi.Cut(line, r.X+r.W, width)
	}
	return strings.Join(bgLines, "\n")
}

// blockSize measures a rendered block.
func blockSize(s string) Size {
	if s == "" {
		return Size{}
	}
	lines := strings.Split(s, "\n")
	w := 0
	for _, ln := range lines {
		w = max(w, ansi.StringWidth(ln))
	}
	return Size{W: w, H: len(lines)}
}
