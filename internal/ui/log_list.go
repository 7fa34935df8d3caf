package ui

import (
	"strings"

	"wgtui/internal/peer"
	"wgtui/internal/ui/textutil"
)

// renderLogList draws one line per entry, scrolled so the cursor stays visible.
func renderLogList(logs *SelectableList[peer.LogEntry], width, height int, focused bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if logs.Len() == 0 {
		return Styles.Empty.Render(textutil.Truncate("No events yet.", width))
	}

	sel, hasSel := logs.Selected()
	start := 0
	if hasSel && sel >= height {
		start = sel - height + 1
	}
	end := min(start+height, logs.Len())

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		entry := logs.Items()[i]
		marker := "  "
		if hasSel && i == sel {
			marker = highlightSymbol + " "
		}
		line := marker + textutil.Truncate(entry.String(), width-len(marker))
		switch {
		case hasSel && i == sel && focused:
			line = Styles.Selected.Render(line)
		case entry.Status == peer.Connected:
			line = Styles.Connected.Render(line)
		default:
			line = Styles.Muted.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
