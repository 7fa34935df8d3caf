package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"wgtui/internal/peer"
	"wgtui/internal/ui/textutil"
)

const highlightSymbol = ">"

// peerColumnShares are the Name, Address and Public Key widths in percent.
var peerColumnShares = [3]int{30, 30, 40}

// renderPeerTable draws peers as a table sized to width x height.
// A fresh table.Model is built per call; the selection comes from peers.
func renderPeerTable(peers *SelectableList[peer.Peer], width, height int, focused bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if peers.Len() == 0 {
		return Styles.Empty.Render(textutil.Truncate("No peers. Press a to add one.", width))
	}

	cell := table.DefaultStyles().Cell
	pad := cell.GetHorizontalPadding()
	avail := max(width-(len(highlightSymbol)+pad)-3*pad, 0)
	cols := []table.Column{{Title: "", Width: len(highlightSymbol)}}
	for i, title := range [3]string{"Name", "Address", "Public Key"} {
		cols = append(cols, table.Column{Title: title, Width: avail * peerColumnShares[i] / 100})
	}

	sel, hasSel := peers.Selected()
	rows := make([]table.Row, peers.Len())
	for i, p := range peers.Items() {
		marker := " "
		if hasSel && i == sel {
			marker = highlightSymbol
		}
		f := p.Fields()
		rows[i] = table.Row{marker, f[0], f[1], f[2]}
	}

	styles := table.DefaultStyles()
	styles.Header = Styles.TableHeader.Padding(0, 1)
	styles.Cell = cell
	styles.Selected = lipgloss.NewStyle()
	if hasSel {
		styles.Selected = Styles.TableSelected
		if !focused {
			styles.Selected = Styles.Normal
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithWidth(width),
		table.WithFocused(focused),
		table.WithStyles(styles),
	)
	if hasSel {
		t.SetCursor(sel)
	}
	return t.View()
}
