package ui

import (
	"github.com/charmbracelet/lipgloss"

	"wgtui/internal/ui/textutil"
)

const appTitle = "Wireguard TUI"

// View renders the full frame: header, the two body panels, the footer and,
// when a modal is open, the modal centred on top.
func (m *AppModel) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	var overlay string
	var size Size
	if m.Modal != nil {
		overlay = m.Modal.View()
		size = blockSize(overlay)
	}
	l := ComputeLayout(m.Width, m.Height, size)

	var body []string
	for _, p := range l.Panels() {
		focused := p.ID == m.Focus.Current
		inner := p.Inner()
		var content string
		switch p.ID {
		case FocusPeers:
			content = renderPeerTable(m.Peers, inner.W, p.ContentRows(), focused)
		case FocusLogs:
			content = renderLogList(m.Logs, inner.W, p.ContentRows(), focused)
		}
		body = append(body, p.Render(content, focused))
	}

	frame := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(l.Header),
		lipgloss.JoinHorizontal(lipgloss.Top, body...),
		m.renderFooter(l.Footer),
	)
	if overlay != "" {
		frame = placeOverlay(frame, overlay, l.Overlay, m.Width)
	}
	return frame
}

func (m *AppModel) renderHeader(r Rect) string {
	if r.Empty() {
		return ""
	}
	title := appTitle
	if m.Title != "" {
		title += " · " + m.Title
	}
	w := max(r.W-Styles.Header.GetHorizontalFrameSize(), 0)
	return Styles.Header.Width(w).Render(textutil.Truncate(title, w))
}

func (m *AppModel) renderFooter(r Rect) string {
	if r.Empty() {
		return ""
	}
	w := max(r.W-Styles.Footer.GetHorizontalFrameSize(), 0)
	var line string
	switch {
	case m.Status.Err:
		line = Styles.Error.Render(textutil.Truncate(m.Status.Text, w))
	case m.Status.Text != "":
		line = Styles.Status.Render(textutil.Truncate(m.Status.Text, w))
	default:
		line = RenderKeyHelp(m.Keys, w, m.ShowFullHelp)
	}
	return Styles.Footer.Width(w + Styles.Footer.GetHorizontalPadding()).Render(line)
}
