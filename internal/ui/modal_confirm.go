package ui

import "github.com/charmbracelet/lipgloss"

// View implements Modal.
func (m *DeletePeerModal) View() string {
	content := Styles.TitleWarning.Render("Delete Peer") + "\n\n"
	content += Styles.Label.Render(m.Target.Label()) + "\n"
	if m.Target.Address != "" {
		content += Styles.Details.Render(m.Target.Address) + "\n"
	}
	content += "\n" + lipgloss.NewStyle().Bold(true).Render("Confirm? y/N")
	return Styles.BoxDanger.Render(content)
}
