package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"wgtui/internal/peer"
)

// Modal is the transient dialog that takes keyboard input away from the main view.
// The set of implementations is closed; a nil Modal means none is open.
type Modal interface {
	Kind() ModalKind
	// HandleKey applies msg to the modal's own state and returns the request,
	// if any, the controller must carry out (dismiss, submit, delete).
	HandleKey(msg tea.KeyMsg) tea.Msg
	// View renders the modal box.
	View() string
	modal()
}

var (
	_ Modal = (*CreatePeerModal)(nil)
	_ Modal = (*EditPeerModal)(nil)
	_ Modal = (*DeletePeerModal)(nil)
)

// CreatePeerModal collects a new peer.
type CreatePeerModal struct {
	Form *FieldForm
}

// NewCreatePeerModal opens an empty create form.
func NewCreatePeerModal() *CreatePeerModal {
	return &CreatePeerModal{Form: NewFieldForm(FormCreate)}
}

func (m *CreatePeerModal) Kind() ModalKind { return ModalCreate }
func (m *CreatePeerModal) modal()          {}

// HandleKey implements Modal. Ctrl+G asks for a generated key pair.
func (m *CreatePeerModal) HandleKey(msg tea.KeyMsg) tea.Msg {
	if msg.Type == tea.KeyCtrlG {
		return GenerateKeyMsg{}
	}
	return handleFormKey(m.Form, msg)
}

// View implements Modal.
func (m *CreatePeerModal) View() string {
	return renderFormModal("Add Peer", m.Form, "(Ctrl+G) generate key")
}

// EditPeerModal edits the peer captured when it opened.
type EditPeerModal struct {
	Form *FieldForm
}

// NewEditPeerModal opens a form seeded from p at row index.
func NewEditPeerModal(p peer.Peer, index int) *EditPeerModal {
	return &EditPeerModal{Form: FieldFormFromPeer(p, index)}
}

func (m *EditPeerModal) Kind() ModalKind { return ModalEdit }
func (m *EditPeerModal) modal()          {}

// HandleKey implements Modal.
func (m *EditPeerModal) HandleKey(msg tea.KeyMsg) tea.Msg {
	return handleFormKey(m.Form, msg)
}

// View implements Modal.
func (m *EditPeerModal) View() string {
	return renderFormModal("Edit Peer", m.Form, "")
}

// DeletePeerModal asks before removing Target.
type DeletePeerModal struct {
	Target peer.Peer
	Index  int
}

// NewDeletePeerModal opens the confirmation for p at row index.
func NewDeletePeerModal(p peer.Peer, index int) *DeletePeerModal {
	return &DeletePeerModal{Target: p, Index: index}
}

func (m *DeletePeerModal) Kind() ModalKind { return ModalConfirmDelete }
func (m *DeletePeerModal) modal()          {}

// HandleKey implements Modal. Only y confirms; n, Enter and Esc cancel.
func (m *DeletePeerModal) HandleKey(msg tea.KeyMsg) tea.Msg {
	switch msg.String() {
	case "y":
		return DeletePeerMsg{Target: m.Target, Index: m.Index}
	case "n", "enter", "esc":
		return DismissModalMsg{}
	}
	return nil
}

// handleFormKey edits f in place and returns a request for the keys that leave the form.
func handleFormKey(f *FieldForm, msg tea.KeyMsg) tea.Msg {
	switch msg.Type {
	case tea.KeyEsc:
		return DismissModalMsg{}
	case tea.KeyEnter:
		return SubmitPeerMsg{Form: f}
	case tea.KeyTab:
		f.NextField()
	case tea.KeyShiftTab:
		f.PrevField()
	case tea.KeyBackspace:
		f.Backspace()
	case tea.KeySpace:
		f.PushChar(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			f.PushChar(r)
		}
	}
	return nil
}
