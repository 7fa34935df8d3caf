package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wgtui/internal/peer"
)

func TestCreatePeerModal_HandleKey(t *testing.T) {
	m := NewCreatePeerModal()

	if req := m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("home"), Paste: true}); req != nil {
		t.Errorf("typing returned %T", req)
	}
	m.HandleKey(keyMsg("space"))
	m.HandleKey(keyMsg("x"))
	if got := m.Form.Fields[FieldName].Value; got != "home x" {
		t.Errorf("Name = %q, want %q", got, "home x")
	}

	if _, ok := m.HandleKey(keyMsg("ctrl+g")).(GenerateKeyMsg); !ok {
		t.Error("Ctrl+G should request a key pair")
	}
	if req, ok := m.HandleKey(keyMsg("enter")).(SubmitPeerMsg); !ok || req.Form != m.Form {
		t.Errorf("Enter should submit the form, got %#v", req)
	}
	if _, ok := m.HandleKey(keyMsg("esc")).(DismissModalMsg); !ok {
		t.Error("Esc should dismiss")
	}
	if m.HandleKey(keyMsg("up")) != nil {
		t.Error("arrow keys are ignored by the form")
	}
}

func TestDeletePeerModal_HandleKey(t *testing.T) {
	target := peer.Peer{Name: "alice", PublicKey: "pubkeyXYZ"}
	m := NewDeletePeerModal(target, 4)

	req, ok := m.HandleKey(keyMsg("y")).(DeletePeerMsg)
	if !ok || req.Target != target || req.Index != 4 {
		t.Errorf("y: got %#v", req)
	}
	for _, k := range []string{"n", "enter", "esc"} {
		if _, ok := m.HandleKey(keyMsg(k)).(DismissModalMsg); !ok {
			t.Errorf("%s should dismiss", k)
		}
	}
	if m.HandleKey(keyMsg("Y")) != nil {
		t.Error("only lowercase y confirms")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		modal Modal
		want  ModalKind
	}{
		{nil, ModalNone},
		{NewCreatePeerModal(), ModalCreate},
		{NewEditPeerModal(peer.Peer{}, 0), ModalEdit},
		{NewDeletePeerModal(peer.Peer{}, 0), ModalConfirmDelete},
	}
	for _, tt := range tests {
		if got := KindOf(tt.modal); got != tt.want {
			t.Errorf("KindOf(%T) = %v, want %v", tt.modal, got, tt.want)
		}
	}
}
