package ui

import "wgtui/internal/peer"

// PeersLoadedMsg carries the result of listing peers from the provider.
type PeersLoadedMsg struct {
	Peers []peer.Peer
	Err   error
}

// LogsLoadedMsg carries the result of reading connection events.
type LogsLoadedMsg struct {
	Logs []peer.LogEntry
	Err  error
}

// DismissModalMsg is returned by a modal when the user cancels it (Esc).
type DismissModalMsg struct{}

// SubmitPeerMsg is returned by a form modal on Enter.
type SubmitPeerMsg struct {
	Form *FieldForm
}

// DeletePeerMsg is returned by the delete confirmation on y.
type DeletePeerMsg struct {
	Target peer.Peer
	Index  int
}

// GenerateKeyMsg is returned by the create form on Ctrl+G.
type GenerateKeyMsg struct{}
