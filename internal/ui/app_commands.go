package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wgtui/internal/peer"
)

// withTimeout derives a context bounded by d. A non-positive d leaves ctx as is.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// loadPeers lists peers from p within timeout. A nil provider yields an empty table.
func loadPeers(ctx context.Context, timeout time.Duration, p peer.Provider) PeersLoadedMsg {
	if p == nil {
		return PeersLoadedMsg{}
	}
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()
	peers, err := p.List(ctx)
	if err != nil {
		log.Printf("load peers: %v", err)
	}
	return PeersLoadedMsg{Peers: peers, Err: err}
}

// loadLogs reads events from src within timeout. A nil source yields an empty log.
func loadLogs(ctx context.Context, timeout time.Duration, src peer.EventSource) LogsLoadedMsg {
	if src == nil {
		return LogsLoadedMsg{}
	}
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()
	logs, err := src.Events(ctx)
	if err != nil {
		log.Printf("load events: %v", err)
	}
	return LogsLoadedMsg{Logs: logs, Err: err}
}

// loadPeersCmd returns a command that lists peers off the update loop.
func loadPeersCmd(ctx context.Context, timeout time.Duration, p peer.Provider) tea.Cmd {
	return func() tea.Msg {
		return loadPeers(ctx, timeout, p)
	}
}

// loadLogsCmd returns a command that reads events off the update loop.
func loadLogsCmd(ctx context.Context, timeout time.Duration, src peer.EventSource) tea.Cmd {
	return func() tea.Msg {
		return loadLogs(ctx, timeout, src)
	}
}
