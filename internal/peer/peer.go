// Package peer defines WireGuard peer records, the connection-event log entries
// derived from them, and the contract a peer source must satisfy.
package peer

import (
	"context"
	"fmt"
	"time"
)

// Peer is a single WireGuard client as shown in the peer table.
type Peer struct {
	Name      string
	Address   string
	PublicKey string
}

// Fields returns the peer's displayable values in table column order.
func (p Peer) Fields() [3]string {
	return [3]string{p.Name, p.Address, p.PublicKey}
}

// Label returns the name when set, otherwise the public key.
func (p Peer) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.PublicKey
}

// Status is the connection state recorded in a log entry.
type Status int

const (
	Connected Status = iota
	Disconnected
)

func (s Status) String() string {
	switch s {
	case Connected:
		return "Connected"
	case Disconnected:
		return "Disconnected"
	default:
		return "Unknown"
	}
}

// LogEntry records a connection event for a snapshot of a peer.
type LogEntry struct {
	Timestamp time.Time
	Peer      Peer
	Status    Status
}

func (e LogEntry) String() string {
	return fmt.Sprintf("%s %s %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Peer.Label(), e.Status)
}

// Provider lists and mutates the peers of a WireGuard interface.
// Every failure is returned as a *ProviderError.
type Provider interface {
	List(ctx context.Context) ([]Peer, error)
	Add(ctx context.Context, p Peer) error
	Update(ctx context.Context, old, updated Peer) error
	Remove(ctx context.Context, p Peer) error
}

// EventSource reports connection events for the log list.
type EventSource interface {
	Events(ctx context.Context) ([]LogEntry, error)
}
