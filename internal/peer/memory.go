package peer

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

// MemoryProvider is an in-process peer source used for the demo mode and tests.
// It applies the same validation and conflict rules as the wg-backed source.
type MemoryProvider struct {
	mu     sync.Mutex
	peers  []Peer
	events []LogEntry
	fail   map[string]error // op -> error returned by the next call of that op
	now    func() time.Time
}

// Ensure MemoryProvider implements Provider and EventSource.
var (
	_ Provider    = (*MemoryProvider)(nil)
	_ EventSource = (*MemoryProvider)(nil)
)

// NewMemoryProvider creates a source holding a copy of peers.
func NewMemoryProvider(peers []Peer, events []LogEntry) *MemoryProvider {
	return &MemoryProvider{
		peers:  slices.Clone(peers),
		events: slices.Clone(events),
		fail:   make(map[string]error),
		now:    time.Now,
	}
}

// NewDemoProvider returns a source seeded with sample peers and events.
func NewDemoProvider() *MemoryProvider {
	peers := []Peer{
		{Name: "laptop", Address: "10.8.0.2/32", PublicKey: "xTIBA5rboUvnH4htodjb6e697QjLERt1NAB4mZqp8Dg="},
		{Name: "phone", Address: "10.8.0.3/32", PublicKey: "TrMvSoP4jYQlY6RIzBgbssQqY3vxI2Pi+y71lOWWXX0="},
		{Name: "nas", Address: "10.8.0.4/32", PublicKey: "gN65BkIKy1eCE9pP1wdc8ROUtkHLF2PfAqYdyYBz6EA="},
	}
	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	events := []LogEntry{
		{Timestamp: base, Peer: peers[0], Status: Connected},
		{Timestamp: base.Add(5 * time.Minute), Peer: peers[1], Status: Connected},
		{Timestamp: base.Add(20 * time.Minute), Peer: peers[1], Status: Disconnected},
		{Timestamp: base.Add(42 * time.Minute), Peer: peers[2], Status: Connected},
	}
	return NewMemoryProvider(peers, events)
}

// FailNext makes the next call of op ("list", "add", "update", "remove", "events") return err.
func (m *MemoryProvider) FailNext(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail[op] = err
}

func (m *MemoryProvider) takeFailure(op string) error {
	err, ok := m.fail[op]
	if !ok {
		return nil
	}
	delete(m.fail, op)
	return err
}

// List implements Provider.
func (m *MemoryProvider) List(ctx context.Context) ([]Peer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure("list"); err != nil {
		return nil, NewProviderError("list", nil, err)
	}
	return slices.Clone(m.peers), nil
}

// Add implements Provider.
func (m *MemoryProvider) Add(ctx context.Context, p Peer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = Normalize(p)
	if err := m.takeFailure("add"); err != nil {
		return NewProviderError("add", &p, err)
	}
	if err := Validate(p); err != nil {
		return NewProviderError("add", &p, err)
	}
	if m.indexOf(p.PublicKey) >= 0 {
		return NewProviderError("add", &p, fmt.Errorf("%w: public key already configured", ErrConflict))
	}
	m.peers = append(m.peers, p)
	return nil
}

// Update implements Provider.
func (m *MemoryProvider) Update(ctx context.Context, old, updated Peer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	updated = Normalize(updated)
	if err := m.takeFailure("update"); err != nil {
		return NewProviderError("update", &old, err)
	}
	if err := Validate(updated); err != nil {
		return NewProviderError("update", &old, err)
	}
	idx := m.indexOf(old.PublicKey)
	if idx < 0 {
		return NewProviderError("update", &old, ErrNotFound)
	}
	if updated.PublicKey != old.PublicKey && m.indexOf(updated.PublicKey) >= 0 {
		return NewProviderError("update", &old, fmt.Errorf("%w: public key already configured", ErrConflict))
	}
	m.peers[idx] = updated
	return nil
}

// Remove implements Provider.
func (m *MemoryProvider) Remove(ctx context.Context, p Peer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure("remove"); err != nil {
		return NewProviderError("remove", &p, err)
	}
	idx := m.indexOf(p.PublicKey)
	if idx < 0 {
		return NewProviderError("remove", &p, ErrNotFound)
	}
	removed := m.peers[idx]
	m.peers = slices.Delete(m.peers, idx, idx+1)
	m.events = append(m.events, LogEntry{Timestamp: m.now(), Peer: removed, Status: Disconnected})
	return nil
}

// Events implements EventSource.
func (m *MemoryProvider) Events(ctx context.Context) ([]LogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure("events"); err != nil {
		return nil, NewProviderError("events", nil, err)
	}
	return slices.Clone(m.events), nil
}

func (m *MemoryProvider) indexOf(key string) int {
	return slices.IndexFunc(m.peers, func(p Peer) bool { return p.PublicKey == key })
}
