// Package wireguard reads and edits the peers of a live WireGuard interface
// through the wg(8) command.
package wireguard

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"wgtui/internal/peer"
)

// AllInterfaces lists peers of every interface. Adding a peer needs a concrete interface.
const AllInterfaces = "all"

// NameStore maps public keys to display names.
type NameStore interface {
	Name(key string) string
	Set(key, name string) error
	Delete(key string) error
}

// Options configures a Provider.
type Options struct {
	Interface string // interface name or AllInterfaces
	WGPath    string // wg binary, "wg" when empty
	// Sudo runs wg through sudo. Without Interactive, sudo is told never to prompt.
	Sudo        bool
	Interactive bool
	Runner      Runner
	Names       NameStore
	// HandshakeTimeout is the handshake age after which a peer counts as disconnected.
	HandshakeTimeout time.Duration
	Now              func() time.Time
}

const undoTimeout = 10 * time.Second

// Provider is a peer source backed by `wg show` and `wg set`.
type Provider struct {
	opts Options
}

// Ensure Provider implements peer.Provider and peer.EventSource.
var (
	_ peer.Provider    = (*Provider)(nil)
	_ peer.EventSource = (*Provider)(nil)
)

// New creates a provider. Zero options fall back to wg on wg0 via os/exec.
func New(opts Options) *Provider {
	if opts.Interface == "" {
		opts.Interface = "wg0"
	}
	if opts.WGPath == "" {
		opts.WGPath = "wg"
	}
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	if opts.Names == nil {
		opts.Names = noNames{}
	}
	if opts.HandshakeTimeout <= 0 {
		opts.HandshakeTimeout = 3 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Provider{opts: opts}
}

// List implements peer.Provider.
func (p *Provider) List(ctx context.Context) ([]peer.Peer, error) {
	dump, err := p.dump(ctx)
	if err != nil {
		return nil, peer.NewProviderError("list", nil, err)
	}
	peers := make([]peer.Peer, len(dump))
	for i, d := range dump {
		peers[i] = p.toPeer(d)
	}
	return peers, nil
}

// Events implements peer.EventSource. Each peer yields one entry describing
// its latest handshake, oldest first.
func (p *Provider) Events(ctx context.Context) ([]peer.LogEntry, error) {
	dump, err := p.dump(ctx)
	if err != nil {
		return nil, peer.NewProviderError("events", nil, err)
	}
	now := p.opts.Now()
	entries := make([]peer.LogEntry, len(dump))
	for i, d := range dump {
		e := peer.LogEntry{Peer: p.toPeer(d), Status: peer.Disconnected, Timestamp: d.LatestHandshake}
		switch {
		case d.LatestHandshake.IsZero():
			e.Timestamp = now
		case now.Sub(d.LatestHandshake) < p.opts.HandshakeTimeout:
			e.Status = peer.Connected
		}
		entries[i] = e
	}
	slices.SortStableFunc(entries, func(a, b peer.LogEntry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return entries, nil
}

// Add implements peer.Provider.
func (p *Provider) Add(ctx context.Context, np peer.Peer) error {
	np = peer.Normalize(np)
	if err := peer.Validate(np); err != nil {
		return peer.NewProviderError("add", &np, err)
	}
	if p.opts.Interface == AllInterfaces {
		return peer.NewProviderError("add", &np,
			fmt.Errorf("%w: set a concrete interface to add peers", peer.ErrInvalid))
	}
	dump, err := p.dump(ctx)
	if err != nil {
		return peer.NewProviderError("add", &np, err)
	}
	if findPeer(dump, np.PublicKey) >= 0 {
		return peer.NewProviderError("add", &np,
			fmt.Errorf("%w: public key already configured", peer.ErrConflict))
	}
	if err := p.setAllowedIPs(ctx, p.opts.Interface, np); err != nil {
		return peer.NewProviderError("add", &np, err)
	}
	if err := p.saveName(np); err != nil {
		p.undo(ctx, "add", p.opts.Interface, "peer", np.PublicKey, "remove")
		return peer.NewProviderError("add", &np, err)
	}
	return nil
}

// Update implements peer.Provider. A changed key installs the new peer before
// removing the old one. A failed step undoes the writes before it, so the
// interface is left as it was found.
func (p *Provider) Update(ctx context.Context, old, updated peer.Peer) error {
	updated = peer.Normalize(updated)
	if err := peer.Validate(updated); err != nil {
		return peer.NewProviderError("update", &old, err)
	}
	dump, err := p.dump(ctx)
	if err != nil {
		return peer.NewProviderError("update", &old, err)
	}
	idx := findPeer(dump, old.PublicKey)
	if idx < 0 {
		return peer.NewProviderError("update", &old, peer.ErrNotFound)
	}
	iface := dump[idx].Interface
	if updated.PublicKey != old.PublicKey {
		if findPeer(dump, updated.PublicKey) >= 0 {
			return peer.NewProviderError("update", &old,
				fmt.Errorf("%w: public key already configured", peer.ErrConflict))
		}
		if err := p.setAllowedIPs(ctx, iface, updated); err != nil {
			return peer.NewProviderError("update", &old, err)
		}
		if err := p.saveName(updated); err != nil {
			p.undo(ctx, "update", iface, "peer", updated.PublicKey, "remove")
			return peer.NewProviderError("update", &old, err)
		}
		if err := p.removePeer(ctx, iface, old.PublicKey); err != nil {
			p.undo(ctx, "update", iface, "peer", updated.PublicKey, "remove")
			if err := p.opts.Names.Delete(updated.PublicKey); err != nil {
				log.Printf("wireguard: undo update name: %v", err)
			}
			return peer.NewProviderError("update", &old, err)
		}
		// The old key is gone from the interface; a stale name is harmless.
		if err := p.opts.Names.Delete(old.PublicKey); err != nil {
			log.Printf("wireguard: drop name for %s: %v", old.PublicKey, err)
		}
		return nil
	}
	if err := p.setAllowedIPs(ctx, iface, updated); err != nil {
		return peer.NewProviderError("update", &old, err)
	}
	if err := p.saveName(updated); err != nil {
		p.undo(ctx, "update", iface, "peer", old.PublicKey, "allowed-ips", dump[idx].AllowedIPs)
		return peer.NewProviderError("update", &old, err)
	}
	return nil
}

// Remove implements peer.Provider.
func (p *Provider) Remove(ctx context.Context, rp peer.Peer) error {
	dump, err := p.dump(ctx)
	if err != nil {
		return peer.NewProviderError("remove", &rp, err)
	}
	idx := findPeer(dump, rp.PublicKey)
	if idx < 0 {
		return peer.NewProviderError("remove", &rp, peer.ErrNotFound)
	}
	if err := p.removePeer(ctx, dump[idx].Interface, rp.PublicKey); err != nil {
		return peer.NewProviderError("remove", &rp, err)
	}
	if err := p.opts.Names.Delete(rp.PublicKey); err != nil {
		log.Printf("wireguard: drop name for %s: %v", rp.PublicKey, err)
	}
	return nil
}

func (p *Provider) dump(ctx context.Context) ([]DumpPeer, error) {
	out, err := p.wg(ctx, "show", p.opts.Interface, "dump")
	if err != nil {
		return nil, err
	}
	return ParseDump(out, p.opts.Interface)
}

func (p *Provider) setAllowedIPs(ctx context.Context, iface string, np peer.Peer) error {
	_, err := p.wg(ctx, "set", iface, "peer", np.PublicKey, "allowed-ips", allowedIPs(np.Address))
	return err
}

func (p *Provider) removePeer(ctx context.Context, iface, key string) error {
	_, err := p.wg(ctx, "set", iface, "peer", key, "remove")
	return err
}

// undo reverts an earlier `wg set` after a later step of op failed. The
// original error is what the caller reports, so an undo failure is only logged.
// It outlives ctx so a write that timed out can still be reverted.
func (p *Provider) undo(ctx context.Context, op, iface string, args ...string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), undoTimeout)
	defer cancel()
	if _, err := p.wg(ctx, append([]string{"set", iface}, args...)...); err != nil {
		log.Printf("wireguard: undo %s on %s: %v", op, iface, err)
	}
}

func (p *Provider) saveName(np peer.Peer) error {
	if err := p.opts.Names.Set(np.PublicKey, np.Name); err != nil {
		return fmt.Errorf("save name: %w", err)
	}
	return nil
}

// wg runs the wg binary, through sudo when configured.
func (p *Provider) wg(ctx context.Context, args ...string) ([]byte, error) {
	name := p.opts.WGPath
	if p.opts.Sudo {
		prefix := []string{p.opts.WGPath}
		if !p.opts.Interactive {
			prefix = []string{"-n", p.opts.WGPath}
		}
		name, args = "sudo", append(prefix, args...)
	}
	log.Printf("wireguard: %s %s", name, strings.Join(args, " "))
	return p.opts.Runner.Run(ctx, name, args...)
}

func (p *Provider) toPeer(d DumpPeer) peer.Peer {
	return peer.Peer{
		Name:      p.opts.Names.Name(d.PublicKey),
		Address:   d.AllowedIPs,
		PublicKey: d.PublicKey,
	}
}

func findPeer(dump []DumpPeer, key string) int {
	return slices.IndexFunc(dump, func(d DumpPeer) bool { return d.PublicKey == key })
}

// allowedIPs turns "10.0.0.2/32, fd00::2" into wg's comma-only list form.
func allowedIPs(addr string) string {
	parts := strings.Split(addr, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return strings.Join(parts, ",")
}

type noNames struct{}

func (noNames) Name(string) string       { return "" }
func (noNames) Set(string, string) error { return nil }
func (noNames) Delete(string) error      { return nil }
