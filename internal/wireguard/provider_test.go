package wireguard

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wgtui/internal/peer"
)

const (
	keyA = "xTIBA5rboUvnH4htodjb6e697QjLERt1NAB4mZqp8Dg="
	keyB = "TrMvSoP4jYQlY6RIzBgbssQqY3vxI2Pi+y71lOWWXX0="
	keyC = "gN65BkIKy1eCE9pP1wdc8ROUtkHLF2PfAqYdyYBz6EA="
)

var now = time.Unix(1_760_000_000, 0)

// fakeRunner answers `show` with a canned dump and records every command.
type fakeRunner struct {
	dump  string
	calls []string
	fail  map[string]error // argument -> error for any command containing it
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
	for _, a := range args {
		if err, ok := f.fail[a]; ok {
			return nil, err
		}
	}
	if len(args) > 0 && args[len(args)-1] == "dump" {
		return []byte(f.dump), nil
	}
	return nil, nil
}

func (f *fakeRunner) writes() []string {
	var out []string
	for _, c := range f.calls {
		if strings.Contains(c, " set ") {
			out = append(out, c)
		}
	}
	return out
}

type mapNames map[string]string

func (m mapNames) Name(key string) string { return m[key] }

func (m mapNames) Set(key, name string) error {
	m[key] = name
	return nil
}

func (m mapNames) Delete(key string) error {
	delete(m, key)
	return nil
}

func unix(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// singleDump is `wg show wg0 dump` with a recently seen peer and an idle one.
func singleDump() string {
	return strings.Join([]string{
		"cHJpdmF0ZQ==\t" + keyC + "\t51820\toff",
		keyA + "\t(none)\t203.0.113.7:51820\t10.8.0.2/32\t" + unix(now.Add(-30*time.Second)) + "\t1024\t2048\t25",
		keyB + "\t(none)\t(none)\t10.8.0.3/32,fd00::3/128\t0\t0\t0\toff",
	}, "\n") + "\n"
}

func newTestProvider(dump string, opts Options) (*Provider, *fakeRunner, mapNames) {
	r := &fakeRunner{dump: dump, fail: map[string]error{}}
	names := mapNames{keyA: "laptop"}
	opts.Runner = r
	opts.Names = names
	opts.Now = func() time.Time { return now }
	return New(opts), r, names
}

func TestParseDump_SingleInterface(t *testing.T) {
	peers, err := ParseDump([]byte(singleDump()), "wg0")
	require.NoError(t, err)
	require.Len(t, peers, 2)

	assert.Equal(t, DumpPeer{
		Interface:       "wg0",
		PublicKey:       keyA,
		Endpoint:        "203.0.113.7:51820",
		AllowedIPs:      "10.8.0.2/32",
		LatestHandshake: now.Add(-30 * time.Second),
		RxBytes:         1024,
		TxBytes:         2048,
	}, peers[0])
	assert.Empty(t, peers[1].Endpoint)
	assert.True(t, peers[1].LatestHandshake.IsZero())
}

func TestParseDump_AllInterfaces(t *testing.T) {
	out := "wg0\tcHJpdmF0ZQ==\t" + keyC + "\t51820\toff\n" +
		"wg0\t" + keyA + "\t(none)\t(none)\t(none)\t0\t0\t0\toff\n" +
		"wg1\tcHJpdmF0ZQ==\t" + keyC + "\t51821\toff\n" +
		"wg1\t" + keyB + "\t(none)\t(none)\t10.9.0.2/32\t0\t0\t0\toff\n"

	peers, err := ParseDump([]byte(out), AllInterfaces)
	require.NoError(t, err)
	require.Len(t, peers, 2)
	assert.Equal(t, "wg0", peers[0].Interface)
	assert.Empty(t, peers[0].AllowedIPs)
	assert.Equal(t, "wg1", peers[1].Interface)
}

func TestParseDump_Malformed(t *testing.T) {
	_, err := ParseDump([]byte("just\tthree\tfields\n"), "wg0")
	assert.ErrorContains(t, err, "line 1")

	_, err = ParseDump([]byte(keyA+"\t(none)\t(none)\t(none)\tsoon\t0\t0\toff\n"), "wg0")
	assert.ErrorContains(t, err, "latest-handshake")
}

func TestProvider_List(t *testing.T) {
	p, r, _ := newTestProvider(singleDump(), Options{Interface: "wg0"})

	peers, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []peer.Peer{
		{Name: "laptop", Address: "10.8.0.2/32", PublicKey: keyA},
		{Name: "", Address: "10.8.0.3/32,fd00::3/128", PublicKey: keyB},
	}, peers)
	assert.Equal(t, []string{"wg show wg0 dump"}, r.calls)
}

func TestProvider_ListFailure(t *testing.T) {
	p, r, _ := newTestProvider("", Options{})
	r.fail["show"] = &CommandError{Args: []string{"wg", "show"}, Output: "Unable to access interface: No such device", Err: errors.New("exit status 1")}

	_, err := p.List(context.Background())
	require.Error(t, err)
	assert.True(t, peer.IsProviderError(err))
	assert.Contains(t, err.Error(), "No such device")
}

func TestProvider_Sudo(t *testing.T) {
	p, r, _ := newTestProvider(singleDump(), Options{Interface: "wg0", WGPath: "/usr/bin/wg", Sudo: true})
	_, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sudo -n /usr/bin/wg show wg0 dump", r.calls[0])

	p, r, _ = newTestProvider(singleDump(), Options{Interface: "wg0", Sudo: true, Interactive: true})
	_, err = p.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sudo wg show wg0 dump", r.calls[0])
}

func TestProvider_Events(t *testing.T) {
	p, _, _ := newTestProvider(singleDump(), Options{Interface: "wg0", HandshakeTimeout: time.Minute})

	events, err := p.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Oldest first: the recent handshake precedes the never-seen peer stamped now.
	assert.Equal(t, keyA, events[0].Peer.PublicKey)
	assert.Equal(t, peer.Connected, events[0].Status)
	assert.Equal(t, now.Add(-30*time.Second), events[0].Timestamp)

	assert.Equal(t, keyB, events[1].Peer.PublicKey)
	assert.Equal(t, peer.Disconnected, events[1].Status)
	assert.Equal(t, now, events[1].Timestamp)

	p, _, _ = newTestProvider(singleDump(), Options{Interface: "wg0", HandshakeTimeout: 10 * time.Second})
	events, err = p.Events(context.Background())
	require.NoError(t, err)
	assert.Equal(t, peer.Disconnected, events[0].Status, "handshake older than the timeout")
}

func TestProvider_Add(t *testing.T) {
	p, r, names := newTestProvider(singleDump(), Options{Interface: "wg0"})

	err := p.Add(context.Background(), peer.Peer{Name: " nas ", Address: "10.8.0.4/32, fd00::4", PublicKey: keyC})
	require.NoError(t, err)
	assert.Equal(t, []string{"wg set wg0 peer " + keyC + " allowed-ips 10.8.0.4/32,fd00::4"}, r.writes())
	assert.Equal(t, "nas", names[keyC])
}

func TestProvider_AddRejects(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		p    peer.Peer
		want error
	}{
		{"duplicate key", Options{Interface: "wg0"}, peer.Peer{Name: "x", Address: "10.8.0.9", PublicKey: keyA}, peer.ErrConflict},
		{"bad key", Options{Interface: "wg0"}, peer.Peer{Name: "x", Address: "10.8.0.9", PublicKey: "pubkeyXYZ"}, peer.ErrInvalid},
		{"bad address", Options{Interface: "wg0"}, peer.Peer{Name: "x", Address: "home", PublicKey: keyC}, peer.ErrInvalid},
		{"all interfaces", Options{Interface: AllInterfaces}, peer.Peer{Name: "x", Address: "10.8.0.9", PublicKey: keyC}, peer.ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, r, _ := newTestProvider(singleDump(), tt.opts)
			err := p.Add(context.Background(), tt.p)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, peer.IsProviderError(err))
			assert.Empty(t, r.writes())
		})
	}
}

func TestProvider_UpdateSameKey(t *testing.T) {
	p, r, names := newTestProvider(singleDump(), Options{Interface: "wg0"})
	old := peer.Peer{Name: "laptop", Address: "10.8.0.2/32", PublicKey: keyA}

	err := p.Update(context.Background(), old, peer.Peer{Name: "work", Address: "10.8.0.20/32", PublicKey: keyA})
	require.NoError(t, err)
	assert.Equal(t, []string{"wg set wg0 peer " + keyA + " allowed-ips 10.8.0.20/32"}, r.writes())
	assert.Equal(t, "work", names[keyA])
}

func TestProvider_UpdateNewKey(t *testing.T) {
	p, r, names := newTestProvider(singleDump(), Options{Interface: "wg0"})
	old := peer.Peer{Name: "laptop", Address: "10.8.0.2/32", PublicKey: keyA}

	err := p.Update(context.Background(), old, peer.Peer{Name: "laptop", Address: "10.8.0.2/32", PublicKey: keyC})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"wg set wg0 peer " + keyC + " allowed-ips 10.8.0.2/32",
		"wg set wg0 peer " + keyA + " remove",
	}, r.writes())
	assert.Equal(t, mapNames{keyC: "laptop"}, names)
}

func TestProvider_UpdateErrors(t *testing.T) {
	p, _, _ := newTestProvider(singleDump(), Options{Interface: "wg0"})
	ctx := context.Background()

	err := p.Update(ctx, peer.Peer{PublicKey: keyC}, peer.Peer{Name: "x", Address: "10.8.0.9", PublicKey: keyC})
	assert.ErrorIs(t, err, peer.ErrNotFound)

	err = p.Update(ctx, peer.Peer{PublicKey: keyA}, peer.Peer{Name: "x", Address: "10.8.0.9", PublicKey: keyB})
	assert.ErrorIs(t, err, peer.ErrConflict)
}

func TestProvider_UpdateNewKeyUndoesOnRemoveFailure(t *testing.T) {
	p, r, names := newTestProvider(singleDump(), Options{Interface: "wg0"})
	r.fail[keyA] = errors.New("boom")
	old := peer.Peer{Name: "laptop", Address: "10.8.0.2/32", PublicKey: keyA}

	err := p.Update(context.Background(), old, peer.Peer{Name: "laptop", Address: "10.8.0.2/32", PublicKey: keyC})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update peer laptop: boom")
	assert.Equal(t, []string{
		"wg set wg0 peer " + keyC + " allowed-ips 10.8.0.2/32",
		"wg set wg0 peer " + keyA + " remove",
		"wg set wg0 peer " + keyC + " remove",
	}, r.writes())
	assert.Equal(t, mapNames{keyA: "laptop"}, names)
}

// brokenNames fails every write to the inventory.
type brokenNames struct{}

func (brokenNames) Name(string) string       { return "" }
func (brokenNames) Set(string, string) error { return errors.New("disk full") }
func (brokenNames) Delete(string) error      { return errors.New("disk full") }

func TestProvider_NameFailureUndoesWrite(t *testing.T) {
	ctx := context.Background()
	laptop := peer.Peer{Name: "laptop", Address: "10.8.0.2/32", PublicKey: keyA}
	tests := []struct {
		name  string
		write func(p *Provider) error
		want  []string
	}{
		{
			"add",
			func(p *Provider) error {
				return p.Add(ctx, peer.Peer{Name: "nas", Address: "10.8.0.4/32", PublicKey: keyC})
			},
			[]string{
				"wg set wg0 peer " + keyC + " allowed-ips 10.8.0.4/32",
				"wg set wg0 peer " + keyC + " remove",
			},
		},
		{
			"update same key",
			func(p *Provider) error {
				return p.Update(ctx, laptop, peer.Peer{Name: "work", Address: "10.8.0.20/32", PublicKey: keyA})
			},
			[]string{
				"wg set wg0 peer " + keyA + " allowed-ips 10.8.0.20/32",
				"wg set wg0 peer " + keyA + " allowed-ips 10.8.0.2/32",
			},
		},
		{
			"update new key",
			func(p *Provider) error {
				return p.Update(ctx, laptop, peer.Peer{Name: "laptop", Address: "10.8.0.2/32", PublicKey: keyC})
			},
			[]string{
				"wg set wg0 peer " + keyC + " allowed-ips 10.8.0.2/32",
				"wg set wg0 peer " + keyC + " remove",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, r, _ := newTestProvider(singleDump(), Options{Interface: "wg0"})
			p.opts.Names = brokenNames{}

			err := tt.write(p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "save name: disk full")
			assert.Equal(t, tt.want, r.writes())
		})
	}
}

func TestProvider_RemoveIgnoresNameFailure(t *testing.T) {
	p, r, _ := newTestProvider(singleDump(), Options{Interface: "wg0"})
	p.opts.Names = brokenNames{}

	require.NoError(t, p.Remove(context.Background(), peer.Peer{Name: "laptop", PublicKey: keyA}))
	assert.Equal(t, []string{"wg set wg0 peer " + keyA + " remove"}, r.writes())
}

func TestProvider_Remove(t *testing.T) {
	p, r, names := newTestProvider(singleDump(), Options{Interface: "wg0"})

	require.NoError(t, p.Remove(context.Background(), peer.Peer{Name: "laptop", PublicKey: keyA}))
	assert.Equal(t, []string{"wg set wg0 peer " + keyA + " remove"}, r.writes())
	assert.NotContains(t, names, keyA)

	err := p.Remove(context.Background(), peer.Peer{PublicKey: keyC})
	assert.ErrorIs(t, err, peer.ErrNotFound)
}

func TestProvider_RemoveAllUsesPeerInterface(t *testing.T) {
	out := "wg1\t" + keyB + "\t(none)\t(none)\t10.9.0.2/32\t0\t0\t0\toff\n"
	p, r, _ := newTestProvider(out, Options{Interface: AllInterfaces})

	require.NoError(t, p.Remove(context.Background(), peer.Peer{PublicKey: keyB}))
	assert.Equal(t, []string{"wg set wg1 peer " + keyB + " remove"}, r.writes())
}

func TestProvider_WriteFailure(t *testing.T) {
	p, r, names := newTestProvider(singleDump(), Options{Interface: "wg0"})
	r.fail["set"] = &CommandError{Args: []string{"wg", "set"}, Output: "Operation not permitted", Err: errors.New("exit status 1")}

	err := p.Add(context.Background(), peer.Peer{Name: "nas", Address: "10.8.0.4/32", PublicKey: keyC})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add peer nas")
	assert.Contains(t, err.Error(), "Operation not permitted")
	assert.NotContains(t, names, keyC)
}

func TestCommandError(t *testing.T) {
	err := &CommandError{Args: []string{"wg", "show"}, Output: " denied \n", Err: errors.New("exit status 1")}
	assert.Equal(t, "wg show: exit status 1: denied", err.Error())
	assert.ErrorContains(t, errors.Unwrap(err), "exit status 1")
}
