package wireguard

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DumpPeer is one peer line of `wg show <interface> dump`.
type DumpPeer struct {
	Interface       string
	PublicKey       string
	Endpoint        string
	AllowedIPs      string
	LatestHandshake time.Time // zero when the peer never completed a handshake
	RxBytes         int64
	TxBytes         int64
}

// Field counts of dump lines. With `wg show all dump` every line gains a
// leading interface column.
const (
	interfaceFields = 4
	peerFields      = 8
)

// ParseDump parses dump output for a single interface (iface names it) or
// for `all`, where each line carries its own interface name.
func ParseDump(out []byte, iface string) ([]DumpPeer, error) {
	var peers []DumpPeer
	sc := bufio.NewScanner(bytes.NewReader(out))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		owner := iface
		switch len(fields) {
		case interfaceFields, interfaceFields + 1:
			continue
		case peerFields + 1:
			owner, fields = fields[0], fields[1:]
		case peerFields:
		default:
			return nil, fmt.Errorf("dump line %d: unexpected %d fields", line, len(fields))
		}
		p, err := parsePeerFields(fields)
		if err != nil {
			return nil, fmt.Errorf("dump line %d: %w", line, err)
		}
		p.Interface = owner
		peers = append(peers, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	return peers, nil
}

// parsePeerFields reads: public-key preshared-key endpoint allowed-ips
// latest-handshake transfer-rx transfer-tx persistent-keepalive.
func parsePeerFields(f []string) (DumpPeer, error) {
	handshake, err := strconv.ParseInt(f[4], 10, 64)
	if err != nil {
		return DumpPeer{}, fmt.Errorf("latest-handshake %q: %w", f[4], err)
	}
	rx, err := strconv.ParseInt(f[5], 10, 64)
	if err != nil {
		return DumpPeer{}, fmt.Errorf("transfer-rx %q: %w", f[5], err)
	}
	tx, err := strconv.ParseInt(f[6], 10, 64)
	if err != nil {
		return DumpPeer{}, fmt.Errorf("transfer-tx %q: %w", f[6], err)
	}
	p := DumpPeer{
		PublicKey:  f[0],
		Endpoint:   none(f[2]),
		AllowedIPs: none(f[3]),
		RxBytes:    rx,
		TxBytes:    tx,
	}
	if handshake > 0 {
		p.LatestHandshake = time.Unix(handshake, 0)
	}
	return p, nil
}

func none(s string) string {
	if s == "(none)" {
		return ""
	}
	return s
}
