package peer

import (
	"encoding/base64"
	"fmt"
	"net/netip"
	"strings"
)

// KeyLen is the size in bytes of a decoded WireGuard key.
const KeyLen = 32

// ValidateKey checks that key is standard base64 encoding of a 32-byte key.
func ValidateKey(key string) error {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(key))
	if err != nil {
		return fmt.Errorf("%w: public key is not base64", ErrInvalid)
	}
	if len(raw) != KeyLen {
		return fmt.Errorf("%w: public key must decode to %d bytes, got %d", ErrInvalid, KeyLen, len(raw))
	}
	return nil
}

// ValidateAddress accepts a single IP or a comma-separated list of IPs/CIDRs,
// the form wg uses for allowed-ips.
func ValidateAddress(addr string) error {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return fmt.Errorf("%w: address is empty", ErrInvalid)
	}
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "/") {
			if _, err := netip.ParsePrefix(part); err != nil {
				return fmt.Errorf("%w: address %q is not a valid CIDR", ErrInvalid, part)
			}
			continue
		}
		if _, err := netip.ParseAddr(part); err != nil {
			return fmt.Errorf("%w: address %q is not a valid IP", ErrInvalid, part)
		}
	}
	return nil
}

// Validate applies the checks a peer source runs before applying a peer.
func Validate(p Peer) error {
	if err := ValidateAddress(p.Address); err != nil {
		return err
	}
	return ValidateKey(p.PublicKey)
}

// Normalize trims whitespace from every field.
func Normalize(p Peer) Peer {
	return Peer{
		Name:      strings.TrimSpace(p.Name),
		Address:   strings.TrimSpace(p.Address),
		PublicKey: strings.TrimSpace(p.PublicKey),
	}
}
