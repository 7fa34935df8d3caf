package peer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid reports a peer the source refuses to apply (malformed key or address).
	ErrInvalid = errors.New("invalid peer")
	// ErrNotFound reports a peer that is not present in the source.
	ErrNotFound = errors.New("peer not found")
	// ErrConflict reports a duplicate key, or a peer that changed between selection and submit.
	ErrConflict = errors.New("peer conflict")
)

// ProviderError wraps a failed read or write against a peer source.
// It is recoverable: the UI shows it and keeps the active modal open.
type ProviderError struct {
	Op   string // list, add, update, remove, events
	Peer string // label of the peer involved, empty for list/events
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Peer == "" {
		return fmt.Sprintf("%s peers: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s peer %s: %v", e.Op, e.Peer, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err unless it already is a *ProviderError.
func NewProviderError(op string, p *Peer, err error) error {
	if err == nil {
		return nil
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}
	label := ""
	if p != nil {
		label = p.Label()
	}
	return &ProviderError{Op: op, Peer: label, Err: err}
}

// IsProviderError reports whether err is, or wraps, a *ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
