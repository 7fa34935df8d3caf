// Package inventory keeps the display names of WireGuard peers, which the
// interface itself does not store, in a YAML file keyed by public key.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Entry names one peer.
type Entry struct {
	PublicKey string `yaml:"public_key"`
	Name      string `yaml:"name"`
}

type file struct {
	Peers []Entry `yaml:"peers"`
}

// Store is a name inventory backed by a YAML file. It is safe for concurrent use.
// Every mutation is written through to disk.
type Store struct {
	mu      sync.RWMutex
	path    string
	entries []Entry
}

// Load reads the inventory at path. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read inventory: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse inventory %s: %w", path, err)
	}
	for _, e := range f.Peers {
		e.PublicKey = strings.TrimSpace(e.PublicKey)
		if e.PublicKey == "" {
			continue
		}
		s.entries = append(s.entries, Entry{PublicKey: e.PublicKey, Name: strings.TrimSpace(e.Name)})
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Name returns the name recorded for key, or "".
func (s *Store) Name(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(key); i >= 0 {
		return s.entries[i].Name
	}
	return ""
}

// Entries returns a copy of all entries in file order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// Set records name for key and saves. An empty name removes the entry.
func (s *Store) Set(key, name string) error {
	if name = strings.TrimSpace(name); name == "" {
		return s.Delete(key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(key); i >= 0 {
		if s.entries[i].Name == name {
			return nil
		}
		s.entries[i].Name = name
	} else {
		s.entries = append(s.entries, Entry{PublicKey: key, Name: name})
	}
	return s.save()
}

// Delete drops key and saves. Unknown keys are a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(key)
	if i < 0 {
		return nil
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return s.save()
}

func (s *Store) indexOf(key string) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool { return e.PublicKey == key })
}

// save writes the inventory atomically. Callers hold mu.
func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create inventory dir %s: %w", dir, err)
	}
	payload, err := yaml.Marshal(file{Peers: s.entries})
	if err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}
	tmp := s.path + fmt.Sprintf(".tmp-%d-%d", os.Getpid(), time.Now().UnixNano())
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write temp inventory %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename to %s: %w", s.path, err)
	}
	return nil
}
