// Package store persists keyed records as one YAML document
// A store opened without a path keeps records in memory only
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrClosed  = errors.New("store closed")
	ErrCorrupt = errors.New("store file is not a valid record document")
)

// Store is safe for concurrent use
type Store struct {
	path string

	mu      sync.Mutex
	records map[string]yaml.Node
	closed  bool
}

// NewMemory returns a store that never touches disk
func NewMemory() *Store {
	return &Store{records: make(map[string]yaml.Node)}
}

// Open reads the document at path; a missing file starts empty and is created on first save
func Open(path string) (*Store, error) {
	s := &Store{path: path, records: make(map[string]yaml.Node)}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(data) == 0 {
		return s, nil
	}
	if err := yaml.Unmarshal(data, &s.records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	if s.records == nil {
		s.records = make(map[string]yaml.Node)
	}
	return s, nil
}

// Path returns the backing file, empty for memory stores
func (s *Store) Path() string { return s.path }

// Load decodes the record at key into v and reports whether it existed
func (s *Store) Load(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrClosed
	}
	node, ok := s.records[key]
	if !ok {
		return false, nil
	}
	if err := node.Decode(v); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save replaces the record at key and rewrites the file
func (s *Store) Save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.records[key] = node
	return s.flush()
}

// Keys returns the stored record names
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	return keys
}

// Close flushes pending state; later calls fail with ErrClosed
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.flush()
}

// flush writes through a temp file so a crash never leaves a truncated document
func (s *Store) flush() error {
	if s.path == "" {
		return nil
	}
	data, err := yaml.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".laaame-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
