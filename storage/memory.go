package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps documents in a map. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	docs   map[key]*TerrainDoc
	closed bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty, open store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[key]*TerrainDoc)}
}

// ready must be called with mu held.
func (s *MemoryStore) ready(ctx context.Context) error {
	if s.closed {
		return fmt.Errorf("MemoryStore: %w", ErrUnavailable)
	}

	return checkContext(ctx)
}

func (s *MemoryStore) keys() []key {
	keys := make([]key, 0, len(s.docs))
	for k := range s.docs {
		keys = append(keys, k)
	}

	return keys
}

// Create implements Store.
func (s *MemoryStore) Create(ctx context.Context, doc *TerrainDoc) error {
	if doc == nil {
		return fmt.Errorf("MemoryStore.Create: nil document: %w", ErrInvalidDocument)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("MemoryStore.Create: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(ctx); err != nil {
		return err
	}
	s.docs[doc.key()] = doc.clone()

	return nil
}

// ReadByName implements Store.
func (s *MemoryStore) ReadByName(ctx context.Context, name string) (*TerrainDoc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	k, ok := firstByName(s.keys(), name)
	if !ok {
		return nil, fmt.Errorf("name %q: %w", name, ErrNotFound)
	}

	return s.docs[k].clone(), nil
}

// ReadBySeed implements Store.
func (s *MemoryStore) ReadBySeed(ctx context.Context, seed int64) (*TerrainDoc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	k, ok := firstBySeed(s.keys(), seed)
	if !ok {
		return nil, fmt.Errorf("seed %d: %w", seed, ErrNotFound)
	}

	return s.docs[k].clone(), nil
}

// ListNames implements Store.
func (s *MemoryStore) ListNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	return distinctNames(s.keys()), nil
}

// DeleteBySeed implements Store.
func (s *MemoryStore) DeleteBySeed(ctx context.Context, seed int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(ctx); err != nil {
		return err
	}
	k, ok := firstBySeed(s.keys(), seed)
	if !ok {
		return fmt.Errorf("seed %d: %w", seed, ErrNotFound)
	}
	delete(s.docs, k)

	return nil
}

// Close implements Store. Closing twice is a no-op.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.docs = nil

	return nil
}
