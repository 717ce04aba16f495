package cache

import (
	"context"
	"sync"
	"time"

	"ethlens/internal/model"
)

// MemoryStore is an in-process Store, safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration // <= 0 means entries never expire
}

type memoryEntry struct {
	txs      []model.Transaction
	storedAt time.Time
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, address model.Address, limit int) ([]model.Transaction, bool) {
	s.mu.RLock()
	entry, ok := s.entries[address.Normalized()]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if s.ttl > 0 && time.Since(entry.storedAt) > s.ttl {
		return nil, false
	}

	return fit(entry.txs, limit)
}

// Put implements Store.
func (s *MemoryStore) Put(ctx context.Context, address model.Address, txs []model.Transaction) {
	s.mu.Lock()
	s.entries[address.Normalized()] = memoryEntry{txs: txs, storedAt: time.Now()}
	s.mu.Unlock()
}
