package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store. Collections are held as serialized JSON so
// readers and writers never share live references with the store. Used for tests
// and single-node deployments.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string][]byte),
	}
}

// Get unmarshals the named collection into out. Unknown buckets are not an error;
// out is left untouched.
func (s *MemoryStore) Get(ctx context.Context, bucket string, out interface{}) error {
	s.mu.RLock()
	data, ok := s.buckets[bucket]
	s.mu.RUnlock()

	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding bucket %s: %w", bucket, err)
	}
	return nil
}

// Put replaces the named collection with value
func (s *MemoryStore) Put(ctx context.Context, bucket string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding bucket %s: %w", bucket, err)
	}

	s.mu.Lock()
	s.buckets[bucket] = data
	s.mu.Unlock()
	return nil
}
