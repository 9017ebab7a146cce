package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// memoryStore keeps records in process memory behind the same contract as the
// Redis store. It backs local runs without a Redis instance and the
// round-trip tests of the session stores.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{records: make(map[string][]byte)}
}

func (m *memoryStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	m.mu.RLock()
	data, ok := m.records[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal record for key %s: %w", key, err)
	}

	return true, nil
}

func (m *memoryStore) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	m.mu.Lock()
	m.records[key] = data
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.records, key)
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) Close() error {
	return nil
}
