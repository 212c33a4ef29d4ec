package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"supergo/internal/state"
)

// MemoryStore implements Store in memory. It round-trips snapshots through
// JSON so tests exercise the same serialization path as real backends.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
	// FailSave and FailLoad force errors so callers can test the fall back
	// to non-durable operation.
	FailSave bool
	FailLoad bool
	// Saves counts successful Save calls.
	Saves int
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Load(ctx context.Context, key string) (*state.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailLoad {
		return nil, fmt.Errorf("memory store: load failure for %s", key)
	}
	data, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	var snapshot state.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("memory store: failed to decode snapshot %s: %w", key, err)
	}
	return &snapshot, nil
}

func (m *MemoryStore) Save(ctx context.Context, key string, snapshot *state.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSave {
		return fmt.Errorf("memory store: save failure for %s", key)
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("memory store: failed to encode snapshot %s: %w", key, err)
	}
	m.blobs[key] = data
	m.Saves++
	return nil
}
