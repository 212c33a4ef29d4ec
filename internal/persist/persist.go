// Package persist stores the durable application snapshot as a single
// serialized JSON blob under a fixed storage key. Backends are injectable so
// the store does not care whether the blob lives in a file, a database, or
// memory.
package persist

import (
	"context"

	"supergo/internal/state"
)

// DefaultKey is the storage key used by the original application.
const DefaultKey = "superGoState"

// Store defines the snapshot persistence port.
type Store interface {
	// Load reads the snapshot saved under the given key. A missing snapshot
	// returns (nil, nil); only a failing backend returns an error.
	Load(ctx context.Context, key string) (*state.Snapshot, error)

	// Save writes the snapshot under the given key, replacing any previous
	// one.
	Save(ctx context.Context, key string, snapshot *state.Snapshot) error
}
