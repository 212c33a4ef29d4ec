package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"supergo/internal/state"
)

// postgresStore implements Store as a single-row-per-key upsert into an
// app_snapshots table, keeping the whole-blob semantics of the original
// local-storage persistence.
type postgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// Schema is the DDL for the snapshot table. The migration is tiny, so
// callers run it directly instead of carrying a migration tool.
const Schema = `
CREATE TABLE IF NOT EXISTS app_snapshots (
	key        TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// NewPostgresStore creates a PostgreSQL-backed snapshot store and ensures
// the snapshot table exists.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) (Store, error) {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}
	return &postgresStore{
		pool:   pool,
		logger: logger.With().Str("component", "postgres-snapshot-store").Logger(),
	}, nil
}

func (p *postgresStore) Load(ctx context.Context, key string) (*state.Snapshot, error) {
	query := `SELECT data FROM app_snapshots WHERE key = $1`

	var data []byte
	err := p.pool.QueryRow(ctx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.logger.Debug().Str("key", key).Msg("no snapshot row")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query snapshot %s: %w", key, err)
	}

	var snapshot state.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", key, err)
	}

	p.logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("snapshot loaded")
	return &snapshot, nil
}

func (p *postgresStore) Save(ctx context.Context, key string, snapshot *state.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", key, err)
	}

	query := `
		INSERT INTO app_snapshots (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`
	if _, err := p.pool.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("failed to upsert snapshot %s: %w", key, err)
	}

	p.logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("snapshot saved")
	return nil
}
