package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admanager/internal/core/port"
)

// KVStore implements port.KV using the state table created by the
// migrations. Each key is one row.
type KVStore struct {
	pool *pgxpool.Pool
}

var _ port.KV = (*KVStore)(nil)

// NewKVStore returns a new store instance.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var payload string
	err := s.pool.QueryRow(ctx, `SELECT payload FROM state WHERE bucket = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return payload, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO state (bucket, payload, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (bucket) DO UPDATE
        SET payload = EXCLUDED.payload, updated_at = now()`, key, value)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
