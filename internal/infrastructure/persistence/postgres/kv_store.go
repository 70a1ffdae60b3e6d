package postgres

import (
	"context"
	"errors"
	"fmt"

	"life-reloaded/internal/database"

	"github.com/jackc/pgx/v5"
)

// KVStore keeps simulation blobs in the kv_entries table created by the
// V1 migration.
type KVStore struct {
	db database.DB
}

func NewKVStore(db database.DB) *KVStore {
	return &KVStore{db: db}
}

func (s *KVStore) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil db")
	}
	return s.db.Ping(ctx)
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, fmt.Errorf("nil db")
	}
	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil db")
	}
	_, err := s.db.Exec(ctx, `
INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value,
	)
	return err
}
