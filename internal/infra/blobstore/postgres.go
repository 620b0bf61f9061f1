package blobstore

import (
	"context"
	"errors"

	"campus-canteen/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createBlobTableSQL = `
CREATE TABLE IF NOT EXISTS canteen_blobs (
    key        TEXT PRIMARY KEY,
    data       JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

	selectBlobSQL = `SELECT data FROM canteen_blobs WHERE key = $1`

	upsertBlobSQL = `
INSERT INTO canteen_blobs (key, data, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createBlobTableSQL); err != nil {
		return errs.Wrap(err, "failed to create canteen_blobs table")
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, selectBlobSQL, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlobNotFound
		}
		return nil, errs.Wrapf(err, "failed to read blob %s", key)
	}
	return data, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, data []byte) error {
	if _, err := s.pool.Exec(ctx, upsertBlobSQL, key, data); err != nil {
		return errs.Wrapf(err, "failed to write blob %s", key)
	}
	return nil
}
