package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists each bucket as a single JSONB row. This keeps the
// whole-collection write contract of Store intact on top of a real database:
// a Put is one upsert, a Get is one select. It does not add row-level updates
// or optimistic versioning.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to postgres and ensures the buckets table exists
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS buckets (
			name       TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensuring buckets table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Get unmarshals the named collection into out. A bucket that was never written
// is not an error; out is left untouched.
func (s *PostgresStore) Get(ctx context.Context, bucket string, out interface{}) error {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM buckets WHERE name = $1`, bucket).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("reading bucket %s: %w", bucket, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding bucket %s: %w", bucket, err)
	}
	return nil
}

// Put replaces the named collection with value
func (s *PostgresStore) Put(ctx context.Context, bucket string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding bucket %s: %w", bucket, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO buckets (name, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		bucket, data)
	if err != nil {
		return fmt.Errorf("writing bucket %s: %w", bucket, err)
	}
	return nil
}

// Close releases the connection pool
func (s *PostgresStore) Close() {
	s.pool.Close()
}
