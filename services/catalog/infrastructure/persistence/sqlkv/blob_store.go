// Package sqlkv stores the catalog blob as one row of the kv_store table.
// It runs on PostgreSQL and SQLite; the dialect picks the placeholder style.
package sqlkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/graphicoglobal/atelier/pkg/database"
	"github.com/graphicoglobal/atelier/services/catalog/domain/repositories"
)

type queries struct {
	load string
	save string
}

var dialectQueries = map[database.Dialect]queries{
	database.Postgres: {
		load: `SELECT value FROM kv_store WHERE key = $1`,
		save: `INSERT INTO kv_store (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET
    value = EXCLUDED.value,
    revision = kv_store.revision + 1,
    updated_at = now()`,
	},
	database.SQLite: {
		load: `SELECT value FROM kv_store WHERE key = ?`,
		save: `INSERT INTO kv_store (key, value) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET
    value = excluded.value,
    revision = kv_store.revision + 1,
    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
	},
}

// BlobStore implements repositories.BlobStore on a SQL database.
type BlobStore struct {
	db  *database.Database
	key string
	q   queries
}

var _ repositories.BlobStore = (*BlobStore)(nil)

// NewBlobStore returns a BlobStore for the catalog key. The kv_store table
// must already exist (see migrations/catalog).
func NewBlobStore(db *database.Database) *BlobStore {
	return &BlobStore{db: db, key: repositories.CatalogKey, q: dialectQueries[db.Dialect()]}
}

// Load reads the catalog blob.
func (s *BlobStore) Load(ctx context.Context) ([]byte, bool, error) {
	var blob []byte
	err := s.db.DB().QueryRowContext(ctx, s.q.load, s.key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load catalog blob: %w", err)
	}
	return blob, true, nil
}

// Save upserts the catalog blob and bumps its revision.
func (s *BlobStore) Save(ctx context.Context, blob []byte) error {
	if _, err := s.db.DB().ExecContext(ctx, s.q.save, s.key, blob); err != nil {
		return fmt.Errorf("save catalog blob: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (s *BlobStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Revision returns how many times the blob has been written, or 0 when it
// has never been saved.
func (s *BlobStore) Revision(ctx context.Context) (int64, error) {
	var rev int64
	query := `SELECT revision FROM kv_store WHERE key = ?`
	if s.db.Dialect() == database.Postgres {
		query = `SELECT revision FROM kv_store WHERE key = $1`
	}
	err := s.db.DB().QueryRowContext(ctx, query, s.key).Scan(&rev)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read catalog revision: %w", err)
	}
	return rev, nil
}
