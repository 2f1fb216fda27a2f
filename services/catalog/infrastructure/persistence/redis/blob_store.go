// Package redis stores the catalog blob under a single Redis string key.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/graphicoglobal/atelier/pkg/cache"
	"github.com/graphicoglobal/atelier/services/catalog/domain/repositories"
)

// BlobStore implements repositories.BlobStore on Redis. The key never expires.
type BlobStore struct {
	rdb *cache.RedisClient
	key string
}

var _ repositories.BlobStore = (*BlobStore)(nil)

// NewBlobStore returns a BlobStore on the shared Redis client.
func NewBlobStore(rdb *cache.RedisClient) *BlobStore {
	return &BlobStore{rdb: rdb, key: repositories.CatalogKey}
}

// Load reads the catalog blob.
func (s *BlobStore) Load(ctx context.Context) ([]byte, bool, error) {
	blob, err := s.rdb.Client().Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return blob, true, nil
}

// Save overwrites the catalog blob.
func (s *BlobStore) Save(ctx context.Context, blob []byte) error {
	if err := s.rdb.Client().Set(ctx, s.key, blob, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *BlobStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx)
}
