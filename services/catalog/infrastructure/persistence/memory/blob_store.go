// Package memory keeps the catalog blob in process memory. Contents are lost
// on restart; used for tests and STORAGE_BACKEND=memory.
package memory

import (
	"context"
	"sync"

	"github.com/graphicoglobal/atelier/services/catalog/domain/repositories"
)

// BlobStore implements repositories.BlobStore with an in-memory byte slice.
type BlobStore struct {
	mu    sync.RWMutex
	blob  []byte
	found bool
	// saveErr, when set, is returned by Save without storing anything.
	saveErr error
	saves   int
}

var _ repositories.BlobStore = (*BlobStore)(nil)

// NewBlobStore returns an empty BlobStore.
func NewBlobStore() *BlobStore {
	return &BlobStore{}
}

// NewBlobStoreWith returns a BlobStore pre-loaded with blob.
func NewBlobStoreWith(blob []byte) *BlobStore {
	return &BlobStore{blob: clone(blob), found: true}
}

func (s *BlobStore) Load(_ context.Context) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.found {
		return nil, false, nil
	}
	return clone(s.blob), true, nil
}

func (s *BlobStore) Save(_ context.Context, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.blob = clone(blob)
	s.found = true
	s.saves++
	return nil
}

func (s *BlobStore) Ping(context.Context) error { return nil }

// Saves returns the number of successful Save calls.
func (s *BlobStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// FailSaves makes subsequent Save calls return err; nil restores normal saves.
func (s *BlobStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
