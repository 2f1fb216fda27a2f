package repositories

import "context"

// CatalogKey is the fixed key under which the whole collection is stored.
const CatalogKey = "graphico_global_wallpapers"

// BlobStore persists the serialized catalog as one opaque value.
// The domain layer owns this interface; infrastructure implements it.
type BlobStore interface {
	// Load returns the stored blob. found is false (with a nil error) when
	// nothing has been saved yet.
	Load(ctx context.Context) (blob []byte, found bool, err error)

	// Save replaces the stored blob.
	Save(ctx context.Context, blob []byte) error

	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error
}
