package services

import (
	"context"
	"fmt"

	"github.com/graphicoglobal/atelier/pkg/app"
	"github.com/graphicoglobal/atelier/pkg/clock"
	"github.com/graphicoglobal/atelier/pkg/config"
	"github.com/graphicoglobal/atelier/services/catalog/domain/repositories"
	"github.com/graphicoglobal/atelier/services/catalog/infrastructure/enrichment/gemini"
	"github.com/graphicoglobal/atelier/services/catalog/infrastructure/messaging"
	"github.com/graphicoglobal/atelier/services/catalog/infrastructure/persistence/memory"
	"github.com/graphicoglobal/atelier/services/catalog/infrastructure/persistence/redis"
	"github.com/graphicoglobal/atelier/services/catalog/infrastructure/persistence/sqlkv"
)

// Services is the application-layer service container for the catalog.
type Services struct {
	Catalog     *CatalogStore
	Checkout    *CheckoutService
	Description *DescriptionService
	Blobs       repositories.BlobStore
	Clock       clock.Clock
}

// New wires the catalog services with the infrastructure in a and loads the
// collection.
func New(ctx context.Context, a *app.Application) (*Services, error) {
	blobs, err := NewBlobStore(a)
	if err != nil {
		return nil, err
	}

	var publisher EventPublisher
	if a.EventBus != nil {
		publisher = messaging.NewPublisher(a.EventBus)
	}

	var gen DescriptionGenerator
	if a.Config.GeminiAPIKey != "" {
		g, err := gemini.NewGenerator(ctx, a.Config.GeminiAPIKey, a.Config.GeminiModel)
		if err != nil {
			a.Logger.Warn("enrichment disabled", "error", err)
		} else {
			gen = g
		}
	}

	store := NewCatalogStore(blobs, a.Clock, publisher, a.Metrics, a.Logger)
	items := store.Load(ctx)
	a.Logger.Info("catalog loaded", "items", len(items), "backend", a.Config.StorageBackend)

	return &Services{
		Catalog:     store,
		Checkout:    NewCheckoutService(a.Config.CheckoutPhone),
		Description: NewDescriptionService(gen, a.Config.EnrichmentTimeout, a.Metrics, a.Logger),
		Blobs:       blobs,
		Clock:       a.Clock,
	}, nil
}

// NewBlobStore returns the blob store selected by STORAGE_BACKEND.
func NewBlobStore(a *app.Application) (repositories.BlobStore, error) {
	switch a.Config.StorageBackend {
	case config.StorageSQLite, config.StoragePostgres:
		if a.Db == nil {
			return nil, fmt.Errorf("storage backend %s requires a database", a.Config.StorageBackend)
		}
		return sqlkv.NewBlobStore(a.Db), nil
	case config.StorageRedis:
		if a.Redis == nil {
			return nil, fmt.Errorf("storage backend redis requires a redis client")
		}
		return redis.NewBlobStore(a.Redis), nil
	case config.StorageMemory:
		return memory.NewBlobStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", a.Config.StorageBackend)
	}
}
