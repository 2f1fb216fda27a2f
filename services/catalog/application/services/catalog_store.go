package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/graphicoglobal/atelier/pkg/clock"
	"github.com/graphicoglobal/atelier/pkg/logger"
	"github.com/graphicoglobal/atelier/pkg/telemetry"
	"github.com/graphicoglobal/atelier/services/catalog/domain"
	domainevents "github.com/graphicoglobal/atelier/services/catalog/domain/events"
	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
	"github.com/graphicoglobal/atelier/services/catalog/domain/repositories"
	domainsvcs "github.com/graphicoglobal/atelier/services/catalog/domain/services"
	"github.com/graphicoglobal/atelier/services/catalog/infrastructure/persistence/codec"
)

// EventPublisher delivers catalog events after a mutation.
type EventPublisher interface {
	PublishItemChanged(ctx context.Context, topic string, ev domainevents.ItemChangedEvent) error
	PublishPromotionChanged(ctx context.Context, ev domainevents.PromotionChangedEvent) error
}

// ResolvedItem pairs an item with its availability at a given instant.
type ResolvedItem struct {
	Item         *models.Item
	Availability domainsvcs.Availability
}

// CatalogStore owns the ordered item collection. Every command runs as one
// critical section: read, transition, save the whole collection. A failed
// save keeps the in-memory change and is reported as ErrPersistence.
type CatalogStore struct {
	mu      sync.Mutex
	items   []*models.Item
	loaded  bool
	blobs   repositories.BlobStore
	clock   clock.Clock
	events  EventPublisher // nil disables events
	metrics *telemetry.CatalogMetrics
	log     logger.Logger
}

// NewCatalogStore returns a store backed by blobs. publisher and metrics may be nil.
func NewCatalogStore(
	blobs repositories.BlobStore,
	clk clock.Clock,
	publisher EventPublisher,
	metrics *telemetry.CatalogMetrics,
	log logger.Logger,
) *CatalogStore {
	return &CatalogStore{
		blobs:   blobs,
		clock:   clk,
		events:  publisher,
		metrics: metrics,
		log:     log,
	}
}

// Load reads the stored collection, replacing whatever the store holds.
// A missing, unreadable or malformed blob yields the seed set, which is not
// written back until the first mutation.
func (s *CatalogStore) Load(ctx context.Context) []*models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.readBlob(ctx)
	s.loaded = true
	return cloneAll(s.items)
}

func (s *CatalogStore) readBlob(ctx context.Context) []*models.Item {
	blob, found, err := s.blobs.Load(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "catalog: blob read failed, using seed items", "error", err)
		return SeedItems(s.clock.Now())
	}
	if !found {
		s.log.InfoContext(ctx, "catalog: no stored collection, using seed items")
		return SeedItems(s.clock.Now())
	}
	items, err := codec.Decode(blob)
	if err != nil {
		s.log.WarnContext(ctx, "catalog: stored collection is malformed, using seed items", "error", err)
		return SeedItems(s.clock.Now())
	}
	for _, item := range items {
		if err := domainsvcs.ValidateItem(item); err != nil {
			s.log.WarnContext(ctx, "catalog: stored item breaks catalog rules, using seed items",
				"item_id", item.ID, "error", err)
			return SeedItems(s.clock.Now())
		}
	}
	return items
}

func (s *CatalogStore) ensureLoaded(ctx context.Context) {
	if !s.loaded {
		s.items = s.readBlob(ctx)
		s.loaded = true
	}
}

// List returns every item, hidden ones included, in collection order.
func (s *CatalogStore) List(ctx context.Context) []*models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return cloneAll(s.items)
}

// Get returns the item with id, hidden or not.
func (s *CatalogStore) Get(ctx context.Context, id string) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return s.items[i].Clone(), nil
}

// Gallery returns the visible items passing filter, resolved at the store's now.
func (s *CatalogStore) Gallery(ctx context.Context, filter domainsvcs.GalleryFilter) []ResolvedItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	now := s.clock.Now()
	out := make([]ResolvedItem, 0, len(s.items))
	for _, item := range s.items {
		if filter.Matches(item, now) {
			out = append(out, ResolvedItem{Item: item.Clone(), Availability: domainsvcs.Resolve(item, now)})
		}
	}
	return out
}

// Publish validates fields, assigns a fresh id and prepends the new item.
func (s *CatalogStore) Publish(ctx context.Context, fields models.ItemFields) (*models.Item, error) {
	s.mu.Lock()
	s.ensureLoaded(ctx)

	item := models.NewItem(fields, s.clock.Now())
	for s.indexOf(item.ID) >= 0 {
		item.ID = uuid.NewString()
	}
	if err := domainsvcs.ValidateItem(item); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.items = append([]*models.Item{item}, s.items...)
	persistErr := s.persist(ctx, "publish")
	out := item.Clone()
	s.mu.Unlock()

	s.publishItem(ctx, domainevents.TopicItemPublished, out, persistErr == nil)
	return out, persistErr
}

// Update merges patch into the item with id. The merged record is validated
// as a whole; nothing changes when it is rejected.
func (s *CatalogStore) Update(ctx context.Context, id string, patch models.ItemPatch) (*models.Item, error) {
	s.mu.Lock()
	s.ensureLoaded(ctx)

	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	merged := patch.Apply(s.items[i])
	if err := domainsvcs.ValidateItem(merged); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.items[i] = merged
	persistErr := s.persist(ctx, "update")
	out := merged.Clone()
	s.mu.Unlock()

	s.publishItem(ctx, domainevents.TopicItemUpdated, out, persistErr == nil)
	return out, persistErr
}

// Remove deletes the item with id. Removing an absent id is not an error;
// the collection is saved either way.
func (s *CatalogStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	s.ensureLoaded(ctx)

	var removed *models.Item
	if i := s.indexOf(id); i >= 0 {
		removed = s.items[i]
		s.items = append(s.items[:i:i], s.items[i+1:]...)
	}
	persistErr := s.persist(ctx, "remove")
	s.mu.Unlock()

	if removed != nil {
		s.publishItem(ctx, domainevents.TopicItemRemoved, removed, persistErr == nil)
	}
	return persistErr
}

// SetPromotion arms a fresh offer window when active is true and clears it otherwise.
func (s *CatalogStore) SetPromotion(ctx context.Context, id string, active bool) (*models.Item, error) {
	return s.promote(ctx, "set_promotion", id, func(item *models.Item) {
		domainsvcs.SetPromotion(item, active, s.clock.Now())
	})
}

// TogglePromotion clears a stored offer (expired or not) or arms a new one.
func (s *CatalogStore) TogglePromotion(ctx context.Context, id string) (*models.Item, error) {
	return s.promote(ctx, "toggle_promotion", id, func(item *models.Item) {
		domainsvcs.TogglePromotion(item, s.clock.Now())
	})
}

func (s *CatalogStore) promote(ctx context.Context, op, id string, transition func(*models.Item)) (*models.Item, error) {
	s.mu.Lock()
	s.ensureLoaded(ctx)

	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	next := s.items[i].Clone()
	transition(next)
	s.items[i] = next

	persistErr := s.persist(ctx, op)
	out := next.Clone()
	s.mu.Unlock()

	s.publishPromotion(ctx, out, persistErr == nil)
	return out, persistErr
}

// persist saves the whole collection. Caller holds mu.
func (s *CatalogStore) persist(ctx context.Context, op string) error {
	s.metrics.Mutation(ctx, op)
	blob, err := codec.Encode(s.items)
	if err == nil {
		err = s.blobs.Save(ctx, blob)
	}
	if err != nil {
		s.metrics.PersistFailure(ctx, op)
		s.log.ErrorContext(ctx, "catalog: save failed, change kept in memory", "op", op, "error", err)
		telemetry.CaptureError(ctx, op, err)
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (s *CatalogStore) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *CatalogStore) publishItem(ctx context.Context, topic string, item *models.Item, persisted bool) {
	if s.events == nil {
		return
	}
	ev := domainevents.ItemChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Title:      item.Title.String(),
		Category:   item.Category.String(),
		Persisted:  persisted,
		OccurredAt: s.clock.Now(),
	}
	if err := s.events.PublishItemChanged(ctx, topic, ev); err != nil {
		s.log.WarnContext(ctx, "catalog: event publish failed", "topic", topic, "item_id", item.ID, "error", err)
	}
}

func (s *CatalogStore) publishPromotion(ctx context.Context, item *models.Item, persisted bool) {
	if s.events == nil {
		return
	}
	ev := domainevents.PromotionChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		ExpiresAt:  item.PromotionExpiresAt,
		Persisted:  persisted,
		OccurredAt: s.clock.Now(),
	}
	if err := s.events.PublishPromotionChanged(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "catalog: event publish failed",
			"topic", domainevents.TopicPromotionChanged, "item_id", item.ID, "error", err)
	}
}

func cloneAll(items []*models.Item) []*models.Item {
	out := make([]*models.Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
