package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published after a catalog mutation has been applied.
const (
	TopicItemPublished    = "catalog.item.published"
	TopicItemUpdated      = "catalog.item.updated"
	TopicItemRemoved      = "catalog.item.removed"
	TopicPromotionChanged = "catalog.promotion.changed"
)

// Topics lists every catalog topic.
func Topics() []string {
	return []string{TopicItemPublished, TopicItemUpdated, TopicItemRemoved, TopicPromotionChanged}
}

// ItemChangedEvent is published on TopicItemPublished, TopicItemUpdated and
// TopicItemRemoved.
type ItemChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     string    `json:"item_id"`
	Title      string    `json:"title,omitempty"`
	Category   string    `json:"category,omitempty"`
	Persisted  bool      `json:"persisted"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PromotionChangedEvent is published on TopicPromotionChanged.
// ExpiresAt is nil when the offer was cleared.
type PromotionChangedEvent struct {
	EventID    uuid.UUID  `json:"event_id"`
	Version    int        `json:"version"`
	ItemID     string     `json:"item_id"`
	ExpiresAt  *time.Time `json:"expires_at"`
	Persisted  bool       `json:"persisted"`
	OccurredAt time.Time  `json:"occurred_at"`
}
