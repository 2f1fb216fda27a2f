// Package messaging publishes catalog domain events on the shared Watermill bus.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/graphicoglobal/atelier/pkg/events"
	domainevents "github.com/graphicoglobal/atelier/services/catalog/domain/events"
)

// Publisher encodes catalog events as JSON Watermill messages.
type Publisher struct {
	bus *events.EventBus
}

// NewPublisher returns a Publisher on bus.
func NewPublisher(bus *events.EventBus) *Publisher {
	return &Publisher{bus: bus}
}

// PublishItemChanged sends ev on topic (published, updated or removed).
func (p *Publisher) PublishItemChanged(ctx context.Context, topic string, ev domainevents.ItemChangedEvent) error {
	return p.publish(ctx, topic, ev.EventID, ev.Version, ev)
}

// PublishPromotionChanged sends ev on TopicPromotionChanged.
func (p *Publisher) PublishPromotionChanged(ctx context.Context, ev domainevents.PromotionChangedEvent) error {
	return p.publish(ctx, domainevents.TopicPromotionChanged, ev.EventID, ev.Version, ev)
}

func (p *Publisher) publish(ctx context.Context, topic string, id uuid.UUID, version int, ev any) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", id.String())
	msg.Metadata.Set("event_version", strconv.Itoa(version))
	return p.bus.Publish(ctx, topic, msg)
}
