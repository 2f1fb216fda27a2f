// Package subscribers consumes catalog domain events: every change is written
// to the audit log and counted.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/graphicoglobal/atelier/pkg/events"
	"github.com/graphicoglobal/atelier/pkg/logger"
	"github.com/graphicoglobal/atelier/pkg/telemetry"
	domainevents "github.com/graphicoglobal/atelier/services/catalog/domain/events"
)

// Register subscribes the audit handlers to every catalog topic.
func Register(ctx context.Context, bus *events.EventBus, metrics *telemetry.CatalogMetrics, log logger.Logger) error {
	audit := &AuditHandler{metrics: metrics, log: log.With("component", "catalog_audit")}
	for _, topic := range domainevents.Topics() {
		handle := audit.ItemChanged
		if topic == domainevents.TopicPromotionChanged {
			handle = audit.PromotionChanged
		}
		errs, err := bus.Subscribe(ctx, topic, handle(topic))
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
		go drain(ctx, log, topic, errs)
	}
	return nil
}

func drain(ctx context.Context, log logger.Logger, topic string, errs <-chan error) {
	for err := range errs {
		log.ErrorContext(ctx, "catalog event dropped", "topic", topic, "error", err)
	}
}

// AuditHandler logs catalog changes.
type AuditHandler struct {
	metrics *telemetry.CatalogMetrics
	log     logger.Logger
}

// ItemChanged returns the handler for item published/updated/removed events.
func (h *AuditHandler) ItemChanged(topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var ev domainevents.ItemChangedEvent
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			// malformed payloads are acked; retrying cannot fix them
			h.log.ErrorContext(ctx, "malformed catalog event", "topic", topic, "error", err)
			return nil
		}
		h.metrics.Event(ctx, topic)
		h.log.InfoContext(ctx, "catalog item changed",
			"topic", topic,
			"event_id", ev.EventID,
			"item_id", ev.ItemID,
			"title", ev.Title,
			"category", ev.Category,
			"persisted", ev.Persisted,
		)
		return nil
	}
}

// PromotionChanged returns the handler for offer events.
func (h *AuditHandler) PromotionChanged(topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var ev domainevents.PromotionChangedEvent
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			h.log.ErrorContext(ctx, "malformed catalog event", "topic", topic, "error", err)
			return nil
		}
		h.metrics.Event(ctx, topic)
		args := []any{"topic", topic, "event_id", ev.EventID, "item_id", ev.ItemID, "persisted", ev.Persisted}
		if ev.ExpiresAt != nil {
			args = append(args, "expires_at", *ev.ExpiresAt)
		}
		h.log.InfoContext(ctx, "catalog offer changed", args...)
		return nil
	}
}
