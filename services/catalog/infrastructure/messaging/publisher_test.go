package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphicoglobal/atelier/pkg/events"
	"github.com/graphicoglobal/atelier/pkg/logger"
	domainevents "github.com/graphicoglobal/atelier/services/catalog/domain/events"
)

func receiveOne(t *testing.T, bus *events.EventBus, topic string) <-chan *message.Message {
	t.Helper()
	got := make(chan *message.Message, 1)
	_, err := bus.Subscribe(context.Background(), topic, func(_ context.Context, msg *message.Message) error {
		got <- msg
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestPublisher_ItemChanged(t *testing.T) {
	bus := events.NewMemoryEventBus(logger.Discard())
	t.Cleanup(func() { _ = bus.Close() })
	got := receiveOne(t, bus, domainevents.TopicItemPublished)

	ev := domainevents.ItemChangedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     "abc",
		Title:      "Desert Bloom",
		Category:   "Floral",
		Persisted:  true,
		OccurredAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, NewPublisher(bus).PublishItemChanged(context.Background(), domainevents.TopicItemPublished, ev))

	select {
	case msg := <-got:
		assert.Equal(t, ev.EventID.String(), msg.Metadata.Get("event_id"))
		assert.Equal(t, "1", msg.Metadata.Get("event_version"))
		var decoded domainevents.ItemChangedEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
		assert.Equal(t, ev, decoded)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestPublisher_PromotionChanged(t *testing.T) {
	bus := events.NewMemoryEventBus(logger.Discard())
	t.Cleanup(func() { _ = bus.Close() })
	got := receiveOne(t, bus, domainevents.TopicPromotionChanged)

	ev := domainevents.PromotionChangedEvent{EventID: uuid.New(), Version: 1, ItemID: "abc"}
	require.NoError(t, NewPublisher(bus).PublishPromotionChanged(context.Background(), ev))

	select {
	case msg := <-got:
		assert.JSONEq(t, `null`, string(mustField(t, msg.Payload, "expires_at")))
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func mustField(t *testing.T, payload []byte, name string) json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &fields))
	v, ok := fields[name]
	require.True(t, ok, "field %s missing", name)
	return v
}
