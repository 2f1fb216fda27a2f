package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/graphicoglobal/atelier/pkg/errhttp"
	"github.com/graphicoglobal/atelier/pkg/httpx"
	appsvcs "github.com/graphicoglobal/atelier/services/catalog/application/services"
	domainsvcs "github.com/graphicoglobal/atelier/services/catalog/domain/services"
)

// CountdownEvent is the data payload of each countdown stream event.
type CountdownEvent struct {
	ItemID           string `json:"item_id"           example:"3"`
	Remaining        string `json:"remaining"         example:"05:59:59"`
	RemainingSeconds int64  `json:"remaining_seconds" example:"21599"`
	PriceLabel       string `json:"price_label"       example:"Complimentary"`
} // @name CountdownEvent

// CountdownHandler handles GET /api/items/{id}/countdown.
type CountdownHandler struct {
	svc      *appsvcs.Services
	interval time.Duration
}

// NewCountdownHandler returns a CountdownHandler that re-resolves the item
// every interval.
func NewCountdownHandler(svc *appsvcs.Services, interval time.Duration) *CountdownHandler {
	return &CountdownHandler{svc: svc, interval: interval}
}

// Execute streams the remaining offer time as Server-Sent Events.
//
//	@Summary		Offer countdown
//	@Description	Streams a "countdown" event every second while the offer runs, then one "expired" event and closes. Re-reads the item each tick, so a toggled offer ends the stream.
//	@Tags			gallery
//	@Produce		text/event-stream
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	CountdownEvent
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/items/{id}/countdown [get]
func (h *CountdownHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, err := visibleItem(r, h.svc); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	stream, err := httpx.NewEventStream(w)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	ctx := r.Context()
	id := chi.URLParam(r, "id")
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		item, err := h.svc.Catalog.Get(ctx, id)
		if err != nil || !item.Visible {
			_ = stream.Send("expired", CountdownEvent{ItemID: id})
			return
		}
		av := domainsvcs.Resolve(item, h.svc.Clock.Now())
		ev := CountdownEvent{
			ItemID:           id,
			Remaining:        domainsvcs.FormatCountdown(av.Remaining),
			RemainingSeconds: int64(av.Remaining / time.Second),
			PriceLabel:       av.Label(),
		}
		if !av.IsPromotionActive {
			_ = stream.Send("expired", ev)
			return
		}
		if err := stream.Send("countdown", ev); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
