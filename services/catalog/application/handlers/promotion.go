package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	pkgvalidator "github.com/graphicoglobal/atelier/pkg/validator"
	appsvcs "github.com/graphicoglobal/atelier/services/catalog/application/services"
)

// SetPromotionRequest is the request body for PUT /api/admin/items/{id}/promotion.
type SetPromotionRequest struct {
	Active *bool `json:"active" validate:"required" example:"true"`
} // @name SetPromotionRequest

// PromotionHandler handles the limited-time offer endpoints.
type PromotionHandler struct {
	svc *appsvcs.Services
}

// NewPromotionHandler returns a PromotionHandler backed by the given services.
func NewPromotionHandler(svc *appsvcs.Services) *PromotionHandler {
	return &PromotionHandler{svc: svc}
}

// Toggle clears a stored offer or arms a fresh six hour window.
//
//	@Summary		Toggle offer
//	@Description	Clears the offer when one is stored (even if already expired); otherwise arms one ending six hours from now.
//	@Tags			admin
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	MutationResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/admin/items/{id}/promotion/toggle [post]
func (h *PromotionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Catalog.TogglePromotion(r.Context(), chi.URLParam(r, "id"))
	writeMutation(w, http.StatusOK, item, err, h.svc.Clock.Now())
}

// Set arms (re-arming resets the window) or clears the offer.
//
//	@Summary	Set offer
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Item ID"
//	@Param		request	body		SetPromotionRequest	true	"Desired state"
//	@Success	200		{object}	MutationResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/api/admin/items/{id}/promotion [put]
func (h *PromotionHandler) Set(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SetPromotionRequest](w, r)
	if !ok {
		return
	}
	item, err := h.svc.Catalog.SetPromotion(r.Context(), chi.URLParam(r, "id"), *req.Active)
	writeMutation(w, http.StatusOK, item, err, h.svc.Clock.Now())
}
