package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/graphicoglobal/atelier/pkg/errhttp"
	"github.com/graphicoglobal/atelier/pkg/httpx"
	pkgvalidator "github.com/graphicoglobal/atelier/pkg/validator"
	appsvcs "github.com/graphicoglobal/atelier/services/catalog/application/services"
	"github.com/graphicoglobal/atelier/services/catalog/domain"
	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
)

// CreateItemRequest is the request body for POST /api/admin/items.
type CreateItemRequest struct {
	Title       string           `json:"title"       validate:"required,notblank,max=200" example:"Desert Bloom"`
	Category    string           `json:"category"    validate:"required,category" example:"Floral"`
	BasePrice   *decimal.Decimal `json:"base_price"  swaggertype:"string" example:"0"`
	AssetRef    string           `json:"asset_ref"   validate:"required,notblank" example:"https://images.unsplash.com/photo-1542332213-31f87348057f"`
	Description string           `json:"description" validate:"max=2000" example:"Delicate textures meets minimalist desert aesthetics."`
	Visible     *bool            `json:"visible"     example:"true"`
	Premium     bool             `json:"premium"     example:"false"`
} // @name CreateItemRequest

// UpdateItemRequest is the request body for PATCH /api/admin/items/{id}.
// Omitted fields are left unchanged.
type UpdateItemRequest struct {
	Title       *string          `json:"title"       validate:"omitempty,notblank,max=200" example:"Midnight Bloom"`
	Category    *string          `json:"category"    validate:"omitempty,category" example:"Minimalist"`
	BasePrice   *decimal.Decimal `json:"base_price"  swaggertype:"string" example:"12.00"`
	AssetRef    *string          `json:"asset_ref"   validate:"omitempty,notblank"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Visible     *bool            `json:"visible"`
	Premium     *bool            `json:"premium"`
} // @name UpdateItemRequest

// AdminItemsHandler handles the /api/admin/items endpoints.
type AdminItemsHandler struct {
	svc *appsvcs.Services
}

// NewAdminItemsHandler returns an AdminItemsHandler backed by the given services.
func NewAdminItemsHandler(svc *appsvcs.Services) *AdminItemsHandler {
	return &AdminItemsHandler{svc: svc}
}

// List returns every item, hidden ones included.
//
//	@Summary	List all items
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	ItemListResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/api/admin/items [get]
func (h *AdminItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Catalog.List(r.Context())
	now := h.svc.Clock.Now()
	out := ItemListResponse{Items: make([]ItemResponse, len(items)), Total: len(items)}
	for i, item := range items {
		out.Items[i] = toItemResponse(item, now)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Create publishes a new item at the front of the collection.
//
//	@Summary		Publish item
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item fields"
//	@Success		201		{object}	MutationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/admin/items [post]
func (h *AdminItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}
	category, err := parseCategory(req.Category)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	item, err := h.svc.Catalog.Publish(r.Context(), models.ItemFields{
		Title:       req.Title,
		Category:    *category,
		BasePrice:   priceOrZero(req.BasePrice),
		AssetRef:    req.AssetRef,
		Description: req.Description,
		Visible:     visible,
		Premium:     req.Premium,
	})
	writeMutation(w, http.StatusCreated, item, err, h.svc.Clock.Now())
}

// Update merges the supplied fields into an item.
//
//	@Summary		Update item
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Fields to change"
//	@Success		200		{object}	MutationResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/admin/items/{id} [patch]
func (h *AdminItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}
	patch := models.ItemPatch{
		Title:       req.Title,
		BasePrice:   req.BasePrice,
		AssetRef:    req.AssetRef,
		Description: req.Description,
		Visible:     req.Visible,
		Premium:     req.Premium,
	}
	if req.Category != nil {
		category, err := parseCategory(*req.Category)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
		patch.Category = category
	}

	item, err := h.svc.Catalog.Update(r.Context(), chi.URLParam(r, "id"), patch)
	writeMutation(w, http.StatusOK, item, err, h.svc.Clock.Now())
}

// Delete removes an item. Deleting an absent item succeeds.
//
//	@Summary	Remove item
//	@Tags		admin
//	@Produce	json
//	@Param		id	path	string	true	"Item ID"
//	@Success	204
//	@Success	200	{object}	MutationResponse	"removed but not saved"
//	@Failure	401	{object}	ErrorResponse
//	@Router		/api/admin/items/{id} [delete]
func (h *AdminItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Catalog.Remove(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, domain.ErrPersistence):
		httpx.JSON(w, http.StatusOK, MutationResponse{Warning: persistWarning})
	default:
		errhttp.WriteError(w, err)
	}
}
