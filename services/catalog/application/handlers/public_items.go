package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/graphicoglobal/atelier/pkg/errhttp"
	"github.com/graphicoglobal/atelier/pkg/httpx"
	appsvcs "github.com/graphicoglobal/atelier/services/catalog/application/services"
	"github.com/graphicoglobal/atelier/services/catalog/domain"
	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
	domainsvcs "github.com/graphicoglobal/atelier/services/catalog/domain/services"
)

// ListGalleryHandler handles GET /api/items.
type ListGalleryHandler struct {
	svc *appsvcs.Services
}

// NewListGalleryHandler returns a ListGalleryHandler backed by the given services.
func NewListGalleryHandler(svc *appsvcs.Services) *ListGalleryHandler {
	return &ListGalleryHandler{svc: svc}
}

// Execute lists the visible items.
//
//	@Summary		Browse gallery
//	@Description	Lists visible items, resolved at the current instant. Hidden items are never returned.
//	@Tags			gallery
//	@Produce		json
//	@Param			availability	query		string	false	"all, free or premium"	Enums(all, free, premium)
//	@Param			category		query		string	false	"Category name"
//	@Param			q				query		string	false	"Case-insensitive title search"
//	@Success		200				{object}	ItemListResponse
//	@Failure		422				{object}	ErrorResponse
//	@Router			/api/items [get]
func (h *ListGalleryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	filter, err := parseGalleryFilter(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resolved := h.svc.Catalog.Gallery(r.Context(), filter)
	out := ItemListResponse{Items: make([]ItemResponse, len(resolved)), Total: len(resolved)}
	for i, ri := range resolved {
		out.Items[i] = toResolvedResponse(ri.Item, ri.Availability)
	}
	httpx.JSON(w, http.StatusOK, out)
}

func parseGalleryFilter(r *http.Request) (domainsvcs.GalleryFilter, error) {
	q := r.URL.Query()
	filter := domainsvcs.GalleryFilter{Search: q.Get("q")}

	switch a := domainsvcs.AvailabilityFilter(strings.ToLower(q.Get("availability"))); a {
	case "", domainsvcs.FilterAll:
		filter.Availability = domainsvcs.FilterAll
	case domainsvcs.FilterFree, domainsvcs.FilterPremium:
		filter.Availability = a
	default:
		return filter, fmt.Errorf("%w: availability must be all, free or premium", domain.ErrValidation)
	}

	if c := q.Get("category"); c != "" {
		category, err := parseCategory(c)
		if err != nil {
			return filter, err
		}
		filter.Category = *category
	}
	return filter, nil
}

// GetItemHandler handles GET /api/items/{id}.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns one visible item.
//
//	@Summary	Item detail
//	@Tags		gallery
//	@Produce	json
//	@Param		id	path		string	true	"Item ID"
//	@Success	200	{object}	ItemResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	item, err := visibleItem(r, h.svc)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item, h.svc.Clock.Now()))
}

// visibleItem loads the {id} item for public routes. Hidden items are reported
// as not found.
func visibleItem(r *http.Request, svc *appsvcs.Services) (*models.Item, error) {
	id := chi.URLParam(r, "id")
	item, err := svc.Catalog.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if !item.Visible {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return item, nil
}

// CategoriesResponse lists the catalog categories.
type CategoriesResponse struct {
	Categories []string `json:"categories" example:"Sabr Series,Minimalist,Floral,Geometric,Abstract"`
} // @name CategoriesResponse

// ListCategories handles GET /api/categories.
//
//	@Summary	List categories
//	@Tags		gallery
//	@Produce	json
//	@Success	200	{object}	CategoriesResponse
//	@Router		/api/categories [get]
func ListCategories(w http.ResponseWriter, _ *http.Request) {
	cats := models.Categories()
	out := CategoriesResponse{Categories: make([]string, len(cats))}
	for i, c := range cats {
		out.Categories[i] = c.String()
	}
	httpx.JSON(w, http.StatusOK, out)
}
