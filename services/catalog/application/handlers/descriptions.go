package handlers

import (
	"net/http"

	"github.com/graphicoglobal/atelier/pkg/errhttp"
	"github.com/graphicoglobal/atelier/pkg/httpx"
	pkgvalidator "github.com/graphicoglobal/atelier/pkg/validator"
	appsvcs "github.com/graphicoglobal/atelier/services/catalog/application/services"
)

// DescriptionRequest is the request body for POST /api/admin/descriptions.
type DescriptionRequest struct {
	Title    string `json:"title"    validate:"required,notblank,max=200" example:"Desert Bloom"`
	Category string `json:"category" validate:"required,category" example:"Floral"`
} // @name DescriptionRequest

// DescriptionResponse carries a suggested description.
type DescriptionResponse struct {
	Description string `json:"description" example:"A refined expression of minimalist art for your digital sanctuary."`
} // @name DescriptionResponse

// DescriptionHandler handles POST /api/admin/descriptions.
type DescriptionHandler struct {
	svc *appsvcs.Services
}

// NewDescriptionHandler returns a DescriptionHandler backed by the given services.
func NewDescriptionHandler(svc *appsvcs.Services) *DescriptionHandler {
	return &DescriptionHandler{svc: svc}
}

// Execute suggests a description. Generation failures fall back to a fixed sentence.
//
//	@Summary	Suggest description
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		DescriptionRequest	true	"Item title and category"
//	@Success	200		{object}	DescriptionResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/api/admin/descriptions [post]
func (h *DescriptionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[DescriptionRequest](w, r)
	if !ok {
		return
	}
	category, err := parseCategory(req.Category)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	text := h.svc.Description.Generate(r.Context(), req.Title, category.String())
	httpx.JSON(w, http.StatusOK, DescriptionResponse{Description: text})
}
