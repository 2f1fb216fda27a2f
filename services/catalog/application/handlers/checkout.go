package handlers

import (
	"net/http"

	"github.com/graphicoglobal/atelier/pkg/errhttp"
	"github.com/graphicoglobal/atelier/pkg/httpx"
	appsvcs "github.com/graphicoglobal/atelier/services/catalog/application/services"
)

// CheckoutResponse is the prepared messenger handoff.
type CheckoutResponse struct {
	ItemID  string `json:"item_id" example:"1"`
	Method  string `json:"method"  example:"bKash"`
	Price   string `json:"price"   example:"$15.00"`
	Notice  string `json:"notice,omitempty" example:"For Rocket, add 4 at the end"`
	Message string `json:"message" example:"I want to get the [Eternal Sabr] wallpaper."`
	URL     string `json:"url"     example:"https://wa.me/01930277399?text=I%20want%20to%20get%20the%20%5BEternal%20Sabr%5D%20wallpaper."`
} // @name CheckoutResponse

// CheckoutHandler handles GET /api/items/{id}/checkout.
type CheckoutHandler struct {
	svc *appsvcs.Services
}

// NewCheckoutHandler returns a CheckoutHandler backed by the given services.
func NewCheckoutHandler(svc *appsvcs.Services) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// Execute composes the checkout deep link for a visible item.
//
//	@Summary		Checkout handoff
//	@Description	Builds the order message and messenger deep link. No payment is taken.
//	@Tags			gallery
//	@Produce		json
//	@Param			id		path		string	true	"Item ID"
//	@Param			method	query		string	true	"Settlement method"	Enums(bKash, Nagad, Rocket)
//	@Success		200		{object}	CheckoutResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/api/items/{id}/checkout [get]
func (h *CheckoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	item, err := visibleItem(r, h.svc)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out, err := h.svc.Checkout.Compose(item, r.URL.Query().Get("method"), h.svc.Clock.Now())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, CheckoutResponse{
		ItemID:  item.ID,
		Method:  string(out.Method),
		Price:   out.Price,
		Notice:  out.Notice,
		Message: out.Message,
		URL:     out.URL,
	})
}
