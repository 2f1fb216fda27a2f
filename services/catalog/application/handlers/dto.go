package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/graphicoglobal/atelier/pkg/errhttp"
	"github.com/graphicoglobal/atelier/pkg/httpx"
	pkgvalidator "github.com/graphicoglobal/atelier/pkg/validator"
	"github.com/graphicoglobal/atelier/services/catalog/domain"
	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
	domainsvcs "github.com/graphicoglobal/atelier/services/catalog/domain/services"
)

func init() {
	names := make([]string, 0, 5)
	for _, c := range models.Categories() {
		names = append(names, c.String())
	}
	err := pkgvalidator.RegisterString("category", "Must be one of: "+strings.Join(names, ", "), func(s string) bool {
		return models.Category(s).Valid()
	})
	if err != nil {
		panic(err)
	}
}

// persistWarning is reported when a change was applied but could not be saved.
const persistWarning = "change applied but not saved; it will be lost on restart"

// AvailabilityResponse is the resolved free/paid state of an item.
type AvailabilityResponse struct {
	IsFree            bool   `json:"is_free"             example:"false"`
	IsPromotionActive bool   `json:"is_promotion_active" example:"true"`
	PriceLabel        string `json:"price_label"         example:"$15.00"`
	Badge             string `json:"badge"               example:"Limited Free"`
	RemainingSeconds  int64  `json:"remaining_seconds"   example:"21599"`
	Countdown         string `json:"countdown,omitempty" example:"05:59:59"`
} // @name AvailabilityResponse

// ItemResponse is the JSON form of a catalog item.
type ItemResponse struct {
	ID                 string               `json:"id"                   example:"3"`
	Title              string               `json:"title"                example:"Midnight Bloom"`
	Category           string               `json:"category"             example:"Minimalist"`
	BasePrice          string               `json:"base_price"           example:"12.00"`
	AssetRef           string               `json:"asset_ref"            example:"https://images.unsplash.com/photo-1550684848-fac1c5b4e853"`
	Description        string               `json:"description"          example:"Sophisticated dark floral patterns for a premium look."`
	Visible            bool                 `json:"visible"              example:"true"`
	Premium            bool                 `json:"premium"              example:"true"`
	PromotionExpiresAt *time.Time           `json:"promotion_expires_at" example:"2026-01-15T16:30:00Z"`
	CreatedAt          time.Time            `json:"created_at"           example:"2026-01-15T10:30:00Z"`
	Availability       AvailabilityResponse `json:"availability"`
} // @name ItemResponse

// ItemListResponse wraps a list of items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total" example:"3"`
} // @name ItemListResponse

// MutationResponse is returned by admin commands that change an item.
type MutationResponse struct {
	Item    *ItemResponse `json:"item,omitempty"`
	Warning string        `json:"warning,omitempty" example:""`
} // @name MutationResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func toAvailabilityResponse(av domainsvcs.Availability) AvailabilityResponse {
	out := AvailabilityResponse{
		IsFree:            av.IsFree,
		IsPromotionActive: av.IsPromotionActive,
		PriceLabel:        av.Label(),
		Badge:             av.Badge(),
	}
	if av.IsPromotionActive {
		out.RemainingSeconds = int64(av.Remaining / time.Second)
		out.Countdown = domainsvcs.FormatCountdown(av.Remaining)
	}
	return out
}

func toItemResponse(item *models.Item, now time.Time) ItemResponse {
	return toResolvedResponse(item, domainsvcs.Resolve(item, now))
}

func toResolvedResponse(item *models.Item, av domainsvcs.Availability) ItemResponse {
	return ItemResponse{
		ID:                 item.ID,
		Title:              item.Title.String(),
		Category:           item.Category.String(),
		BasePrice:          item.BasePrice.StringFixed(2),
		AssetRef:           item.AssetRef,
		Description:        item.Description,
		Visible:            item.Visible,
		Premium:            item.Premium,
		PromotionExpiresAt: item.PromotionExpiresAt,
		CreatedAt:          item.CreatedAt,
		Availability:       toAvailabilityResponse(av),
	}
}

// writeMutation answers an admin command. A persistence failure still
// reports the applied item, with a warning.
func writeMutation(w http.ResponseWriter, status int, item *models.Item, err error, now time.Time) {
	if err != nil && !(errors.Is(err, domain.ErrPersistence) && item != nil) {
		errhttp.WriteError(w, err)
		return
	}
	resp := toItemResponse(item, now)
	out := MutationResponse{Item: &resp}
	if err != nil {
		out.Warning = persistWarning
	}
	httpx.JSON(w, status, out)
}

func parseCategory(s string) (*models.Category, error) {
	c, err := models.ParseCategory(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return &c, nil
}

func priceOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
