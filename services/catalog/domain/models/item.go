package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionWindow is the fixed length of a limited-time free offer.
const PromotionWindow = 6 * time.Hour

// Item is the catalog aggregate: one purchasable visual asset.
// Free/paid status is never stored; it is derived at read time from
// Premium and PromotionExpiresAt.
type Item struct {
	ID          string
	Title       Title
	Category    Category
	BasePrice   decimal.Decimal
	AssetRef    string // image URL or data URI
	Description string
	Visible     bool
	Premium     bool
	// PromotionExpiresAt is nil when no offer has been armed. An expired
	// value stays stored until the offer is toggled off.
	PromotionExpiresAt *time.Time
	CreatedAt          time.Time
}

// ItemFields carries every user-editable field of a new item.
type ItemFields struct {
	Title       string
	Category    Category
	BasePrice   decimal.Decimal
	AssetRef    string
	Description string
	Visible     bool
	Premium     bool
}

// ItemPatch lists the fields an update may change. Nil means unchanged.
// ID, CreatedAt and PromotionExpiresAt cannot be patched.
type ItemPatch struct {
	Title       *string
	Category    *Category
	BasePrice   *decimal.Decimal
	AssetRef    *string
	Description *string
	Visible     *bool
	Premium     *bool
}

// NewItem builds an Item from fields with a fresh identifier. Title and
// AssetRef are trimmed; now is truncated to milliseconds, the resolution of
// the stored format. The result is not validated.
func NewItem(fields ItemFields, now time.Time) *Item {
	return &Item{
		ID:          uuid.NewString(),
		Title:       Title(strings.TrimSpace(fields.Title)),
		Category:    fields.Category,
		BasePrice:   fields.BasePrice,
		AssetRef:    strings.TrimSpace(fields.AssetRef),
		Description: fields.Description,
		Visible:     fields.Visible,
		Premium:     fields.Premium,
		CreatedAt:   TruncateTime(now),
	}
}

// Apply merges the non-nil patch fields into a copy of item.
func (p ItemPatch) Apply(item *Item) *Item {
	out := item.Clone()
	if p.Title != nil {
		out.Title = Title(strings.TrimSpace(*p.Title))
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.BasePrice != nil {
		out.BasePrice = *p.BasePrice
	}
	if p.AssetRef != nil {
		out.AssetRef = strings.TrimSpace(*p.AssetRef)
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Visible != nil {
		out.Visible = *p.Visible
	}
	if p.Premium != nil {
		out.Premium = *p.Premium
	}
	return out
}

// Clone returns a deep copy of item.
func (i *Item) Clone() *Item {
	out := *i
	if i.PromotionExpiresAt != nil {
		t := *i.PromotionExpiresAt
		out.PromotionExpiresAt = &t
	}
	return &out
}

// TruncateTime normalises t to UTC millisecond precision.
func TruncateTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
