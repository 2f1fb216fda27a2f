// Package services contains stateless domain services for the catalog bounded
// context. Every rule that depends on time takes now as a parameter.
package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
)

// Availability is the derived read-time view of an item.
type Availability struct {
	IsFree            bool
	IsPromotionActive bool
	// Price is the amount due: BasePrice when paid, zero when free.
	Price decimal.Decimal
	// Remaining is the time left on the offer, clamped at zero. Meaningful
	// only while IsPromotionActive.
	Remaining time.Duration
}

// Resolve derives the availability of item at instant now. The offer is
// active strictly before its expiry; at the expiry instant the item is paid.
func Resolve(item *models.Item, now time.Time) Availability {
	var av Availability
	if item.PromotionExpiresAt != nil {
		expires := *item.PromotionExpiresAt
		av.IsPromotionActive = now.Before(expires)
		if av.IsPromotionActive {
			av.Remaining = expires.Sub(now)
		}
	}
	av.IsFree = !item.Premium || av.IsPromotionActive
	if !av.IsFree {
		av.Price = item.BasePrice
	}
	return av
}

// Label is the customer-facing price text: "$15.00" or "Complimentary".
func (a Availability) Label() string {
	if a.IsFree {
		return "Complimentary"
	}
	return "$" + a.Price.StringFixed(2)
}

// Badge is the short tag shown on gallery cards.
func (a Availability) Badge() string {
	switch {
	case a.IsPromotionActive:
		return "Limited Free"
	case a.IsFree:
		return "Free"
	default:
		return "Premium"
	}
}

// FormatCountdown renders d as HH:MM:SS. Hours are not wrapped at 24 and
// negative durations render as 00:00:00.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
