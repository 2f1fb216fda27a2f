package services

import (
	"time"

	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
)

// ArmPromotion starts a fresh offer window ending at now + PromotionWindow.
// Re-arming an active offer resets its expiry.
func ArmPromotion(item *models.Item, now time.Time) {
	expires := models.TruncateTime(now.Add(models.PromotionWindow))
	item.PromotionExpiresAt = &expires
}

// DisarmPromotion clears the offer field.
func DisarmPromotion(item *models.Item) {
	item.PromotionExpiresAt = nil
}

// SetPromotion arms the offer when active is true and clears it otherwise.
func SetPromotion(item *models.Item, active bool, now time.Time) {
	if active {
		ArmPromotion(item, now)
		return
	}
	DisarmPromotion(item)
}

// TogglePromotion flips on field presence, not on whether the offer is still
// running: a stored expiry (even a past one) is cleared, an absent one is armed.
func TogglePromotion(item *models.Item, now time.Time) {
	SetPromotion(item, item.PromotionExpiresAt == nil, now)
}
