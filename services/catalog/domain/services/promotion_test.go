package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
)

func TestTogglePromotion_ArmsWhenAbsent(t *testing.T) {
	item := premiumItem("15.00")

	TogglePromotion(item, t0)

	require.NotNil(t, item.PromotionExpiresAt)
	assert.True(t, item.PromotionExpiresAt.Equal(t0.Add(6*time.Hour)))
}

func TestTogglePromotion_ClearsWhenPresent(t *testing.T) {
	t.Run("active offer", func(t *testing.T) {
		item := withExpiry(premiumItem("15.00"), t0.Add(time.Hour))
		TogglePromotion(item, t0)
		assert.Nil(t, item.PromotionExpiresAt)
	})
	t.Run("expired offer", func(t *testing.T) {
		item := withExpiry(premiumItem("15.00"), t0.Add(-time.Hour))
		TogglePromotion(item, t0)
		assert.Nil(t, item.PromotionExpiresAt, "toggle keys on presence, not activity")
	})
}

func TestTogglePromotion_TwiceReturnsToAbsent(t *testing.T) {
	item := premiumItem("15.00")
	TogglePromotion(item, t0)
	TogglePromotion(item, t0.Add(time.Minute))
	assert.Nil(t, item.PromotionExpiresAt)
}

func TestSetPromotion(t *testing.T) {
	t.Run("re-arm resets the window", func(t *testing.T) {
		item := withExpiry(premiumItem("15.00"), t0.Add(time.Hour))
		later := t0.Add(30 * time.Minute)
		SetPromotion(item, true, later)
		require.NotNil(t, item.PromotionExpiresAt)
		assert.True(t, item.PromotionExpiresAt.Equal(later.Add(models.PromotionWindow)))
	})
	t.Run("disarm clears", func(t *testing.T) {
		item := withExpiry(premiumItem("15.00"), t0.Add(time.Hour))
		SetPromotion(item, false, t0)
		assert.Nil(t, item.PromotionExpiresAt)
	})
	t.Run("disarm on absent is a no-op", func(t *testing.T) {
		item := premiumItem("15.00")
		SetPromotion(item, false, t0)
		assert.Nil(t, item.PromotionExpiresAt)
	})
}

func TestArmPromotion_TruncatesToMillisecond(t *testing.T) {
	item := premiumItem("15.00")
	ArmPromotion(item, t0.Add(1500*time.Microsecond))
	require.NotNil(t, item.PromotionExpiresAt)
	assert.Equal(t, 1000000, item.PromotionExpiresAt.Nanosecond())
}
