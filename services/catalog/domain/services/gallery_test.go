package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
)

func TestGalleryFilter_Matches(t *testing.T) {
	paid := premiumItem("15.00")

	free := premiumItem("0")
	free.Title = "Desert Bloom"
	free.Category = models.CategoryFloral
	free.Premium = false

	promo := withExpiry(premiumItem("12.00"), t0.Add(time.Hour))
	promo.Title = "Midnight Bloom"
	promo.Category = models.CategoryMinimalist

	hidden := premiumItem("5.00")
	hidden.Visible = false

	tests := []struct {
		name   string
		filter GalleryFilter
		item   *models.Item
		want   bool
	}{
		{"zero filter matches visible", GalleryFilter{}, paid, true},
		{"hidden never matches", GalleryFilter{}, hidden, false},
		{"free filter keeps free item", GalleryFilter{Availability: FilterFree}, free, true},
		{"free filter keeps active offer", GalleryFilter{Availability: FilterFree}, promo, true},
		{"free filter drops paid", GalleryFilter{Availability: FilterFree}, paid, false},
		{"premium filter keeps paid", GalleryFilter{Availability: FilterPremium}, paid, true},
		{"premium filter drops active offer", GalleryFilter{Availability: FilterPremium}, promo, false},
		{"category match", GalleryFilter{Category: models.CategoryFloral}, free, true},
		{"category mismatch", GalleryFilter{Category: models.CategoryFloral}, paid, false},
		{"search is case-insensitive", GalleryFilter{Search: "BLOOM"}, promo, true},
		{"search substring miss", GalleryFilter{Search: "sabr"}, free, false},
		{"blank search matches", GalleryFilter{Search: "  "}, free, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.item, t0))
		})
	}
}

func TestGalleryFilter_ExpiredOfferCountsAsPremium(t *testing.T) {
	item := withExpiry(premiumItem("12.00"), t0.Add(time.Hour))
	later := t0.Add(2 * time.Hour)

	assert.False(t, GalleryFilter{Availability: FilterFree}.Matches(item, later))
	assert.True(t, GalleryFilter{Availability: FilterPremium}.Matches(item, later))
}
