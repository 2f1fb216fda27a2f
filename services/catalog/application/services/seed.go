package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
	domainsvcs "github.com/graphicoglobal/atelier/services/catalog/domain/services"
)

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + "?auto=format&fit=crop&q=80&w=1000"
}

// SeedItems returns the starter collection shown when nothing has been stored.
// "Midnight Bloom" starts with an offer armed from now.
func SeedItems(now time.Time) []*models.Item {
	created := models.TruncateTime(now)
	items := []*models.Item{
		{
			ID:          "1",
			Title:       "Eternal Sabr",
			Category:    models.CategorySabrSeries,
			BasePrice:   decimal.RequireFromString("15.00"),
			AssetRef:    unsplash("photo-1579546929518-9e396f3cc809"),
			Description: "A serene journey through patience and light.",
			Visible:     true,
			Premium:     true,
			CreatedAt:   created,
		},
		{
			ID:          "2",
			Title:       "Desert Bloom",
			Category:    models.CategoryFloral,
			BasePrice:   decimal.Zero,
			AssetRef:    unsplash("photo-1542332213-31f87348057f"),
			Description: "Delicate textures meets minimalist desert aesthetics.",
			Visible:     true,
			Premium:     false,
			CreatedAt:   created,
		},
		{
			ID:          "3",
			Title:       "Midnight Bloom",
			Category:    models.CategoryMinimalist,
			BasePrice:   decimal.RequireFromString("12.00"),
			AssetRef:    unsplash("photo-1550684848-fac1c5b4e853"),
			Description: "Sophisticated dark floral patterns for a premium look.",
			Visible:     true,
			Premium:     true,
			CreatedAt:   created,
		},
	}
	domainsvcs.ArmPromotion(items[2], now)
	return items
}
