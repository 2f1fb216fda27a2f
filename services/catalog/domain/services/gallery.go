package services

import (
	"strings"
	"time"

	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
)

// AvailabilityFilter selects items by their resolved free/paid state.
type AvailabilityFilter string

const (
	FilterAll     AvailabilityFilter = "all"
	FilterFree    AvailabilityFilter = "free"
	FilterPremium AvailabilityFilter = "premium"
)

// GalleryFilter narrows the public listing. Zero values match everything.
type GalleryFilter struct {
	Availability AvailabilityFilter
	Category     models.Category
	// Search is matched case-insensitively against the title.
	Search string
}

// Matches reports whether item passes f at instant now. Hidden items never match.
func (f GalleryFilter) Matches(item *models.Item, now time.Time) bool {
	if !item.Visible {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if q := strings.TrimSpace(f.Search); q != "" &&
		!strings.Contains(strings.ToLower(item.Title.String()), strings.ToLower(q)) {
		return false
	}
	switch f.Availability {
	case FilterFree:
		return Resolve(item, now).IsFree
	case FilterPremium:
		return !Resolve(item, now).IsFree
	default:
		return true
	}
}
