package services

import (
	"fmt"

	"github.com/graphicoglobal/atelier/services/catalog/domain"
	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
)

// ValidateItem checks the catalog rules for a fully-built item:
//   - title is not blank
//   - asset reference is not blank
//   - base price is not negative
//   - category is one of the enumerated collections
//
// Errors wrap domain.ErrValidation.
func ValidateItem(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("%w: item cannot be nil", domain.ErrValidation)
	}
	if _, err := models.NewTitle(item.Title.String()); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if item.AssetRef == "" {
		return fmt.Errorf("%w: asset reference must not be empty", domain.ErrValidation)
	}
	if item.BasePrice.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if !item.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, item.Category)
	}
	return nil
}
