// Package codec converts the catalog collection to and from its stored JSON
// form: an ordered array of records with millisecond epoch timestamps.
// Encoding is deterministic, so decode followed by encode reproduces the
// original bytes.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
)

type record struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Category         string      `json:"category"`
	Price            json.Number `json:"price"`
	ImageURL         string      `json:"imageUrl"`
	Description      string      `json:"description"`
	IsActive         bool        `json:"isActive"`
	IsPremium        bool        `json:"isPremium"`
	LimitedFreeUntil *int64      `json:"limitedFreeUntil,omitempty"`
	CreatedAt        int64       `json:"createdAt"`
}

// Encode serializes items in order.
func Encode(items []*models.Item) ([]byte, error) {
	records := make([]record, len(items))
	for i, item := range items {
		records[i] = toRecord(item)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses a stored blob. Any malformed record fails the whole blob.
func Decode(data []byte) ([]*models.Item, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	items := make([]*models.Item, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		item, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("decode catalog record %d: %w", i, err)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("decode catalog record %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}
	return items, nil
}

func toRecord(item *models.Item) record {
	rec := record{
		ID:          item.ID,
		Name:        item.Title.String(),
		Category:    item.Category.String(),
		Price:       json.Number(item.BasePrice.String()),
		ImageURL:    item.AssetRef,
		Description: item.Description,
		IsActive:    item.Visible,
		IsPremium:   item.Premium,
		CreatedAt:   item.CreatedAt.UnixMilli(),
	}
	if item.PromotionExpiresAt != nil {
		ms := item.PromotionExpiresAt.UnixMilli()
		rec.LimitedFreeUntil = &ms
	}
	return rec
}

func fromRecord(rec record) (*models.Item, error) {
	if rec.ID == "" {
		return nil, fmt.Errorf("missing id")
	}
	category, err := models.ParseCategory(rec.Category)
	if err != nil {
		return nil, err
	}
	price := decimal.Zero
	if rec.Price != "" {
		price, err = decimal.NewFromString(rec.Price.String())
		if err != nil {
			return nil, fmt.Errorf("price: %w", err)
		}
	}
	item := &models.Item{
		ID:          rec.ID,
		Title:       models.Title(rec.Name),
		Category:    category,
		BasePrice:   price,
		AssetRef:    rec.ImageURL,
		Description: rec.Description,
		Visible:     rec.IsActive,
		Premium:     rec.IsPremium,
		CreatedAt:   time.UnixMilli(rec.CreatedAt).UTC(),
	}
	if rec.LimitedFreeUntil != nil {
		t := time.UnixMilli(*rec.LimitedFreeUntil).UTC()
		item.PromotionExpiresAt = &t
	}
	return item, nil
}
