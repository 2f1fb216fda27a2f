package codec

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphicoglobal/atelier/services/catalog/domain/models"
)

func sampleCollection() []*models.Item {
	created := time.Date(2026, 1, 2, 3, 4, 5, 678000000, time.UTC)
	expires := created.Add(models.PromotionWindow)
	return []*models.Item{
		{
			ID:                 "3",
			Title:              "Midnight Bloom",
			Category:           models.CategoryMinimalist,
			BasePrice:          decimal.RequireFromString("12.00"),
			AssetRef:           "https://images.example.com/midnight.jpg",
			Description:        "Sophisticated dark floral patterns <for> a premium look & feel.",
			Visible:            true,
			Premium:            true,
			PromotionExpiresAt: &expires,
			CreatedAt:          created,
		},
		{
			ID:          "2",
			Title:       "Desert Bloom",
			Category:    models.CategoryFloral,
			BasePrice:   decimal.Zero,
			AssetRef:    "data:image/png;base64,iVBORw0KGgo=",
			Description: "",
			Visible:     false,
			Premium:     false,
			CreatedAt:   created.Add(-time.Hour),
		},
	}
}

func TestEncode_StableRoundTrip(t *testing.T) {
	first, err := Encode(sampleCollection())
	require.NoError(t, err)

	decoded, err := Decode(first)
	require.NoError(t, err)

	second, err := Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestDecode_PreservesFieldsAndOrder(t *testing.T) {
	original := sampleCollection()
	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, decoded, len(original))

	for i := range original {
		want, got := original[i], decoded[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Title, got.Title)
		assert.Equal(t, want.Category, got.Category)
		assert.True(t, want.BasePrice.Equal(got.BasePrice), "price %s vs %s", want.BasePrice, got.BasePrice)
		assert.Equal(t, want.AssetRef, got.AssetRef)
		assert.Equal(t, want.Description, got.Description)
		assert.Equal(t, want.Visible, got.Visible)
		assert.Equal(t, want.Premium, got.Premium)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
		if want.PromotionExpiresAt == nil {
			assert.Nil(t, got.PromotionExpiresAt)
		} else {
			require.NotNil(t, got.PromotionExpiresAt)
			assert.True(t, want.PromotionExpiresAt.Equal(*got.PromotionExpiresAt))
		}
	}
}

func TestEncode_WireFormat(t *testing.T) {
	created := time.UnixMilli(1700000000000).UTC()
	data, err := Encode([]*models.Item{{
		ID:        "1",
		Title:     "Eternal Sabr",
		Category:  models.CategorySabrSeries,
		BasePrice: decimal.RequireFromString("15.00"),
		AssetRef:  "https://images.example.com/sabr.jpg",
		Visible:   true,
		Premium:   true,
		CreatedAt: created,
	}})
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"id":"1","name":"Eternal Sabr","category":"Sabr Series","price":15,
		"imageUrl":"https://images.example.com/sabr.jpg","description":"",
		"isActive":true,"isPremium":true,"createdAt":1700000000000
	}]`, string(data))
	assert.NotContains(t, string(data), "limitedFreeUntil", "absent offer is omitted")
}

func TestEncode_KeepsHTMLCharactersUnescaped(t *testing.T) {
	blob := `[{"id":"1","name":"Rock & Roll <b>","category":"Abstract","price":15,` +
		`"imageUrl":"https://images.example.com/a.jpg?w=1&h=2","description":"bold > loud",` +
		`"isActive":true,"isPremium":false,"createdAt":1700000000000}]`

	items, err := Decode([]byte(blob))
	require.NoError(t, err)

	out, err := Encode(items)
	require.NoError(t, err)
	assert.Equal(t, blob, string(out))
}

func TestDecode_AcceptsStoredBlob(t *testing.T) {
	blob := []byte(`[{"id":"1","name":"Eternal Sabr","category":"Sabr Series","price":15.5,
		"imageUrl":"u","description":"d","isActive":true,"isPremium":true,
		"limitedFreeUntil":1700021600000,"createdAt":1700000000000}]`)

	items, err := Decode(blob)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].BasePrice.Equal(decimal.RequireFromString("15.5")))
	require.NotNil(t, items[0].PromotionExpiresAt)
	assert.Equal(t, int64(1700021600000), items[0].PromotionExpiresAt.UnixMilli())
}

func TestDecode_Empty(t *testing.T) {
	items, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, items)

	data, err := Encode(items)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", `{{{`},
		{"object instead of array", `{"id":"1"}`},
		{"unknown category", `[{"id":"1","name":"x","category":"Vintage","price":1,"imageUrl":"u","createdAt":0}]`},
		{"missing id", `[{"name":"x","category":"Floral","price":1,"imageUrl":"u","createdAt":0}]`},
		{"duplicate id", `[{"id":"1","category":"Floral","price":1,"createdAt":0},{"id":"1","category":"Floral","price":1,"createdAt":0}]`},
		{"price not a number", `[{"id":"1","category":"Floral","price":"abc","createdAt":0}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.blob))
			assert.Error(t, err)
		})
	}
}
