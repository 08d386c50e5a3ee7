package wolt

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/azmarkets/wolt-scrap/internal/models"
	"github.com/stretchr/testify/require"
)

var testVenue = models.Venue{
	VenueID:  "v-1",
	Name:     "Corner Market",
	Slug:     "corner-market",
	City:     "Baku",
	CitySlug: "baku",
}

func mustDoc(t *testing.T, raw string) *CatalogDocument {
	t.Helper()
	var doc CatalogDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return &doc
}

func TestNormalizeIndexedShape(t *testing.T) {
	doc := mustDoc(t, `{
		"sections": [
			{
				"name": "Beverages",
				"slug": "beverages",
				"categories": [
					{"id": "cat-1", "item_ids": ["i-1", "i-2", "i-missing"]}
				]
			}
		],
		"items": [
			{"id": "i-1", "name": "Cola", "price": 250},
			{"id": "i-2", "name": "Water", "price": 80},
			{"id": "i-unreferenced", "name": "Ghost", "price": 100}
		]
	}`)

	products := Normalize(doc, testVenue, time.Now())

	// Unreferenced pool entries are excluded, dangling ids skipped.
	require.Len(t, products, 2)
	require.Less(t, len(products), len(doc.Items))

	require.Equal(t, "i-1", products[0].ItemID)
	require.Equal(t, "cat-1", products[0].CategoryID)
	require.Equal(t, "Beverages", products[0].SectionName)
	require.Equal(t, "beverages", products[0].SectionSlug)
	require.Equal(t, "v-1", products[0].VenueID)
	require.Equal(t, 2.5, products[0].Price)
	require.Equal(t, 0.8, products[1].Price)
}

func TestNormalizeInlineShape(t *testing.T) {
	doc := mustDoc(t, `{
		"sections": [
			{"name": "Dairy", "slug": "dairy", "items": [
				{"id": "a", "name": "Milk", "price": 150},
				{"id": "b", "name": "Yogurt", "price": 220}
			]},
			{"name": "Empty", "slug": "empty", "items": []},
			{"name": "Snacks", "slug": "snacks", "items": [
				{"id": "c", "name": "Chips", "price": 300},
				{"id": "d", "name": "Nuts", "price": 450},
				{"id": "e", "name": "Crackers", "price": 180},
				{"id": "f", "name": "Popcorn", "price": 210},
				{"id": "g", "name": "Pretzels", "price": 260}
			]}
		]
	}`)

	products := Normalize(doc, testVenue, time.Now())
	require.Len(t, products, 7)

	bySection := map[string]int{}
	for _, p := range products {
		bySection[p.SectionName]++
		require.Empty(t, p.CategoryID)
	}
	require.Equal(t, 2, bySection["Dairy"])
	require.Equal(t, 5, bySection["Snacks"])
}

func TestNormalizeNoSections(t *testing.T) {
	products := Normalize(mustDoc(t, `{"items": [{"id": "x", "price": 100}]}`), testVenue, time.Now())
	require.Empty(t, products)

	products = Normalize(mustDoc(t, `{}`), testVenue, time.Now())
	require.Empty(t, products)

	products = Normalize(nil, testVenue, time.Now())
	require.Empty(t, products)
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := `{
		"sections": [
			{"name": "A", "slug": "a", "categories": [{"id": "c", "item_ids": ["i-1"]}]}
		],
		"items": [{"id": "i-1", "name": "Thing", "price": 199, "original_price": 299}]
	}`

	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	first := Normalize(mustDoc(t, raw), testVenue, at)
	second := Normalize(mustDoc(t, raw), testVenue, at)
	require.Equal(t, first, second)
}

func TestDiscountDerivation(t *testing.T) {
	doc := mustDoc(t, `{
		"sections": [{"name": "S", "slug": "s", "items": [
			{"id": "plain", "name": "No discount", "price": 500},
			{"id": "deal", "name": "Discounted", "price": 750, "original_price": 1000},
			{"id": "zero", "name": "Zero original", "price": 500, "original_price": 0}
		]}]
	}`)

	products := Normalize(doc, testVenue, time.Now())
	require.Len(t, products, 3)

	plain, deal, zero := products[0], products[1], products[2]

	require.Nil(t, plain.OriginalPrice)
	require.Zero(t, plain.DiscountAmount)
	require.Zero(t, plain.DiscountPercentage)

	require.NotNil(t, deal.OriginalPrice)
	require.Equal(t, 10.0, *deal.OriginalPrice)
	require.Equal(t, 2.5, deal.DiscountAmount)
	require.InDelta(t, 25.0, deal.DiscountPercentage, 1e-2)

	// An original price of exactly 0 is treated as no discount.
	require.Nil(t, zero.OriginalPrice)
	require.Zero(t, zero.DiscountAmount)
	require.Zero(t, zero.DiscountPercentage)

	for _, p := range products {
		require.GreaterOrEqual(t, p.Price, 0.0)
	}
}

func TestDiscountRounding(t *testing.T) {
	doc := mustDoc(t, `{
		"sections": [{"name": "S", "slug": "s", "items": [
			{"id": "i", "name": "Odd", "price": 199, "original_price": 299}
		]}]
	}`)

	products := Normalize(doc, testVenue, time.Now())
	require.Len(t, products, 1)

	want := math.Round((299.0-199.0)/299.0*100*100) / 100
	require.InDelta(t, want, products[0].DiscountPercentage, 1e-2)
}

func TestTagCoercion(t *testing.T) {
	asStrings := mustDoc(t, `{
		"sections": [{"name": "S", "slug": "s", "items": [
			{"id": "i", "name": "Beer", "price": 300, "tags": ["beer", "local"], "dietary_preferences": ["vegan"]}
		]}]
	}`)
	asObjects := mustDoc(t, `{
		"sections": [{"name": "S", "slug": "s", "items": [
			{"id": "i", "name": "Beer", "price": 300, "tags": [{"id": "beer"}, {"id": "local"}], "dietary_preferences": [{"id": "vegan"}]}
		]}]
	}`)

	fromStrings := Normalize(asStrings, testVenue, time.Now())
	fromObjects := Normalize(asObjects, testVenue, time.Now())

	require.Equal(t, "beer,local", fromStrings[0].Tags)
	require.Equal(t, "beer,local", fromObjects[0].Tags)
	require.Equal(t, "vegan", fromStrings[0].DietaryPreferences)
	require.Equal(t, "vegan", fromObjects[0].DietaryPreferences)
}

func TestAvailability(t *testing.T) {
	doc := mustDoc(t, `{
		"sections": [{"name": "S", "slug": "s", "items": [
			{"id": "ok", "name": "In stock", "price": 100},
			{"id": "gone", "name": "Out", "price": 100, "disabled_info": {"reason": "out_of_stock"}}
		]}]
	}`)

	products := Normalize(doc, testVenue, time.Now())
	require.True(t, products[0].IsAvailable)
	require.False(t, products[1].IsAvailable)
}

func TestOptionalNestedObjects(t *testing.T) {
	doc := mustDoc(t, `{
		"sections": [{"name": "S", "slug": "s", "items": [
			{"id": "bare", "name": "Bare", "price": 100},
			{
				"id": "full", "name": "Full", "price": 100,
				"unit_price": {"price": 50, "base": 100, "unit": "g"},
				"images": [{"url": "https://img.example/1.jpg", "blurhash": "LKO2?U%2"}]
			}
		]}]
	}`)

	products := Normalize(doc, testVenue, time.Now())
	bare, full := products[0], products[1]

	require.Nil(t, bare.UnitPriceValue)
	require.Nil(t, bare.UnitPriceBase)
	require.Empty(t, bare.UnitPriceUnit)
	require.Empty(t, bare.ImageURL)

	require.NotNil(t, full.UnitPriceValue)
	require.Equal(t, 0.5, *full.UnitPriceValue)
	require.Equal(t, 100, *full.UnitPriceBase)
	require.Equal(t, "g", full.UnitPriceUnit)
	require.Equal(t, "https://img.example/1.jpg", full.ImageURL)
	require.Equal(t, "LKO2?U%2", full.ImageBlurhash)
}

func TestShapeDetection(t *testing.T) {
	indexed := mustDoc(t, `{
		"sections": [{"name": "S", "slug": "s", "categories": [{"id": "c", "item_ids": ["i"]}]}],
		"items": [{"id": "i", "name": "X", "price": 100}]
	}`)
	require.Equal(t, shapeIndexed, detectShape(indexed))

	// Item pool without categories falls back to the inline walk.
	poolOnly := mustDoc(t, `{
		"sections": [{"name": "S", "slug": "s"}],
		"items": [{"id": "i", "name": "X", "price": 100}]
	}`)
	require.Equal(t, shapeInline, detectShape(poolOnly))

	inline := mustDoc(t, `{
		"sections": [{"name": "S", "slug": "s", "items": [{"id": "i", "name": "X", "price": 100}]}]
	}`)
	require.Equal(t, shapeInline, detectShape(inline))
}
