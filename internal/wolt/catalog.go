package wolt

import (
	"context"
	"encoding/json"
)

// CatalogDocument is one venue's full nested catalog response. Two layouts
// occur in the wild: an indexed one with a flat top-level item pool plus
// section → category → item-id references, and an inline one where items sit
// directly inside each section.
type CatalogDocument struct {
	Sections []CatalogSection `json:"sections"`
	Items    []CatalogItem    `json:"items"`
}

type CatalogSection struct {
	Name       string            `json:"name"`
	Slug       string            `json:"slug"`
	Categories []CatalogCategory `json:"categories"`
	Items      []CatalogItem     `json:"items"`
}

type CatalogCategory struct {
	ID      string   `json:"id"`
	ItemIDs []string `json:"item_ids"`
}

type CatalogItem struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Description            string          `json:"description"`
	Price                  int64           `json:"price"`
	OriginalPrice          int64           `json:"original_price"`
	UnitInfo               string          `json:"unit_info"`
	UnitPrice              *UnitPrice      `json:"unit_price"`
	BarcodeGTIN            string          `json:"barcode_gtin"`
	Images                 []Image         `json:"images"`
	PurchasableBalance     *int            `json:"purchasable_balance"`
	QuantityLeft           *int            `json:"quantity_left"`
	MaxQuantityPerPurchase *int            `json:"max_quantity_per_purchase"`
	MinQuantityPerPurchase *int            `json:"min_quantity_per_purchase"`
	AlcoholPermille        float64         `json:"alcohol_permille"`
	CaffeineInfo           string          `json:"caffeine_info"`
	VATPercentage          float64         `json:"vat_percentage"`
	DietaryPreferences     []Label         `json:"dietary_preferences"`
	Tags                   []Label         `json:"tags"`
	DisabledInfo           json.RawMessage `json:"disabled_info"`
	IsWoltPlusOnly         bool            `json:"is_wolt_plus_only"`
	IsCutlery              bool            `json:"is_cutlery"`
	Deposit                *float64        `json:"deposit"`
}

// UnitPrice carries a per-base-quantity price in minor units.
type UnitPrice struct {
	Price int64  `json:"price"`
	Base  int    `json:"base"`
	Unit  string `json:"unit"`
}

type Image struct {
	URL      string `json:"url"`
	Blurhash string `json:"blurhash"`
}

// FetchCatalog retrieves a venue's catalog document by slug. Purely a
// retrieval step; the document is not interpreted here. Returns nil on any
// gateway failure.
func (c *Client) FetchCatalog(ctx context.Context, venueSlug string) *CatalogDocument {
	url := c.ConsumerURL + "/consumer-api/venue-content-api/v3/web/venue-content/slug/" + venueSlug

	var doc CatalogDocument
	if err := c.getJSON(ctx, url, &doc); err != nil {
		return nil
	}
	return &doc
}
