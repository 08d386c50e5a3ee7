package wolt

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/azmarkets/wolt-scrap/internal/models"
)

// Label is a list-field element that may arrive either as a plain string or
// as a small object carrying an id.
type Label struct {
	ID string
}

func (l *Label) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &l.ID)
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	l.ID = obj.ID
	return nil
}

func joinLabels(labels []Label) string {
	if len(labels) == 0 {
		return ""
	}
	ids := make([]string, len(labels))
	for i, l := range labels {
		ids[i] = l.ID
	}
	return strings.Join(ids, ",")
}

type catalogShape int

const (
	shapeInline catalogShape = iota
	shapeIndexed
)

// detectShape picks the document layout once per document: a non-empty
// top-level item pool plus at least one section with categories means the
// indexed layout; anything else is treated as inline.
func detectShape(doc *CatalogDocument) catalogShape {
	if len(doc.Items) == 0 {
		return shapeInline
	}
	for _, s := range doc.Sections {
		if len(s.Categories) > 0 {
			return shapeIndexed
		}
	}
	return shapeInline
}

// Normalize flattens a catalog document into product records for the given
// venue. A document with neither sections nor a usable item source yields an
// empty slice; that is a venue with no published catalog, not an error.
func Normalize(doc *CatalogDocument, venue models.Venue, scrapedAt time.Time) []models.Product {
	if doc == nil || len(doc.Sections) == 0 {
		return nil
	}

	var products []models.Product
	switch detectShape(doc) {
	case shapeIndexed:
		pool := make(map[string]*CatalogItem, len(doc.Items))
		for i := range doc.Items {
			pool[doc.Items[i].ID] = &doc.Items[i]
		}
		for _, section := range doc.Sections {
			for _, category := range section.Categories {
				for _, id := range category.ItemIDs {
					item, ok := pool[id]
					if !ok {
						// Dangling reference; never fatal.
						continue
					}
					p := buildProduct(item, venue, scrapedAt)
					p.CategoryID = category.ID
					p.SectionName = section.Name
					p.SectionSlug = section.Slug
					products = append(products, p)
				}
			}
		}
	case shapeInline:
		for _, section := range doc.Sections {
			for i := range section.Items {
				p := buildProduct(&section.Items[i], venue, scrapedAt)
				p.SectionName = section.Name
				p.SectionSlug = section.Slug
				products = append(products, p)
			}
		}
	}
	return products
}

func buildProduct(item *CatalogItem, venue models.Venue, scrapedAt time.Time) models.Product {
	p := models.Product{
		ItemID:                 item.ID,
		VenueID:                venue.VenueID,
		VenueName:              venue.Name,
		VenueSlug:              venue.Slug,
		City:                   venue.City,
		CitySlug:               venue.CitySlug,
		Name:                   item.Name,
		Description:            item.Description,
		Price:                  float64(item.Price) / 100,
		UnitInfo:               item.UnitInfo,
		BarcodeGTIN:            item.BarcodeGTIN,
		PurchasableBalance:     item.PurchasableBalance,
		QuantityLeft:           item.QuantityLeft,
		MaxQuantityPerPurchase: item.MaxQuantityPerPurchase,
		MinQuantityPerPurchase: item.MinQuantityPerPurchase,
		AlcoholPermille:        item.AlcoholPermille,
		CaffeineInfo:           item.CaffeineInfo,
		VATPercentage:          item.VATPercentage,
		DietaryPreferences:     joinLabels(item.DietaryPreferences),
		Tags:                   joinLabels(item.Tags),
		IsAvailable:            !isDisabled(item.DisabledInfo),
		IsWoltPlusOnly:         item.IsWoltPlusOnly,
		IsCutlery:              item.IsCutlery,
		Deposit:                item.Deposit,
		ScrapedAt:              scrapedAt,
	}

	// Discounts only exist against a positive original price.
	if item.OriginalPrice > 0 {
		original := float64(item.OriginalPrice) / 100
		p.OriginalPrice = &original
		p.DiscountAmount = float64(item.OriginalPrice-item.Price) / 100
		p.DiscountPercentage = round2(float64(item.OriginalPrice-item.Price) / float64(item.OriginalPrice) * 100)
	}

	if item.UnitPrice != nil {
		value := float64(item.UnitPrice.Price) / 100
		base := item.UnitPrice.Base
		p.UnitPriceValue = &value
		p.UnitPriceBase = &base
		p.UnitPriceUnit = item.UnitPrice.Unit
	}

	if len(item.Images) > 0 {
		p.ImageURL = item.Images[0].URL
		p.ImageBlurhash = item.Images[0].Blurhash
	}

	return p
}

// isDisabled reports whether a disabling marker is actually present; a
// missing or empty marker means the item is available.
func isDisabled(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "false", "{}", "[]", `""`, "0":
		return false
	}
	return true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
