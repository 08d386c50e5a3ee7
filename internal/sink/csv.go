package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/azmarkets/wolt-scrap/internal/models"
)

// Column order is part of the output contract: the reporting layer joins
// the two files on venue_id and reads columns positionally.

var venueColumns = []string{
	"venue_id", "name", "slug", "address", "city", "city_slug", "country",
	"latitude", "longitude", "rating_score", "rating_volume", "price_range",
	"online", "delivers", "delivery_price", "estimate_minutes",
	"estimate_range", "short_description", "tags", "scraped_at",
}

var productColumns = []string{
	"item_id", "venue_id", "venue_name", "venue_slug", "city", "city_slug",
	"category_id", "section_name", "section_slug", "name", "description",
	"price", "original_price", "discount_amount", "discount_percentage",
	"unit_info", "unit_price_value", "unit_price_base", "unit_price_unit",
	"barcode_gtin", "image_url", "image_blurhash", "purchasable_balance",
	"quantity_left", "max_quantity_per_purchase", "min_quantity_per_purchase",
	"alcohol_permille", "caffeine_info", "vat_percentage",
	"dietary_preferences", "tags", "is_available", "is_wolt_plus_only",
	"is_cutlery", "deposit", "scraped_at",
}

// WriteVenuesCSV writes one row per venue in the stable column order.
func WriteVenuesCSV(path string, venues []models.Venue) error {
	return writeCSV(path, venueColumns, len(venues), func(i int) []string {
		v := venues[i]
		return []string{
			v.VenueID, v.Name, v.Slug, v.Address, v.City, v.CitySlug, v.Country,
			fmtFloat(v.Latitude), fmtFloat(v.Longitude),
			fmtFloatPtr(v.RatingScore), fmtIntPtr(v.RatingVolume), fmtIntPtr(v.PriceRange),
			strconv.FormatBool(v.Online), strconv.FormatBool(v.Delivers),
			fmtFloat(v.DeliveryPrice), strconv.Itoa(v.EstimateMinutes),
			v.EstimateRange, v.ShortDescription, v.Tags,
			v.ScrapedAt.Format(time.RFC3339),
		}
	})
}

// WriteProductsCSV writes one row per product in the stable column order.
func WriteProductsCSV(path string, products []models.Product) error {
	return writeCSV(path, productColumns, len(products), func(i int) []string {
		p := products[i]
		return []string{
			p.ItemID, p.VenueID, p.VenueName, p.VenueSlug, p.City, p.CitySlug,
			p.CategoryID, p.SectionName, p.SectionSlug, p.Name, p.Description,
			fmtFloat(p.Price), fmtFloatPtr(p.OriginalPrice),
			fmtFloat(p.DiscountAmount), fmtFloat(p.DiscountPercentage),
			p.UnitInfo, fmtFloatPtr(p.UnitPriceValue), fmtIntPtr(p.UnitPriceBase), p.UnitPriceUnit,
			p.BarcodeGTIN, p.ImageURL, p.ImageBlurhash, fmtIntPtr(p.PurchasableBalance),
			fmtIntPtr(p.QuantityLeft), fmtIntPtr(p.MaxQuantityPerPurchase), fmtIntPtr(p.MinQuantityPerPurchase),
			fmtFloat(p.AlcoholPermille), p.CaffeineInfo, fmtFloat(p.VATPercentage),
			p.DietaryPreferences, p.Tags, strconv.FormatBool(p.IsAvailable),
			strconv.FormatBool(p.IsWoltPlusOnly), strconv.FormatBool(p.IsCutlery),
			fmtFloatPtr(p.Deposit), p.ScrapedAt.Format(time.RFC3339),
		}
	})
}

// WriteSummary writes the human-readable run summary next to the CSVs.
func WriteSummary(path, citySlug string, venueCount, productCount int, scrapedAt time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "Wolt Markets Crawl Summary - %s\n", citySlug)
	fmt.Fprintf(f, "%s\n", "==================================================")
	fmt.Fprintf(f, "Scraped at: %s\n", scrapedAt.Format(time.RFC3339))
	fmt.Fprintf(f, "Target city: %s\n", citySlug)
	fmt.Fprintf(f, "Total venues scraped: %d\n", venueCount)
	fmt.Fprintf(f, "Total products scraped: %d\n", productCount)
	return nil
}

func writeCSV(path string, header []string, n int, row func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fmtFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return fmtFloat(*v)
}

func fmtIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
