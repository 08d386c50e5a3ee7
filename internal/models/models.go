package models

import "time"

// City is one entry from the city listing endpoint.
type City struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Venue is one retail location snapshot. Records are immutable once built;
// a re-crawl appends a fresh snapshot instead of updating in place.
type Venue struct {
	VenueID          string    `json:"venue_id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	CitySlug         string    `json:"city_slug"`
	Country          string    `json:"country"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	RatingScore      *float64  `json:"rating_score,omitempty"`
	RatingVolume     *int      `json:"rating_volume,omitempty"`
	PriceRange       *int      `json:"price_range,omitempty"`
	Online           bool      `json:"online"`
	Delivers         bool      `json:"delivers"`
	DeliveryPrice    float64   `json:"delivery_price"`
	EstimateMinutes  int       `json:"estimate_minutes"`
	EstimateRange    string    `json:"estimate_range,omitempty"`
	ShortDescription string    `json:"short_description,omitempty"`
	Tags             string    `json:"tags,omitempty"`
	ScrapedAt        time.Time `json:"scraped_at"`
}

// Product is one catalog line item belonging to exactly one venue.
// Prices are decimal currency units (minor units already divided by 100).
type Product struct {
	ItemID                 string    `json:"item_id"`
	VenueID                string    `json:"venue_id"`
	VenueName              string    `json:"venue_name"`
	VenueSlug              string    `json:"venue_slug"`
	City                   string    `json:"city"`
	CitySlug               string    `json:"city_slug"`
	CategoryID             string    `json:"category_id,omitempty"`
	SectionName            string    `json:"section_name"`
	SectionSlug            string    `json:"section_slug"`
	Name                   string    `json:"name"`
	Description            string    `json:"description,omitempty"`
	Price                  float64   `json:"price"`
	OriginalPrice          *float64  `json:"original_price,omitempty"`
	DiscountAmount         float64   `json:"discount_amount"`
	DiscountPercentage     float64   `json:"discount_percentage"`
	UnitInfo               string    `json:"unit_info,omitempty"`
	UnitPriceValue         *float64  `json:"unit_price_value,omitempty"`
	UnitPriceBase          *int      `json:"unit_price_base,omitempty"`
	UnitPriceUnit          string    `json:"unit_price_unit,omitempty"`
	BarcodeGTIN            string    `json:"barcode_gtin,omitempty"`
	ImageURL               string    `json:"image_url,omitempty"`
	ImageBlurhash          string    `json:"image_blurhash,omitempty"`
	PurchasableBalance     *int      `json:"purchasable_balance,omitempty"`
	QuantityLeft           *int      `json:"quantity_left,omitempty"`
	MaxQuantityPerPurchase *int      `json:"max_quantity_per_purchase,omitempty"`
	MinQuantityPerPurchase *int      `json:"min_quantity_per_purchase,omitempty"`
	AlcoholPermille        float64   `json:"alcohol_permille"`
	CaffeineInfo           string    `json:"caffeine_info,omitempty"`
	VATPercentage          float64   `json:"vat_percentage"`
	DietaryPreferences     string    `json:"dietary_preferences,omitempty"`
	Tags                   string    `json:"tags,omitempty"`
	IsAvailable            bool      `json:"is_available"`
	IsWoltPlusOnly         bool      `json:"is_wolt_plus_only"`
	IsCutlery              bool      `json:"is_cutlery"`
	Deposit                *float64  `json:"deposit,omitempty"`
	ScrapedAt              time.Time `json:"scraped_at"`
}
