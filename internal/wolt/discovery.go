package wolt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/azmarkets/wolt-scrap/internal/models"
)

type citiesResponse struct {
	Results []struct {
		Slug     string `json:"slug"`
		Name     string `json:"name"`
		Location struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"location"`
	} `json:"results"`
}

// FetchCities lists every city the platform operates in. A gateway failure
// degrades to an empty list.
func (c *Client) FetchCities(ctx context.Context) []models.City {
	url := c.BaseURL + "/v1/cities"

	var resp citiesResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil
	}

	cities := make([]models.City, 0, len(resp.Results))
	for _, r := range resp.Results {
		city := models.City{Slug: r.Slug, Name: r.Name}
		if len(r.Location.Coordinates) >= 2 {
			city.Longitude = r.Location.Coordinates[0]
			city.Latitude = r.Location.Coordinates[1]
		}
		cities = append(cities, city)
	}
	return cities
}

type retailPageResponse struct {
	City     string `json:"city"`
	Sections []struct {
		Items []struct {
			// Only wrapper items carrying a venue are retail venues;
			// other wrappers (banners, non-retail listings) are skipped.
			Venue *discoveryVenue `json:"venue"`
		} `json:"items"`
	} `json:"sections"`
}

type discoveryVenue struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Address string `json:"address"`
	Country string `json:"country"`
	// Location is [lon, lat] in decimal degrees.
	Location []float64 `json:"location"`
	Rating   *struct {
		Score  float64 `json:"score"`
		Volume int     `json:"volume"`
	} `json:"rating"`
	PriceRange       *int     `json:"price_range"`
	Online           bool     `json:"online"`
	Delivers         bool     `json:"delivers"`
	DeliveryPriceInt int64    `json:"delivery_price_int"`
	Estimate         int      `json:"estimate"`
	EstimateRange    string   `json:"estimate_range"`
	ShortDescription string   `json:"short_description"`
	Tags             []string `json:"tags"`
}

// DiscoverVenues lists the retail venues visible at a coordinate. Each venue
// is stamped with the supplied city slug and the city name the endpoint
// itself returns. A gateway failure degrades to an empty list.
func (c *Client) DiscoverVenues(ctx context.Context, lat, lon float64, citySlug string) []models.Venue {
	url := fmt.Sprintf("%s/v1/pages/retail?lat=%v&lon=%v", c.ConsumerURL, lat, lon)

	var resp retailPageResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil
	}

	now := time.Now()
	var venues []models.Venue
	for _, section := range resp.Sections {
		for _, item := range section.Items {
			if item.Venue == nil {
				continue
			}
			venues = append(venues, buildVenue(item.Venue, resp.City, citySlug, now))
		}
	}

	slog.Info("discovered venues", "city", citySlug, "count", len(venues))
	return venues
}

func buildVenue(v *discoveryVenue, cityName, citySlug string, scrapedAt time.Time) models.Venue {
	venue := models.Venue{
		VenueID:          v.ID,
		Name:             v.Name,
		Slug:             v.Slug,
		Address:          v.Address,
		City:             cityName,
		CitySlug:         citySlug,
		Country:          v.Country,
		PriceRange:       v.PriceRange,
		Online:           v.Online,
		Delivers:         v.Delivers,
		DeliveryPrice:    float64(v.DeliveryPriceInt) / 100,
		EstimateMinutes:  v.Estimate,
		EstimateRange:    v.EstimateRange,
		ShortDescription: v.ShortDescription,
		Tags:             strings.Join(v.Tags, ","),
		ScrapedAt:        scrapedAt,
	}
	if len(v.Location) >= 2 {
		venue.Longitude = v.Location[0]
		venue.Latitude = v.Location[1]
	}
	if v.Rating != nil {
		score := v.Rating.Score
		volume := v.Rating.Volume
		venue.RatingScore = &score
		venue.RatingVolume = &volume
	}
	return venue
}
