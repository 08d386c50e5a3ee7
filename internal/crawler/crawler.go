package crawler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/azmarkets/wolt-scrap/internal/models"
	"github.com/azmarkets/wolt-scrap/internal/wolt"
	"golang.org/x/sync/errgroup"
)

// Target is one city to crawl.
type Target struct {
	CitySlug string
	CityName string
	Lat      float64
	Lon      float64
}

// Snapshot accumulates one crawl run's output. Both record sets are fresh
// snapshots; nothing is merged with previous runs.
type Snapshot struct {
	Venues   []models.Venue
	Products []models.Product
}

// Crawler drives discovery → catalog fetch → normalize across all targets.
// Per-venue failures are absorbed into zero-product venues; only context
// cancellation or a configuration defect surfaces as an error.
type Crawler struct {
	client        *wolt.Client
	maxConcurrent int
}

func New(client *wolt.Client, maxConcurrent int) *Crawler {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Crawler{client: client, maxConcurrent: maxConcurrent}
}

// Run crawls every target city and returns the accumulated snapshot. On
// error the snapshot still holds everything gathered so far; the caller is
// expected to flush it before reporting the failure.
func (c *Crawler) Run(ctx context.Context, targets []Target) (*Snapshot, error) {
	if len(targets) == 0 {
		return &Snapshot{}, errors.New("no crawl targets configured")
	}

	snap := &Snapshot{}
	for _, target := range targets {
		reportProgress(ctx, fmt.Sprintf("Discovering venues in %s...", target.CitySlug))
		venues := c.client.DiscoverVenues(ctx, target.Lat, target.Lon, target.CitySlug)
		if len(venues) == 0 {
			slog.Warn("no venues found", "city", target.CitySlug)
			continue
		}

		if err := c.crawlVenues(ctx, venues, snap); err != nil {
			return snap, err
		}
	}

	slog.Info("crawl completed", "venues", len(snap.Venues), "products", len(snap.Products))
	return snap, nil
}

// crawlVenues processes discovered venues with a bounded worker pool. The
// shared rate limiter lives in the HTTP transport, so the aggregate request
// cadence is preserved regardless of the worker count.
func (c *Crawler) crawlVenues(ctx context.Context, venues []models.Venue, snap *Snapshot) error {
	var mu sync.Mutex
	done := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)

	for _, venue := range venues {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			products := c.crawlVenue(gctx, venue)

			mu.Lock()
			snap.Venues = append(snap.Venues, venue)
			snap.Products = append(snap.Products, products...)
			done++
			progress := fmt.Sprintf("[%d/%d] %s: %d products", done, len(venues), venue.Name, len(products))
			mu.Unlock()

			reportProgress(gctx, progress)
			return nil
		})
	}

	return g.Wait()
}

// crawlVenue fetches and normalizes one venue's catalog. Any failure on the
// way yields zero products, never an error; the venue record itself is kept
// by the caller either way.
func (c *Crawler) crawlVenue(ctx context.Context, venue models.Venue) []models.Product {
	if venue.Slug == "" {
		slog.Warn("venue has no slug, skipping catalog fetch", "venue_id", venue.VenueID, "name", venue.Name)
		return nil
	}

	doc := c.client.FetchCatalog(ctx, venue.Slug)
	if doc == nil {
		return nil
	}

	products := wolt.Normalize(doc, venue, time.Now())
	slog.Info("extracted products", "venue", venue.Name, "count", len(products))
	return products
}
