package sink

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/azmarkets/wolt-scrap/internal/models"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveSnapshot(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer store.Close()

	at := time.Now()
	venues := []models.Venue{
		{VenueID: "v-1", CitySlug: "baku", Name: "Market One", Slug: "market-one", ScrapedAt: at},
		{VenueID: "v-2", CitySlug: "baku", Name: "Market Two", Slug: "market-two", ScrapedAt: at},
	}
	products := []models.Product{
		{ItemID: "i-1", VenueID: "v-1", Name: "Rice", Price: 3.2, IsAvailable: true, ScrapedAt: at},
		{ItemID: "i-2", VenueID: "v-1", Name: "Flour", Price: 1.8, IsAvailable: true, ScrapedAt: at},
		{ItemID: "i-3", VenueID: "v-2", Name: "Milk", Price: 1.5, IsAvailable: false, ScrapedAt: at},
	}

	require.NoError(t, store.SaveSnapshot(venues, products))

	venueCount, productCount, err := store.CountRecords()
	require.NoError(t, err)
	require.Equal(t, 2, venueCount)
	require.Equal(t, 3, productCount)

	// A second run appends further snapshot rows; nothing is merged.
	require.NoError(t, store.SaveSnapshot(venues, products))
	venueCount, productCount, err = store.CountRecords()
	require.NoError(t, err)
	require.Equal(t, 4, venueCount)
	require.Equal(t, 6, productCount)
}
