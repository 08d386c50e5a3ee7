package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/azmarkets/wolt-scrap/internal/wolt"
	"github.com/stretchr/testify/require"
)

// newFakeUpstream spins up a minimal Wolt-shaped API: one city page with
// three venues, of which one serves a catalog, one fails its catalog fetch
// and one has no slug at all.
func newFakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/pages/retail", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"city": "Baku",
			"sections": [{"items": [
				{"venue": {"id": "v-good", "name": "Good Market", "slug": "good-market"}},
				{"venue": {"id": "v-broken", "name": "Broken Market", "slug": "broken-market"}},
				{"venue": {"id": "v-noslug", "name": "No Slug Market"}}
			]}]
		}`))
	})
	mux.HandleFunc("/consumer-api/venue-content-api/v3/web/venue-content/slug/good-market", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"sections": [{"name": "Pantry", "slug": "pantry", "items": [
				{"id": "i-1", "name": "Rice", "price": 320},
				{"id": "i-2", "name": "Flour", "price": 180}
			]}]
		}`))
	})
	mux.HandleFunc("/consumer-api/venue-content-api/v3/web/venue-content/slug/broken-market", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream error", http.StatusNotFound)
	})

	return httptest.NewServer(mux)
}

func newTestCrawler(ts *httptest.Server, maxConcurrent int) *Crawler {
	client := wolt.NewClient(&http.Client{})
	client.BaseURL = ts.URL
	client.ConsumerURL = ts.URL
	client.MaxRetries = 0
	return New(client, maxConcurrent)
}

func TestRunIsolatesVenueFailures(t *testing.T) {
	ts := newFakeUpstream(t)
	defer ts.Close()

	c := newTestCrawler(ts, 1)
	snap, err := c.Run(context.Background(), []Target{{CitySlug: "baku", Lat: 40.37, Lon: 49.85}})
	require.NoError(t, err)

	// All three venues survive, including the ones with no products.
	require.Len(t, snap.Venues, 3)
	require.Len(t, snap.Products, 2)

	seen := map[string]int{}
	for _, p := range snap.Products {
		seen[p.VenueID]++
		require.Equal(t, "Pantry", p.SectionName)
	}
	require.Equal(t, 2, seen["v-good"])
	require.Zero(t, seen["v-broken"])
	require.Zero(t, seen["v-noslug"])
}

func TestRunConcurrent(t *testing.T) {
	ts := newFakeUpstream(t)
	defer ts.Close()

	c := newTestCrawler(ts, 4)
	snap, err := c.Run(context.Background(), []Target{{CitySlug: "baku", Lat: 40.37, Lon: 49.85}})
	require.NoError(t, err)
	require.Len(t, snap.Venues, 3)
	require.Len(t, snap.Products, 2)
}

func TestRunEmptyDiscoveryIsNotFatal(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer ts.Close()

	c := newTestCrawler(ts, 1)
	snap, err := c.Run(context.Background(), []Target{
		{CitySlug: "ghost-town", Lat: 0, Lon: 0},
	})
	require.NoError(t, err)
	require.Empty(t, snap.Venues)
	require.Empty(t, snap.Products)
}

func TestRunNoTargets(t *testing.T) {
	ts := newFakeUpstream(t)
	defer ts.Close()

	c := newTestCrawler(ts, 1)
	snap, err := c.Run(context.Background(), nil)
	require.Error(t, err)
	require.NotNil(t, snap)
}

func TestRunCancelledContext(t *testing.T) {
	ts := newFakeUpstream(t)
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestCrawler(ts, 2)
	snap, err := c.Run(ctx, []Target{{CitySlug: "baku"}})
	require.NotNil(t, snap)
	// Discovery already fails under the cancelled context, so the run just
	// degrades to an empty snapshot.
	require.NoError(t, err)
	require.Empty(t, snap.Venues)
}
