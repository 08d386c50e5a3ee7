package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/azmarkets/wolt-scrap/internal/models"
	"github.com/azmarkets/wolt-scrap/internal/wolt"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(s *server.MCPServer, client *wolt.Client) {
	// list_cities
	citiesTool := mcp.NewTool("list_cities",
		mcp.WithDescription("List every city the delivery platform operates in, with coordinates"),
	)
	s.AddTool(citiesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cities := client.FetchCities(ctx)
		if len(cities) == 0 {
			return mcp.NewToolResultError("city listing unavailable"), nil
		}
		data, _ := json.MarshalIndent(cities, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	})

	// discover_venues
	venuesTool := mcp.NewTool("discover_venues",
		mcp.WithDescription("Discover retail venues visible at a geographic coordinate"),
		mcp.WithNumber("lat",
			mcp.Required(),
			mcp.Description("Latitude in decimal degrees"),
		),
		mcp.WithNumber("lon",
			mcp.Required(),
			mcp.Description("Longitude in decimal degrees"),
		),
		mcp.WithString("city",
			mcp.Description("City slug to stamp on the venues"),
		),
	)
	s.AddTool(venuesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lat := request.GetFloat("lat", 0)
		lon := request.GetFloat("lon", 0)
		city := request.GetString("city", "")

		venues := client.DiscoverVenues(ctx, lat, lon, city)
		if len(venues) == 0 {
			return mcp.NewToolResultError(fmt.Sprintf("no venues found at %v, %v", lat, lon)), nil
		}
		data, _ := json.MarshalIndent(venues, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	})

	// venue_products
	productsTool := mcp.NewTool("venue_products",
		mcp.WithDescription("Fetch one venue's catalog and flatten it into product records"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Venue slug"),
		),
		mcp.WithString("city",
			mcp.Description("City slug to stamp on the products"),
		),
	)
	s.AddTool(productsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slug := request.GetString("slug", "")
		if slug == "" {
			return mcp.NewToolResultError("slug is required"), nil
		}
		city := request.GetString("city", "")

		doc := client.FetchCatalog(ctx, slug)
		if doc == nil {
			return mcp.NewToolResultError(fmt.Sprintf("catalog fetch failed for %q", slug)), nil
		}

		venue := models.Venue{Slug: slug, CitySlug: city}
		products := wolt.Normalize(doc, venue, time.Now())

		data, _ := json.MarshalIndent(products, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	})
}
