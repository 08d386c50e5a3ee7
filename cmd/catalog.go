package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/azmarkets/wolt-scrap/internal/crawler"
	"github.com/azmarkets/wolt-scrap/internal/models"
	"github.com/azmarkets/wolt-scrap/internal/ui"
	"github.com/azmarkets/wolt-scrap/internal/wolt"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [venue-slug]",
	Short: "Fetch and flatten one venue's catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().String("format", "json", "Output format: json, table")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	client := buildClient()

	venueSlug := args[0]
	format, _ := cmd.Flags().GetString("format")

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Fetching catalog for %s...", venueSlug))
	ctx := crawler.WithProgress(context.Background(), spin.Update)
	doc := client.FetchCatalog(ctx, venueSlug)
	spin.Stop()

	if doc == nil {
		return fmt.Errorf("catalog fetch failed for %q", venueSlug)
	}

	venue := models.Venue{Slug: venueSlug, CitySlug: cfg.TargetCity}
	products := wolt.Normalize(doc, venue, time.Now())
	if len(products) == 0 {
		fmt.Println("Venue has no published catalog.")
		return nil
	}

	switch format {
	case "table":
		printProductsTable(products)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(products)
	}

	return nil
}
