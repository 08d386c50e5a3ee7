package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/azmarkets/wolt-scrap/internal/crawler"
	"github.com/azmarkets/wolt-scrap/internal/sink"
	"github.com/azmarkets/wolt-scrap/internal/ui"
	"github.com/spf13/cobra"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl [city-slug]",
	Short: "Crawl venues and products, write CSV snapshots",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCrawl,
}

func init() {
	crawlCmd.Flags().Bool("all-cities", false, "Crawl every city listed by the platform")
	crawlCmd.Flags().String("out", "", "Output directory (default from config)")
	crawlCmd.Flags().String("db", "", "Optional sqlite database to also store the snapshot in")
	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, args []string) error {
	client := buildClient()
	c := crawler.New(client, cfg.MaxConcurrent)

	allCities, _ := cmd.Flags().GetBool("all-cities")
	outDir, _ := cmd.Flags().GetString("out")
	dbPath, _ := cmd.Flags().GetString("db")
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if dbPath == "" {
		dbPath = cfg.DBPath
	}

	citySlug := cfg.TargetCity
	if len(args) > 0 {
		citySlug = args[0]
	}

	spin := ui.NewSpinner()
	spin.Start("Starting crawl...")
	ctx := crawler.WithProgress(context.Background(), spin.Update)

	var targets []crawler.Target
	if allCities {
		cities := client.FetchCities(ctx)
		for _, city := range cities {
			targets = append(targets, crawler.Target{
				CitySlug: city.Slug,
				CityName: city.Name,
				Lat:      city.Latitude,
				Lon:      city.Longitude,
			})
		}
		// City listing down: fall back to the configured default coordinate
		// so a run still produces output.
		if len(targets) == 0 {
			targets = append(targets, defaultTarget(citySlug))
		}
	} else {
		targets = append(targets, defaultTarget(citySlug))
	}

	snap, runErr := c.Run(ctx, targets)
	spin.Stop()

	// Best-effort flush: whatever was accumulated gets written even when
	// the run itself failed.
	var sinkErr error
	if len(snap.Venues) > 0 || len(snap.Products) > 0 {
		sinkErr = writeSnapshot(snap, outDir, dbPath, citySlug, allCities)
	}

	fmt.Printf("Crawl finished: %d venues, %d products\n", len(snap.Venues), len(snap.Products))
	return errors.Join(runErr, sinkErr)
}

func defaultTarget(citySlug string) crawler.Target {
	return crawler.Target{
		CitySlug: citySlug,
		Lat:      cfg.DefaultLat,
		Lon:      cfg.DefaultLon,
	}
}

func writeSnapshot(snap *crawler.Snapshot, outDir, dbPath, citySlug string, allCities bool) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	suffix := "_" + citySlug
	if allCities {
		suffix = ""
	}

	var errs []error
	venuesPath := filepath.Join(outDir, "markets"+suffix+".csv")
	if err := sink.WriteVenuesCSV(venuesPath, snap.Venues); err != nil {
		errs = append(errs, err)
	} else {
		fmt.Printf("Saved %d venues to %s\n", len(snap.Venues), venuesPath)
	}

	productsPath := filepath.Join(outDir, "items"+suffix+".csv")
	if err := sink.WriteProductsCSV(productsPath, snap.Products); err != nil {
		errs = append(errs, err)
	} else {
		fmt.Printf("Saved %d products to %s\n", len(snap.Products), productsPath)
	}

	summaryPath := filepath.Join(outDir, "scrape_summary"+suffix+".txt")
	if err := sink.WriteSummary(summaryPath, citySlug, len(snap.Venues), len(snap.Products), time.Now()); err != nil {
		errs = append(errs, err)
	}

	if dbPath != "" {
		store, err := sink.OpenStore(dbPath)
		if err != nil {
			errs = append(errs, fmt.Errorf("open snapshot store: %w", err))
		} else {
			defer store.Close()
			if err := store.SaveSnapshot(snap.Venues, snap.Products); err != nil {
				errs = append(errs, fmt.Errorf("store snapshot: %w", err))
			}
		}
	}

	return errors.Join(errs...)
}
