package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/azmarkets/wolt-scrap/internal/crawler"
	"github.com/azmarkets/wolt-scrap/internal/ui"
	"github.com/spf13/cobra"
)

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "Discover retail venues at the target coordinate",
	RunE:  runVenues,
}

func init() {
	venuesCmd.Flags().String("format", "json", "Output format: json, table")
	rootCmd.AddCommand(venuesCmd)
}

func runVenues(cmd *cobra.Command, args []string) error {
	client := buildClient()
	format, _ := cmd.Flags().GetString("format")

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Discovering venues in %s...", cfg.TargetCity))
	ctx := crawler.WithProgress(context.Background(), spin.Update)
	venues := client.DiscoverVenues(ctx, cfg.DefaultLat, cfg.DefaultLon, cfg.TargetCity)
	spin.Stop()

	if len(venues) == 0 {
		fmt.Println("No venues found.")
		return nil
	}

	switch format {
	case "table":
		printVenuesTable(venues)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(venues)
	}

	return nil
}
