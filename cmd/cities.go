package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/azmarkets/wolt-scrap/internal/ui"
	"github.com/spf13/cobra"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List cities the platform operates in",
	RunE:  runCities,
}

func init() {
	citiesCmd.Flags().String("format", "table", "Output format: json, table")
	rootCmd.AddCommand(citiesCmd)
}

func runCities(cmd *cobra.Command, args []string) error {
	client := buildClient()
	format, _ := cmd.Flags().GetString("format")

	spin := ui.NewSpinner()
	spin.Start("Fetching cities...")
	cities := client.FetchCities(context.Background())
	spin.Stop()

	if len(cities) == 0 {
		fmt.Println("No cities found.")
		return nil
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(cities)
	default:
		fmt.Printf("%d cities:\n\n", len(cities))
		for i, c := range cities {
			fmt.Printf(" %3d. %-30s %s  (%.4f, %.4f)\n", i+1, c.Name, c.Slug, c.Latitude, c.Longitude)
		}
	}

	return nil
}
