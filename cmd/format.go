package cmd

import (
	"fmt"
	"os"

	"github.com/azmarkets/wolt-scrap/internal/models"
)

// printVenuesTable prints venues in a human-friendly card layout.
func printVenuesTable(venues []models.Venue) {
	for i, v := range venues {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		status := "offline"
		if v.Online {
			status = "online"
		}
		fmt.Fprintf(os.Stdout, " %d. %s  [%s]\n", i+1, v.Name, status)

		line := fmt.Sprintf("    Slug: %s  |  Delivery: %.2f", v.Slug, v.DeliveryPrice)
		if v.EstimateMinutes > 0 {
			line += fmt.Sprintf("  |  ETA: %d min", v.EstimateMinutes)
		}
		if v.RatingScore != nil {
			line += fmt.Sprintf("  |  Rating: %.1f", *v.RatingScore)
			if v.RatingVolume != nil {
				line += fmt.Sprintf(" (%d)", *v.RatingVolume)
			}
		}
		fmt.Fprintln(os.Stdout, line)

		if v.Address != "" {
			fmt.Fprintf(os.Stdout, "    %s, %s\n", v.Address, v.City)
		}
		if v.Tags != "" {
			fmt.Fprintf(os.Stdout, "    Tags: %s\n", v.Tags)
		}
	}
}

// printProductsTable prints products grouped under their catalog sections.
func printProductsTable(products []models.Product) {
	section := ""
	n := 0
	for _, p := range products {
		if p.SectionName != section {
			section = p.SectionName
			fmt.Fprintf(os.Stdout, "\n== %s ==\n", section)
		}
		n++

		name := truncate(p.Name, 60)
		if !p.IsAvailable {
			name += " (unavailable)"
		}
		fmt.Fprintf(os.Stdout, " %4d. %-64s %8.2f", n, name, p.Price)
		if p.OriginalPrice != nil && p.DiscountPercentage > 0 {
			fmt.Fprintf(os.Stdout, "  (was %.2f, -%.0f%%)", *p.OriginalPrice, p.DiscountPercentage)
		}
		fmt.Fprintln(os.Stdout)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
