package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/azmarkets/wolt-scrap/config"
	"github.com/azmarkets/wolt-scrap/internal/httputil"
	"github.com/azmarkets/wolt-scrap/internal/politeness"
	"github.com/azmarkets/wolt-scrap/internal/wolt"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "woltscrap",
	Short: "Wolt retail catalog crawler",
	Long:  "Crawls retail venues and their product catalogs from the Wolt consumer API and flattens them into tabular snapshots.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("city", "", "Target city slug")
	rootCmd.PersistentFlags().Float64("lat", 0, "Latitude of the crawl coordinate")
	rootCmd.PersistentFlags().Float64("lon", 0, "Longitude of the crawl coordinate")
	rootCmd.PersistentFlags().Float64("rate", 0, "Max requests per second")
	rootCmd.PersistentFlags().Int("max-concurrent", 0, "Venue workers (1 = sequential)")
	rootCmd.PersistentFlags().String("delay-profile", "", "Extra jitter profile: cautious, normal, aggressive, none")
	rootCmd.PersistentFlags().Bool("respect-robots", true, "Respect robots.txt rules")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("city"); v != "" {
		cfg.TargetCity = v
	}
	if v, _ := rootCmd.PersistentFlags().GetFloat64("lat"); v != 0 {
		cfg.DefaultLat = v
	}
	if v, _ := rootCmd.PersistentFlags().GetFloat64("lon"); v != 0 {
		cfg.DefaultLon = v
	}
	if v, _ := rootCmd.PersistentFlags().GetFloat64("rate"); v > 0 {
		cfg.RatePerSecond = v
	}
	if v, _ := rootCmd.PersistentFlags().GetInt("max-concurrent"); v > 0 {
		cfg.MaxConcurrent = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("delay-profile"); v != "" {
		cfg.DelayProfile = v
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("respect-robots"); !v {
		cfg.RespectRobots = false
	}
}

// buildClient wires the politeness transport into a fetch gateway client.
func buildClient() *wolt.Client {
	limiter := rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst)
	jitter := politeness.NewJitter(politeness.Profile(cfg.DelayProfile))
	robots := politeness.NewRobotsChecker(&http.Client{Timeout: 10 * time.Second}, cfg.RespectRobots)

	transport := &politeness.Transport{
		Base: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
		},
		Headers: httputil.WoltAPIHeaders(),
		Robots:  robots,
		Limiter: limiter,
		Jitter:  jitter,
	}

	httpc := httputil.NewHTTPClient(transport, time.Duration(cfg.TimeoutSeconds)*time.Second)

	client := wolt.NewClient(httpc)
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}
	if cfg.ConsumerURL != "" {
		client.ConsumerURL = cfg.ConsumerURL
	}
	return client
}
