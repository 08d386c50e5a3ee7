package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Crawl target
	TargetCity string
	DefaultLat float64
	DefaultLon float64

	// Output
	OutputDir string
	DBPath    string // optional sqlite snapshot store

	// Politeness
	RatePerSecond  float64
	RateBurst      int
	MaxConcurrent  int
	DelayProfile   string // "cautious", "normal", "aggressive", "none"
	RespectRobots  bool
	TimeoutSeconds int

	// Upstream overrides (used in tests and mirrors)
	BaseURL     string
	ConsumerURL string

	// MCP HTTP server
	HTTPPort string
	APIKey   string
}

// DefaultConfig returns configuration with sensible defaults. The default
// coordinate points at Baku, the original deployment target.
func DefaultConfig() *Config {
	return &Config{
		TargetCity:     "baku",
		DefaultLat:     40.373141313556964,
		DefaultLon:     49.84575754727883,
		OutputDir:      "data",
		RatePerSecond:  2.0,
		RateBurst:      1,
		MaxConcurrent:  1,
		DelayProfile:   "none",
		RespectRobots:  true,
		TimeoutSeconds: 30,
		HTTPPort:       "8080",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from
// environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("WOLTSCRAP_CITY"); v != "" {
		c.TargetCity = v
	}
	if v := os.Getenv("WOLTSCRAP_LAT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.DefaultLat = f
		}
	}
	if v := os.Getenv("WOLTSCRAP_LON"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.DefaultLon = f
		}
	}
	if v := os.Getenv("WOLTSCRAP_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("WOLTSCRAP_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("WOLTSCRAP_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RatePerSecond = f
		}
	}
	if v := os.Getenv("WOLTSCRAP_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("WOLTSCRAP_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxConcurrent = n
		}
	}
	if v := os.Getenv("WOLTSCRAP_DELAY_PROFILE"); v != "" {
		c.DelayProfile = v
	}
	if v := os.Getenv("WOLTSCRAP_RESPECT_ROBOTS"); v == "false" {
		c.RespectRobots = false
	}
	if v := os.Getenv("WOLTSCRAP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("WOLTSCRAP_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("WOLTSCRAP_CONSUMER_URL"); v != "" {
		c.ConsumerURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("WOLTSCRAP_API_KEY"); v != "" {
		c.APIKey = v
	}
}
