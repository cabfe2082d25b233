// Package config manages exporter configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the tunables of an export run.
type Config struct {
	// APIKey is the YouTube Data API key. It is the only required setting.
	APIKey string

	// OutDir is the directory CSV files are written to.
	OutDir string

	// MaxVideos caps the number of videos exported per channel (0 = all).
	MaxVideos int

	// MaxPages caps uploads-playlist pagination per channel as a fail-safe
	// against a runaway nextPageToken (0 = library default).
	MaxPages int

	// BatchPause is the fixed delay between video detail batches.
	BatchPause time.Duration
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		OutDir:     "output",
		MaxVideos:  0,
		MaxPages:   0,
		BatchPause: 100 * time.Millisecond,
	}
}

// Load builds configuration from defaults overridden by environment
// variables. The API key comes from YT_API_KEY; everything else uses the
// YTEXPORT_ prefix.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("YT_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("YTEXPORT_OUTDIR"); v != "" {
		c.OutDir = v
	}
	if v := os.Getenv("YTEXPORT_MAX_VIDEOS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxVideos = n
		}
	}
	if v := os.Getenv("YTEXPORT_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxPages = n
		}
	}
	if v := os.Getenv("YTEXPORT_BATCH_PAUSE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.BatchPause = d
		}
	}
}

// Validate checks that configuration values are consistent.
func (c *Config) Validate() error {
	if c.OutDir == "" {
		return fmt.Errorf("outdir must not be empty")
	}
	if c.MaxVideos < 0 {
		return fmt.Errorf("max_videos must be non-negative")
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("max_pages must be non-negative")
	}
	return nil
}
