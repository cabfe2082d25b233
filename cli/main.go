// Command ytexport exports YouTube channel videos and metadata to CSV files.
//
// It reads channel references (IDs, URLs, handles, or search terms) from a
// text file, one per line, and writes one <channel>_videosinfo.csv per
// channel plus an aggregate channels_metadata.csv.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/mr-tmuthukumaran/youtube-videos-meta-extraction/config"
	"github.com/mr-tmuthukumaran/youtube-videos-meta-extraction/export"
	"github.com/mr-tmuthukumaran/youtube-videos-meta-extraction/youtube"
)

func main() {
	os.Exit(run())
}

func run() int {
	input := flag.String("input", "", "Path to channels text file (one reference per line)")
	outdir := flag.String("outdir", "", "Directory to write CSV files (default \"output\")")
	apiKey := flag.String("api-key", "", "YouTube Data API key (or set YT_API_KEY)")
	maxVideos := flag.Int("max", 0, "Maximum videos to export per channel (0 = all)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytexport -input channels.txt [flags]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// A .env file is optional; real environment variables win.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}
	if *apiKey != "" {
		cfg.APIKey = *apiKey
	}
	if *outdir != "" {
		cfg.OutDir = *outdir
	}
	if *maxVideos > 0 {
		cfg.MaxVideos = *maxVideos
	}

	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stderr, "Error: API key required (use -api-key or YT_API_KEY).")
		return 2
	}
	if *input == "" {
		fmt.Fprintln(os.Stderr, "Error: missing -input")
		flag.Usage()
		return 2
	}

	refs, err := export.ReadChannelRefs(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return 1
	}
	if len(refs) == 0 {
		fmt.Println("No channels found in input file.")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client, err := youtube.NewClient(ctx, cfg.APIKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating API client: %v\n", err)
		return 1
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	pipeline := &export.Pipeline{
		API:     client,
		OutDir:  cfg.OutDir,
		Log:     log,
		Uploads: youtube.UploadsOptions{MaxResults: cfg.MaxVideos, MaxPages: cfg.MaxPages},
		Batch:   youtube.BatchOptions{Pause: cfg.BatchPause},
	}

	summary, err := pipeline.Run(ctx, refs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Wrote %d channels and %d videos to %s\n", summary.Channels, summary.Videos, cfg.OutDir)
	if summary.Failed > 0 {
		return 1
	}
	return 0
}
