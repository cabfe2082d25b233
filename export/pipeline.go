package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mr-tmuthukumaran/youtube-videos-meta-extraction/youtube"
)

// ChannelsFilename is the aggregate channel table, written once per run.
const ChannelsFilename = "channels_metadata.csv"

// errUnresolved marks a reference the resolver could not map to any
// channel. It is reported as a skip, not an error.
var errUnresolved = errors.New("export: channel not resolved")

// Pipeline drives the full export: resolve each reference, fetch channel
// details, enumerate uploads, batch-fetch video details, and write the CSV
// outputs. Processing is sequential; a failure on one reference is logged
// and the next reference proceeds.
type Pipeline struct {
	API    youtube.API
	OutDir string

	// Log receives per-reference progress. Nil falls back to slog.Default.
	Log *slog.Logger

	Uploads youtube.UploadsOptions
	Batch   youtube.BatchOptions
}

// Summary reports what one run produced.
type Summary struct {
	// RunID correlates all log records of one run.
	RunID string

	// Channels is the number of rows in the channel table.
	Channels int
	// Videos is the total number of video rows written across channels.
	Videos int
	// Skipped counts references that resolved to no channel.
	Skipped int
	// Failed counts references aborted by an error.
	Failed int

	// ChannelsPath is where the aggregate channel table was written.
	ChannelsPath string
}

// Run processes every reference in order, then writes the accumulated
// channel table exactly once. It returns an error only for failures that
// affect the whole run, such as an unwritable output directory; everything
// else is isolated per reference.
func (p *Pipeline) Run(ctx context.Context, refs []string) (Summary, error) {
	log := p.Log
	if log == nil {
		log = slog.Default()
	}

	s := Summary{RunID: uuid.NewString()}
	log = log.With(slog.String("run_id", s.RunID))
	log.Info("export starting", slog.Int("references", len(refs)), slog.String("outdir", p.OutDir))

	var rows []ChannelRow
	for _, ref := range refs {
		n, err := p.exportChannel(ctx, log, ref, &rows)
		switch {
		case errors.Is(err, errUnresolved):
			s.Skipped++
			log.Warn("could not resolve channel", slog.String("input", ref))
		case err != nil:
			s.Failed++
			log.Error("export failed", slog.String("input", ref), slog.Any("error", err))
			if ctx.Err() != nil {
				// The run was cancelled; remaining references would all
				// fail the same way.
				return s, ctx.Err()
			}
		default:
			s.Videos += n
		}
	}

	s.ChannelsPath = filepath.Join(p.OutDir, ChannelsFilename)
	err := writeFileAtomic(s.ChannelsPath, func(w io.Writer) error {
		return WriteChannelsCSV(w, rows)
	})
	if err != nil {
		return s, fmt.Errorf("write channel table: %w", err)
	}
	s.Channels = len(rows)
	log.Info("export finished",
		slog.Int("channels", s.Channels),
		slog.Int("videos", s.Videos),
		slog.Int("skipped", s.Skipped),
		slog.Int("failed", s.Failed),
	)

	return s, nil
}

// exportChannel handles one input reference end to end and returns the
// number of video rows written. The channel summary row is appended as soon
// as the detail fetch succeeds, so a later enumeration failure still leaves
// the channel in the aggregate table.
func (p *Pipeline) exportChannel(ctx context.Context, log *slog.Logger, ref string, rows *[]ChannelRow) (int, error) {
	channelID, found, err := youtube.ResolveChannelID(ctx, p.API, ref)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errUnresolved
	}

	channel, err := youtube.FetchChannel(ctx, p.API, channelID)
	if err != nil {
		return 0, err
	}
	*rows = append(*rows, ChannelRow{SourceInput: ref, Channel: *channel})

	var videos []youtube.VideoRecord
	if channel.UploadsPlaylistID != "" {
		ids, err := youtube.CollectUploads(ctx, p.API, channel.UploadsPlaylistID, &p.Uploads)
		if err != nil {
			return 0, err
		}
		videos, err = youtube.FetchVideoDetails(ctx, p.API, ids, &p.Batch)
		if err != nil {
			return 0, err
		}
	}

	path := filepath.Join(p.OutDir, SanitizeFilename(channel.Title)+"_videosinfo.csv")
	err = writeFileAtomic(path, func(w io.Writer) error {
		return WriteVideosCSV(w, ref, channel, videos)
	})
	if err != nil {
		return 0, err
	}

	log.Info("wrote channel videos",
		slog.String("input", ref),
		slog.String("channel", channel.ID),
		slog.Int("videos", len(videos)),
		slog.String("path", path),
	)
	return len(videos), nil
}
