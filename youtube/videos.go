package youtube

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/youtube/v3"
)

// defaultBatchPause is the fixed delay between successive video detail
// batches, a conservative throttle rather than real rate-limit negotiation.
const defaultBatchPause = 100 * time.Millisecond

// VideoRecord is the flattened per-video metadata written to the video
// table. All counters and flags keep the API's string convention; a field
// the API omits stays empty.
type VideoRecord struct {
	ID          string
	Title       string
	Description string
	PublishedAt string

	// Tags in upload order; nil when the video has none.
	Tags []string

	CategoryID      string
	Duration        string
	Definition      string
	Caption         string
	LicensedContent string
	Projection      string

	ViewCount     string
	LikeCount     string
	CommentCount  string
	FavoriteCount string
}

// BatchOptions configures batched video detail fetching.
type BatchOptions struct {
	// Pause is the fixed delay between batches. 0 applies
	// defaultBatchPause; negative disables pacing.
	Pause time.Duration
}

// FetchVideoDetails retrieves full detail records for the given video IDs,
// partitioned into batches of 50 (the API's per-call maximum) with input
// order preserved across batch boundaries. Within one batch, records keep
// the API's own order, which is not guaranteed to match the requested
// order. A failing batch aborts the remaining ones.
func FetchVideoDetails(ctx context.Context, api API, videoIDs []string, opts *BatchOptions) ([]VideoRecord, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	if opts == nil {
		opts = &BatchOptions{}
	}
	pause := opts.Pause
	if pause == 0 {
		pause = defaultBatchPause
	}

	limit := rate.Inf
	if pause > 0 {
		limit = rate.Every(pause)
	}
	limiter := rate.NewLimiter(limit, 1)

	records := make([]VideoRecord, 0, len(videoIDs))
	for start := 0; start < len(videoIDs); start += maxBatchSize {
		if err := limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Err: err}
		}

		end := min(start+maxBatchSize, len(videoIDs))
		resp, err := api.Videos(ctx, videoIDs[start:end])
		if err != nil {
			return nil, err
		}
		for _, item := range resp.Items {
			records = append(records, newVideoRecord(item))
		}
	}

	return records, nil
}

func newVideoRecord(v *youtube.Video) VideoRecord {
	rec := VideoRecord{ID: v.Id}

	if sn := v.Snippet; sn != nil {
		rec.Title = sn.Title
		rec.Description = sn.Description
		rec.PublishedAt = sn.PublishedAt
		rec.Tags = sn.Tags
		rec.CategoryID = sn.CategoryId
	}
	if cd := v.ContentDetails; cd != nil {
		rec.Duration = cd.Duration
		rec.Definition = cd.Definition
		rec.Caption = cd.Caption
		rec.LicensedContent = strconv.FormatBool(cd.LicensedContent)
		rec.Projection = cd.Projection
	}
	if st := v.Statistics; st != nil {
		rec.ViewCount = strconv.FormatUint(st.ViewCount, 10)
		rec.LikeCount = strconv.FormatUint(st.LikeCount, 10)
		rec.CommentCount = strconv.FormatUint(st.CommentCount, 10)
		rec.FavoriteCount = strconv.FormatUint(st.FavoriteCount, 10)
	}

	return rec
}
