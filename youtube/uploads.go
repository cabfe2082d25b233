package youtube

import (
	"context"
	"errors"
	"fmt"
)

// defaultMaxPages bounds upload enumeration when UploadsOptions.MaxPages is
// zero. The pagination contract trusts nextPageToken absence as the only
// terminator, so a cap guards against an upstream bug feeding tokens
// forever. 1000 pages covers 50k uploads.
const defaultMaxPages = 1000

// UploadsOptions configures upload enumeration.
type UploadsOptions struct {
	// MaxResults stops enumeration after this many video IDs. 0 means all.
	MaxResults int

	// MaxPages caps the number of playlist pages fetched. 0 applies
	// defaultMaxPages. Hitting the cap is reported as an error, never as
	// silent truncation.
	MaxPages int
}

// ListUploads walks a channel's uploads playlist page by page and calls fn
// for every video ID, in the order the API returns them. Playlist entries
// missing a video ID are skipped; duplicate IDs are passed through as
// received. fn may return ErrStopEnumeration to stop early with no error;
// any other error from fn or from the API aborts enumeration.
//
// Enumeration holds no state between calls: re-invoking restarts from the
// first page.
func ListUploads(ctx context.Context, api API, playlistID string, opts *UploadsOptions, fn func(videoID string) error) error {
	if opts == nil {
		opts = &UploadsOptions{}
	}
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	pageToken := ""
	yielded := 0

	for page := 0; page < maxPages; page++ {
		resp, err := api.PlaylistItems(ctx, playlistID, pageToken)
		if err != nil {
			return err
		}

		for _, item := range resp.Items {
			if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
				continue // malformed entry, keep going
			}
			if err := fn(item.ContentDetails.VideoId); err != nil {
				if errors.Is(err, ErrStopEnumeration) {
					return nil
				}
				return err
			}
			yielded++
			if opts.MaxResults > 0 && yielded >= opts.MaxResults {
				return nil
			}
		}

		next := resp.NextPageToken
		if next == "" {
			return nil
		}
		if next == pageToken {
			return fmt.Errorf("youtube: playlist %s repeated page token %q", playlistID, next)
		}
		pageToken = next
	}

	return fmt.Errorf("youtube: playlist %s pagination exceeded %d pages", playlistID, maxPages)
}

// CollectUploads runs ListUploads and gathers all video IDs into a slice.
func CollectUploads(ctx context.Context, api API, playlistID string, opts *UploadsOptions) ([]string, error) {
	var ids []string
	err := ListUploads(ctx, api, playlistID, opts, func(videoID string) error {
		ids = append(ids, videoID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
