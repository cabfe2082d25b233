package youtube

import (
	"context"
	"strconv"

	"google.golang.org/api/youtube/v3"
)

// ChannelRecord is the flattened channel metadata the exporter works with.
// Every field except ID may be empty when the API omits it. Counters keep
// the API's string convention.
type ChannelRecord struct {
	ID              string
	Title           string
	Description     string
	PublishedAt     string
	Country         string
	ViewCount       string
	SubscriberCount string
	VideoCount      string

	// UploadsPlaylistID joins channel resolution to video enumeration.
	// Empty when the API returns no related uploads playlist.
	UploadsPlaylistID string
}

// FetchChannel retrieves one channel's snippet, content details and
// statistics. An empty result list means the ID does not exist and yields
// ErrChannelNotFound, which is distinct from transport or API failures.
func FetchChannel(ctx context.Context, api API, channelID string) (*ChannelRecord, error) {
	resp, err := api.ChannelByID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	return newChannelRecord(resp.Items[0]), nil
}

func newChannelRecord(c *youtube.Channel) *ChannelRecord {
	rec := &ChannelRecord{ID: c.Id}

	if sn := c.Snippet; sn != nil {
		rec.Title = sn.Title
		rec.Description = sn.Description
		rec.PublishedAt = sn.PublishedAt
		rec.Country = sn.Country
	}
	if st := c.Statistics; st != nil {
		rec.ViewCount = strconv.FormatUint(st.ViewCount, 10)
		rec.VideoCount = strconv.FormatUint(st.VideoCount, 10)
		// Channels can hide subscriber counts; the API then omits the
		// field, which the export renders as empty.
		if !st.HiddenSubscriberCount {
			rec.SubscriberCount = strconv.FormatUint(st.SubscriberCount, 10)
		}
	}
	if cd := c.ContentDetails; cd != nil && cd.RelatedPlaylists != nil {
		rec.UploadsPlaylistID = cd.RelatedPlaylists.Uploads
	}

	return rec
}
