package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mr-tmuthukumaran/youtube-videos-meta-extraction/youtube"
)

var videoHeader = []string{
	"source_input",
	"channel_id",
	"channel_title",
	"video_id",
	"video_title",
	"video_description",
	"video_published_at",
	"video_tags",
	"video_category_id",
	"video_duration",
	"video_definition",
	"video_caption",
	"video_licensed_content",
	"video_projection",
	"video_view_count",
	"video_like_count",
	"video_comment_count",
	"video_favorite_count",
}

var channelHeader = []string{
	"source_input",
	"channel_id",
	"channel_title",
	"channel_description",
	"channel_published_at",
	"channel_country",
	"channel_view_count",
	"channel_subscriber_count",
	"channel_video_count",
}

// ChannelRow is one line of the aggregate channel table, tying a resolved
// channel back to the raw input that produced it.
type ChannelRow struct {
	SourceInput string
	Channel     youtube.ChannelRecord
}

// WriteVideosCSV writes the per-channel video table: a fixed header, then
// one row per video. Each row carries the owning channel and the raw input
// line, so an output row stays traceable to its source even when two inputs
// resolve to the same channel. Absent fields render as empty cells.
func WriteVideosCSV(w io.Writer, sourceInput string, channel *youtube.ChannelRecord, videos []youtube.VideoRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(videoHeader); err != nil {
		return fmt.Errorf("write video header: %w", err)
	}
	for _, v := range videos {
		row := []string{
			sourceInput,
			channel.ID,
			channel.Title,
			v.ID,
			v.Title,
			v.Description,
			v.PublishedAt,
			strings.Join(v.Tags, "|"),
			v.CategoryID,
			v.Duration,
			v.Definition,
			v.Caption,
			v.LicensedContent,
			v.Projection,
			v.ViewCount,
			v.LikeCount,
			v.CommentCount,
			v.FavoriteCount,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write video row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteChannelsCSV writes the aggregate channel summary table.
func WriteChannelsCSV(w io.Writer, rows []ChannelRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(channelHeader); err != nil {
		return fmt.Errorf("write channel header: %w", err)
	}
	for _, r := range rows {
		row := []string{
			r.SourceInput,
			r.Channel.ID,
			r.Channel.Title,
			r.Channel.Description,
			r.Channel.PublishedAt,
			r.Channel.Country,
			r.Channel.ViewCount,
			r.Channel.SubscriberCount,
			r.Channel.VideoCount,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write channel row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

var (
	unsafeCharsRe = regexp.MustCompile(`[\\/:*?"<>|]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// maxFilenameLen caps sanitized channel titles used in output filenames.
const maxFilenameLen = 120

// SanitizeFilename turns a channel title into a safe filename fragment:
// trim, replace filesystem-unsafe characters with _, collapse runs of
// whitespace, truncate to 120 runes. An empty title falls back to
// "channel".
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "channel"
	}
	name = unsafeCharsRe.ReplaceAllString(name, "_")
	name = whitespaceRe.ReplaceAllString(name, " ")
	if runes := []rune(name); len(runes) > maxFilenameLen {
		name = string(runes[:maxFilenameLen])
	}
	return name
}
