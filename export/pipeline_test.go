package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	yt "google.golang.org/api/youtube/v3"

	"github.com/mr-tmuthukumaran/youtube-videos-meta-extraction/youtube"
)

// stubAPI is a scripted Data API: channels keyed by ID, uploads keyed by
// playlist ID, plus optional per-query search failures.
type stubAPI struct {
	channels  map[string]*yt.Channel
	uploads   map[string][]string
	searches  map[string]string // query -> channel ID ("" entries are no-hit)
	searchErr map[string]error
}

func (s *stubAPI) ChannelByID(ctx context.Context, id string) (*yt.ChannelListResponse, error) {
	resp := &yt.ChannelListResponse{}
	if c, ok := s.channels[id]; ok {
		resp.Items = append(resp.Items, c)
	}
	return resp, nil
}

func (s *stubAPI) ChannelByUsername(ctx context.Context, username string) (*yt.ChannelListResponse, error) {
	return &yt.ChannelListResponse{}, nil
}

func (s *stubAPI) SearchChannel(ctx context.Context, query string) (*yt.SearchListResponse, error) {
	if err := s.searchErr[query]; err != nil {
		return nil, err
	}
	resp := &yt.SearchListResponse{}
	if id := s.searches[query]; id != "" {
		resp.Items = append(resp.Items, &yt.SearchResult{Id: &yt.ResourceId{ChannelId: id}})
	}
	return resp, nil
}

func (s *stubAPI) PlaylistItems(ctx context.Context, playlistID, pageToken string) (*yt.PlaylistItemListResponse, error) {
	resp := &yt.PlaylistItemListResponse{}
	for _, id := range s.uploads[playlistID] {
		resp.Items = append(resp.Items, &yt.PlaylistItem{
			ContentDetails: &yt.PlaylistItemContentDetails{VideoId: id},
		})
	}
	return resp, nil
}

func (s *stubAPI) Videos(ctx context.Context, ids []string) (*yt.VideoListResponse, error) {
	resp := &yt.VideoListResponse{}
	for _, id := range ids {
		resp.Items = append(resp.Items, &yt.Video{
			Id:      id,
			Snippet: &yt.VideoSnippet{Title: "title of " + id},
		})
	}
	return resp, nil
}

func testChannel(id, title string) *yt.Channel {
	return &yt.Channel{
		Id:      id,
		Snippet: &yt.ChannelSnippet{Title: title},
		ContentDetails: &yt.ChannelContentDetails{
			RelatedPlaylists: &yt.ChannelContentDetailsRelatedPlaylists{
				Uploads: "UU" + id[2:],
			},
		},
	}
}

func newTestPipeline(api youtube.API, dir string) *Pipeline {
	return &Pipeline{
		API:    api,
		OutDir: dir,
		Log:    slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		Batch:  youtube.BatchOptions{Pause: time.Millisecond},
	}
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return rows
}

func TestPipelineRun(t *testing.T) {
	const channelID = "UCxxxxxxxxxxxxxxxxxxxxxx"
	api := &stubAPI{
		channels: map[string]*yt.Channel{channelID: testChannel(channelID, "Good Channel")},
		uploads:  map[string][]string{"UU" + channelID[2:]: {"vid-1", "vid-2", "vid-3"}},
		searches: map[string]string{"unknownhandle999": ""},
	}

	dir := t.TempDir()
	p := newTestPipeline(api, dir)

	// Second reference resolves to no search results: a skip, not an error.
	summary, err := p.Run(context.Background(), []string{channelID, "@unknownhandle999"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Channels != 1 || summary.Videos != 3 || summary.Skipped != 1 || summary.Failed != 0 {
		t.Errorf("summary = %+v", summary)
	}

	videoRows := readCSVFile(t, filepath.Join(dir, "Good Channel_videosinfo.csv"))
	if len(videoRows) != 4 {
		t.Fatalf("video table has %d rows, want header + 3", len(videoRows))
	}
	if videoRows[1][0] != channelID || videoRows[1][3] != "vid-1" || videoRows[1][4] != "title of vid-1" {
		t.Errorf("video row = %v", videoRows[1])
	}

	channelRows := readCSVFile(t, filepath.Join(dir, ChannelsFilename))
	if len(channelRows) != 2 {
		t.Fatalf("channel table has %d rows, want header + 1", len(channelRows))
	}
	if channelRows[1][1] != channelID || channelRows[1][2] != "Good Channel" {
		t.Errorf("channel row = %v", channelRows[1])
	}
}

func TestPipelineFailureIsolation(t *testing.T) {
	const goodID = "UCgoodgoodgoodgoodgoodgood"
	api := &stubAPI{
		channels:  map[string]*yt.Channel{goodID: testChannel(goodID, "Still Works")},
		uploads:   map[string][]string{"UU" + goodID[2:]: {"vid-9"}},
		searchErr: map[string]error{"broken query": &youtube.APIError{Code: 500, Message: "backendError"}},
	}

	dir := t.TempDir()
	p := newTestPipeline(api, dir)

	summary, err := p.Run(context.Background(), []string{"broken query", goodID})
	if err != nil {
		t.Fatalf("one bad input must not abort the run: %v", err)
	}

	if summary.Failed != 1 || summary.Channels != 1 || summary.Videos != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(dir, "Still Works_videosinfo.csv")); err != nil {
		t.Errorf("later input did not produce its CSV: %v", err)
	}
}

func TestPipelineSameChannelTwice(t *testing.T) {
	// Two inputs resolving to the same channel produce two channel rows,
	// each traceable to its own source input.
	const channelID = "UCsamesamesamesamesamesame"
	api := &stubAPI{
		channels: map[string]*yt.Channel{channelID: testChannel(channelID, "Popular")},
		uploads:  map[string][]string{"UU" + channelID[2:]: {"vid-1"}},
		searches: map[string]string{"popular": channelID},
	}

	dir := t.TempDir()
	p := newTestPipeline(api, dir)

	summary, err := p.Run(context.Background(), []string{channelID, "popular"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Channels != 2 {
		t.Errorf("Channels = %d, want one row per input", summary.Channels)
	}

	rows := readCSVFile(t, filepath.Join(dir, ChannelsFilename))
	if len(rows) != 3 {
		t.Fatalf("channel table has %d rows, want header + 2", len(rows))
	}
	if rows[1][0] != channelID || rows[2][0] != "popular" {
		t.Errorf("source_input columns = %q, %q", rows[1][0], rows[2][0])
	}
}

func TestPipelineChannelNotFound(t *testing.T) {
	// Resolves (ID passthrough) but the channel does not exist: a failure,
	// distinct from a resolver skip.
	api := &stubAPI{channels: map[string]*yt.Channel{}}

	dir := t.TempDir()
	p := newTestPipeline(api, dir)

	summary, err := p.Run(context.Background(), []string{"UCnope0000000000000000000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Failed != 1 || summary.Skipped != 0 || summary.Channels != 0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestPipelineEmptyUploadsPlaylist(t *testing.T) {
	const channelID = "UCemptyemptyemptyemptyempt"
	channel := &yt.Channel{
		Id:      channelID,
		Snippet: &yt.ChannelSnippet{Title: "No Uploads"},
		// no contentDetails: channel has no uploads playlist
	}
	api := &stubAPI{channels: map[string]*yt.Channel{channelID: channel}}

	dir := t.TempDir()
	p := newTestPipeline(api, dir)

	summary, err := p.Run(context.Background(), []string{channelID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Channels != 1 || summary.Videos != 0 {
		t.Errorf("summary = %+v", summary)
	}

	// The per-channel file still exists, header only.
	rows := readCSVFile(t, filepath.Join(dir, "No Uploads_videosinfo.csv"))
	if len(rows) != 1 {
		t.Errorf("video table has %d rows, want header only", len(rows))
	}
}

func TestPipelineMaxVideos(t *testing.T) {
	const channelID = "UCcapcapcapcapcapcapcapcap"
	var ids []string
	for i := 0; i < 30; i++ {
		ids = append(ids, fmt.Sprintf("vid-%02d", i))
	}
	api := &stubAPI{
		channels: map[string]*yt.Channel{channelID: testChannel(channelID, "Capped")},
		uploads:  map[string][]string{"UU" + channelID[2:]: ids},
	}

	dir := t.TempDir()
	p := newTestPipeline(api, dir)
	p.Uploads = youtube.UploadsOptions{MaxResults: 10}

	summary, err := p.Run(context.Background(), []string{channelID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Videos != 10 {
		t.Errorf("Videos = %d, want 10", summary.Videos)
	}
}

func TestWriteFileAtomicFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	err := writeFileAtomic(path, func(w io.Writer) error {
		return fmt.Errorf("boom")
	})
	if err == nil {
		t.Fatal("expected write error")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("target file exists after failed write")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestWriteFileAtomicCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	path := filepath.Join(dir, "out.csv")

	err := writeFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write([]byte("data\n"))
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "data\n" {
		t.Errorf("read back %q, %v", data, err)
	}
}
