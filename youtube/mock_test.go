package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/youtube/v3"
)

// fakeAPI implements API with per-method function hooks. A method whose hook
// is nil fails the call, so tests catch calls a component should never make.
type fakeAPI struct {
	channelByID       func(id string) (*youtube.ChannelListResponse, error)
	channelByUsername func(username string) (*youtube.ChannelListResponse, error)
	searchChannel     func(query string) (*youtube.SearchListResponse, error)
	playlistItems     func(playlistID, pageToken string) (*youtube.PlaylistItemListResponse, error)
	videos            func(ids []string) (*youtube.VideoListResponse, error)

	calls []string
}

func (f *fakeAPI) ChannelByID(ctx context.Context, id string) (*youtube.ChannelListResponse, error) {
	f.calls = append(f.calls, "channels.id")
	if f.channelByID == nil {
		return nil, fmt.Errorf("unexpected ChannelByID(%q)", id)
	}
	return f.channelByID(id)
}

func (f *fakeAPI) ChannelByUsername(ctx context.Context, username string) (*youtube.ChannelListResponse, error) {
	f.calls = append(f.calls, "channels.forUsername")
	if f.channelByUsername == nil {
		return nil, fmt.Errorf("unexpected ChannelByUsername(%q)", username)
	}
	return f.channelByUsername(username)
}

func (f *fakeAPI) SearchChannel(ctx context.Context, query string) (*youtube.SearchListResponse, error) {
	f.calls = append(f.calls, "search")
	if f.searchChannel == nil {
		return nil, fmt.Errorf("unexpected SearchChannel(%q)", query)
	}
	return f.searchChannel(query)
}

func (f *fakeAPI) PlaylistItems(ctx context.Context, playlistID, pageToken string) (*youtube.PlaylistItemListResponse, error) {
	f.calls = append(f.calls, "playlistItems")
	if f.playlistItems == nil {
		return nil, fmt.Errorf("unexpected PlaylistItems(%q, %q)", playlistID, pageToken)
	}
	return f.playlistItems(playlistID, pageToken)
}

func (f *fakeAPI) Videos(ctx context.Context, ids []string) (*youtube.VideoListResponse, error) {
	f.calls = append(f.calls, "videos")
	if f.videos == nil {
		return nil, fmt.Errorf("unexpected Videos(%d ids)", len(ids))
	}
	return f.videos(ids)
}
