// Package youtube resolves channel references against the YouTube Data API v3
// and retrieves channel and video metadata.
//
// The API interface is the single network primitive: everything above it
// (resolver, detail fetcher, upload enumerator, batch fetcher) takes an API
// value explicitly, so each layer is testable with an in-memory fake.
package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Playlist pages and video detail batches are both capped at 50 by the API.
const (
	pageSize     = 50
	maxBatchSize = 50
)

// API is the set of Data API calls the exporter needs. All methods return
// the decoded response unchanged; callers are defensive about missing
// fields. Errors are *APIError (platform-reported), *TransportError
// (network/decoding), or a context error.
type API interface {
	// ChannelByID fetches snippet, contentDetails and statistics for one
	// channel ID.
	ChannelByID(ctx context.Context, id string) (*youtube.ChannelListResponse, error)

	// ChannelByUsername looks up a channel by its legacy username. Zero
	// items is a normal outcome, not an error.
	ChannelByUsername(ctx context.Context, username string) (*youtube.ChannelListResponse, error)

	// SearchChannel runs a channel-restricted search returning at most one
	// result.
	SearchChannel(ctx context.Context, query string) (*youtube.SearchListResponse, error)

	// PlaylistItems fetches one page of up to 50 playlist items. An empty
	// pageToken requests the first page.
	PlaylistItems(ctx context.Context, playlistID, pageToken string) (*youtube.PlaylistItemListResponse, error)

	// Videos fetches snippet, contentDetails and statistics for up to 50
	// video IDs in one call.
	Videos(ctx context.Context, ids []string) (*youtube.VideoListResponse, error)
}

// Client implements API on top of the official Data API v3 client.
type Client struct {
	service *youtube.Service
}

// NewClient creates a Data API client authenticated with an API key. Extra
// options are passed through to the underlying service; tests use
// option.WithEndpoint to point the client at a local server.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube: api key required")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{service: service}, nil
}

func (c *Client) ChannelByID(ctx context.Context, id string) (*youtube.ChannelListResponse, error) {
	resp, err := c.service.Channels.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(id).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapCallError(err)
	}
	return resp, nil
}

func (c *Client) ChannelByUsername(ctx context.Context, username string) (*youtube.ChannelListResponse, error) {
	resp, err := c.service.Channels.List([]string{"id"}).
		ForUsername(username).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapCallError(err)
	}
	return resp, nil
}

func (c *Client) SearchChannel(ctx context.Context, query string) (*youtube.SearchListResponse, error) {
	resp, err := c.service.Search.List([]string{"id"}).
		Q(query).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapCallError(err)
	}
	return resp, nil
}

func (c *Client) PlaylistItems(ctx context.Context, playlistID, pageToken string) (*youtube.PlaylistItemListResponse, error) {
	resp, err := c.service.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(pageSize).
		PageToken(pageToken).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapCallError(err)
	}
	return resp, nil
}

func (c *Client) Videos(ctx context.Context, ids []string) (*youtube.VideoListResponse, error) {
	resp, err := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapCallError(err)
	}
	return resp, nil
}
