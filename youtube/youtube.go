// Package youtube is the client for the hosting platform's Data API.
//
// Only the read-only calls the catalog needs are exposed: a channel search for the
// public uploads, a single-video lookup with its reported quota cost, and the
// enumeration of the channel's private uploads.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/tubevault/tubevault/log"
	"github.com/tubevault/tubevault/network"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ErrNotFound is returned when the platform knows nothing about a video or channel.
var ErrNotFound = errors.New("not found")

// DefaultMaxResults is the page size of the listings. Further pages are not requested.
const DefaultMaxResults = 50

const privacyPrivate = "private"

// Video is a single video as reported by the platform.
type Video struct {
	ID          string
	Title       string
	Description string
	Thumbnail   string
	Private     bool

	// Cost is the quota cost the platform reported for the lookup, 1 when unreported.
	Cost int
}

// Options configures a Client.
type Options struct {
	// APIKey authenticates public calls when no token source is given.
	APIKey string

	// TokenSource supplies the bearer credential. Private enumeration requires it.
	TokenSource oauth2.TokenSource

	// MaxResults bounds the channel search. Zero means DefaultMaxResults.
	MaxResults int64

	// ClientOptions are appended last, mostly for tests.
	ClientOptions []option.ClientOption
}

// Client talks to the platform. It is safe for concurrent use.
type Client struct {
	service    *youtube.Service
	maxResults int64
}

// New creates a client authenticated with either the token source or the api key.
func New(ctx context.Context, options Options) (*Client, error) {
	var clientOptions []option.ClientOption

	switch {
	case options.TokenSource != nil:
		ctx := context.WithValue(ctx, oauth2.HTTPClient, network.Client)
		clientOptions = append(clientOptions, option.WithHTTPClient(oauth2.NewClient(ctx, options.TokenSource)))
	case options.APIKey != "":
		clientOptions = append(clientOptions, option.WithAPIKey(options.APIKey))
	}

	clientOptions = append(clientOptions, options.ClientOptions...)

	service, err := youtube.NewService(ctx, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	maxResults := options.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	return &Client{service: service, maxResults: maxResults}, nil
}

// SearchChannel lists the ids of the channel's publicly listed videos, first page only.
func (c *Client) SearchChannel(ctx context.Context, channelID string) ([]string, error) {
	ctx, cancel := network.WithTimeout(ctx)
	defer cancel()

	response, err := c.service.Search.
		List([]string{"id"}).
		ChannelId(channelID).
		Type("video").
		MaxResults(c.maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("search channel %s: %w", channelID, err)
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
	}

	log.Debugf("search found %d videos in channel %s", len(ids), channelID)
	return ids, nil
}

// Video looks up a single video.
func (c *Client) Video(ctx context.Context, id string) (*Video, error) {
	ctx, cancel := network.WithTimeout(ctx)
	defer cancel()

	response, err := c.service.Videos.
		List([]string{"snippet", "contentDetails", "status"}).
		Id(id).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("get video %s: %w", id, err)
	}

	if len(response.Items) == 0 || response.Items[0].Snippet == nil {
		return nil, fmt.Errorf("video %s: %w", id, ErrNotFound)
	}

	item := response.Items[0]
	video := &Video{
		ID:          item.Id,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Thumbnail:   thumbnail(item.Snippet.Thumbnails),
		Private:     item.Status != nil && item.Status.PrivacyStatus == privacyPrivate,
		Cost:        cost(response.Header),
	}

	log.Tracef("fetched video %s (%q), cost %d", id, video.Title, video.Cost)
	return video, nil
}

// PrivateVideos enumerates the channel's uploads and keeps the private ones.
func (c *Client) PrivateVideos(ctx context.Context, channelID string) ([]string, error) {
	playlistID, err := c.uploadsPlaylist(ctx, channelID)
	if err != nil {
		return nil, err
	}

	ids, err := c.playlistVideos(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := network.WithTimeout(ctx)
	defer cancel()

	response, err := c.service.Videos.
		List([]string{"status"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("get upload statuses: %w", err)
	}

	private := lo.FilterMap(response.Items, func(item *youtube.Video, _ int) (string, bool) {
		return item.Id, item.Status != nil && item.Status.PrivacyStatus == privacyPrivate
	})

	log.Debugf("%d of %d uploads are private", len(private), len(ids))
	return private, nil
}

func (c *Client) uploadsPlaylist(ctx context.Context, channelID string) (string, error) {
	ctx, cancel := network.WithTimeout(ctx)
	defer cancel()

	response, err := c.service.Channels.
		List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("get channel %s: %w", channelID, err)
	}

	if len(response.Items) == 0 {
		return "", fmt.Errorf("channel %s: %w", channelID, ErrNotFound)
	}

	details := response.Items[0].ContentDetails
	if details == nil || details.RelatedPlaylists == nil || details.RelatedPlaylists.Uploads == "" {
		return "", fmt.Errorf("uploads of channel %s: %w", channelID, ErrNotFound)
	}

	return details.RelatedPlaylists.Uploads, nil
}

func (c *Client) playlistVideos(ctx context.Context, playlistID string) ([]string, error) {
	ctx, cancel := network.WithTimeout(ctx)
	defer cancel()

	response, err := c.service.PlaylistItems.
		List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(DefaultMaxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list playlist %s: %w", playlistID, err)
	}

	ids := lo.FilterMap(response.Items, func(item *youtube.PlaylistItem, _ int) (string, bool) {
		if item.ContentDetails == nil {
			return "", false
		}
		return item.ContentDetails.VideoId, item.ContentDetails.VideoId != ""
	})

	return lo.Uniq(ids), nil
}

// IsQuotaError reports whether err is the platform refusing a call for quota reasons:
// either a 403 or a message that mentions the quota.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusForbidden {
			return true
		}

		if mentionsQuota(apiErr.Message) {
			return true
		}

		for _, item := range apiErr.Errors {
			if mentionsQuota(item.Reason) || mentionsQuota(item.Message) {
				return true
			}
		}
	}

	return mentionsQuota(err.Error())
}

func mentionsQuota(s string) bool {
	return strings.Contains(strings.ToLower(s), "quota")
}

func cost(header http.Header) int {
	n, err := strconv.Atoi(header.Get("X-Quota-Cost"))
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

func thumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}

	for _, t := range []*youtube.Thumbnail{thumbnails.Maxres, thumbnails.High, thumbnails.Medium, thumbnails.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}

	return ""
}
