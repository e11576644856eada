// Package tmdb looks up poster and backdrop artwork for movies and series.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"github.com/tubevault/tubevault/internal/cache"
	"github.com/tubevault/tubevault/log"
	"github.com/tubevault/tubevault/network"
	"github.com/tubevault/tubevault/video"
)

const (
	DefaultBaseURL = "https://api.themoviedb.org/3"
	ImageBaseURL   = "https://image.tmdb.org/t/p/w500"
)

// Kind is the searched catalog.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// Artwork of the best matching title. Paths are absolute image URLs, empty when missing.
type Artwork struct {
	Poster   string `json:"poster,omitempty"`
	Backdrop string `json:"backdrop,omitempty"`
}

type searchResponse struct {
	Results []struct {
		PosterPath   string `json:"poster_path"`
		BackdropPath string `json:"backdrop_path"`
	} `json:"results"`
	StatusMessage string `json:"status_message"`
}

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	cl      *http.Client
	cached  bool
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client elsewhere, mostly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient replaces network.Client.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		c.cl = cl
	}
}

// WithoutCache disables the on-disk lookup cache.
func WithoutCache() Option {
	return func(c *Client) {
		c.cached = false
	}
}

// New returns nil when apiKey is empty.
func New(apiKey string, options ...Option) *Client {
	if apiKey == "" {
		return nil
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		cl:      network.Client,
		cached:  true,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// SearchSeries looks up a TV series by name.
func (c *Client) SearchSeries(ctx context.Context, name string) (mo.Option[Artwork], error) {
	return c.search(ctx, KindTV, name)
}

// SearchMovie looks up a movie by title.
func (c *Client) SearchMovie(ctx context.Context, title string) (mo.Option[Artwork], error) {
	return c.search(ctx, KindMovie, title)
}

// ArtworkFor searches by series name for series and by title for movies.
// Other kinds of records have no artwork.
func (c *Client) ArtworkFor(ctx context.Context, record *video.Record) (mo.Option[Artwork], error) {
	switch record.Type {
	case video.KindSeries:
		return c.SearchSeries(ctx, record.DisplayTitle())
	case video.KindMovie:
		return c.SearchMovie(ctx, record.Title)
	default:
		return mo.None[Artwork](), nil
	}
}

func (c *Client) search(ctx context.Context, kind Kind, query string) (mo.Option[Artwork], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return mo.None[Artwork](), nil
	}

	key := cache.GenerateKey(query, string(kind))
	if c.cached {
		var cached Artwork
		if cache.Read(key, &cached) {
			log.Tracef("artwork for %s %q served from cache", kind, query)
			return wrap(cached), nil
		}
	}

	artwork, err := c.request(ctx, kind, query)
	if err != nil {
		return mo.None[Artwork](), err
	}

	if c.cached {
		if err := cache.Write(key, artwork); err != nil {
			log.Warnf("cache artwork for %q: %v", query, err)
		}
	}

	return wrap(artwork), nil
}

func (c *Client) request(ctx context.Context, kind Kind, query string) (Artwork, error) {
	ctx, cancel := network.WithTimeout(ctx)
	defer cancel()

	reqURL := fmt.Sprintf("%s/search/%s", c.baseURL, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Artwork{}, errors.Wrap(err, "create request")
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("query", query)
	req.URL.RawQuery = q.Encode()

	resp, err := c.cl.Do(req)
	if err != nil {
		return Artwork{}, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Artwork{}, errors.Wrap(err, "decode response")
	}

	if resp.StatusCode != http.StatusOK {
		return Artwork{}, errors.Errorf("tmdb error: %d %s", resp.StatusCode, body.StatusMessage)
	}

	if len(body.Results) == 0 {
		return Artwork{}, nil
	}

	first := body.Results[0]
	return Artwork{
		Poster:   imageURL(first.PosterPath),
		Backdrop: imageURL(first.BackdropPath),
	}, nil
}

func imageURL(path string) string {
	if path == "" {
		return ""
	}
	return ImageBaseURL + path
}

func wrap(artwork Artwork) mo.Option[Artwork] {
	if artwork == (Artwork{}) {
		return mo.None[Artwork]()
	}
	return mo.Some(artwork)
}
