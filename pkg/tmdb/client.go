package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	mhttp "strmsync/pkg/http"
)

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultLanguage     = "en-US"

	PosterSize = "w500"
	FanartSize = "w780"
)

// Client talks to TMDB over HTTP.
type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	language     string
	client       mhttp.HTTPClient
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, typically to add
// throttling and retry behavior.
func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithImageBaseURL overrides the artwork CDN base URL.
func WithImageBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.imageBaseURL = base
		}
	}
}

// WithLanguage sets the language parameter sent on every request.
func WithLanguage(language string) Option {
	return func(c *Client) {
		if language != "" {
			c.language = language
		}
	}
}

// New creates a TMDB client authenticated by api key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("tmdb api key is required")
	}

	c := &Client{
		baseURL:      DefaultBaseURL,
		imageBaseURL: DefaultImageBaseURL,
		apiKey:       apiKey,
		language:     DefaultLanguage,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("tmdb GET %s: HTTP %d: %s", path, resp.StatusCode, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb %s: %w", path, err)
	}
	return nil
}

// ErrNotFound is returned when TMDB has no record for the requested id.
var ErrNotFound = fmt.Errorf("tmdb: not found")

// GetMovie fetches movie detail by TMDB id.
func (c *Client) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetTV fetches series detail by TMDB id.
func (c *Client) GetTV(ctx context.Context, id int64) (*TV, error) {
	var tv TV
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), nil, &tv); err != nil {
		return nil, err
	}
	return &tv, nil
}

// GetEpisode fetches episode detail for one season/episode of a series.
func (c *Client) GetEpisode(ctx context.Context, tvID int64, season, episode int) (*Episode, error) {
	var ep Episode
	path := fmt.Sprintf("/tv/%d/season/%d/episode/%d", tvID, season, episode)
	if err := c.get(ctx, path, nil, &ep); err != nil {
		return nil, err
	}
	return &ep, nil
}

type searchPage[T any] struct {
	Results []T `json:"results"`
}

// SearchMovie searches movies by title, optionally constrained to a year.
func (c *Client) SearchMovie(ctx context.Context, query string, year int) ([]MovieResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if year > 0 {
		params.Set("year", strconv.Itoa(year))
	}

	var page searchPage[MovieResult]
	if err := c.get(ctx, "/search/movie", params, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// SearchTV searches series by name, optionally constrained to a first-air year.
func (c *Client) SearchTV(ctx context.Context, query string, year int) ([]TVResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if year > 0 {
		params.Set("first_air_date_year", strconv.Itoa(year))
	}

	var page searchPage[TVResult]
	if err := c.get(ctx, "/search/tv", params, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// ImageURL builds the CDN URL for an artwork path at a given size.
func (c *Client) ImageURL(size, path string) string {
	return c.imageBaseURL + "/" + size + path
}

// DownloadImage fetches artwork bytes from the CDN.
func (c *Client) DownloadImage(ctx context.Context, size, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ImageURL(size, path), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb image %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb image %s: HTTP %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

var _ ClientInterface = (*Client)(nil)
