package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"strmsync/pkg/logger"

	mhttp "strmsync/pkg/http"
)

const (
	DefaultPageSize  = 250
	DefaultUserAgent = "strmsync/1.0"
)

// HTTPClient is the Dispatcharr implementation of Client.
type HTTPClient struct {
	baseURL   string
	username  string
	password  string
	userAgent string
	pageSize  int

	// Optional per-kind item caps, zero means unlimited.
	limitMovies int
	limitSeries int

	client mhttp.HTTPClient

	mu    sync.Mutex
	token string
}

type Option func(*HTTPClient)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *HTTPClient) {
		c.client = client
	}
}

// WithPageSize sets the page size used for paginated listings.
func WithPageSize(size int) Option {
	return func(c *HTTPClient) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithListingLimits caps how many movies/series are fetched per account.
func WithListingLimits(movies, series int) Option {
	return func(c *HTTPClient) {
		c.limitMovies = movies
		c.limitSeries = series
	}
}

// New creates a Dispatcharr catalog client.
func New(baseURL, username, password string, opts ...Option) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("catalog base url is required")
	}

	c := &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		username:  username,
		password:  password,
		userAgent: DefaultUserAgent,
		pageSize:  DefaultPageSize,
		client:    &http.Client{Timeout: time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Login obtains a JWT access token from the accounts endpoint.
func (c *HTTPClient) Login(ctx context.Context) error {
	body, err := json.Marshal(map[string]string{
		"username": c.username,
		"password": c.password,
	})
	if err != nil {
		return fmt.Errorf("marshal login body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/accounts/token/", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("login failed (%d): %s", resp.StatusCode, string(snippet))
	}

	var payload struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if payload.Access == "" {
		return fmt.Errorf("login succeeded but no access token in response")
	}

	c.mu.Lock()
	c.token = payload.Access
	c.mu.Unlock()
	return nil
}

func (c *HTTPClient) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// get performs an authenticated GET. On 401 it re-logs-in once and retries;
// a second 401 is returned to the caller.
func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	log := logger.FromCtx(ctx)

	resp, err := c.doGet(ctx, path)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		log.Warnw("catalog returned 401, re-authenticating once", "path", path)
		if err := c.Login(ctx); err != nil {
			return fmt.Errorf("re-login after 401: %w", err)
		}
		resp, err = c.doGet(ctx, path)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	log.Debugw("catalog GET", "path", path, "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("catalog GET %s: HTTP %d: %s", path, resp.StatusCode, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) doGet(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.client.Do(req)
}

// listPage is the envelope Dispatcharr uses for paginated list endpoints.
type listPage[T any] struct {
	Count   int             `json:"count"`
	Next    string          `json:"next"`
	Results []T             `json:"results"`
	Data    json.RawMessage `json:"data"`
}

// paginate walks pages for a list endpoint, stopping at limit items when
// limit is positive.
func paginate[T any](ctx context.Context, c *HTTPClient, path string, limit int) ([]T, error) {
	log := logger.FromCtx(ctx)

	items := []T{}
	total := 0
	nextProgress := 10

	for page := 1; ; page++ {
		if limit > 0 && len(items) >= limit {
			break
		}

		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		full := fmt.Sprintf("%s%spage=%d&page_size=%d", path, sep, page, c.pageSize)

		var envelope listPage[T]
		if err := c.get(ctx, full, &envelope); err != nil {
			return nil, err
		}

		results := envelope.Results
		if len(results) == 0 && len(envelope.Data) > 0 {
			// some endpoints nest results under "data"
			if err := json.Unmarshal(envelope.Data, &results); err != nil {
				return nil, fmt.Errorf("decode %s data envelope: %w", path, err)
			}
		}
		if len(results) == 0 {
			break
		}

		if total == 0 {
			total = envelope.Count
			if limit > 0 && total > limit {
				total = limit
			}
		}

		if limit > 0 {
			remaining := limit - len(items)
			if len(results) > remaining {
				results = results[:remaining]
			}
		}
		items = append(items, results...)

		if total > 0 {
			pct := len(items) * 100 / total
			if pct >= nextProgress || len(items) >= total {
				log.Debugw("pagination progress", "path", path, "page", page, "fetched", len(items), "total", total, "pct", pct)
				for nextProgress <= pct && nextProgress < 100 {
					nextProgress += 10
				}
			}
		}

		if envelope.Next == "" || (limit > 0 && len(items) >= limit) {
			break
		}
	}

	return items, nil
}

// ListAccounts returns the remote M3U/XC accounts.
func (c *HTTPClient) ListAccounts(ctx context.Context) ([]Account, error) {
	// the accounts endpoint is not paginated and may answer with either a
	// bare array or a results envelope
	var raw json.RawMessage
	if err := c.get(ctx, "/api/m3u/accounts/", &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var accounts []Account
		if err := json.Unmarshal(trimmed, &accounts); err != nil {
			return nil, fmt.Errorf("decode accounts: %w", err)
		}
		return accounts, nil
	}

	var envelope listPage[Account]
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode accounts envelope: %w", err)
	}
	return envelope.Results, nil
}

// ListMovies returns all VOD movies for an account.
func (c *HTTPClient) ListMovies(ctx context.Context, accountID int) ([]Movie, error) {
	path := "/api/vod/movies/?m3u_account=" + strconv.Itoa(accountID)
	return paginate[Movie](ctx, c, path, c.limitMovies)
}

// ListSeries returns all VOD series for an account.
func (c *HTTPClient) ListSeries(ctx context.Context, accountID int) ([]Series, error) {
	path := "/api/vod/series/?m3u_account=" + strconv.Itoa(accountID)
	return paginate[Series](ctx, c, path, c.limitSeries)
}

// GetSeriesEpisodes fetches and normalizes the provider-info episode layout
// for one series.
func (c *HTTPClient) GetSeriesEpisodes(ctx context.Context, seriesID int) ([]Season, error) {
	path := fmt.Sprintf("/api/vod/series/%d/provider-info/?include_episodes=true", seriesID)

	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	return NormalizeProviderInfo(raw)
}

var _ Client = (*HTTPClient)(nil)
