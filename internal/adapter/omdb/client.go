package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultSearchSize = 128
	userAgent         = "Popcorn/1.0"
)

// Options tunes the client's transport and caches. Zero Timeout and SearchSize
// use defaults; a TTL <= 0 disables that cache.
type Options struct {
	Timeout    time.Duration
	SearchSize int
	SearchTTL  time.Duration
	DetailTTL  time.Duration
}

// searchEntry is a cached search reply
type searchEntry struct {
	results   []domain.SearchResult
	expiresAt time.Time
}

// Client implements domain.Catalog against the OMDb HTTP API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger

	searches  *lru.Cache[string, searchEntry]
	searchTTL time.Duration
	details   *cache.Cache // id -> *domain.FilmDetail
	lookups   singleflight.Group
}

// NewClient creates a new catalog client
func NewClient(baseURL, apiKey string, opts Options, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.SearchSize <= 0 {
		opts.SearchSize = defaultSearchSize
	}

	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: opts.Timeout},
		logger:     logger,
		searchTTL:  opts.SearchTTL,
	}
	if opts.SearchTTL > 0 {
		searches, err := lru.New[string, searchEntry](opts.SearchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create search cache: %w", err)
		}
		c.searches = searches
	}
	if opts.DetailTTL > 0 {
		c.details = cache.New(opts.DetailTTL, 2*opts.DetailTTL)
	}
	return c, nil
}

// doRequest performs an authenticated GET against the catalog.
// Cancellation is returned as-is; every other failure wraps domain.ErrNetwork.
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	query.Set("apikey", c.apiKey)
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.Error("catalog request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrNetwork, resp.StatusCode)
	}

	return body, nil
}

// SearchByTitle returns catalog matches for a title query in catalog order
func (c *Client) SearchByTitle(ctx context.Context, query string) ([]domain.SearchResult, error) {
	key := strings.ToLower(query)
	if results, ok := c.cachedSearch(key); ok {
		c.logger.Debug("search cache hit", "query", query)
		return results, nil
	}

	body, err := c.doRequest(ctx, url.Values{"s": {query}})
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: failed to parse response: %v", domain.ErrNetwork, err)
	}
	if !isHit(resp.Response) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMovieNotFound, resp.Error)
	}

	results := MapSearchResults(resp.Search)
	if c.searches != nil {
		c.searches.Add(key, searchEntry{results: slices.Clone(results), expiresAt: time.Now().Add(c.searchTTL)})
	}
	return results, nil
}

func (c *Client) cachedSearch(key string) ([]domain.SearchResult, bool) {
	if c.searches == nil {
		return nil, false
	}
	entry, ok := c.searches.Get(key)
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.searches.Remove(key)
		return nil, false
	}
	return slices.Clone(entry.results), true
}

// LookupByID returns the full record for a catalog identifier.
// Concurrent lookups of the same id share one request; a cancelled caller
// returns immediately while the shared request completes for the others.
func (c *Client) LookupByID(ctx context.Context, id string) (*domain.FilmDetail, error) {
	if c.details != nil {
		if v, found := c.details.Get(id); found {
			c.logger.Debug("detail cache hit", "id", id)
			detail := *v.(*domain.FilmDetail)
			return &detail, nil
		}
	}

	ch := c.lookups.DoChan(id, func() (interface{}, error) {
		return c.lookup(context.WithoutCancel(ctx), id)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		detail := *res.Val.(*domain.FilmDetail)
		return &detail, nil
	}
}

func (c *Client) lookup(ctx context.Context, id string) (*domain.FilmDetail, error) {
	body, err := c.doRequest(ctx, url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}

	var resp DetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: failed to parse response: %v", domain.ErrNetwork, err)
	}
	if !isHit(resp.Response) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMovieNotFound, resp.Error)
	}

	detail := MapDetail(resp)
	if detail.ID == "" {
		detail.ID = id
	}
	if c.details != nil {
		c.details.SetDefault(id, detail)
	}
	return detail, nil
}
