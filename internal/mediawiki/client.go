// Package mediawiki is a minimal client for the MediaWiki parse API,
// retrieving the wikitext and link lists the extraction engine consumes.
package mediawiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/ppiankov/wikigraph/internal/extract"
	"github.com/ppiankov/wikigraph/internal/model"
	"github.com/ppiankov/wikigraph/internal/util"
)

// Client fetches page payloads politely: rate-limited, robots.txt-aware,
// with bounded retries and exponential backoff.
type Client struct {
	httpClient *http.Client
	apiURL     string
	userAgent  string
	retries    int
	maxBytes   int64
	limiter    *rate.Limiter
	robots     *util.RobotsChecker
}

// NewClient creates a MediaWiki API client from the wiki configuration
func NewClient(cfg model.WikiConfig, rps float64, burst int) *Client {
	if cfg.Retries <= 0 {
		cfg.Retries = 3
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 10 * 1024 * 1024
	}
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, ""),
			},
		},
		apiURL:    cfg.APIURL,
		userAgent: cfg.UserAgent,
		retries:   cfg.Retries,
		maxBytes:  cfg.MaxBodyBytes,
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
		robots:    util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
	}
}

// parseResponse is the action=parse payload (formatversion=2)
type parseResponse struct {
	Parse struct {
		Title    string `json:"title"`
		PageID   int    `json:"pageid"`
		Wikitext string `json:"wikitext"`
		Links    []struct {
			NS    int    `json:"ns"`
			Title string `json:"title"`
		} `json:"links"`
		ExternalLinks []string `json:"externallinks"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// FetchPage retrieves one page's wikitext and link lists, following
// redirects. Internal links are filtered to the content namespace here so
// downstream consumers never see navigation links.
func (c *Client) FetchPage(ctx context.Context, title string) (*model.Page, error) {
	params := url.Values{
		"action":        {"parse"},
		"page":          {title},
		"prop":          {"wikitext|links|externallinks"},
		"redirects":     {"1"},
		"format":        {"json"},
		"formatversion": {"2"},
	}
	reqURL := c.apiURL + "?" + params.Encode()

	if allowed, _, err := c.robots.CanFetch(ctx, reqURL); err == nil && !allowed {
		return nil, fmt.Errorf("robots.txt disallows %s", c.apiURL)
	}

	body, err := c.getWithRetries(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var resp parseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode parse response for %q: %w", title, err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("api error for %q: %s (%s)", title, resp.Error.Info, resp.Error.Code)
	}
	if resp.Parse.PageID == 0 && resp.Parse.Wikitext == "" {
		return nil, fmt.Errorf("no parse result for %q", title)
	}

	page := &model.Page{
		Title:         resp.Parse.Title,
		PageID:        resp.Parse.PageID,
		Wikitext:      resp.Parse.Wikitext,
		ExternalLinks: resp.Parse.ExternalLinks,
	}
	if page.Title == "" {
		page.Title = title
	}
	for _, l := range resp.Parse.Links {
		if l.Title != "" && extract.IsContentTitle(l.Title) {
			page.Links = append(page.Links, l.Title)
		}
	}
	return page, nil
}

func (c *Client) getWithRetries(ctx context.Context, reqURL string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.get(ctx, reqURL)
		if err == nil {
			return body, nil
		}
		lastErr = err

		backoff := time.Duration(attempt) * 700 * time.Millisecond
		if backoff > 8*time.Second {
			backoff = 8 * time.Second
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, fmt.Errorf("api request failed after %d retries: %w", c.retries, lastErr)
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
